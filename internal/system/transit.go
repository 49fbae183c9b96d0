// internal/system/transit.go
package system

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"hex-colony/internal/component"
	"hex-colony/internal/config"
	"hex-colony/internal/entity"
	"hex-colony/internal/event"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"golang.org/x/sync/errgroup"
)

// TransitSystem advances agents holding an order toward their destination center.
// The source cell stays occupied until arrival, when the move is committed to the ledger.
type TransitSystem struct {
	world   *entity.World
	probe   Probe
	journal *event.Journal
	cfg     config.Transit
	logger  *slog.Logger
}

// step is the outcome of probing one agent for one tick.
type step struct {
	agent   *component.Agent
	order   *component.MovementOrder
	target  orb.Point
	dir     orb.Point
	length  float64
	arrive  bool
	blocked bool
	hit     component.Hit
}

func NewTransitSystem(w *entity.World, probe Probe, j *event.Journal, cfg config.Transit, logger *slog.Logger) *TransitSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransitSystem{world: w, probe: probe, journal: j, cfg: cfg, logger: logger}
}

// SetProbe swaps the collision capability.
func (s *TransitSystem) SetProbe(p Probe) {
	s.probe = p
}

// Update moves every agent with an order by one tick of deltaTime seconds, in id order.
func (s *TransitSystem) Update(deltaTime float64) {
	movers := s.world.OrderedMovers()
	if len(movers) == 0 {
		return
	}

	if !s.cfg.ParallelProbes {
		for _, id := range movers {
			s.apply(s.plan(id, deltaTime))
		}
		return
	}

	// Every probe reads the positions as they were at the start of the tick;
	// nothing is written until all of them are done.
	steps := make([]step, len(movers))
	starts := make([]orb.Point, len(movers))
	for i, id := range movers {
		starts[i] = s.world.Agents[id].Pos
	}
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, id := range movers {
		i, id := i, id
		g.Go(func() error {
			steps[i] = s.plan(id, deltaTime)
			return nil
		})
	}
	_ = g.Wait()

	// A snapshot plan is stale once an earlier mover within reach has moved;
	// those are planned again against live positions, which makes the outcome
	// match the sequential one.
	for i, st := range steps {
		if s.nearMovedEarlier(i, steps, starts, deltaTime) {
			st = s.plan(movers[i], deltaTime)
		}
		s.apply(st)
	}
}

// reach bounds how far one planned step can sweep from the agent's start.
func (s *TransitSystem) reach(a *component.Agent, deltaTime float64) float64 {
	return a.Speed*deltaTime + s.cfg.ArrivalEpsilon + a.Radius
}

func (s *TransitSystem) nearMovedEarlier(i int, steps []step, starts []orb.Point, deltaTime float64) bool {
	a := steps[i].agent
	for j := 0; j < i; j++ {
		b := steps[j].agent
		if b.Pos == starts[j] {
			continue
		}
		if planar.Distance(starts[i], starts[j]) <= s.reach(a, deltaTime)+s.reach(b, deltaTime) {
			return true
		}
	}
	return false
}

// Cancel drops id's order, releasing its destination reservation. The agent stays
// where it is and keeps its source cell.
func (s *TransitSystem) Cancel(id component.AgentID, reason string) bool {
	a := s.world.Agent(id)
	if a == nil {
		return false
	}
	if _, ok := s.world.Orders[id]; !ok {
		return false
	}
	s.cancel(a, reason, component.BodyID{})
	return true
}

func (s *TransitSystem) plan(id component.AgentID, deltaTime float64) step {
	a := s.world.Agents[id]
	o := s.world.Orders[id]
	st := step{agent: a, order: o, target: s.world.Layout.HexToWorld(o.To)}

	dx := st.target.X() - a.Pos.X()
	dy := st.target.Y() - a.Pos.Y()
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		st.arrive = true
		return st
	}

	st.dir = orb.Point{dx / dist, dy / dist}
	st.length = a.Speed * deltaTime
	// A step that would stop within ArrivalEpsilon of the center runs all the way.
	// The last leg is cast like any other, so arrival never skips a collision check.
	if dist <= st.length+s.cfg.ArrivalEpsilon {
		st.length = dist
		st.arrive = true
	}

	exclude := map[component.BodyID]struct{}{component.AgentBodyID(id): {}}
	if hit, ok := s.probe.Cast(a.Pos, st.dir, st.length, exclude); ok {
		st.arrive = false
		st.blocked = true
		st.hit = hit
		st.length = math.Max(0, hit.Distance-s.cfg.ClearanceMargin)
	}
	return st
}

func (s *TransitSystem) apply(st step) {
	a, o := st.agent, st.order

	if a.State == component.Reserved {
		a.State = component.Transiting
		s.journal.Emit(event.Event{
			Type:    event.Departed,
			Agent:   a.ID,
			Cell:    o.From,
			Point:   a.Pos,
			Command: o.Command,
		})
	}

	if st.arrive {
		s.arrive(a, o, st.target)
		return
	}
	if st.length > 0 {
		a.Pos = orb.Point{a.Pos.X() + st.dir.X()*st.length, a.Pos.Y() + st.dir.Y()*st.length}
	}

	if st.blocked {
		a.Retries++
		if a.State != component.Blocked {
			a.State = component.Blocked
			s.journal.Emit(event.Event{
				Type:     event.Blocked,
				Agent:    a.ID,
				Obstacle: st.hit.Body,
				Point:    st.hit.Point,
				Cell:     o.To,
				Command:  o.Command,
			})
		}
		if a.Retries > s.cfg.MaxBlockedRetries {
			s.cancel(a, event.ReasonBlocked, st.hit.Body)
		}
		return
	}

	if a.State == component.Blocked {
		a.State = component.Transiting
		a.Retries = 0
		s.journal.Emit(event.Event{
			Type:    event.Unblocked,
			Agent:   a.ID,
			Cell:    o.To,
			Point:   a.Pos,
			Command: o.Command,
		})
	}
}

func (s *TransitSystem) arrive(a *component.Agent, o *component.MovementOrder, target orb.Point) {
	if err := s.world.Ledger.CommitMove(a.ID, o.From, o.To); err != nil {
		panic(fmt.Sprintf("transit: agent %d: %v", a.ID, err))
	}
	a.Pos = target
	a.Cell = o.To
	a.State = component.Idle
	a.Retries = 0
	delete(s.world.Orders, a.ID)

	s.journal.Emit(event.Event{
		Type:    event.Arrived,
		Agent:   a.ID,
		Cell:    o.To,
		Point:   target,
		Command: o.Command,
	})
	s.logger.Debug("agent arrived", "agent", a.ID, "cell", o.To.String(), "tick", s.world.Tick)
}

func (s *TransitSystem) cancel(a *component.Agent, reason string, obstacle component.BodyID) {
	o := s.world.Orders[a.ID]
	s.world.Ledger.Release(o.To, a.ID)
	delete(s.world.Orders, a.ID)
	a.State = component.Idle
	a.Retries = 0

	s.journal.Emit(event.Event{
		Type:     event.OrderCanceled,
		Agent:    a.ID,
		Obstacle: obstacle,
		Point:    a.Pos,
		Cell:     o.To,
		Command:  o.Command,
		Reason:   reason,
	})
	s.logger.Info("order canceled", "agent", a.ID, "dest", o.To.String(), "reason", reason)
}
