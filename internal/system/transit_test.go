package system

import (
	"testing"

	"hex-colony/internal/component"
	"hex-colony/internal/entity"
	"hex-colony/internal/event"
	"hex-colony/pkg/hexmap"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProbe answers casts from a fixed script, one entry per call.
// A nil entry or a call past the end of the script is a miss.
type scriptedProbe struct {
	script []*component.Hit
	calls  int
}

func (p *scriptedProbe) Cast(_, _ orb.Point, _ float64, _ map[component.BodyID]struct{}) (component.Hit, bool) {
	i := p.calls
	p.calls++
	if i >= len(p.script) || p.script[i] == nil {
		return component.Hit{}, false
	}
	return *p.script[i], true
}

func hitAt(d float64) *component.Hit {
	return &component.Hit{Distance: d, Body: component.RockBodyID(hexmap.Hex{Q: 9, R: 9})}
}

func giveOrder(t *testing.T, w *entity.World, a *component.Agent, to hexmap.Hex) {
	t.Helper()
	require.NoError(t, w.Ledger.Reserve(to, a.ID))
	o := component.NewOrder(a, to, w.Tick, uuid.New())
	w.Orders[a.ID] = &o
	a.State = component.Reserved
}

func TestTransitBlockUnblockArrive(t *testing.T) {
	w := newWorld(3)
	a := spawnWorker(t, w, hexmap.Origin)
	dest := hexmap.Hex{Q: 1, R: 0}
	giveOrder(t, w, a, dest)
	target := w.Layout.HexToWorld(dest)

	j := newJournal()
	probe := &scriptedProbe{script: []*component.Hit{nil, hitAt(0.3)}}
	ts := NewTransitSystem(w, probe, j, transitConfig(), discardLogger())

	var states []component.AgentState
	prev := planar.Distance(a.Pos, target)
	for i := 0; i < 10 && a.State != component.Idle; i++ {
		ts.Update(transitConfig().TickDuration())
		states = append(states, a.State)
		d := planar.Distance(a.Pos, target)
		assert.LessOrEqual(t, d, prev)
		prev = d
		checkLedger(t, w)
	}

	assert.Equal(t, []component.AgentState{
		component.Transiting,
		component.Blocked,
		component.Transiting,
		component.Transiting,
		component.Idle,
	}, states)
	assert.Equal(t, dest, a.Cell)
	assert.Equal(t, target, a.Pos)
	assert.Empty(t, w.Orders)
	assert.Zero(t, a.Retries)

	var types []event.EventType
	for _, e := range j.Events() {
		types = append(types, e.Type)
	}
	assert.Equal(t, []event.EventType{event.Departed, event.Blocked, event.Unblocked, event.Arrived}, types)
}

func TestTransitPartialMoveStopsShortOfHit(t *testing.T) {
	w := newWorld(3)
	a := spawnWorker(t, w, hexmap.Origin)
	giveOrder(t, w, a, hexmap.Hex{Q: 1, R: 0})

	probe := &scriptedProbe{script: []*component.Hit{hitAt(4)}}
	ts := NewTransitSystem(w, probe, newJournal(), transitConfig(), discardLogger())
	ts.Update(transitConfig().TickDuration())

	assert.InDelta(t, 3.5, a.Pos.X(), 1e-9)
	assert.InDelta(t, 0, a.Pos.Y(), 1e-9)
	assert.Equal(t, component.Blocked, a.State)
	assert.Equal(t, 1, a.Retries)
}

func TestTransitCancelsAfterRetries(t *testing.T) {
	w := newWorld(3)
	a := spawnWorker(t, w, hexmap.Origin)
	dest := hexmap.Hex{Q: 1, R: 0}
	giveOrder(t, w, a, dest)

	wall := hitAt(0)
	script := make([]*component.Hit, 20)
	for i := range script {
		script[i] = wall
	}
	j := newJournal()
	cfg := transitConfig()
	ts := NewTransitSystem(w, &scriptedProbe{script: script}, j, cfg, discardLogger())

	for i := 0; i < cfg.MaxBlockedRetries; i++ {
		ts.Update(cfg.TickDuration())
		require.Equal(t, component.Blocked, a.State, "tick %d", i+1)
	}
	ts.Update(cfg.TickDuration())

	assert.Equal(t, component.Idle, a.State)
	assert.Equal(t, hexmap.Origin, a.Cell)
	assert.Equal(t, w.Layout.HexToWorld(hexmap.Origin), a.Pos)
	assert.Empty(t, w.Orders)
	assert.False(t, w.Ledger.IsReserved(dest))
	assert.Len(t, eventsOf(j, event.Blocked), 1)

	canceled := eventsOf(j, event.OrderCanceled)
	require.Len(t, canceled, 1)
	assert.Equal(t, event.ReasonBlocked, canceled[0].Reason)
	assert.Equal(t, wall.Body, canceled[0].Obstacle)
	assert.Equal(t, dest, canceled[0].Cell)
	checkLedger(t, w)
}

func TestTransitKeepsSourceUntilArrival(t *testing.T) {
	w := newWorld(4)
	a := spawnWorker(t, w, hexmap.Origin)
	dest := hexmap.Hex{Q: 2, R: 0}
	giveOrder(t, w, a, dest)
	ts := NewTransitSystem(w, &scriptedProbe{}, newJournal(), transitConfig(), discardLogger())

	for a.State != component.Idle {
		ts.Update(transitConfig().TickDuration())
		if a.State == component.Idle {
			break
		}
		owner, ok := w.Ledger.Occupant(hexmap.Origin)
		require.True(t, ok)
		assert.Equal(t, a.ID, owner)
		assert.True(t, w.Ledger.IsReserved(dest))
		assert.Equal(t, hexmap.Origin, a.Cell)
	}

	_, ok := w.Ledger.Occupant(hexmap.Origin)
	assert.False(t, ok)
	owner, ok := w.Ledger.Occupant(dest)
	require.True(t, ok)
	assert.Equal(t, a.ID, owner)
	checkLedger(t, w)
}

func TestTransitStopMidway(t *testing.T) {
	w := newWorld(4)
	a := spawnWorker(t, w, hexmap.Origin)
	dest := hexmap.Hex{Q: 3, R: 0}
	giveOrder(t, w, a, dest)
	j := newJournal()
	ts := NewTransitSystem(w, &scriptedProbe{}, j, transitConfig(), discardLogger())

	ts.Update(transitConfig().TickDuration())
	ts.Update(transitConfig().TickDuration())
	pos := a.Pos

	require.True(t, ts.Cancel(a.ID, event.ReasonStopped))
	assert.False(t, ts.Cancel(a.ID, event.ReasonStopped))
	assert.False(t, ts.Cancel(999, event.ReasonStopped))

	assert.Equal(t, pos, a.Pos)
	assert.Equal(t, component.Idle, a.State)
	assert.Equal(t, hexmap.Origin, a.Cell)
	assert.False(t, w.Ledger.IsReserved(dest))

	canceled := eventsOf(j, event.OrderCanceled)
	require.Len(t, canceled, 1)
	assert.Equal(t, event.ReasonStopped, canceled[0].Reason)
	assert.Equal(t, component.BodyID{}, canceled[0].Obstacle)

	ts.Update(transitConfig().TickDuration())
	assert.Equal(t, pos, a.Pos)
	checkLedger(t, w)
}

func TestTransitNeverOverlapsStandingAgent(t *testing.T) {
	w := newWorld(4)
	mover := spawnWorker(t, w, hexmap.Origin)
	standing := spawnWorker(t, w, hexmap.Hex{Q: 1, R: 0})
	giveOrder(t, w, mover, hexmap.Hex{Q: 2, R: 0})

	j := newJournal()
	cfg := transitConfig()
	ts := NewTransitSystem(w, NewWorldProbe(w, 5, 0), j, cfg, discardLogger())

	for i := 0; i < 20; i++ {
		ts.Update(cfg.TickDuration())
		gap := planar.Distance(mover.Pos, standing.Pos)
		require.GreaterOrEqual(t, gap, mover.Radius+standing.Radius, "tick %d", i+1)
	}

	assert.Equal(t, component.Idle, mover.State)
	assert.Equal(t, hexmap.Origin, mover.Cell)
	canceled := eventsOf(j, event.OrderCanceled)
	require.Len(t, canceled, 1)
	assert.Equal(t, component.AgentBodyID(standing.ID), canceled[0].Obstacle)
	checkLedger(t, w)
}

func TestTransitRockBlocksPath(t *testing.T) {
	w := newWorld(4)
	w.Map.SetPassable(hexmap.Hex{Q: 1, R: 0}, false)
	mover := spawnWorker(t, w, hexmap.Origin)
	giveOrder(t, w, mover, hexmap.Hex{Q: 2, R: 0})

	j := newJournal()
	ts := NewTransitSystem(w, NewWorldProbe(w, 5, 15), j, transitConfig(), discardLogger())
	for i := 0; i < 5; i++ {
		ts.Update(transitConfig().TickDuration())
	}

	blocked := eventsOf(j, event.Blocked)
	require.Len(t, blocked, 1)
	assert.Equal(t, component.RockBodyID(hexmap.Hex{Q: 1, R: 0}), blocked[0].Obstacle)
	rock := w.Layout.HexToWorld(hexmap.Hex{Q: 1, R: 0})
	assert.GreaterOrEqual(t, planar.Distance(mover.Pos, rock), 20.0)
}

// Three workers on separate rows never see each other, so both probe modes agree.
func TestTransitParallelMatchesSequentialForIndependentMovers(t *testing.T) {
	run := func(parallel bool) ([]orb.Point, []event.EventType) {
		w := newWorld(6)
		lanes := [][2]hexmap.Hex{
			{{Q: -3, R: 0}, {Q: 3, R: 0}},
			{{Q: -4, R: 2}, {Q: 2, R: 2}},
			{{Q: -2, R: -2}, {Q: 4, R: -2}},
		}
		var agents []*component.Agent
		for _, l := range lanes {
			a := spawnWorker(t, w, l[0])
			giveOrder(t, w, a, l[1])
			agents = append(agents, a)
		}
		cfg := transitConfig()
		cfg.ParallelProbes = parallel
		j := newJournal()
		ts := NewTransitSystem(w, NewWorldProbe(w, 5, 0), j, cfg, discardLogger())

		var types []event.EventType
		for tick := uint64(1); tick <= 30; tick++ {
			j.Begin(tick)
			ts.Update(cfg.TickDuration())
			for _, e := range j.Events() {
				types = append(types, e.Type)
			}
		}
		var pos []orb.Point
		for _, a := range agents {
			assert.Equal(t, component.Idle, a.State)
			pos = append(pos, a.Pos)
		}
		checkLedger(t, w)
		return pos, types
	}

	seqPos, seqEvents := run(false)
	parPos, parEvents := run(true)
	assert.Equal(t, seqPos, parPos)
	assert.Equal(t, seqEvents, parEvents)
}

func TestTransitParallelIsDeterministic(t *testing.T) {
	run := func() []orb.Point {
		w := newWorld(5)
		var movers []component.AgentID
		for _, h := range hexmap.Ring(hexmap.Origin, 2) {
			movers = append(movers, spawnWorker(t, w, h).ID)
		}
		as := newAssignment(w, newJournal(), 9)
		as.Assign(movers, hexmap.Hex{Q: -3, R: 1}, uuid.Nil)

		cfg := transitConfig()
		cfg.ParallelProbes = true
		ts := NewTransitSystem(w, NewWorldProbe(w, 5, 0), newJournal(), cfg, discardLogger())
		for i := 0; i < 40; i++ {
			ts.Update(cfg.TickDuration())
		}
		var out []orb.Point
		for _, id := range w.SortedIDs() {
			out = append(out, w.Agents[id].Pos)
		}
		return out
	}
	assert.Equal(t, run(), run())
}

// Two workers walking straight at each other must keep their bodies apart, and the
// parallel mode has to end up exactly where the sequential one does.
func TestTransitHeadOnKeepsBodiesApart(t *testing.T) {
	run := func(parallel bool) [][2]orb.Point {
		w := newWorld(4)
		left := spawnWorker(t, w, hexmap.Hex{Q: -1, R: 0})
		right := spawnWorker(t, w, hexmap.Hex{Q: 1, R: 0})
		giveOrder(t, w, left, hexmap.Hex{Q: 3, R: 0})
		giveOrder(t, w, right, hexmap.Hex{Q: -3, R: 0})

		cfg := transitConfig()
		cfg.ParallelProbes = parallel
		ts := NewTransitSystem(w, NewWorldProbe(w, 5, 0), newJournal(), cfg, discardLogger())

		var trace [][2]orb.Point
		for i := 0; i < 20; i++ {
			ts.Update(cfg.TickDuration())
			gap := planar.Distance(left.Pos, right.Pos)
			require.GreaterOrEqual(t, gap, left.Radius+right.Radius, "parallel=%v tick %d", parallel, i+1)
			trace = append(trace, [2]orb.Point{left.Pos, right.Pos})
		}
		assert.Empty(t, w.Orders)
		checkLedger(t, w)
		return trace
	}

	assert.Equal(t, run(false), run(true))
}
