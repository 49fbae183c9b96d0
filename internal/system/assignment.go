// internal/system/assignment.go
package system

import (
	"fmt"
	"log/slog"
	"sort"

	"hex-colony/internal/component"
	"hex-colony/internal/config"
	"hex-colony/internal/entity"
	"hex-colony/internal/event"
	"hex-colony/pkg/hexmap"

	"github.com/google/uuid"
)

// AssignmentSystem turns a group move command into per-agent movement orders.
// Agents are served nearest-first; each takes the first free cell in ring order around
// the destination. The ledger doubles as the batch reservation table, so two agents of
// one command can never end up with the same cell.
type AssignmentSystem struct {
	world   *entity.World
	journal *event.Journal
	cfg     config.Assignment
	logger  *slog.Logger
}

func NewAssignmentSystem(w *entity.World, j *event.Journal, cfg config.Assignment, logger *slog.Logger) *AssignmentSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssignmentSystem{world: w, journal: j, cfg: cfg, logger: logger}
}

// Assign issues orders toward dest for the movable agents among ids and returns them
// in processing order. Immobile agents and agents that already hold an order are skipped.
func (s *AssignmentSystem) Assign(ids []component.AgentID, dest hexmap.Hex, cmd uuid.UUID) []component.MovementOrder {
	movers := s.movers(ids, dest)
	orders := make([]component.MovementOrder, 0, len(movers))

	for _, a := range movers {
		cell, ok := s.search(dest, a.ID)
		if !ok {
			if a.State == component.Selected {
				a.State = component.Idle
			}
			s.journal.Emit(event.Event{
				Type:    event.OrderSkipped,
				Agent:   a.ID,
				Cell:    dest,
				Point:   s.world.Layout.HexToWorld(dest),
				Command: cmd,
				Reason:  event.ReasonExhausted,
			})
			s.logger.Info("order skipped", "agent", a.ID, "dest", dest.String(), "search_radius", s.cfg.MaxSearchRadius)
			continue
		}
		if cell == a.Cell {
			// Nearest free cell is the one it already stands on.
			if a.State == component.Selected {
				a.State = component.Idle
			}
			continue
		}
		if err := s.world.Ledger.Reserve(cell, a.ID); err != nil {
			panic(fmt.Sprintf("assignment: cell found free but reserve failed: %v", err))
		}
		order := component.NewOrder(a, cell, s.world.Tick, cmd)
		s.world.Orders[a.ID] = &order
		a.State = component.Reserved
		a.Retries = 0
		orders = append(orders, order)

		s.journal.Emit(event.Event{
			Type:    event.OrderIssued,
			Agent:   a.ID,
			Cell:    cell,
			Point:   s.world.Layout.HexToWorld(cell),
			Command: cmd,
		})
	}
	return orders
}

// movers filters ids down to agents that can take a new order and sorts them by
// distance to dest, then id.
func (s *AssignmentSystem) movers(ids []component.AgentID, dest hexmap.Hex) []*component.Agent {
	seen := make(map[component.AgentID]struct{}, len(ids))
	out := make([]*component.Agent, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		a := s.world.Agent(id)
		if a == nil || !a.Kind.Movable() {
			continue
		}
		if _, busy := s.world.Orders[id]; busy {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].Cell.Distance(dest), out[j].Cell.Distance(dest)
		if di != dj {
			return di < dj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// search scans rings 0..MaxSearchRadius around dest for a cell id may claim.
func (s *AssignmentSystem) search(dest hexmap.Hex, id component.AgentID) (hexmap.Hex, bool) {
	for r := 0; r <= s.cfg.MaxSearchRadius; r++ {
		for _, h := range hexmap.Ring(dest, r) {
			if s.world.IsAssignable(h, id) {
				return h, true
			}
		}
	}
	return hexmap.Hex{}, false
}
