// internal/entity/ecs.go
package entity

import (
	"fmt"
	"sort"

	"hex-colony/internal/component"
	"hex-colony/pkg/hexmap"
)

// World is the explicit simulation state. Every system receives it as an argument;
// there is no package-level state.
type World struct {
	Tick   uint64
	NextID component.AgentID
	Map    *hexmap.HexMap
	Layout hexmap.Layout
	Ledger *hexmap.Ledger[component.AgentID]
	Agents map[component.AgentID]*component.Agent
	Orders map[component.AgentID]*component.MovementOrder
}

func NewWorld(hexMap *hexmap.HexMap, layout hexmap.Layout) *World {
	if hexMap == nil {
		panic("hexMap cannot be nil")
	}
	return &World{
		NextID: 1,
		Map:    hexMap,
		Layout: layout,
		Ledger: hexmap.NewLedger[component.AgentID](),
		Agents: make(map[component.AgentID]*component.Agent),
		Orders: make(map[component.AgentID]*component.MovementOrder),
	}
}

func (w *World) newEntity() component.AgentID {
	id := w.NextID
	w.NextID++
	return id
}

// Spawn places a new agent at the center of cell. The cell must be passable and unclaimed.
func (w *World) Spawn(kind component.Kind, cell hexmap.Hex, radius, speed float64) (*component.Agent, error) {
	if !w.Map.IsPassable(cell) {
		return nil, fmt.Errorf("spawn %s at %v: cell not passable", kind, cell)
	}
	id := w.NextID
	if err := w.Ledger.Occupy(cell, id); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", kind, err)
	}
	w.newEntity()
	a := &component.Agent{
		ID:     id,
		Kind:   kind,
		Pos:    w.Layout.HexToWorld(cell),
		Cell:   cell,
		State:  component.Idle,
		Radius: radius,
		Speed:  speed,
	}
	w.Agents[id] = a
	return a, nil
}

// Agent returns the agent with the given id, or nil.
func (w *World) Agent(id component.AgentID) *component.Agent {
	return w.Agents[id]
}

// SortedIDs returns all agent ids in ascending order.
func (w *World) SortedIDs() []component.AgentID {
	ids := make([]component.AgentID, 0, len(w.Agents))
	for id := range w.Agents {
		ids = append(ids, id)
	}
	SortIDs(ids)
	return ids
}

// OrderedMovers returns ids of agents holding an order, ascending.
func (w *World) OrderedMovers() []component.AgentID {
	ids := make([]component.AgentID, 0, len(w.Orders))
	for id := range w.Orders {
		ids = append(ids, id)
	}
	SortIDs(ids)
	return ids
}

// IsAssignable reports whether id may claim h as a destination.
func (w *World) IsAssignable(h hexmap.Hex, id component.AgentID) bool {
	return w.Map.IsPassable(h) && w.Ledger.IsFreeFor(h, id)
}

// SortIDs sorts ids ascending in place.
func SortIDs(ids []component.AgentID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
