// internal/system/selection.go
package system

import (
	"hex-colony/internal/component"
	"hex-colony/internal/entity"
)

// SelectionSystem owns the SelectionSet. Selecting an idle movable agent moves it to
// Selected; deselecting it moves it back to Idle. Other states are left alone, and a
// Queen may be selected for highlighting but never leaves Idle.
type SelectionSystem struct {
	world *entity.World
	ids   map[component.AgentID]struct{}
}

func NewSelectionSystem(w *entity.World) *SelectionSystem {
	return &SelectionSystem{
		world: w,
		ids:   make(map[component.AgentID]struct{}),
	}
}

// Replace makes ids the whole selection. Unknown ids are ignored.
func (s *SelectionSystem) Replace(ids []component.AgentID) {
	s.Clear()
	for _, id := range ids {
		s.add(id)
	}
}

// Toggle flips membership of each id.
func (s *SelectionSystem) Toggle(ids []component.AgentID) {
	for _, id := range ids {
		if s.Contains(id) {
			s.remove(id)
		} else {
			s.add(id)
		}
	}
}

// Clear empties the selection.
func (s *SelectionSystem) Clear() {
	for _, id := range s.IDs() {
		s.remove(id)
	}
}

func (s *SelectionSystem) Contains(id component.AgentID) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns the selection in ascending id order.
func (s *SelectionSystem) IDs() []component.AgentID {
	out := make([]component.AgentID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	entity.SortIDs(out)
	return out
}

func (s *SelectionSystem) Len() int {
	return len(s.ids)
}

func (s *SelectionSystem) add(id component.AgentID) {
	a := s.world.Agent(id)
	if a == nil {
		return
	}
	s.ids[id] = struct{}{}
	if a.Kind.Movable() && a.State == component.Idle {
		a.State = component.Selected
	}
}

func (s *SelectionSystem) remove(id component.AgentID) {
	delete(s.ids, id)
	if a := s.world.Agent(id); a != nil && a.State == component.Selected {
		a.State = component.Idle
	}
}

// Resync puts members that are idle again after an order ended back into Selected,
// so an agent's state agrees with its membership.
func (s *SelectionSystem) Resync() {
	for _, id := range s.IDs() {
		a := s.world.Agent(id)
		if a == nil {
			delete(s.ids, id)
			continue
		}
		if _, moving := s.world.Orders[id]; moving {
			continue
		}
		if a.Kind.Movable() && a.State == component.Idle {
			a.State = component.Selected
		}
	}
}
