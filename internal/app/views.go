// internal/app/views.go
package app

import (
	"hex-colony/internal/component"
	"hex-colony/pkg/hexmap"
	"hex-colony/pkg/utils"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// AgentView is the read-only per-agent data the front end draws.
type AgentView struct {
	ID       component.AgentID
	Kind     component.Kind
	Pos      orb.Point
	Cell     hexmap.Hex
	State    component.AgentState
	Radius   float64
	Selected bool
	Dest     *hexmap.Hex
}

// Agents returns a view of every agent in id order.
func (c *Colony) Agents() []AgentView {
	w := c.World
	out := make([]AgentView, 0, len(w.Agents))
	for _, id := range w.SortedIDs() {
		a := w.Agents[id]
		v := AgentView{
			ID:       a.ID,
			Kind:     a.Kind,
			Pos:      a.Pos,
			Cell:     a.Cell,
			State:    a.State,
			Radius:   a.Radius,
			Selected: c.Selection.Contains(id),
		}
		if o, ok := w.Orders[id]; ok {
			dest := o.To
			v.Dest = &dest
		}
		out = append(out, v)
	}
	return out
}

// AgentsAt returns agents whose current position lies inside cell h.
func (c *Colony) AgentsAt(h hexmap.Hex) []component.AgentID {
	var out []component.AgentID
	for _, id := range c.World.SortedIDs() {
		if c.World.Layout.WorldToHex(c.World.Agents[id].Pos) == h {
			out = append(out, id)
		}
	}
	return out
}

// AgentsInBox returns agents whose position is within pad of the box b,
// so a drag that touches an agent's cell picks it up.
func (c *Colony) AgentsInBox(b orb.Bound, pad float64) []component.AgentID {
	var out []component.AgentID
	for _, id := range c.World.SortedIDs() {
		p := c.World.Agents[id].Pos
		closest := orb.Point{
			utils.Clamp(p.X(), b.Min.X(), b.Max.X()),
			utils.Clamp(p.Y(), b.Min.Y(), b.Max.Y()),
		}
		if planar.Distance(p, closest) < pad {
			out = append(out, id)
		}
	}
	return out
}
