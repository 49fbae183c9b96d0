// internal/system/probe.go
package system

import (
	"hex-colony/internal/component"
	"hex-colony/internal/entity"
	"hex-colony/pkg/physics"

	"github.com/paulmach/orb"
)

// Probe is the shape-cast capability the transit system consumes.
type Probe interface {
	Cast(origin, dir orb.Point, maxDist float64, exclude map[component.BodyID]struct{}) (component.Hit, bool)
}

// WorldBodies exposes agents and rock cells of a world as collision bodies.
// Agents come first in id order, then rocks in spiral order.
type WorldBodies struct {
	world *entity.World
	rocks []physics.Body
}

// NewWorldBodies snapshots the rock layout; agents are read live on every call.
func NewWorldBodies(w *entity.World, rockRadius float64) *WorldBodies {
	wb := &WorldBodies{world: w}
	if rockRadius > 0 {
		for _, h := range w.Map.Rocks() {
			wb.rocks = append(wb.rocks, physics.Body{
				ID:     component.RockBodyID(h),
				Center: w.Layout.HexToWorld(h),
				Radius: rockRadius,
			})
		}
	}
	return wb
}

func (wb *WorldBodies) Bodies() []physics.Body {
	w := wb.world
	bodies := make([]physics.Body, 0, len(w.Agents)+len(wb.rocks))
	for _, id := range w.SortedIDs() {
		a := w.Agents[id]
		bodies = append(bodies, physics.Body{
			ID:     component.AgentBodyID(id),
			Center: a.Pos,
			Radius: a.Radius,
		})
	}
	return append(bodies, wb.rocks...)
}

// NewWorldProbe builds the default circle-world probe over w.
func NewWorldProbe(w *entity.World, castRadius, rockRadius float64) *physics.World {
	return physics.NewWorld(NewWorldBodies(w, rockRadius), castRadius)
}
