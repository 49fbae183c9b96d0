// pkg/physics/world.go
package physics

import (
	"math"

	"hex-colony/internal/component"

	"github.com/paulmach/orb"
)

// Body is a static circle as seen by a cast.
type Body struct {
	ID     component.BodyID
	Center orb.Point
	Radius float64
}

// Source supplies the bodies present at the time of a cast, in a stable order.
type Source interface {
	Bodies() []Body
}

// World answers circle casts against the bodies of its source.
// Every cast sweeps a circle of CastRadius.
type World struct {
	src        Source
	CastRadius float64
}

func NewWorld(src Source, castRadius float64) *World {
	return &World{src: src, CastRadius: castRadius}
}

// Cast sweeps a circle from origin along dir for at most maxDist and returns the
// first body it touches. Bodies already overlapping the circle only count when the
// sweep moves into them. Ties go to the body listed first by the source.
func (w *World) Cast(origin, dir orb.Point, maxDist float64, exclude map[component.BodyID]struct{}) (component.Hit, bool) {
	d, ok := normalize(dir)
	if !ok || maxDist <= 0 {
		return component.Hit{}, false
	}

	var (
		best  component.Hit
		found bool
	)
	for _, b := range w.src.Bodies() {
		if _, skip := exclude[b.ID]; skip {
			continue
		}
		t, hit := sweepCircle(origin, d, w.CastRadius+b.Radius, b.Center)
		if !hit || t > maxDist {
			continue
		}
		if !found || t < best.Distance {
			at := orb.Point{origin.X() + d.X()*t, origin.Y() + d.Y()*t}
			best = component.Hit{
				Distance: t,
				Body:     b.ID,
				Point:    contactPoint(at, b.Center, w.CastRadius),
			}
			found = true
		}
	}
	return best, found
}

// sweepCircle returns the travel t >= 0 at which a point moving along unit d from o
// comes within r of c.
func sweepCircle(o, d orb.Point, r float64, c orb.Point) (float64, bool) {
	mx, my := o.X()-c.X(), o.Y()-c.Y()
	b := mx*d.X() + my*d.Y()
	cc := mx*mx + my*my - r*r
	if cc <= 0 {
		// Already touching: blocked only when heading inwards.
		if b < 0 {
			return 0, true
		}
		return 0, false
	}
	if b >= 0 {
		return 0, false
	}
	disc := b*b - cc
	if disc < 0 {
		return 0, false
	}
	return -b - math.Sqrt(disc), true
}

func normalize(v orb.Point) (orb.Point, bool) {
	l := math.Hypot(v.X(), v.Y())
	if l == 0 {
		return orb.Point{}, false
	}
	return orb.Point{v.X() / l, v.Y() / l}, true
}

func contactPoint(at, center orb.Point, radius float64) orb.Point {
	n, ok := normalize(orb.Point{center.X() - at.X(), center.Y() - at.Y()})
	if !ok {
		return at
	}
	return orb.Point{at.X() + n.X()*radius, at.Y() + n.Y()*radius}
}
