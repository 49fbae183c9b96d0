// pkg/hexmap/layout.go
package hexmap

import (
	"math"

	"github.com/paulmach/orb"
)

// Sqrt3 is used by the pointy-top layout math.
const Sqrt3 = 1.7320508075688772935274463415059

// Layout maps cells to world space using the pointy-top orientation.
// Origin is the world point of Hex{0, 0}; Size is the center-to-corner radius.
type Layout struct {
	Size   float64
	Origin orb.Point
}

// NewLayout creates a layout centered at origin.
func NewLayout(size float64, origin orb.Point) Layout {
	return Layout{Size: size, Origin: origin}
}

// HexToWorld returns the world-space center of h.
func (l Layout) HexToWorld(h Hex) orb.Point {
	x := l.Size * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	y := l.Size * (3.0 / 2.0 * float64(h.R))
	return orb.Point{l.Origin.X() + x, l.Origin.Y() + y}
}

// WorldToHex returns the cell containing p.
func (l Layout) WorldToHex(p orb.Point) Hex {
	x := p.X() - l.Origin.X()
	y := p.Y() - l.Origin.Y()
	q := (Sqrt3/3*x - 1.0/3*y) / l.Size
	r := (2.0 / 3 * y) / l.Size
	return roundAxial(q, r)
}

// InnerRadius is the distance from a cell center to the middle of an edge.
func (l Layout) InnerRadius() float64 {
	return l.Size * Sqrt3 / 2
}

// Corners returns the 6 corner points of h, clockwise from the top-right corner.
func (l Layout) Corners(h Hex) [6]orb.Point {
	c := l.HexToWorld(h)
	var out [6]orb.Point
	for i := 0; i < 6; i++ {
		angle := math.Pi / 180 * (60*float64(i) - 30)
		out[i] = orb.Point{c.X() + l.Size*math.Cos(angle), c.Y() + l.Size*math.Sin(angle)}
	}
	return out
}

// roundAxial snaps fractional axial coordinates to the nearest cell. The implicit
// third coordinate s = -q-r is rounded too, and whichever of the three drifted most
// is recomputed from the other two so that q+r+s stays zero.
func roundAxial(q, r float64) Hex {
	s := -q - r
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)
	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case ds > dr:
		// s is dropped anyway.
	default:
		rr = -rq - rs
	}
	return Hex{Q: int(rq), R: int(rr)}
}
