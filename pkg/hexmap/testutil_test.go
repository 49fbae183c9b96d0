package hexmap

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

func angle(p orb.Point) float64 {
	a := math.Atan2(p.Y(), p.X())
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func dist(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}
