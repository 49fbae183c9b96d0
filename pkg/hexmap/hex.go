// pkg/hexmap/hex.go
package hexmap

import (
	"fmt"

	"hex-colony/pkg/utils"
)

// Hex is a cell in axial coordinates (Q, R). The implicit cube coordinate is S = -Q-R.
type Hex struct {
	Q, R int
}

// Origin is the center cell of every board.
var Origin = Hex{}

// Direction indexes into NeighborDirections.
type Direction int

const (
	East Direction = iota
	SouthEast
	SouthWest
	West
	NorthWest
	NorthEast
)

// NeighborDirections defines the 6 unit offsets, starting from East and going clockwise
// on a y-down screen with the pointy-top layout. Ring and neighbor scans rely on this order.
var NeighborDirections = [6]Hex{
	{Q: 1, R: 0},  // E
	{Q: 0, R: 1},  // SE
	{Q: -1, R: 1}, // SW
	{Q: -1, R: 0}, // W
	{Q: 0, R: -1}, // NW
	{Q: 1, R: -1}, // NE
}

func (d Direction) String() string {
	return [...]string{"E", "SE", "SW", "W", "NW", "NE"}[d]
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d)", h.Q, h.R)
}

// Neighbor returns the adjacent hex in direction d.
func (h Hex) Neighbor(d Direction) Hex {
	return h.Add(NeighborDirections[d])
}

// Neighbors returns all 6 neighbors in NeighborDirections order.
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i, dir := range NeighborDirections {
		out[i] = h.Add(dir)
	}
	return out
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{
		Q: h.Q + other.Q,
		R: h.R + other.R,
	}
}

// Subtract возвращает разность двух гексов
func (h Hex) Subtract(other Hex) Hex {
	return Hex{
		Q: h.Q - other.Q,
		R: h.R - other.R,
	}
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{h.Q * factor, h.R * factor}
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	d := h.Subtract(to)
	return utils.Max3(utils.Abs(d.Q), utils.Abs(d.R), utils.Abs(d.S()))
}

// Lerp выполняет линейную интерполяцию между двумя гексами
func (h Hex) Lerp(b Hex, t float64) Hex {
	q := float64(h.Q)*(1-t) + float64(b.Q)*t
	r := float64(h.R)*(1-t) + float64(b.R)*t
	return roundAxial(q, r)
}

// LineTo возвращает гексы на прямой между двумя точками, включая обе.
func (h Hex) LineTo(end Hex) []Hex {
	n := h.Distance(end)
	if n == 0 {
		return []Hex{h}
	}
	results := make([]Hex, 0, n+1)
	for i := 0; i <= n; i++ {
		t := 1.0 / float64(n) * float64(i)
		results = append(results, h.Lerp(end, t))
	}
	return results
}

// Ring returns every cell at exactly radius steps from center. The walk starts at
// center+radius*East and proceeds clockwise, so the order is fixed for a given radius.
func Ring(center Hex, radius int) []Hex {
	if radius <= 0 {
		return []Hex{center}
	}
	out := make([]Hex, 0, 6*radius)
	cur := center.Add(NeighborDirections[East].Scale(radius))
	for side := 0; side < 6; side++ {
		step := NeighborDirections[(side+2)%6]
		for i := 0; i < radius; i++ {
			out = append(out, cur)
			cur = cur.Add(step)
		}
	}
	return out
}

// Spiral concatenates rings 0..maxRadius.
func Spiral(center Hex, maxRadius int) []Hex {
	if maxRadius < 0 {
		return nil
	}
	out := make([]Hex, 0, 1+3*maxRadius*(maxRadius+1))
	for r := 0; r <= maxRadius; r++ {
		out = append(out, Ring(center, r)...)
	}
	return out
}
