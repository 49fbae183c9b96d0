// pkg/hexmap/rocks.go
package hexmap

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// RockParams controls GenerateRocks.
type RockParams struct {
	Seed      int64
	Threshold float64 // noise value in [0,1] above which a cell becomes rock
	Frequency float64 // noise samples per cell step
	Octaves   int
	KeepClear int // no rock within this distance of Origin
}

// GenerateRocks marks cells impassable where layered simplex noise exceeds the threshold.
// The same seed always yields the same board.
func (hm *HexMap) GenerateRocks(p RockParams) int {
	noise := opensimplex.NewNormalized(p.Seed)
	octaves := p.Octaves
	if octaves < 1 {
		octaves = 1
	}

	count := 0
	for _, h := range hm.Hexes() {
		if h.Distance(Origin) <= p.KeepClear {
			continue
		}
		// Sample on the axial lattice skewed into a regular grid.
		x := float64(h.Q) + float64(h.R)/2
		y := float64(h.R) * Sqrt3 / 2
		if octaveNoise(noise, x, y, octaves, p.Frequency, 0.5) > p.Threshold {
			hm.SetPassable(h, false)
			count++
		}
	}
	return count
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
