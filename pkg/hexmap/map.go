// pkg/hexmap/map.go
package hexmap

// Tile is a single board cell.
type Tile struct {
	Passable bool
}

// HexMap is a hexagon-shaped board of the given radius around Origin.
type HexMap struct {
	Tiles  map[Hex]Tile
	Radius int
}

// NewHexMap creates a fully passable board.
func NewHexMap(radius int) *HexMap {
	tiles := make(map[Hex]Tile)
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			tiles[Hex{q, r}] = Tile{Passable: true}
		}
	}
	return &HexMap{
		Tiles:  tiles,
		Radius: radius,
	}
}

// Contains reports whether h is on the board.
func (hm *HexMap) Contains(h Hex) bool {
	_, ok := hm.Tiles[h]
	return ok
}

// IsPassable reports whether h is on the board and free of rock.
func (hm *HexMap) IsPassable(h Hex) bool {
	t, ok := hm.Tiles[h]
	return ok && t.Passable
}

// SetPassable toggles a tile. Cells off the board are ignored.
func (hm *HexMap) SetPassable(h Hex, passable bool) {
	if _, ok := hm.Tiles[h]; ok {
		hm.Tiles[h] = Tile{Passable: passable}
	}
}

// Hexes returns every board cell in spiral order from Origin.
func (hm *HexMap) Hexes() []Hex {
	return Spiral(Origin, hm.Radius)
}

// Rocks returns the impassable cells in spiral order.
func (hm *HexMap) Rocks() []Hex {
	var out []Hex
	for _, h := range hm.Hexes() {
		if !hm.Tiles[h].Passable {
			out = append(out, h)
		}
	}
	return out
}
