// pkg/hexmap/ledger.go
package hexmap

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrCellTaken is returned when a cell is already claimed by someone else.
	ErrCellTaken = errors.New("hexmap: cell already claimed")
	// ErrNotReserved is returned by CommitMove when the destination is not reserved by the mover.
	ErrNotReserved = errors.New("hexmap: destination not reserved by mover")
	// ErrNotOccupant is returned by CommitMove when the source is not occupied by the mover.
	ErrNotOccupant = errors.New("hexmap: source not occupied by mover")
)

// Claim is a single entry of the ledger.
// Reserved claims belong to outstanding movement orders; the rest are authoritative occupants.
type Claim[K comparable] struct {
	Owner    K
	Reserved bool
}

// Ledger records which owner holds each cell. A cell has at most one claim.
// All mutation goes through Occupy, Reserve, Release and CommitMove.
type Ledger[K comparable] struct {
	cells map[Hex]Claim[K]
}

func NewLedger[K comparable]() *Ledger[K] {
	return &Ledger[K]{cells: make(map[Hex]Claim[K])}
}

// Claim returns the claim on h, if any.
func (l *Ledger[K]) Claim(h Hex) (Claim[K], bool) {
	c, ok := l.cells[h]
	return c, ok
}

// IsOccupied reports whether h has an authoritative occupant.
func (l *Ledger[K]) IsOccupied(h Hex) bool {
	c, ok := l.cells[h]
	return ok && !c.Reserved
}

// IsReserved reports whether h is held by an outstanding reservation.
func (l *Ledger[K]) IsReserved(h Hex) bool {
	c, ok := l.cells[h]
	return ok && c.Reserved
}

// IsFreeFor reports whether owner may claim h: it is unclaimed or already owner's.
func (l *Ledger[K]) IsFreeFor(h Hex, owner K) bool {
	c, ok := l.cells[h]
	return !ok || c.Owner == owner
}

// Occupant returns the authoritative occupant of h.
func (l *Ledger[K]) Occupant(h Hex) (K, bool) {
	c, ok := l.cells[h]
	if !ok || c.Reserved {
		var zero K
		return zero, false
	}
	return c.Owner, true
}

// Occupy places owner on h as authoritative occupant. Used for initial placement only.
func (l *Ledger[K]) Occupy(h Hex, owner K) error {
	if c, ok := l.cells[h]; ok {
		if c.Owner == owner && !c.Reserved {
			return nil
		}
		return fmt.Errorf("occupy %v: %w", h, ErrCellTaken)
	}
	l.cells[h] = Claim[K]{Owner: owner}
	return nil
}

// Reserve claims h for owner. It is a single check-and-set: on conflict nothing changes.
// Reserving a cell the owner already holds is a no-op.
func (l *Ledger[K]) Reserve(h Hex, owner K) error {
	if c, ok := l.cells[h]; ok {
		if c.Owner == owner {
			return nil
		}
		return fmt.Errorf("reserve %v: %w", h, ErrCellTaken)
	}
	l.cells[h] = Claim[K]{Owner: owner, Reserved: true}
	return nil
}

// Release drops owner's claim on h. Claims held by anyone else are left untouched.
func (l *Ledger[K]) Release(h Hex, owner K) bool {
	c, ok := l.cells[h]
	if !ok || c.Owner != owner {
		return false
	}
	delete(l.cells, h)
	return true
}

// CommitMove turns owner's reservation on to into occupancy and frees from.
func (l *Ledger[K]) CommitMove(owner K, from, to Hex) error {
	dst, ok := l.cells[to]
	if !ok || dst.Owner != owner || !dst.Reserved {
		return fmt.Errorf("commit %v->%v: %w", from, to, ErrNotReserved)
	}
	src, ok := l.cells[from]
	if !ok || src.Owner != owner || src.Reserved {
		return fmt.Errorf("commit %v->%v: %w", from, to, ErrNotOccupant)
	}
	delete(l.cells, from)
	l.cells[to] = Claim[K]{Owner: owner}
	return nil
}

// Len returns the number of claimed cells.
func (l *Ledger[K]) Len() int {
	return len(l.cells)
}

// Cells returns all claimed cells sorted by (Q, R).
func (l *Ledger[K]) Cells() []Hex {
	out := make([]Hex, 0, len(l.cells))
	for h := range l.cells {
		out = append(out, h)
	}
	SortHexes(out)
	return out
}

// SortHexes orders cells by Q, then R.
func SortHexes(hexes []Hex) {
	sort.Slice(hexes, func(i, j int) bool {
		if hexes[i].Q != hexes[j].Q {
			return hexes[i].Q < hexes[j].Q
		}
		return hexes[i].R < hexes[j].R
	})
}
