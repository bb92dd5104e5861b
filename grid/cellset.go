package grid

import (
	"github.com/zyedidia/generic/mapset"
)

// CellSet is a set of cells that remembers insertion order.
//
// Generation picks "the i-th cell" of a set in several places, so iteration
// order has to be stable for a seeded run to be reproducible.
type CellSet struct {
	members mapset.Set[Cell]
	order   []Cell
}

// NewCellSet creates a set holding the given cells
func NewCellSet(cells ...Cell) *CellSet {
	s := &CellSet{members: mapset.New[Cell]()}
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add inserts c and reports whether it was new
func (s *CellSet) Add(c Cell) bool {
	if s.members.Has(c) {
		return false
	}
	s.members.Put(c)
	s.order = append(s.order, c)
	return true
}

// Has reports whether c is in the set
func (s *CellSet) Has(c Cell) bool {
	return s.members.Has(c)
}

// Len returns the number of cells
func (s *CellSet) Len() int {
	return len(s.order)
}

// At returns the i-th cell in insertion order
func (s *CellSet) At(i int) Cell {
	return s.order[i]
}

// Cells returns a copy of the cells in insertion order
func (s *CellSet) Cells() []Cell {
	out := make([]Cell, len(s.order))
	copy(out, s.order)
	return out
}

// Each calls fn for every cell in insertion order
func (s *CellSet) Each(fn func(Cell)) {
	for _, c := range s.order {
		fn(c)
	}
}

// Union adds every cell of other to s
func (s *CellSet) Union(other *CellSet) {
	if other == nil {
		return
	}
	for _, c := range other.order {
		s.Add(c)
	}
}

// Filter returns a new set with the cells for which keep returns true
func (s *CellSet) Filter(keep func(Cell) bool) *CellSet {
	out := NewCellSet()
	for _, c := range s.order {
		if keep(c) {
			out.Add(c)
		}
	}
	return out
}

// Bounds returns the smallest rectangle holding every cell.
// An empty set yields an empty Rect.
func (s *CellSet) Bounds() Rect {
	if len(s.order) == 0 {
		return Rect{}
	}
	minX, minY := s.order[0].X, s.order[0].Y
	maxX, maxY := minX, minY
	for _, c := range s.order[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
		maxX = max(maxX, c.X)
		maxY = max(maxY, c.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
}
