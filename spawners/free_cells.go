package spawners

import (
	"github.com/zyedidia/generic/mapset"

	"ebiten-dungeon/grid"
)

// FreeCells is the ordered list of a room's floor cells still available for
// placement. It shrinks as placements consume cells.
type FreeCells struct {
	cells []grid.Cell
	index mapset.Set[grid.Cell]
}

// NewFreeCells creates the list from cells, dropping duplicates
func NewFreeCells(cells []grid.Cell) *FreeCells {
	f := &FreeCells{
		cells: make([]grid.Cell, 0, len(cells)),
		index: mapset.New[grid.Cell](),
	}
	for _, c := range cells {
		if f.index.Has(c) {
			continue
		}
		f.index.Put(c)
		f.cells = append(f.cells, c)
	}
	return f
}

// Len returns the number of free cells
func (f *FreeCells) Len() int {
	return len(f.cells)
}

// At returns the i-th free cell
func (f *FreeCells) At(i int) grid.Cell {
	return f.cells[i]
}

// Has reports whether c is free
func (f *FreeCells) Has(c grid.Cell) bool {
	return f.index.Has(c)
}

// HasAll reports whether every cell is free
func (f *FreeCells) HasAll(cells []grid.Cell) bool {
	for _, c := range cells {
		if !f.index.Has(c) {
			return false
		}
	}
	return true
}

// Remove takes c off the list, keeping the order of the remaining cells
func (f *FreeCells) Remove(c grid.Cell) bool {
	if !f.index.Has(c) {
		return false
	}
	f.index.Remove(c)
	for i, fc := range f.cells {
		if fc == c {
			f.cells = append(f.cells[:i], f.cells[i+1:]...)
			break
		}
	}
	return true
}

// Cells returns a copy of the free cells in order
func (f *FreeCells) Cells() []grid.Cell {
	out := make([]grid.Cell, len(f.cells))
	copy(out, f.cells)
	return out
}
