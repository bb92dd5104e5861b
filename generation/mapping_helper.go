package generation

import (
	"ebiten-dungeon/grid"
)

// Wall connection bits used for box drawing walls
const (
	WallConnectTop    = 1
	WallConnectRight  = 2
	WallConnectBottom = 4
	WallConnectLeft   = 8
)

// WallGlyphs maps a wall connection mask to its box drawing character.
// Top is the Up direction, which renderers draw at the top of the screen.
var WallGlyphs = map[int]rune{
	0:  '■', // isolated
	1:  '│', // top only
	2:  '─', // right only
	3:  '└', // top and right
	4:  '│', // bottom only
	5:  '│', // top and bottom
	6:  '┌', // right and bottom
	7:  '├', // all but left
	8:  '─', // left only
	9:  '┘', // top and left
	10: '─', // left and right
	11: '┴', // all but bottom
	12: '┐', // left and bottom
	13: '┤', // all but right
	14: '┬', // all but top
	15: '┼', // all four
}

// DeriveWalls returns every cell that is not floor but touches floor in one
// of the four cardinal directions. Diagonal neighbours never become walls.
func DeriveWalls(floor *grid.CellSet) *grid.CellSet {
	walls := grid.NewCellSet()

	floor.Each(func(c grid.Cell) {
		for _, dir := range grid.FourDirections {
			neighbour := c.Add(dir)
			if !floor.Has(neighbour) {
				walls.Add(neighbour)
			}
		}
	})

	return walls
}

// WallMask computes which cardinal neighbours of a wall cell are walls too
func WallMask(walls *grid.CellSet, c grid.Cell) int {
	mask := 0

	if walls.Has(c.Add(grid.Up)) {
		mask |= WallConnectTop
	}
	if walls.Has(c.Add(grid.Right)) {
		mask |= WallConnectRight
	}
	if walls.Has(c.Add(grid.Down)) {
		mask |= WallConnectBottom
	}
	if walls.Has(c.Add(grid.Left)) {
		mask |= WallConnectLeft
	}

	return mask
}

// WallGlyph returns the box drawing character for a wall cell
func WallGlyph(walls *grid.CellSet, c grid.Cell) rune {
	return WallGlyphs[WallMask(walls, c)]
}
