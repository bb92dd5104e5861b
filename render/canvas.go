// Package render draws generated dungeons for preview: as text, in a
// terminal or in the ebiten viewer. Canvas is a TileRenderer and a Spawner at
// once, so one value sees both the tiles and the room content.
package render

import (
	"math/rand"

	"ebiten-dungeon/generation"
	"ebiten-dungeon/grid"
	"ebiten-dungeon/spawners"
)

// DecorationChance is the probability that a floor cell gets a decoration
const DecorationChance = 0.05

// Layer is the topmost thing drawn on a cell
type Layer int

const (
	LayerEmpty Layer = iota
	LayerFloor
	LayerDecoration
	LayerWall
	LayerFeature
	LayerObject
	LayerEnemy
)

// featureGlyphs holds the characters of known centre features
var featureGlyphs = map[string]rune{
	"player":         '@',
	"exit":           '>',
	"treasure_chest": '$',
	"merchant":       'M',
}

// Canvas collects everything painted and spawned for one dungeon
type Canvas struct {
	floor       *grid.CellSet
	walls       *grid.CellSet
	decorations *grid.CellSet
	placements  map[grid.Cell]spawners.Placement

	// decorations draw from their own source so they never disturb generation
	rng *rand.Rand
}

// NewCanvas creates an empty canvas. seed drives floor decorations only.
func NewCanvas(seed int64) *Canvas {
	c := &Canvas{rng: rand.New(rand.NewSource(seed))}
	c.Clear()
	return c
}

// PaintFloor implements generation.TileRenderer
func (c *Canvas) PaintFloor(floor *grid.CellSet) {
	c.floor.Union(floor)
}

// PaintDecorations implements generation.TileRenderer
func (c *Canvas) PaintDecorations(floor *grid.CellSet) {
	floor.Each(func(cell grid.Cell) {
		if c.rng.Float64() < DecorationChance {
			c.decorations.Add(cell)
		}
	})
}

// PaintWall implements generation.TileRenderer
func (c *Canvas) PaintWall(cell grid.Cell) {
	c.walls.Add(cell)
}

// Spawn implements spawners.Spawner
func (c *Canvas) Spawn(p spawners.Placement) {
	for _, cell := range p.Cells {
		c.placements[cell] = p
	}
}

// Clear implements both generation.TileRenderer and spawners.Spawner
func (c *Canvas) Clear() {
	c.floor = grid.NewCellSet()
	c.walls = grid.NewCellSet()
	c.decorations = grid.NewCellSet()
	c.placements = make(map[grid.Cell]spawners.Placement)
}

// Extent returns the rectangle holding every painted cell
func (c *Canvas) Extent() grid.Rect {
	all := grid.NewCellSet()
	all.Union(c.floor)
	all.Union(c.walls)
	return all.Bounds()
}

// Cell returns the glyph and layer to draw at cell
func (c *Canvas) Cell(cell grid.Cell) (rune, Layer) {
	if p, ok := c.placements[cell]; ok {
		switch p.Kind {
		case spawners.KindFeature:
			if r, ok := featureGlyphs[p.Name]; ok {
				return r, LayerFeature
			}
			return '*', LayerFeature
		case spawners.KindEnemy:
			return '&', LayerEnemy
		default:
			return 'o', LayerObject
		}
	}

	switch {
	case c.decorations.Has(cell):
		return ',', LayerDecoration
	case c.floor.Has(cell):
		return '.', LayerFloor
	case c.walls.Has(cell):
		return generation.WallGlyph(c.walls, cell), LayerWall
	default:
		return ' ', LayerEmpty
	}
}

// Each calls fn for every cell of the extent in screen order: rows from the
// top of the dungeon down, columns left to right. col and row start at zero.
func (c *Canvas) Each(fn func(col, row int, cell grid.Cell)) {
	extent := c.Extent()
	for row := 0; row < extent.Height; row++ {
		y := extent.MaxY() - 1 - row
		for col := 0; col < extent.Width; col++ {
			fn(col, row, grid.Cell{X: extent.MinX() + col, Y: y})
		}
	}
}
