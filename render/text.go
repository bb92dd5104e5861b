package render

import (
	"strings"

	"ebiten-dungeon/grid"
)

// String renders the canvas as text, one line per row with the top of the
// dungeon first
func (c *Canvas) String() string {
	var b strings.Builder
	lastRow := 0

	c.Each(func(col, row int, cell grid.Cell) {
		if row != lastRow {
			b.WriteByte('\n')
			lastRow = row
		}
		r, _ := c.Cell(cell)
		b.WriteRune(r)
	})

	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	return b.String()
}
