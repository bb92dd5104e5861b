package grid

import "math"

// Rect is an axis-aligned block of cells. Max is exclusive.
type Rect struct {
	X, Y, Width, Height int
}

// MinX returns the first column
func (r Rect) MinX() int { return r.X }

// MinY returns the first row
func (r Rect) MinY() int { return r.Y }

// MaxX returns the column just past the rectangle
func (r Rect) MaxX() int { return r.X + r.Width }

// MaxY returns the row just past the rectangle
func (r Rect) MaxY() int { return r.Y + r.Height }

// Center returns the geometric centre of the rectangle
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.Width)/2, float64(r.Y) + float64(r.Height)/2
}

// RoundedCenter rounds the centre to the nearest cell, halves going to the
// even neighbour.
func (r Rect) RoundedCenter() Cell {
	cx, cy := r.Center()
	return Cell{X: int(math.RoundToEven(cx)), Y: int(math.RoundToEven(cy))}
}

// Contains reports whether c lies inside the rectangle
func (r Rect) Contains(c Cell) bool {
	return c.X >= r.X && c.X < r.MaxX() && c.Y >= r.Y && c.Y < r.MaxY()
}

// Overlaps reports whether the two rectangles share at least one cell
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Empty reports whether the rectangle has no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
