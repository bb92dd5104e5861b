package generation

import (
	"ebiten-dungeon/config"
	"ebiten-dungeon/grid"
)

// RoomShaper turns a partition leaf into room floor.
// It returns the room centre and the floor cells; the centre is always part
// of a non-empty floor.
type RoomShaper interface {
	Shape(bounds grid.Rect, rng grid.Rand) (center grid.Cell, floor *grid.CellSet)
}

// NewRoomShaper picks the shaper the configuration asks for
func NewRoomShaper(cfg config.Dungeon) RoomShaper {
	if cfg.UseRandomWalk {
		return OrganicShaper{
			Offset:                     cfg.RoomOffset,
			Iterations:                 cfg.RandomWalk.Iterations,
			Steps:                      cfg.RandomWalk.Steps,
			StartRandomlyEachIteration: cfg.RandomWalk.StartRandomlyEachIteration,
		}
	}
	return RectangularShaper{Offset: cfg.RoomOffset}
}

// RectangularShaper fills the leaf inset by Offset on every side
type RectangularShaper struct {
	Offset int
}

// Shape implements RoomShaper. It draws nothing from rng.
func (s RectangularShaper) Shape(bounds grid.Rect, _ grid.Rand) (grid.Cell, *grid.CellSet) {
	floor := grid.NewCellSet()

	for x := bounds.MinX() + s.Offset; x < bounds.MaxX()-s.Offset; x++ {
		for y := bounds.MinY() + s.Offset; y < bounds.MaxY()-s.Offset; y++ {
			floor.Add(grid.Cell{X: x, Y: y})
		}
	}

	// With an odd inset size of one cell the rounded centre may land on the
	// inset border, pull it back onto the floor
	center := bounds.RoundedCenter()
	if floor.Len() > 0 {
		center.X = clamp(center.X, bounds.MinX()+s.Offset, bounds.MaxX()-s.Offset-1)
		center.Y = clamp(center.Y, bounds.MinY()+s.Offset, bounds.MaxY()-s.Offset-1)
	}

	return center, floor
}

// OrganicShaper grows a blob of random walks from the leaf centre
type OrganicShaper struct {
	Offset     int
	Iterations int
	Steps      int

	// StartRandomlyEachIteration starts every walk after the first from a
	// random cell already in the blob instead of the centre
	StartRandomlyEachIteration bool
}

// Shape implements RoomShaper.
//
// The walks are clipped to the leaf inset by Offset, and whatever the clip
// cut off from the centre is dropped so the room stays in one piece.
func (s OrganicShaper) Shape(bounds grid.Rect, rng grid.Rand) (grid.Cell, *grid.CellSet) {
	center := bounds.RoundedCenter()
	current := center
	blob := grid.NewCellSet()

	for i := 0; i < s.Iterations; i++ {
		blob.Union(grid.RandomWalk(current, s.Steps, rng))
		if s.StartRandomlyEachIteration {
			current = blob.At(rng.Intn(blob.Len()))
		}
	}

	minX, maxX := bounds.MinX()+s.Offset, bounds.MaxX()-s.Offset
	minY, maxY := bounds.MinY()+s.Offset, bounds.MaxY()-s.Offset
	clipped := blob.Filter(func(c grid.Cell) bool {
		return c.X >= minX && c.X <= maxX && c.Y >= minY && c.Y <= maxY
	})

	if !clipped.Has(center) {
		return center, grid.NewCellSet()
	}

	reachable := reachableFrom(clipped, center)
	return center, clipped.Filter(reachable.Has)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
