package generation

import (
	"ebiten-dungeon/grid"
)

// Corridor is the path carved between two room centres
type Corridor struct {
	From, To grid.Cell
	Cells    *grid.CellSet
}

// CreateCorridor carves an L shaped path from one cell to another, moving
// vertically first and then horizontally. The path holds from, to and every
// cell between them.
func CreateCorridor(from, to grid.Cell) *grid.CellSet {
	path := grid.NewCellSet(from)
	position := from

	for position.Y != to.Y {
		if to.Y > position.Y {
			position = position.Add(grid.Up)
		} else {
			position = position.Add(grid.Down)
		}
		path.Add(position)
	}

	for position.X != to.X {
		if to.X > position.X {
			position = position.Add(grid.Right)
		} else {
			position = position.Add(grid.Left)
		}
		path.Add(position)
	}

	return path
}

// ConnectRooms chains room centres together, starting from a random centre
// and always walking to the closest one not visited yet. N centres give N-1
// corridors. This is a greedy chain and not a minimum spanning tree.
// The centers slice is left untouched.
func ConnectRooms(centers []grid.Cell, rng grid.Rand) []Corridor {
	if len(centers) == 0 {
		return nil
	}

	pool := make([]grid.Cell, len(centers))
	copy(pool, centers)

	start := rng.Intn(len(pool))
	current := pool[start]
	pool = append(pool[:start], pool[start+1:]...)

	corridors := make([]Corridor, 0, len(pool))
	for len(pool) > 0 {
		closest := findClosest(current, pool)
		next := pool[closest]
		pool = append(pool[:closest], pool[closest+1:]...)

		corridors = append(corridors, Corridor{
			From:  current,
			To:    next,
			Cells: CreateCorridor(current, next),
		})
		current = next
	}

	return corridors
}

// findClosest returns the index of the cell nearest to from.
// On a tie the earlier cell wins.
func findClosest(from grid.Cell, cells []grid.Cell) int {
	best := 0
	bestDist := from.DistanceSq(cells[0])

	for i := 1; i < len(cells); i++ {
		if d := from.DistanceSq(cells[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best
}

// CorridorCells returns every cell of every corridor
func CorridorCells(corridors []Corridor) *grid.CellSet {
	cells := grid.NewCellSet()
	for _, c := range corridors {
		cells.Union(c.Cells)
	}
	return cells
}
