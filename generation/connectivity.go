package generation

import (
	"github.com/zyedidia/generic/mapset"

	"ebiten-dungeon/grid"
)

// reachableFrom flood fills cells from start over cardinal neighbours
func reachableFrom(cells *grid.CellSet, start grid.Cell) mapset.Set[grid.Cell] {
	visited := mapset.New[grid.Cell]()
	if !cells.Has(start) {
		return visited
	}

	queue := []grid.Cell{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range grid.FourDirections {
			next := current.Add(dir)
			if cells.Has(next) && !visited.Has(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}

	return visited
}

// CountComponents returns how many 4-connected pieces the floor falls into.
// A fully connected dungeon has exactly one.
func CountComponents(floor *grid.CellSet) int {
	seen := mapset.New[grid.Cell]()
	components := 0

	floor.Each(func(c grid.Cell) {
		if seen.Has(c) {
			return
		}
		components++
		reachableFrom(floor, c).Each(func(r grid.Cell) {
			seen.Put(r)
		})
	})

	return components
}
