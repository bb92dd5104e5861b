package grid

// RandomWalk walks steps unit moves from start, choosing one of the four
// cardinal directions uniformly on every step. The returned set holds start
// and every visited cell.
func RandomWalk(start Cell, steps int, rng Rand) *CellSet {
	path := NewCellSet(start)
	current := start

	for i := 0; i < steps; i++ {
		current = current.Add(FourDirections[rng.Intn(len(FourDirections))])
		path.Add(current)
	}

	return path
}

// StraightWalk walks steps unit moves from start in a single direction
func StraightWalk(start Cell, steps int, dir Cell) *CellSet {
	path := NewCellSet(start)
	current := start

	for i := 0; i < steps; i++ {
		current = current.Add(dir)
		path.Add(current)
	}

	return path
}
