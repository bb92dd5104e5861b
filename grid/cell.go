package grid

// Cell is an integer grid coordinate
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Scale multiplies both components by n
func (c Cell) Scale(n int) Cell {
	return Cell{X: c.X * n, Y: c.Y * n}
}

// DistanceSq returns the squared Euclidean distance between two cells.
// Squared distances order points exactly like Euclidean ones.
func (c Cell) DistanceSq(o Cell) int {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return dx*dx + dy*dy
}

// Cardinal unit vectors. Y grows upwards, so Up is (0, 1).
var (
	Up    = Cell{X: 0, Y: 1}
	Right = Cell{X: 1, Y: 0}
	Down  = Cell{X: 0, Y: -1}
	Left  = Cell{X: -1, Y: 0}
)

// FourDirections lists the cardinal directions: top, right, bottom, left
var FourDirections = []Cell{Up, Right, Down, Left}

// EightDirections lists all eight neighbours clockwise starting at the top
var EightDirections = []Cell{
	{X: 0, Y: 1},   // top
	{X: 1, Y: 1},   // top-right
	{X: 1, Y: 0},   // right
	{X: 1, Y: -1},  // bottom-right
	{X: 0, Y: -1},  // bottom
	{X: -1, Y: -1}, // bottom-left
	{X: -1, Y: 0},  // left
	{X: -1, Y: 1},  // top-left
}
