package generation

import (
	"ebiten-dungeon/grid"
)

// Partition splits region into leaf rectangles using binary space
// partitioning.
//
// Regions are processed breadth first. A region smaller than the minimums in
// either dimension is dropped. Otherwise a coin flip decides whether to try a
// horizontal or a vertical cut first; a cut along an axis needs at least
// twice the minimum on that axis. When neither cut is possible the region
// becomes a leaf. Leaves come out in queue order.
func Partition(region grid.Rect, minWidth, minHeight int, rng grid.Rand) []grid.Rect {
	queue := []grid.Rect{region}
	var leaves []grid.Rect

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		// Too small to hold a room
		if node.Width < minWidth || node.Height < minHeight {
			continue
		}

		canSplitH := node.Height >= 2*minHeight
		canSplitV := node.Width >= 2*minWidth

		if rng.Float64() < 0.5 {
			switch {
			case canSplitH:
				queue = append(queue, splitHorizontally(node, rng)...)
			case canSplitV:
				queue = append(queue, splitVertically(node, rng)...)
			default:
				leaves = append(leaves, node)
			}
		} else {
			switch {
			case canSplitV:
				queue = append(queue, splitVertically(node, rng)...)
			case canSplitH:
				queue = append(queue, splitHorizontally(node, rng)...)
			default:
				leaves = append(leaves, node)
			}
		}
	}

	return leaves
}

// splitHorizontally cuts node into a lower and an upper part at a random row
func splitHorizontally(node grid.Rect, rng grid.Rand) []grid.Rect {
	split := 1 + rng.Intn(node.Height-1)

	bottom := grid.Rect{X: node.X, Y: node.Y, Width: node.Width, Height: split}
	top := grid.Rect{X: node.X, Y: node.Y + split, Width: node.Width, Height: node.Height - split}

	return []grid.Rect{bottom, top}
}

// splitVertically cuts node into a left and a right part at a random column
func splitVertically(node grid.Rect, rng grid.Rand) []grid.Rect {
	split := 1 + rng.Intn(node.Width-1)

	left := grid.Rect{X: node.X, Y: node.Y, Width: split, Height: node.Height}
	right := grid.Rect{X: node.X + split, Y: node.Y, Width: node.Width - split, Height: node.Height}

	return []grid.Rect{left, right}
}
