package population

import (
	"ebiten-dungeon/grid"
	"ebiten-dungeon/spawners"
)

// SpokeLength is how far the spokes kept clear of content reach from the room
// centre in each cardinal direction
const SpokeLength = 10

// Room is one room of the dungeon with everything population put into it
type Room struct {
	Center grid.Cell
	Bounds grid.Rect
	Role   Role

	// Floor holds the room's own floor cells, corridors excluded
	Floor *grid.CellSet

	// Free lists the floor cells still available for content
	Free *spawners.FreeCells

	// Feature is the fixed piece placed on the centre, empty if none
	Feature string

	// Placements lists everything spawned into the room, in spawn order
	Placements []spawners.Placement
}

// NewRoom creates an unassigned room. The free list starts as the floor minus
// the centre and the four spokes, so the paths out of the room stay walkable.
func NewRoom(center grid.Cell, bounds grid.Rect, floor *grid.CellSet) *Room {
	blocked := grid.NewCellSet(center)
	for _, dir := range grid.FourDirections {
		blocked.Union(grid.StraightWalk(center, SpokeLength, dir))
	}

	free := make([]grid.Cell, 0, floor.Len())
	floor.Each(func(c grid.Cell) {
		if !blocked.Has(c) {
			free = append(free, c)
		}
	})

	return &Room{
		Center: center,
		Bounds: bounds,
		Floor:  floor,
		Free:   spawners.NewFreeCells(free),
	}
}

// Owner returns the owner context handed to the placement engine
func (r *Room) Owner() spawners.Owner {
	return spawners.Owner{Center: r.Center, Role: r.Role.String()}
}

// Count returns how many placements of a kind the room received
func (r *Room) Count(kind spawners.Kind) int {
	n := 0
	for _, p := range r.Placements {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// roomSpawner records placements on the room before passing them on
type roomSpawner struct {
	room *Room
	next spawners.Spawner
}

func (s roomSpawner) Spawn(p spawners.Placement) {
	s.room.Placements = append(s.room.Placements, p)
	s.next.Spawn(p)
}

func (s roomSpawner) Clear() {
	s.room.Placements = nil
	s.next.Clear()
}
