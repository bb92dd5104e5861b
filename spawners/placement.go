package spawners

import (
	"log/slog"

	"ebiten-dungeon/data"
	"ebiten-dungeon/grid"
)

// Retry budgets. Every unit gets a first try plus this many retries.
const (
	RandomRetries   = 10
	NearWallRetries = 50
)

// nearWallThreshold is the counter value from which a cell hugs a boundary
const nearWallThreshold = 3

// rotations an enemy may face
var rotations = []int{0, -90, -180, -270}

// Engine chooses where room content goes and hands it to a Spawner.
// It draws every choice from rng, so the same seed gives the same layout.
type Engine struct {
	rng     grid.Rand
	spawner Spawner
}

// NewEngine creates a placement engine. A nil spawner drops placements.
func NewEngine(rng grid.Rand, spawner Spawner) *Engine {
	if spawner == nil {
		spawner = Discard
	}
	return &Engine{
		rng:     rng,
		spawner: spawner,
	}
}

// PlaceFeature spawns a fixed piece on cell without touching the free list.
// Room centres are never free, so features cannot collide with objects.
func (e *Engine) PlaceFeature(name string, cell grid.Cell, owner Owner) {
	e.spawner.Spawn(Placement{
		Kind:   KindFeature,
		Name:   name,
		Owner:  owner,
		Anchor: cell,
		Cells:  []grid.Cell{cell},
	})
}

// PlaceRandom places obj anywhere its footprint fits.
// Returns how many units were placed; units that never fit are skipped.
func (e *Engine) PlaceRandom(obj data.InteriorObject, free *FreeCells, owner Owner) int {
	quantity := e.quantity(obj.MinQuantity, obj.MaxQuantity)
	placed := 0

	for i := 0; i < quantity; i++ {
		ok := e.tryPlace(RandomRetries, free, func(anchor grid.Cell) []grid.Cell {
			cells := Footprint(anchor, obj.Width, obj.Height)
			if !free.HasAll(cells) {
				return nil
			}
			return cells
		}, func(anchor grid.Cell, cells []grid.Cell) {
			e.commit(Placement{Kind: KindObject, Name: obj.Name, Owner: owner, Anchor: anchor, Cells: cells}, free)
		})

		if ok {
			placed++
		} else {
			slog.Debug("placement skipped", "object", obj.Name, "room", owner.Center, "mode", data.PlaceRandom)
		}
	}

	return placed
}

// PlaceNearWall places obj where its footprint fits and either the anchor or
// the last footprint cell hugs the room boundary (see NearWall).
func (e *Engine) PlaceNearWall(obj data.InteriorObject, free *FreeCells, owner Owner) int {
	quantity := e.quantity(obj.MinQuantity, obj.MaxQuantity)
	placed := 0

	for i := 0; i < quantity; i++ {
		ok := e.tryPlace(NearWallRetries, free, func(anchor grid.Cell) []grid.Cell {
			cells := Footprint(anchor, obj.Width, obj.Height)
			if !free.HasAll(cells) {
				return nil
			}
			if !NearWall(anchor, free) && !NearWall(cells[len(cells)-1], free) {
				return nil
			}
			return cells
		}, func(anchor grid.Cell, cells []grid.Cell) {
			e.commit(Placement{Kind: KindObject, Name: obj.Name, Owner: owner, Anchor: anchor, Cells: cells}, free)
		})

		if ok {
			placed++
		} else {
			slog.Debug("placement skipped", "object", obj.Name, "room", owner.Center, "mode", data.PlaceNearWall)
		}
	}

	return placed
}

// PlaceEnemy places single cell enemies facing a random direction
func (e *Engine) PlaceEnemy(enemy data.Enemy, free *FreeCells, owner Owner) int {
	quantity := e.quantity(enemy.MinQuantity, enemy.MaxQuantity)
	placed := 0

	for i := 0; i < quantity; i++ {
		ok := e.tryPlace(RandomRetries, free, func(anchor grid.Cell) []grid.Cell {
			if !free.Has(anchor) {
				return nil
			}
			return []grid.Cell{anchor}
		}, func(anchor grid.Cell, cells []grid.Cell) {
			rotation := rotations[e.rng.Intn(len(rotations))]
			e.commit(Placement{Kind: KindEnemy, Name: enemy.Name, Owner: owner, Anchor: anchor, Cells: cells, Rotation: rotation}, free)
		})

		if ok {
			placed++
		} else {
			slog.Debug("enemy placement skipped", "enemy", enemy.Name, "room", owner.Center)
		}
	}

	return placed
}

// quantity draws a count in [lo, hi], both ends inclusive
func (e *Engine) quantity(lo, hi int) int {
	if hi < lo {
		return 0
	}
	return lo + e.rng.Intn(hi-lo+1)
}

// tryPlace picks random anchors from free until accept returns the occupied
// cells or the retry budget runs out
func (e *Engine) tryPlace(retries int, free *FreeCells, accept func(anchor grid.Cell) []grid.Cell,
	place func(anchor grid.Cell, cells []grid.Cell)) bool {
	for attempt := 0; attempt <= retries; attempt++ {
		if free.Len() == 0 {
			return false
		}

		anchor := free.At(e.rng.Intn(free.Len()))
		if cells := accept(anchor); cells != nil {
			place(anchor, cells)
			return true
		}
	}
	return false
}

// commit removes the occupied cells from the free list and spawns p
func (e *Engine) commit(p Placement, free *FreeCells) {
	for _, c := range p.Cells {
		free.Remove(c)
	}
	e.spawner.Spawn(p)
}

// Footprint lays out the cells an object of width x height occupies when
// anchored at anchor. Blocks grow right and down row by row, a single row
// grows right and a single column grows down.
func Footprint(anchor grid.Cell, width, height int) []grid.Cell {
	switch {
	case width > 1 && height > 1:
		cells := make([]grid.Cell, 0, width*height)
		for row := 0; row < height; row++ {
			for x := 0; x < width; x++ {
				cells = append(cells, grid.Cell{X: anchor.X + x, Y: anchor.Y - row})
			}
		}
		return cells
	case width > 1:
		cells := make([]grid.Cell, 0, width)
		for x := 0; x < width; x++ {
			cells = append(cells, anchor.Add(grid.Right.Scale(x)))
		}
		return cells
	case height > 1:
		cells := make([]grid.Cell, 0, height)
		for y := 0; y < height; y++ {
			cells = append(cells, anchor.Add(grid.Down.Scale(y)))
		}
		return cells
	default:
		return []grid.Cell{anchor}
	}
}

// NearWall reports whether cell hugs the boundary of the free area.
//
// This is a heuristic, not a geometric edge test: walking the eight
// neighbours clockwise from the top, a neighbour missing from free bumps a
// counter and a present one lowers it (never below zero). The cell counts as
// near a wall when the counter ends at 3 or more.
func NearWall(cell grid.Cell, free *FreeCells) bool {
	counter := 0

	for _, dir := range grid.EightDirections {
		if !free.Has(cell.Add(dir)) {
			counter++
		} else {
			counter--
			if counter < 0 {
				counter = 0
			}
		}
	}

	return counter >= nearWallThreshold
}
