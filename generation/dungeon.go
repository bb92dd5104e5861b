package generation

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"ebiten-dungeon/config"
	"ebiten-dungeon/data"
	"ebiten-dungeon/grid"
	"ebiten-dungeon/population"
	"ebiten-dungeon/spawners"
)

// Topology is one generated dungeon
type Topology struct {
	Bounds grid.Rect

	// Floor holds room floors followed by corridor cells
	Floor *grid.CellSet
	Walls *grid.CellSet

	Corridors []Corridor
	Rooms     []*population.Room
}

// Centers returns the room centres in room order
func (t *Topology) Centers() []grid.Cell {
	centers := make([]grid.Cell, len(t.Rooms))
	for i, room := range t.Rooms {
		centers[i] = room.Center
	}
	return centers
}

// Generate builds a dungeon from cfg, drawing every random choice from rng
// in a fixed order: partition, room shapes, corridor start, room roles,
// content placement. The same config, catalog and seed always give the same
// dungeon. Placements go to spawner, which may be nil.
func Generate(cfg config.Dungeon, catalog *data.RoomCatalog, rng grid.Rand, spawner spawners.Spawner) (*Topology, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bounds := grid.Rect{X: 0, Y: 0, Width: cfg.Width, Height: cfg.Height}
	leaves := Partition(bounds, cfg.MinRoomWidth, cfg.MinRoomHeight, rng)

	shaper := NewRoomShaper(cfg)
	floor := grid.NewCellSet()
	rooms := make([]*population.Room, 0, len(leaves))

	for _, leaf := range leaves {
		center, roomFloor := shaper.Shape(leaf, rng)
		if roomFloor.Len() == 0 {
			slog.Debug("empty room dropped", "bounds", leaf)
			continue
		}
		rooms = append(rooms, population.NewRoom(center, leaf, roomFloor))
		floor.Union(roomFloor)
	}

	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: %dx%d area with minimum room %dx%d",
			ErrNoRooms, cfg.Width, cfg.Height, cfg.MinRoomWidth, cfg.MinRoomHeight)
	}

	topo := &Topology{
		Bounds: bounds,
		Floor:  floor,
		Rooms:  rooms,
	}

	topo.Corridors = ConnectRooms(topo.Centers(), rng)
	floor.Union(CorridorCells(topo.Corridors))
	topo.Walls = DeriveWalls(floor)

	chances := population.RoleChances{Treasure: cfg.TreasureRoomChance, Shop: cfg.ShopRoomChance}
	population.NewPopulator(catalog, spawner, cfg.DungeonLevel).Populate(rooms, chances, rng)

	if n := CountComponents(floor); n > 1 {
		slog.Warn("dungeon floor is not connected", "components", n)
	}

	slog.Info("dungeon generated",
		"rooms", len(rooms),
		"corridors", len(topo.Corridors),
		"floor", floor.Len(),
		"walls", topo.Walls.Len())

	return topo, nil
}

// NewRand returns a random source for seed and the seed it used.
// A zero seed is replaced by a time based one.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// TileRenderer draws the cells of a generated dungeon
type TileRenderer interface {
	PaintFloor(floor *grid.CellSet)
	PaintDecorations(floor *grid.CellSet)
	PaintWall(c grid.Cell)
	Clear()
}

type noopRenderer struct{}

func (noopRenderer) PaintFloor(*grid.CellSet)       {}
func (noopRenderer) PaintDecorations(*grid.CellSet) {}
func (noopRenderer) PaintWall(grid.Cell)            {}
func (noopRenderer) Clear()                         {}

// DungeonGenerator owns the current dungeon and keeps the renderer and the
// spawner in step with it
type DungeonGenerator struct {
	renderer TileRenderer
	spawner  spawners.Spawner
	catalog  *data.RoomCatalog
	topology *Topology
}

// NewDungeonGenerator creates a new dungeon generator.
// Nil collaborators are replaced by ones that do nothing.
func NewDungeonGenerator(renderer TileRenderer, spawner spawners.Spawner, catalog *data.RoomCatalog) *DungeonGenerator {
	if renderer == nil {
		renderer = noopRenderer{}
	}
	if spawner == nil {
		spawner = spawners.Discard
	}
	return &DungeonGenerator{
		renderer: renderer,
		spawner:  spawner,
		catalog:  catalog,
	}
}

// Generate replaces the current dungeon with a new one and paints it.
// On error the generator is left cleared.
func (g *DungeonGenerator) Generate(cfg config.Dungeon, rng grid.Rand) (*Topology, error) {
	g.Clear()

	topo, err := Generate(cfg, g.catalog, rng, g.spawner)
	if err != nil {
		g.Clear()
		return nil, err
	}
	g.topology = topo

	g.renderer.PaintFloor(topo.Floor)
	topo.Walls.Each(g.renderer.PaintWall)
	g.renderer.PaintDecorations(topo.Floor)

	return topo, nil
}

// Clear drops the current dungeon, its tiles and its content.
// Calling it on an empty generator does nothing.
func (g *DungeonGenerator) Clear() {
	g.renderer.Clear()
	g.spawner.Clear()
	g.topology = nil
}

// Topology returns the current dungeon, nil after Clear
func (g *DungeonGenerator) Topology() *Topology {
	return g.topology
}
