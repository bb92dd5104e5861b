package population

import (
	"log/slog"

	"ebiten-dungeon/data"
	"ebiten-dungeon/grid"
	"ebiten-dungeon/spawners"
)

// EnemyPicks is how many enemy types a room that spawns enemies draws
const EnemyPicks = 2

// enemyPickTries bounds the search for an eligible enemy type per pick
const enemyPickTries = 10

// script is what a role is allowed to do with its catalog content
type script struct {
	feature bool
	enemies bool
}

var roleScripts = map[Role]script{
	RoleSpawn:    {feature: true},
	RoleExit:     {feature: true},
	RoleTreasure: {feature: true, enemies: true},
	RoleShop:     {feature: true},
	RoleGeneric:  {enemies: true},
}

// Populator assigns room roles and fills rooms with catalog content
type Populator struct {
	catalog *data.RoomCatalog
	spawner spawners.Spawner
	level   int
}

// NewPopulator creates a populator for the given dungeon level.
// A nil catalog yields empty rooms, a nil spawner drops placements.
func NewPopulator(catalog *data.RoomCatalog, spawner spawners.Spawner, level int) *Populator {
	if spawner == nil {
		spawner = spawners.Discard
	}
	return &Populator{
		catalog: catalog,
		spawner: spawner,
		level:   level,
	}
}

// Populate assigns a role to every room, then runs each room's script in
// room order: the feature on the centre, the interior objects, then enemies.
func (p *Populator) Populate(rooms []*Room, chances RoleChances, rng grid.Rand) {
	roles := AssignRoles(len(rooms), chances, rng)
	for i, room := range rooms {
		room.Role = roles[i]
	}

	for _, room := range rooms {
		p.populateRoom(room, rng)
	}
}

func (p *Populator) populateRoom(room *Room, rng grid.Rand) {
	content := p.catalog.Content(room.Role.String())
	run := roleScripts[room.Role]
	owner := room.Owner()
	engine := spawners.NewEngine(rng, roomSpawner{room: room, next: p.spawner})

	if run.feature && content.Feature != "" {
		room.Feature = content.Feature
		engine.PlaceFeature(content.Feature, room.Center, owner)
	}

	for _, obj := range content.Objects {
		if obj.UnlockLevel > p.level {
			continue
		}
		switch obj.Placement {
		case data.PlaceNearWall:
			engine.PlaceNearWall(obj, room.Free, owner)
		default:
			engine.PlaceRandom(obj, room.Free, owner)
		}
	}

	if run.enemies && content.CanSpawnEnemies {
		p.placeEnemies(engine, room, content.Enemies, rng)
	}

	slog.Debug("room populated",
		"room", room.Center,
		"role", room.Role,
		"placements", len(room.Placements),
		"free", room.Free.Len())
}

// placeEnemies draws EnemyPicks enemy types, never the same type twice in
// one room, and places each one
func (p *Populator) placeEnemies(engine *spawners.Engine, room *Room, enemies []data.Enemy, rng grid.Rand) {
	picked := make(map[int]bool)

	for pick := 0; pick < EnemyPicks; pick++ {
		idx, ok := p.pickEnemy(enemies, picked, rng)
		if !ok {
			slog.Debug("no eligible enemy", "room", room.Center, "level", p.level)
			continue
		}
		picked[idx] = true
		engine.PlaceEnemy(enemies[idx], room.Free, room.Owner())
	}
}

// pickEnemy samples the enemy list for a type that may appear at this level
// and was not picked yet
func (p *Populator) pickEnemy(enemies []data.Enemy, picked map[int]bool, rng grid.Rand) (int, bool) {
	if len(enemies) == 0 {
		return 0, false
	}
	for try := 0; try < enemyPickTries; try++ {
		idx := rng.Intn(len(enemies))
		if picked[idx] || enemies[idx].AppearanceLevel > p.level {
			continue
		}
		return idx, true
	}
	return 0, false
}
