package population

import (
	"fmt"
	"log/slog"

	"ebiten-dungeon/data"
	"ebiten-dungeon/grid"
)

// Role is the part a room plays in the dungeon
type Role int

const (
	RoleUnassigned Role = iota
	RoleSpawn           // player start, always the first room
	RoleExit            // level exit, always the last room
	RoleTreasure        // at most one per dungeon
	RoleShop            // at most one per dungeon
	RoleGeneric
)

// String returns the catalog key of the role
func (r Role) String() string {
	switch r {
	case RoleSpawn:
		return data.RoleSpawn
	case RoleExit:
		return data.RoleExit
	case RoleTreasure:
		return data.RoleTreasure
	case RoleShop:
		return data.RoleShop
	case RoleGeneric:
		return data.RoleGeneric
	case RoleUnassigned:
		return "unassigned"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// RoleChances are the probabilities that an interior room becomes special
type RoleChances struct {
	Treasure float64
	Shop     float64
}

// AssignRoles decides the role of each of n rooms in room order.
//
// The first room is the spawn and the last one the exit. Each room in between
// draws a single number: below the treasure chance it becomes the treasure
// room unless one exists, else below the shop chance it becomes the shop
// unless one exists, else it is generic. A single room is the spawn.
func AssignRoles(n int, chances RoleChances, rng grid.Rand) []Role {
	roles := make([]Role, n)
	hasTreasure, hasShop := false, false

	for i := range roles {
		switch {
		case i == 0:
			roles[i] = RoleSpawn
		case i == n-1:
			roles[i] = RoleExit
		default:
			roll := rng.Float64()
			switch {
			case roll < chances.Treasure && !hasTreasure:
				roles[i] = RoleTreasure
				hasTreasure = true
			case roll < chances.Shop && !hasShop:
				roles[i] = RoleShop
				hasShop = true
			default:
				roles[i] = RoleGeneric
			}
		}
		slog.Debug("room role assigned", "room", i, "role", roles[i])
	}

	return roles
}
