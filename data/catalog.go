package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Room role keys used by the catalog
const (
	RoleSpawn    = "spawn"
	RoleExit     = "exit"
	RoleGeneric  = "generic"
	RoleTreasure = "treasure"
	RoleShop     = "shop"
)

// PlacementMode selects how an interior object looks for a spot
type PlacementMode string

const (
	PlaceRandom   PlacementMode = "random"    // anywhere on free floor
	PlaceNearWall PlacementMode = "near_wall" // hugging the room boundary
)

// InteriorObject describes a decoration or piece of furniture a room may hold
type InteriorObject struct {
	Name string `json:"name" yaml:"name"`

	// Footprint in cells. Width grows to the right, Height grows downwards.
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	// Quantity range, both ends inclusive
	MinQuantity int `json:"minQuantity" yaml:"min_quantity"`
	MaxQuantity int `json:"maxQuantity" yaml:"max_quantity"`

	// Dungeon level from which the object may appear (0 = always)
	UnlockLevel int `json:"unlockLevel" yaml:"unlock_level"`

	Placement PlacementMode `json:"placement" yaml:"placement"`
}

// Enemy describes a monster a room may spawn
type Enemy struct {
	Name string `json:"name" yaml:"name"`

	// Quantity range, both ends inclusive
	MinQuantity int `json:"minQuantity" yaml:"min_quantity"`
	MaxQuantity int `json:"maxQuantity" yaml:"max_quantity"`

	// Dungeon level from which the enemy may appear
	AppearanceLevel int `json:"appearanceLevel" yaml:"appearance_level"`
}

// RoomContent is everything the catalog knows about one room role
type RoomContent struct {
	// Feature is placed on the room centre (player start, exit, chest, merchant).
	// Empty means the centre stays free.
	Feature string `json:"feature" yaml:"feature"`

	Objects         []InteriorObject `json:"objects" yaml:"objects"`
	CanSpawnEnemies bool             `json:"canSpawnEnemies" yaml:"can_spawn_enemies"`
	Enemies         []Enemy          `json:"enemies" yaml:"enemies"`
}

// RoomCatalog maps room roles to their content
type RoomCatalog struct {
	Rooms map[string]*RoomContent `json:"rooms" yaml:"rooms"`
}

// NewRoomCatalog creates an empty catalog
func NewRoomCatalog() *RoomCatalog {
	return &RoomCatalog{
		Rooms: make(map[string]*RoomContent),
	}
}

// Content returns the content for a role. Unknown roles get empty content.
func (c *RoomCatalog) Content(role string) *RoomContent {
	if c == nil {
		return &RoomContent{}
	}
	if content, ok := c.Rooms[role]; ok && content != nil {
		return content
	}
	return &RoomContent{}
}

// LoadCatalogFromFile loads a catalog from a .json, .yaml or .yml file
func LoadCatalogFromFile(path string) (*RoomCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	catalog := NewRoomCatalog()

	switch filepath.Ext(path) {
	case ".json":
		err = json.Unmarshal(raw, catalog)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, catalog)
	default:
		return nil, fmt.Errorf("%w: unsupported catalog format %q", ErrInvalidCatalog, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	return catalog, nil
}

// Validate checks footprints, quantity ranges and enemy lists
func (c *RoomCatalog) Validate() error {
	// Sorted so the first reported problem does not depend on map order
	roles := make([]string, 0, len(c.Rooms))
	for role := range c.Rooms {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	for _, role := range roles {
		content := c.Rooms[role]
		if content == nil {
			continue
		}

		for _, obj := range content.Objects {
			if obj.Width < 1 || obj.Height < 1 {
				return fmt.Errorf("%w: %s/%s footprint %dx%d", ErrInvalidCatalog, role, obj.Name, obj.Width, obj.Height)
			}
			if obj.MinQuantity < 0 || obj.MaxQuantity < obj.MinQuantity {
				return fmt.Errorf("%w: %s/%s quantity %d..%d", ErrInvalidCatalog, role, obj.Name, obj.MinQuantity, obj.MaxQuantity)
			}
			switch obj.Placement {
			case PlaceRandom, PlaceNearWall:
			default:
				return fmt.Errorf("%w: %s/%s placement %q", ErrInvalidCatalog, role, obj.Name, obj.Placement)
			}
		}

		if content.CanSpawnEnemies && len(content.Enemies) == 0 {
			return fmt.Errorf("%w: %s rooms spawn enemies but list none", ErrInvalidCatalog, role)
		}
		for _, enemy := range content.Enemies {
			if enemy.MinQuantity < 0 || enemy.MaxQuantity < enemy.MinQuantity {
				return fmt.Errorf("%w: %s/%s quantity %d..%d", ErrInvalidCatalog, role, enemy.Name, enemy.MinQuantity, enemy.MaxQuantity)
			}
		}
	}

	return nil
}
