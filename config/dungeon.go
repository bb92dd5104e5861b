package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RandomWalk holds the organic room shaping parameters.
type RandomWalk struct {
	Iterations                 int  `yaml:"iterations"` // 1..100
	Steps                      int  `yaml:"steps"`      // 1..50
	StartRandomlyEachIteration bool `yaml:"start_randomly_each_iteration"`
}

// Dungeon holds everything one generation run needs.
type Dungeon struct {
	// Area
	Width  int `yaml:"dungeon_width"`
	Height int `yaml:"dungeon_height"`

	// Rooms
	MinRoomWidth  int        `yaml:"min_room_width"`
	MinRoomHeight int        `yaml:"min_room_height"`
	RoomOffset    int        `yaml:"room_offset"` // 1..5
	UseRandomWalk bool       `yaml:"use_random_walk"`
	RandomWalk    RandomWalk `yaml:"random_walk"`

	// Special rooms
	TreasureRoomChance float64 `yaml:"treasure_room_chance"` // 0..1
	ShopRoomChance     float64 `yaml:"shop_room_chance"`     // 0..1

	// Content gates (unlock level for objects, appearance level for enemies)
	DungeonLevel int `yaml:"dungeon_level"`

	// Seed for the generation random source. 0 picks a time based seed.
	Seed int64 `yaml:"seed"`

	// Room catalog file (.yaml, .yml or .json). Empty uses the built-in catalog.
	CatalogPath string `yaml:"catalog_path"`

	LogLevel string `yaml:"log_level"`
}

// DefaultDungeon returns the Dungeon config with sensible defaults.
func DefaultDungeon() Dungeon {
	return Dungeon{
		Width:         70,
		Height:        50,
		MinRoomWidth:  10,
		MinRoomHeight: 10,
		RoomOffset:    1,
		UseRandomWalk: false,
		RandomWalk: RandomWalk{
			Iterations:                 10,
			Steps:                      10,
			StartRandomlyEachIteration: true,
		},
		TreasureRoomChance: 0.15,
		ShopRoomChance:     0.3,
		DungeonLevel:       1,
		LogLevel:           "info",
	}
}

// LoadDungeon loads the dungeon config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadDungeon(path string) (Dungeon, error) {
	cfg := DefaultDungeon()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects inputs that would make generation undefined.
func (d Dungeon) Validate() error {
	switch {
	case d.Width <= 0 || d.Height <= 0:
		return fmt.Errorf("%w: dungeon size %dx%d must be positive", ErrInvalidConfig, d.Width, d.Height)
	case d.MinRoomWidth <= 0 || d.MinRoomHeight <= 0:
		return fmt.Errorf("%w: minimum room size %dx%d must be positive", ErrInvalidConfig, d.MinRoomWidth, d.MinRoomHeight)
	case d.RoomOffset < 1 || d.RoomOffset > 5:
		return fmt.Errorf("%w: room offset %d outside 1..5", ErrInvalidConfig, d.RoomOffset)
	case 2*d.RoomOffset >= min(d.MinRoomWidth, d.MinRoomHeight):
		return fmt.Errorf("%w: room offset %d must be below half of the minimum room size %dx%d",
			ErrInvalidConfig, d.RoomOffset, d.MinRoomWidth, d.MinRoomHeight)
	case d.TreasureRoomChance < 0 || d.TreasureRoomChance > 1:
		return fmt.Errorf("%w: treasure room chance %v outside 0..1", ErrInvalidConfig, d.TreasureRoomChance)
	case d.ShopRoomChance < 0 || d.ShopRoomChance > 1:
		return fmt.Errorf("%w: shop room chance %v outside 0..1", ErrInvalidConfig, d.ShopRoomChance)
	}

	if d.UseRandomWalk {
		if d.RandomWalk.Iterations < 1 || d.RandomWalk.Iterations > 100 {
			return fmt.Errorf("%w: random walk iterations %d outside 1..100", ErrInvalidConfig, d.RandomWalk.Iterations)
		}
		if d.RandomWalk.Steps < 1 || d.RandomWalk.Steps > 50 {
			return fmt.Errorf("%w: random walk steps %d outside 1..50", ErrInvalidConfig, d.RandomWalk.Steps)
		}
	}

	return nil
}

// ParseLogLevel converts a config log level to slog.Level.
// Unknown values fall back to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
