package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDungeon_IsValid(t *testing.T) {
	require.NoError(t, DefaultDungeon().Validate())
}

func TestDungeon_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Dungeon)
		wantErr bool
	}{
		{name: "defaults", mutate: func(d *Dungeon) {}},
		{name: "zero_width", mutate: func(d *Dungeon) { d.Width = 0 }, wantErr: true},
		{name: "zero_min_room_width", mutate: func(d *Dungeon) { d.MinRoomWidth = 0 }, wantErr: true},
		{name: "negative_min_room_height", mutate: func(d *Dungeon) { d.MinRoomHeight = -3 }, wantErr: true},
		{name: "offset_zero", mutate: func(d *Dungeon) { d.RoomOffset = 0 }, wantErr: true},
		{name: "offset_six", mutate: func(d *Dungeon) { d.MinRoomWidth, d.MinRoomHeight, d.RoomOffset = 20, 20, 6 }, wantErr: true},
		{
			name:    "offset_half_of_min",
			mutate:  func(d *Dungeon) { d.MinRoomWidth, d.MinRoomHeight, d.RoomOffset = 4, 10, 2 },
			wantErr: true,
		},
		{
			name:   "offset_just_below_half",
			mutate: func(d *Dungeon) { d.MinRoomWidth, d.MinRoomHeight, d.RoomOffset = 5, 10, 2 },
		},
		{name: "treasure_chance_above_one", mutate: func(d *Dungeon) { d.TreasureRoomChance = 1.5 }, wantErr: true},
		{name: "shop_chance_negative", mutate: func(d *Dungeon) { d.ShopRoomChance = -0.1 }, wantErr: true},
		{
			name:    "walk_iterations_out_of_range",
			mutate:  func(d *Dungeon) { d.UseRandomWalk, d.RandomWalk.Iterations = true, 101 },
			wantErr: true,
		},
		{
			name:    "walk_steps_zero",
			mutate:  func(d *Dungeon) { d.UseRandomWalk, d.RandomWalk.Steps = true, 0 },
			wantErr: true,
		},
		{
			name:   "walk_params_ignored_for_rectangles",
			mutate: func(d *Dungeon) { d.UseRandomWalk, d.RandomWalk.Steps = false, 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DefaultDungeon()
			tt.mutate(&d)

			err := d.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConfig), "want ErrInvalidConfig, got %v", err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoadDungeon_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadDungeon(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultDungeon(), cfg)
}

func TestLoadDungeon_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dungeon.yaml")
	body := `
dungeon_width: 40
min_room_width: 6
use_random_walk: true
random_walk:
  iterations: 20
  steps: 15
seed: 42
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadDungeon(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 50, cfg.Height, "unset fields keep defaults")
	assert.Equal(t, 6, cfg.MinRoomWidth)
	assert.True(t, cfg.UseRandomWalk)
	assert.Equal(t, 20, cfg.RandomWalk.Iterations)
	assert.Equal(t, 15, cfg.RandomWalk.Steps)
	assert.True(t, cfg.RandomWalk.StartRandomlyEachIteration)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadDungeon_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dungeon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dungeon_width: [1, 2"), 0o644))

	_, err := LoadDungeon(path)
	require.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("chatty"))
}
