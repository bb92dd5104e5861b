package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-dungeon/config"
	"ebiten-dungeon/data"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/grid"
	"ebiten-dungeon/render"
	"ebiten-dungeon/spawners"
)

var layerColors = map[render.Layer]color.RGBA{
	render.LayerFloor:      {R: 0x3a, G: 0x3a, B: 0x44, A: 0xff},
	render.LayerDecoration: {R: 0x3c, G: 0x6e, B: 0x3c, A: 0xff},
	render.LayerWall:       {R: 0xb4, G: 0xb4, B: 0xbe, A: 0xff},
	render.LayerFeature:    {R: 0xf0, G: 0xc8, B: 0x28, A: 0xff},
	render.LayerObject:     {R: 0x50, G: 0x78, B: 0xd2, A: 0xff},
	render.LayerEnemy:      {R: 0xd2, G: 0x32, B: 0x32, A: 0xff},
}

// Viewer implements ebiten.Game and shows the current dungeon
type Viewer struct {
	canvas    *render.Canvas
	generator *generation.DungeonGenerator
	cfg       config.Dungeon

	seed  int64
	rooms int
	err   error

	width, height int
}

// NewViewer creates a viewer and generates the first dungeon from cfg.Seed
func NewViewer(cfg config.Dungeon, catalog *data.RoomCatalog) (*Viewer, error) {
	canvas := render.NewCanvas(cfg.Seed)
	v := &Viewer{
		canvas:    canvas,
		generator: generation.NewDungeonGenerator(canvas, canvas, catalog),
		cfg:       cfg,
	}
	v.width, v.height = config.GetWindowSize(cfg.Width, cfg.Height)

	if err := v.regenerate(cfg.Seed); err != nil {
		return nil, err
	}
	return v, nil
}

// regenerate builds a new dungeon. A zero seed picks a fresh one.
func (v *Viewer) regenerate(seed int64) error {
	rng, used := generation.NewRand(seed)
	topo, err := v.generator.Generate(v.cfg, rng)
	v.seed = used
	v.err = err
	if err != nil {
		return fmt.Errorf("generating seed %d: %w", used, err)
	}
	v.rooms = len(topo.Rooms)
	return nil
}

// Update handles keys: R regenerates, Escape quits
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := v.regenerate(0); err != nil {
			slog.Error("regenerate failed", "err", err)
		}
	}
	return nil
}

// Draw paints one tile per cell and the side panel
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	mapWidth := 0
	v.canvas.Each(func(col, row int, cell grid.Cell) {
		_, layer := v.canvas.Cell(cell)
		clr, ok := layerColors[layer]
		if !ok {
			return
		}
		x := float32(col * config.TileSize)
		y := float32(row * config.TileSize)
		vector.DrawFilledRect(screen, x, y, config.TileSize-1, config.TileSize-1, clr, false)
		mapWidth = max(mapWidth, (col+1)*config.TileSize)
	})

	panel := fmt.Sprintf("seed %d\nrooms %d\n\nR  regenerate\nESC quit", v.seed, v.rooms)
	if v.err != nil {
		panel += "\n\n" + v.err.Error()
	}
	ebitenutil.DebugPrintAt(screen, panel, mapWidth+8, 8)
}

// Layout implements ebiten.Game's Layout.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

func runViewer(cfg config.Dungeon, catalog *data.RoomCatalog) error {
	viewer, err := NewViewer(cfg, catalog)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(viewer.width, viewer.height)
	ebiten.SetWindowTitle("Dungeon Generator")
	return ebiten.RunGame(viewer)
}

var _ spawners.Spawner = (*render.Canvas)(nil)
var _ generation.TileRenderer = (*render.Canvas)(nil)
