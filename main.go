package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"ebiten-dungeon/config"
	"ebiten-dungeon/data"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/render"
)

// DefaultConfigPath is read when neither -config nor DUNGEON_CONFIG is set
const DefaultConfigPath = "config/dungeon.yaml"

type options struct {
	configPath  string
	catalogPath string
	seed        int64
	ascii       bool
	terminal    bool
	batch       int
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	defaultConfig := DefaultConfigPath
	if p := os.Getenv("DUNGEON_CONFIG"); p != "" {
		defaultConfig = p
	}

	var opts options
	fs := flag.NewFlagSet("dungeon", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", defaultConfig, "dungeon config file (YAML)")
	fs.StringVar(&opts.catalogPath, "catalog", "", "room catalog file (.yaml, .yml or .json) or directory of per-role files, overrides the config")
	fs.Int64Var(&opts.seed, "seed", 0, "generation seed, overrides the config (0 = time based)")
	fs.BoolVar(&opts.ascii, "ascii", false, "print the dungeon as text and exit")
	fs.BoolVar(&opts.terminal, "terminal", false, "show the dungeon in the terminal")
	fs.IntVar(&opts.batch, "batch", 0, "generate this many consecutive seeds concurrently and log a summary")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.batch < 0 {
		return opts, fmt.Errorf("batch count %d must not be negative", opts.batch)
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadDungeon(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading dungeon config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	})))

	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.catalogPath != "" {
		cfg.CatalogPath = opts.catalogPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	slog.Info("dungeon generator starting",
		"config", opts.configPath,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"random_walk", cfg.UseRandomWalk,
		"level", cfg.DungeonLevel)

	switch {
	case opts.batch > 0:
		_, err := runBatch(ctx, cfg, catalog, opts.batch)
		return err
	case opts.ascii:
		return printASCII(stdout, cfg, catalog)
	case opts.terminal:
		return runTerminal(cfg, catalog)
	default:
		return runViewer(cfg, catalog)
	}
}

func loadCatalog(path string) (*data.RoomCatalog, error) {
	if path == "" {
		return data.DefaultCatalog(), nil
	}
	catalog, err := data.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("loading room catalog: %w", err)
	}
	return catalog, nil
}

// printASCII generates one dungeon and writes its text rendering
func printASCII(w io.Writer, cfg config.Dungeon, catalog *data.RoomCatalog) error {
	canvas := render.NewCanvas(cfg.Seed)
	gen := generation.NewDungeonGenerator(canvas, canvas, catalog)

	rng, seed := generation.NewRand(cfg.Seed)
	topo, err := gen.Generate(cfg, rng)
	if err != nil {
		return fmt.Errorf("generating seed %d: %w", seed, err)
	}

	_, err = fmt.Fprintf(w, "seed %d, %d rooms\n%s", seed, len(topo.Rooms), canvas.String())
	return err
}

func runTerminal(cfg config.Dungeon, catalog *data.RoomCatalog) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal screen: %w", err)
	}
	defer screen.Fini()

	// log lines would scribble over the screen
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	term := render.NewTerminal(screen, cfg.Seed)
	gen := generation.NewDungeonGenerator(term, term, catalog)

	next := cfg.Seed
	regenerate := func() error {
		rng, seed := generation.NewRand(next)
		next = 0
		topo, err := gen.Generate(cfg, rng)
		if err != nil {
			return fmt.Errorf("generating seed %d: %w", seed, err)
		}
		term.SetStatus("seed %d  rooms %d  r: regenerate  q: quit", seed, len(topo.Rooms))
		return nil
	}

	if err := regenerate(); err != nil {
		return err
	}
	return term.Run(regenerate)
}
