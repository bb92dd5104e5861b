package main

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"ebiten-dungeon/config"
	"ebiten-dungeon/data"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/population"
	"ebiten-dungeon/spawners"
)

// batchResult summarises one generated dungeon
type batchResult struct {
	Seed       int64
	Rooms      int
	Floor      int
	Walls      int
	Placements int
	Treasure   bool
	Shop       bool
}

// runBatch generates count dungeons from consecutive seeds in parallel.
// Every worker owns its generator and random source; only the read-only
// catalog is shared.
func runBatch(ctx context.Context, cfg config.Dungeon, catalog *data.RoomCatalog, count int) ([]batchResult, error) {
	base := cfg.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	results := make([]batchResult, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := 0; i < count; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			seed := base + int64(i)
			rng, _ := generation.NewRand(seed)
			recorder := spawners.NewRecorder()

			topo, err := generation.NewDungeonGenerator(nil, recorder, catalog).Generate(cfg, rng)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}

			res := batchResult{
				Seed:       seed,
				Rooms:      len(topo.Rooms),
				Floor:      topo.Floor.Len(),
				Walls:      topo.Walls.Len(),
				Placements: len(recorder.Placements()),
			}
			for _, room := range topo.Rooms {
				res.Treasure = res.Treasure || room.Role == population.RoleTreasure
				res.Shop = res.Shop || room.Role == population.RoleShop
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, res := range results {
		slog.Info("batch dungeon",
			"seed", res.Seed,
			"rooms", res.Rooms,
			"floor", res.Floor,
			"walls", res.Walls,
			"placements", res.Placements,
			"treasure", res.Treasure,
			"shop", res.Shop)
	}

	return results, nil
}
