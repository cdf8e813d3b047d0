// Command worldgen pre-generates the chunks around the origin of a level and
// reports the block transactions still waiting for ungenerated chunks.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/go-theft-craft/worldgen/internal/genlog"
	"github.com/go-theft-craft/worldgen/internal/server/config"
	"github.com/go-theft-craft/worldgen/internal/server/storage"
	"github.com/go-theft-craft/worldgen/internal/server/world"
	"github.com/go-theft-craft/worldgen/pkg/gamedata"
	"github.com/go-theft-craft/worldgen/pkg/world/gen"
)

func main() {
	cfg := config.DefaultConfig()
	dir := flag.String("dir", "./level", "level directory")

	flag.Func("seed", "world seed (int32)", func(s string) error {
		var v int32
		if _, err := fmt.Sscan(s, &v); err != nil {
			return err
		}
		cfg.Seed = v
		return nil
	})
	flag.StringVar(&cfg.Generator, "generator", cfg.Generator, "terrain generator: surface or flat")
	flag.StringVar(&cfg.GameData, "gamedata", cfg.GameData, "registered data version or minecraft-data directory")
	flag.IntVar(&cfg.Radius, "radius", cfg.Radius, "pre-generation radius in chunks")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent chunk generators")
	flag.BoolVar(&cfg.EventLog, "events", cfg.EventLog, "write a compressed chunk event log")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.IntVar(&cfg.Options.WaterLevel, "water-level", cfg.Options.WaterLevel, "water level")
	flag.StringVar(&cfg.Options.Noise.Kind, "noise", cfg.Options.Noise.Kind, "height noise: simplex, opensimplex or perlin")
	flag.BoolVar(&cfg.Options.Trees.Enabled, "trees", cfg.Options.Trees.Enabled, "plant trees")
	flag.BoolVar(&cfg.Options.Caves.Enabled, "caves", cfg.Options.Caves.Enabled, "carve caves")
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	level := new(slog.LevelVar)
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, *dir, explicit, log, level); err != nil {
		log.Error("worldgen failed", "error", err)
		os.Exit(1)
	}
}

// run merges cfg with the level's saved settings, stores the result and
// generates the configured radius. level is adjusted to the merged log level.
func run(cfg *config.Config, dir string, explicit map[string]bool, log *slog.Logger, level *slog.LevelVar) error {
	st, err := storage.New(dir, log)
	if err != nil {
		return err
	}

	fromFile := config.DefaultConfig()
	found, err := st.LoadConfig(fromFile)
	if err != nil {
		return err
	}
	if found {
		config.Merge(cfg, fromFile, explicit)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	lvl, _ := config.ParseLevel(cfg.LogLevel)
	level.Set(lvl)
	if err := st.SaveConfig(cfg); err != nil {
		return err
	}

	reg, err := loadGameData(cfg.GameData)
	if err != nil {
		return err
	}
	generator, err := gen.New(cfg.Generator, cfg.Seed, reg, cfg.Options)
	if err != nil {
		return err
	}

	opts := []world.Option{world.WithLogger(log)}
	if cfg.EventLog {
		events, err := genlog.NewChunkLogger(dir)
		if err != nil {
			return err
		}
		defer func() {
			if err := events.Close(); err != nil {
				log.Warn("close event log", "error", err)
			}
		}()
		opts = append(opts, world.WithEvents(events))
		log.Info("writing chunk events", "path", events.Path())
	}
	w := world.NewWorld(dir, generator, reg, opts...)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("generating",
		"dir", dir, "seed", cfg.Seed, "generator", cfg.Generator,
		"gamedata", reg.Version, "radius", cfg.Radius, "workers", cfg.Workers)

	start := time.Now()
	n, err := w.PreGenerate(ctx, cfg.Radius, cfg.Workers)
	if err != nil {
		return fmt.Errorf("pre-generate after %d chunks: %w", n, err)
	}
	log.Info("generation complete", "chunks", n, "elapsed", time.Since(start).Round(time.Millisecond))

	pending, err := w.Store().Pending()
	if err != nil {
		return err
	}
	for _, pos := range pending {
		log.Debug("pending transactions", "chunk_x", pos.X, "chunk_z", pos.Z, "path", w.Store().Path(pos))
	}
	log.Info("chunks waiting for transactions", "count", len(pending))
	return nil
}

// loadGameData resolves a registered version name, falling back to a
// minecraft-data directory.
func loadGameData(name string) (*gamedata.GameData, error) {
	if slices.Contains(gamedata.RegisteredVersions(), name) {
		return gamedata.Load(name)
	}
	gd, err := gamedata.LoadDir(name)
	if err != nil {
		return nil, fmt.Errorf("gamedata %q is neither a registered version nor a data directory: %w", name, err)
	}
	return gd, nil
}
