package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-theft-craft/worldgen/pkg/gamedata"
	"github.com/go-theft-craft/worldgen/pkg/world"
	"github.com/go-theft-craft/worldgen/pkg/world/gen"
)

// Config holds the settings of a level. It is stored as level.yaml inside
// the level directory.
type Config struct {
	Seed      int32  `yaml:"seed"`
	Generator string `yaml:"generator"` // "surface" or "flat"
	GameData  string `yaml:"gamedata"`  // registered version or a minecraft-data directory
	Radius    int    `yaml:"radius"`    // pre-generation radius in chunks
	Workers   int    `yaml:"workers"`
	EventLog  bool   `yaml:"event_log"`
	LogLevel  string `yaml:"log_level"`

	Options gen.Options `yaml:"options"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Generator: gen.KindSurface,
		GameData:  gamedata.Vanilla,
		Radius:    4,
		Workers:   4,
		LogLevel:  "info",
		Options:   gen.DefaultOptions(),
	}
}

// Validate reports settings that cannot produce a world.
func (c *Config) Validate() error {
	switch c.Generator {
	case gen.KindSurface, gen.KindFlat:
	default:
		return fmt.Errorf("unknown generator %q", c.Generator)
	}
	if c.Radius < 0 {
		return fmt.Errorf("radius must not be negative, got %d", c.Radius)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if w := c.Options.WaterLevel; w < world.MinY || w > world.MaxY {
		return fmt.Errorf("water level %d outside build height", w)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a log level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["generator"] {
		cfg.Generator = fromFile.Generator
	}
	if !explicitFlags["gamedata"] {
		cfg.GameData = fromFile.GameData
	}
	if !explicitFlags["radius"] {
		cfg.Radius = fromFile.Radius
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}
	if !explicitFlags["events"] {
		cfg.EventLog = fromFile.EventLog
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}

	water, noise, trees, caves := cfg.Options.WaterLevel, cfg.Options.Noise.Kind, cfg.Options.Trees.Enabled, cfg.Options.Caves.Enabled
	cfg.Options = fromFile.Options
	if explicitFlags["water-level"] {
		cfg.Options.WaterLevel = water
	}
	if explicitFlags["noise"] {
		cfg.Options.Noise.Kind = noise
	}
	if explicitFlags["trees"] {
		cfg.Options.Trees.Enabled = trees
	}
	if explicitFlags["caves"] {
		cfg.Options.Caves.Enabled = caves
	}
}
