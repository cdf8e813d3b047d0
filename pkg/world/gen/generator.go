package gen

import (
	"fmt"

	"github.com/go-theft-craft/worldgen/pkg/world"
)

// Generator fills chunks with terrain.
type Generator interface {
	// GenerateChunk writes the terrain of chunk (chunkX, chunkZ) through a.
	// It is called once per chunk, before the chunk's pending transactions
	// are replayed.
	GenerateChunk(a *world.ChunkAccess, chunkX, chunkZ int32) error
}

// Generator kinds accepted by New.
const (
	KindSurface = "surface"
	KindFlat    = "flat"
)

// Options configures the built-in generators. Block and biome fields are
// registry names.
type Options struct {
	WaterLevel int    `yaml:"water_level"`
	Biome      string `yaml:"biome"`

	Bedrock string `yaml:"bedrock"`
	Stone   string `yaml:"stone"`
	Soil    string `yaml:"soil"`
	Surface string `yaml:"surface"`
	Water   string `yaml:"water"`

	Noise NoiseOptions `yaml:"noise"`
	Trees TreeOptions  `yaml:"trees"`
	Caves CaveOptions  `yaml:"caves"`
}

// NoiseOptions selects the terrain height noise.
type NoiseOptions struct {
	Kind        string  `yaml:"kind"`
	Octaves     int     `yaml:"octaves"`
	Persistence float32 `yaml:"persistence"`
	Expansion   float32 `yaml:"expansion"`
}

// TreeOptions configures the tree decorator.
type TreeOptions struct {
	Enabled  bool   `yaml:"enabled"`
	PerChunk int    `yaml:"per_chunk"`
	Log      string `yaml:"log"`
	Leaves   string `yaml:"leaves"`
}

// CaveOptions configures the cave carver.
type CaveOptions struct {
	Enabled   bool    `yaml:"enabled"`
	Threshold float32 `yaml:"threshold"`
}

// DefaultOptions returns the options of the placeholder terrain.
func DefaultOptions() Options {
	return Options{
		WaterLevel: 60,
		Biome:      "forest",
		Bedrock:    "bedrock",
		Stone:      "stone",
		Soil:       "dirt",
		Surface:    "grass",
		Water:      "water",
		Noise: NoiseOptions{
			Kind:        KindSimplex,
			Octaves:     8,
			Persistence: 1 / 32.0,
			Expansion:   1 / 64.0,
		},
		Trees: TreeOptions{
			PerChunk: 2,
			Log:      "log",
			Leaves:   "leaves",
		},
		Caves: CaveOptions{
			Threshold: 0.55,
		},
	}
}

// New creates the generator named by kind.
func New(kind string, seed int32, reg world.Registry, opts Options) (Generator, error) {
	switch kind {
	case KindSurface, "":
		return NewSurfaceGenerator(seed, reg, opts)
	case KindFlat:
		return NewFlatGenerator(reg, opts)
	default:
		return nil, fmt.Errorf("unknown generator %q", kind)
	}
}

// resolver collects the first registry error while resolving several names.
type resolver struct {
	reg world.Registry
	err error
}

func (r *resolver) block(name string) world.BlockState {
	if r.err != nil {
		return world.Air
	}
	b, err := r.reg.Block(name, 0)
	if err != nil {
		r.err = fmt.Errorf("resolve block %q: %w", name, err)
	}
	return b
}

func (r *resolver) biome(name string) world.BiomeID {
	if r.err != nil {
		return 0
	}
	b, err := r.reg.Biome(name)
	if err != nil {
		r.err = fmt.Errorf("resolve biome %q: %w", name, err)
	}
	return b
}
