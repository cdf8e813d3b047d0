package gen

import (
	"fmt"

	"github.com/go-theft-craft/worldgen/pkg/world"
)

// soilDepth is how many layers below the surface block are soil.
const soilDepth = 4

// SurfaceGenerator produces noise-shaped terrain: a bedrock floor, stone,
// a soil cap on land and water up to the water level.
type SurfaceGenerator struct {
	seed  int32
	opts  Options
	noise *Noise

	bedrock, stone, soil, surface, water world.BlockState
	biome                                world.BiomeID

	trees *TreeDecorator
	caves *CaveCarver
}

// NewSurfaceGenerator creates a SurfaceGenerator. Noise tables are drawn from
// a Random seeded with seed, so two generators with equal seeds and options
// produce identical chunks.
func NewSurfaceGenerator(seed int32, reg world.Registry, opts Options) (*SurfaceGenerator, error) {
	r := NewRandom(seed)
	sampler, err := NewSampler(opts.Noise.Kind, r)
	if err != nil {
		return nil, err
	}
	if opts.Noise.Octaves < 1 {
		return nil, fmt.Errorf("noise octaves must be at least 1, got %d", opts.Noise.Octaves)
	}

	res := &resolver{reg: reg}
	g := &SurfaceGenerator{
		seed:    seed,
		opts:    opts,
		noise:   NewNoise(sampler, opts.Noise.Octaves, opts.Noise.Persistence, opts.Noise.Expansion),
		bedrock: res.block(opts.Bedrock),
		stone:   res.block(opts.Stone),
		soil:    res.block(opts.Soil),
		surface: res.block(opts.Surface),
		water:   res.block(opts.Water),
		biome:   res.biome(opts.Biome),
	}
	if res.err != nil {
		return nil, res.err
	}

	if opts.Caves.Enabled {
		g.caves = NewCaveCarver(r, opts.Caves)
	}
	if opts.Trees.Enabled {
		if g.trees, err = NewTreeDecorator(reg, g.surface, opts.Trees); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// HeightAt returns the terrain height of the global column (x, z).
func (g *SurfaceGenerator) HeightAt(x, z int) int {
	n := g.noise.Noise2D(float32(x), float32(z), false)
	return int(n*8 + float32(g.opts.WaterLevel))
}

func (g *SurfaceGenerator) GenerateChunk(a *world.ChunkAccess, chunkX, chunkZ int32) error {
	rng := NewRandom(ChunkSeed(g.seed, chunkX, chunkZ))

	for lx := range world.ChunkSize {
		gx := world.GlobalCoord(int(chunkX), lx)
		for lz := range world.ChunkSize {
			gz := world.GlobalCoord(int(chunkZ), lz)

			a.SetBiomeAt(gx, gz, g.biome)

			ty := g.HeightAt(gx, gz)
			yMax := min(max(ty, g.opts.WaterLevel), world.MaxY)
			for y := world.MinY; y <= yMax; y++ {
				a.SetBlockAt(gx, y, gz, g.blockFor(y, ty))
			}
		}
	}

	if g.caves != nil {
		g.caves.Carve(a)
	}
	if g.trees != nil {
		if err := g.trees.Decorate(a, rng); err != nil {
			return fmt.Errorf("decorate chunk %d,%d: %w", chunkX, chunkZ, err)
		}
	}

	a.Chunk().MarkDirty()
	return nil
}

// blockFor returns the block at height y of a column whose terrain ends at ty.
func (g *SurfaceGenerator) blockFor(y, ty int) world.BlockState {
	switch {
	case y <= 1:
		return g.bedrock
	case y > ty:
		return g.water
	case y+soilDepth > ty && ty >= g.opts.WaterLevel:
		if y == ty {
			return g.surface
		}
		return g.soil
	default:
		return g.stone
	}
}
