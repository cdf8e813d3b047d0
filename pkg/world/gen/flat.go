package gen

import "github.com/go-theft-craft/worldgen/pkg/world"

// FlatGenerator generates a classic superflat world:
// bedrock at y=0, stone y=1..2, soil y=3, surface y=4.
type FlatGenerator struct {
	bedrock, stone, soil, surface world.BlockState
	biome                         world.BiomeID
}

// NewFlatGenerator creates a FlatGenerator using the block names in opts.
func NewFlatGenerator(reg world.Registry, opts Options) (*FlatGenerator, error) {
	res := &resolver{reg: reg}
	g := &FlatGenerator{
		bedrock: res.block(opts.Bedrock),
		stone:   res.block(opts.Stone),
		soil:    res.block(opts.Soil),
		surface: res.block(opts.Surface),
		biome:   res.biome(opts.Biome),
	}
	if res.err != nil {
		return nil, res.err
	}
	return g, nil
}

func (g *FlatGenerator) GenerateChunk(a *world.ChunkAccess, chunkX, chunkZ int32) error {
	for lx := range world.ChunkSize {
		x := world.GlobalCoord(int(chunkX), lx)
		for lz := range world.ChunkSize {
			z := world.GlobalCoord(int(chunkZ), lz)
			a.SetBlockAt(x, 0, z, g.bedrock)
			a.SetBlockAt(x, 1, z, g.stone)
			a.SetBlockAt(x, 2, z, g.stone)
			a.SetBlockAt(x, 3, z, g.soil)
			a.SetBlockAt(x, 4, z, g.surface)
			a.SetBiomeAt(x, z, g.biome)
		}
	}
	a.Chunk().MarkDirty()
	return nil
}
