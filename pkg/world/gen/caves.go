package gen

import "github.com/go-theft-craft/worldgen/pkg/world"

// CaveCarver hollows out caves below the surface using 3D noise.
type CaveCarver struct {
	noise     *Noise
	threshold float32
}

// NewCaveCarver draws a simplex table from r for the cave density field.
func NewCaveCarver(r *Random, opts CaveOptions) *CaveCarver {
	return &CaveCarver{
		noise:     NewNoise(NewSimplex(r), 2, 0.5, 1/32.0),
		threshold: opts.Threshold,
	}
}

// Carve replaces dense points with air. Bedrock and the top four layers of
// every column, as recorded in the height cache, are left intact.
func (cc *CaveCarver) Carve(a *world.ChunkAccess) {
	pos := a.Pos()
	for lx := range world.ChunkSize {
		x := pos.BlockX(lx)
		for lz := range world.ChunkSize {
			z := pos.BlockZ(lz)
			top := a.HighestBlockAt(x, z)
			for y := 4; y < top-4; y++ {
				if cc.noise.Noise3D(float32(x), float32(y), float32(z), true) > cc.threshold {
					a.SetBlockAt(x, y, z, world.Air)
				}
			}
		}
	}
}
