package world

import "fmt"

// ChunkAccess wraps one chunk during a generation pass. It keeps a per-column
// high-water mark of the highest block written, so later passes can find the
// surface without scanning the chunk.
//
// A ChunkAccess is owned by a single generation pass and is not safe for
// concurrent use.
type ChunkAccess struct {
	chunk   LevelChunk
	reg     Registry
	pos     ChunkPos
	heights [ChunkSize][ChunkSize]int16
}

// NewChunkAccess creates a ChunkAccess for c resolving names through reg.
func NewChunkAccess(c LevelChunk, reg Registry) *ChunkAccess {
	return &ChunkAccess{chunk: c, reg: reg, pos: c.Pos()}
}

// SetBlockAt writes b at the global position. x and z are masked to the chunk.
func (a *ChunkAccess) SetBlockAt(x, y, z int, b BlockState) {
	lx, lz := LocalCoord(x), LocalCoord(z)
	if h := &a.heights[lx][lz]; int(*h) < y {
		*h = int16(y)
	}
	a.chunk.SetBlock(lx, y, lz, b)
}

// SetBlockNamed resolves name and data through the registry and writes the block.
func (a *ChunkAccess) SetBlockNamed(x, y, z int, name string, data uint16) error {
	b, err := a.reg.Block(name, data)
	if err != nil {
		return fmt.Errorf("set block at %d,%d,%d: %w", x, y, z, err)
	}
	a.SetBlockAt(x, y, z, b)
	return nil
}

// BlockAt returns the block at the global position.
func (a *ChunkAccess) BlockAt(x, y, z int) BlockState {
	return a.chunk.Block(LocalCoord(x), y, LocalCoord(z))
}

func (a *ChunkAccess) SetBiomeAt(x, z int, b BiomeID) {
	a.chunk.SetBiome(LocalCoord(x), LocalCoord(z), b)
}

func (a *ChunkAccess) BiomeAt(x, z int) BiomeID {
	return a.chunk.Biome(LocalCoord(x), LocalCoord(z))
}

// HighestBlockAt returns the highest y written through this access for the
// column, or 0 if nothing was written. It never decreases.
func (a *ChunkAccess) HighestBlockAt(x, z int) int {
	return int(a.heights[LocalCoord(x)][LocalCoord(z)])
}

func (a *ChunkAccess) Chunk() LevelChunk { return a.chunk }

func (a *ChunkAccess) Registry() Registry { return a.reg }

func (a *ChunkAccess) Pos() ChunkPos { return a.pos }

func (a *ChunkAccess) Level() Level { return a.chunk.Level() }
