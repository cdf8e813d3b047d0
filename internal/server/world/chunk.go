package world

import (
	"sync"

	"github.com/go-theft-craft/worldgen/pkg/world"
)

const sectionCount = world.Height >> world.CoordBits

// Section is a 16×16×16 cube of block states indexed y*256 + z*16 + x.
type Section struct {
	Blocks [4096]world.BlockState
}

// Chunk is an in-memory chunk column. Sections that were never written are
// nil and read as air.
type Chunk struct {
	pos   world.ChunkPos
	level world.Level

	mu       sync.RWMutex
	sections [sectionCount]*Section
	biomes   [world.ChunkSize * world.ChunkSize]world.BiomeID
	dirty    bool
}

// NewChunk creates an empty chunk at pos belonging to level.
func NewChunk(pos world.ChunkPos, level world.Level) *Chunk {
	return &Chunk{pos: pos, level: level}
}

func (c *Chunk) Pos() world.ChunkPos { return c.pos }
func (c *Chunk) Level() world.Level  { return c.level }

func inBounds(x, y, z int) bool {
	return x >= 0 && x < world.ChunkSize &&
		z >= 0 && z < world.ChunkSize &&
		y >= world.MinY && y <= world.MaxY
}

// Block returns the block state at local coordinates. Out-of-range
// positions read as air.
func (c *Chunk) Block(x, y, z int) world.BlockState {
	if !inBounds(x, y, z) {
		return world.Air
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	sec := c.sections[(y-world.MinY)>>world.CoordBits]
	if sec == nil {
		return world.Air
	}
	return sec.Blocks[(y&0xF)*256+z*16+x]
}

// SetBlock sets the block state at local coordinates. Out-of-range
// positions are ignored.
func (c *Chunk) SetBlock(x, y, z int, b world.BlockState) {
	if !inBounds(x, y, z) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	i := (y - world.MinY) >> world.CoordBits
	if c.sections[i] == nil {
		if b == world.Air {
			return
		}
		c.sections[i] = &Section{}
	}
	c.sections[i].Blocks[(y&0xF)*256+z*16+x] = b
}

func biomeIndex(x, z int) int { return (z&0xF)*world.ChunkSize + (x & 0xF) }

func (c *Chunk) Biome(x, z int) world.BiomeID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.biomes[biomeIndex(x, z)]
}

func (c *Chunk) SetBiome(x, z int, b world.BiomeID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.biomes[biomeIndex(x, z)] = b
}

func (c *Chunk) MarkDirty() {
	c.mu.Lock()
	c.dirty = true
	c.mu.Unlock()
}

// Dirty reports whether the chunk was modified since it was created.
func (c *Chunk) Dirty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dirty
}

// SectionCount returns how many sections hold at least one written block.
func (c *Chunk) SectionCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, s := range c.sections {
		if s != nil {
			n++
		}
	}
	return n
}
