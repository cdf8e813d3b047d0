package world

import (
	"testing"

	"github.com/go-theft-craft/worldgen/pkg/world"
)

func TestChunkSetGetBlock(t *testing.T) {
	c := NewChunk(world.ChunkPos{X: 3, Z: -2}, nil)

	c.SetBlock(1, 0, 2, 112)
	c.SetBlock(15, world.MaxY, 15, 16)

	if got := c.Block(1, 0, 2); got != 112 {
		t.Errorf("Block(1,0,2) = %d, want 112", got)
	}
	if got := c.Block(15, world.MaxY, 15); got != 16 {
		t.Errorf("Block(15,%d,15) = %d, want 16", world.MaxY, got)
	}
	if got := c.Block(2, 0, 1); got != world.Air {
		t.Errorf("Block(2,0,1) = %d, want air", got)
	}
	if got := c.SectionCount(); got != 2 {
		t.Errorf("SectionCount() = %d, want 2", got)
	}
}

func TestChunkAirDoesNotAllocate(t *testing.T) {
	c := NewChunk(world.ChunkPos{}, nil)
	c.SetBlock(0, 100, 0, world.Air)
	if got := c.SectionCount(); got != 0 {
		t.Errorf("SectionCount() = %d, want 0", got)
	}
}

func TestChunkOutOfRange(t *testing.T) {
	c := NewChunk(world.ChunkPos{}, nil)

	c.SetBlock(0, world.MaxY+1, 0, 16)
	c.SetBlock(16, 0, 0, 16)
	c.SetBlock(0, -1, 0, 16)

	if got := c.SectionCount(); got != 0 {
		t.Errorf("SectionCount() = %d, want 0", got)
	}
	if got := c.Block(0, world.MaxY+1, 0); got != world.Air {
		t.Errorf("Block above build height = %d, want air", got)
	}
	if got := c.Block(-1, 0, 0); got != world.Air {
		t.Errorf("Block(-1,0,0) = %d, want air", got)
	}
}

func TestChunkBiomesAndDirty(t *testing.T) {
	c := NewChunk(world.ChunkPos{}, nil)
	if c.Dirty() {
		t.Error("new chunk should not be dirty")
	}

	c.SetBiome(4, 9, 21)
	if got := c.Biome(4, 9); got != 21 {
		t.Errorf("Biome(4,9) = %d, want 21", got)
	}
	if got := c.Biome(9, 4); got != 0 {
		t.Errorf("Biome(9,4) = %d, want 0", got)
	}

	c.MarkDirty()
	if !c.Dirty() {
		t.Error("chunk should be dirty after MarkDirty")
	}
}
