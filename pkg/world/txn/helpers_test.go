package txn

import "github.com/go-theft-craft/worldgen/pkg/world"

type testLevel string

func (l testLevel) Path() string { return string(l) }

type testChunk struct {
	pos    world.ChunkPos
	level  world.Level
	blocks map[[3]int]world.BlockState
	dirty  bool
}

func newTestChunk(pos world.ChunkPos, level world.Level) *testChunk {
	return &testChunk{pos: pos, level: level, blocks: make(map[[3]int]world.BlockState)}
}

func (c *testChunk) Pos() world.ChunkPos                      { return c.pos }
func (c *testChunk) Level() world.Level                       { return c.level }
func (c *testChunk) Block(x, y, z int) world.BlockState       { return c.blocks[[3]int{x, y, z}] }
func (c *testChunk) SetBlock(x, y, z int, b world.BlockState) { c.blocks[[3]int{x, y, z}] = b }
func (c *testChunk) Biome(_, _ int) world.BiomeID             { return 0 }
func (c *testChunk) SetBiome(_, _ int, _ world.BiomeID)       {}
func (c *testChunk) MarkDirty()                               { c.dirty = true }

// testRegistry maps names to states; data is added to the state.
type testRegistry map[string]world.BlockState

func (r testRegistry) Block(name string, data uint16) (world.BlockState, error) {
	b, ok := r[name]
	if !ok {
		return world.Air, world.ErrUnknownBlock
	}
	return b + world.BlockState(data), nil
}

func (r testRegistry) Biome(string) (world.BiomeID, error) { return 0, nil }

var blocks = testRegistry{"stone": 16, "leaves": 288, "log": 272}

// memQueue records enqueued elements.
type memQueue map[world.ChunkPos][]Element

func (q memQueue) Enqueue(pos world.ChunkPos, elems []Element) error {
	q[pos] = append(q[pos], elems...)
	return nil
}
