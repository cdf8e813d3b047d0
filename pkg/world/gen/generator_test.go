package gen

import (
	"errors"
	"testing"

	"github.com/go-theft-craft/worldgen/pkg/gamedata"
	"github.com/go-theft-craft/worldgen/pkg/world"
	"github.com/go-theft-craft/worldgen/pkg/world/txn"
)

// queueLevel records elements deferred to other chunks.
type queueLevel struct {
	queued map[world.ChunkPos][]txn.Element
}

func (l *queueLevel) Path() string { return "" }

func (l *queueLevel) Enqueue(pos world.ChunkPos, elems []txn.Element) error {
	l.queued[pos] = append(l.queued[pos], elems...)
	return nil
}

type memChunk struct {
	pos    world.ChunkPos
	level  world.Level
	blocks map[[3]int]world.BlockState
	biomes [world.ChunkSize * world.ChunkSize]world.BiomeID
	dirty  bool
}

func newMemChunk(pos world.ChunkPos, level world.Level) *memChunk {
	return &memChunk{pos: pos, level: level, blocks: make(map[[3]int]world.BlockState)}
}

func (c *memChunk) Pos() world.ChunkPos                      { return c.pos }
func (c *memChunk) Level() world.Level                       { return c.level }
func (c *memChunk) Block(x, y, z int) world.BlockState       { return c.blocks[[3]int{x, y, z}] }
func (c *memChunk) SetBlock(x, y, z int, b world.BlockState) { c.blocks[[3]int{x, y, z}] = b }
func (c *memChunk) Biome(x, z int) world.BiomeID             { return c.biomes[z*world.ChunkSize+x] }
func (c *memChunk) SetBiome(x, z int, b world.BiomeID)       { c.biomes[z*world.ChunkSize+x] = b }
func (c *memChunk) MarkDirty()                               { c.dirty = true }

func TestNewUnknownKind(t *testing.T) {
	if _, err := New("amplified", 0, gamedata.MustVanilla(), DefaultOptions()); err == nil {
		t.Error("New with an unknown kind should fail")
	}
}

func TestNewSurfaceGeneratorErrors(t *testing.T) {
	reg := gamedata.MustVanilla()

	opts := DefaultOptions()
	opts.Surface = "no_such_block"
	if _, err := NewSurfaceGenerator(1, reg, opts); !errors.Is(err, world.ErrUnknownBlock) {
		t.Errorf("unknown surface block: err = %v, want ErrUnknownBlock", err)
	}

	opts = DefaultOptions()
	opts.Biome = "no_such_biome"
	if _, err := NewSurfaceGenerator(1, reg, opts); !errors.Is(err, world.ErrUnknownBiome) {
		t.Errorf("unknown biome: err = %v, want ErrUnknownBiome", err)
	}

	opts = DefaultOptions()
	opts.Noise.Octaves = 0
	if _, err := NewSurfaceGenerator(1, reg, opts); err == nil {
		t.Error("zero octaves should fail")
	}

	opts = DefaultOptions()
	opts.Noise.Kind = "value"
	if _, err := NewSurfaceGenerator(1, reg, opts); err == nil {
		t.Error("unknown noise kind should fail")
	}
}

func TestSurfaceGeneratorNoiseKinds(t *testing.T) {
	reg := gamedata.MustVanilla()
	for _, kind := range []string{KindSimplex, KindOpenSimplex, KindPerlin} {
		t.Run(kind, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Noise.Kind = kind
			g, err := NewSurfaceGenerator(99, reg, opts)
			if err != nil {
				t.Fatalf("NewSurfaceGenerator: %v", err)
			}
			c := newMemChunk(world.ChunkPos{X: 2, Z: -1}, &queueLevel{})
			a := world.NewChunkAccess(c, reg)
			if err := g.GenerateChunk(a, 2, -1); err != nil {
				t.Fatalf("GenerateChunk: %v", err)
			}
			if !c.dirty {
				t.Error("chunk not marked dirty")
			}
			bedrock, _ := reg.Block("bedrock", 0)
			for lx := range world.ChunkSize {
				for lz := range world.ChunkSize {
					if c.Block(lx, 0, lz) != bedrock || c.Block(lx, 1, lz) != bedrock {
						t.Fatalf("column %d,%d: missing bedrock floor", lx, lz)
					}
					if top := a.HighestBlockAt(lx, lz); top < opts.WaterLevel {
						t.Fatalf("column %d,%d: top %d below water level", lx, lz, top)
					}
				}
			}
		})
	}
}

func TestFlatGenerator(t *testing.T) {
	reg := gamedata.MustVanilla()
	g, err := NewFlatGenerator(reg, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	c := newMemChunk(world.ChunkPos{X: -1, Z: 0}, &queueLevel{})
	if err := g.GenerateChunk(world.NewChunkAccess(c, reg), -1, 0); err != nil {
		t.Fatal(err)
	}

	want := []string{"bedrock", "stone", "stone", "dirt", "grass"}
	for y, name := range want {
		b, _ := reg.Block(name, 0)
		if got := c.Block(7, y, 7); got != b {
			t.Errorf("y=%d: got %d, want %s (%d)", y, got, name, b)
		}
	}
	if got := c.Block(7, len(want), 7); got != world.Air {
		t.Errorf("y=%d: got %d, want air", len(want), got)
	}
}

func TestTreeDecoratorDefersCanopy(t *testing.T) {
	reg := gamedata.MustVanilla()
	grass, _ := reg.Block("grass", 0)
	logBlock, _ := reg.Block("log", 0)

	opts := DefaultOptions().Trees
	opts.PerChunk = 6
	td, err := NewTreeDecorator(reg, grass, opts)
	if err != nil {
		t.Fatal(err)
	}

	pos := world.ChunkPos{X: 3, Z: 3}
	level := &queueLevel{queued: map[world.ChunkPos][]txn.Element{}}
	c := newMemChunk(pos, level)
	a := world.NewChunkAccess(c, reg)
	for lx := range world.ChunkSize {
		for lz := range world.ChunkSize {
			a.SetBlockAt(pos.BlockX(lx), 64, pos.BlockZ(lz), grass)
		}
	}

	if err := td.Decorate(a, NewRandom(5)); err != nil {
		t.Fatalf("Decorate: %v", err)
	}

	logs := 0
	for _, b := range c.blocks {
		if b == logBlock {
			logs++
		}
	}
	if logs < 4 {
		t.Errorf("placed %d log blocks, want at least one trunk", logs)
	}

	for target, elems := range level.queued {
		if target == pos {
			t.Errorf("elements for the decorated chunk were queued")
		}
		for _, e := range elems {
			if e.Block != opts.Leaves || e.Force {
				t.Errorf("queued %+v, want non-forced %s", e, opts.Leaves)
			}
			if e.X < 0 || e.X >= world.ChunkSize || e.Z < 0 || e.Z >= world.ChunkSize {
				t.Errorf("queued element %+v has non-local coordinates", e)
			}
		}
	}
}

func TestNewTreeDecoratorUnknownBlock(t *testing.T) {
	opts := DefaultOptions().Trees
	opts.Leaves = "no_such_leaves"
	if _, err := NewTreeDecorator(gamedata.MustVanilla(), 0, opts); !errors.Is(err, world.ErrUnknownBlock) {
		t.Errorf("err = %v, want ErrUnknownBlock", err)
	}
}
