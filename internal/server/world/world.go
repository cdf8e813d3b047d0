// Package world is an in-memory level that generates chunks on demand and
// routes cross-chunk block transactions between them.
package world

import (
	"context"
	"fmt"
	"hash/maphash"
	"log/slog"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/go-theft-craft/worldgen/internal/genlog"
	"github.com/go-theft-craft/worldgen/pkg/world"
	"github.com/go-theft-craft/worldgen/pkg/world/gen"
	"github.com/go-theft-craft/worldgen/pkg/world/txn"
)

const chunkLockStripes = 64

// EventSink receives one event per generated chunk.
type EventSink interface {
	WriteChunk(e genlog.ChunkEvent) error
}

// World holds generated chunks of one level. Elements queued for chunks that
// do not exist yet are kept in the level's transaction directory and replayed
// when the chunk is generated.
type World struct {
	dir       string
	log       *slog.Logger
	reg       world.Registry
	generator gen.Generator
	store     *txn.FileStore
	events    EventSink

	mu     sync.RWMutex
	chunks map[world.ChunkPos]*Chunk

	flight singleflight.Group
	seed   maphash.Seed
	locks  [chunkLockStripes]sync.Mutex
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger. The default discards output.
func WithLogger(log *slog.Logger) Option {
	return func(w *World) { w.log = log }
}

// WithEvents records an event for every generated chunk.
func WithEvents(sink EventSink) Option {
	return func(w *World) { w.events = sink }
}

// NewWorld creates a World saved under dir.
func NewWorld(dir string, generator gen.Generator, reg world.Registry, opts ...Option) *World {
	w := &World{
		dir:       dir,
		log:       slog.New(slog.DiscardHandler),
		reg:       reg,
		generator: generator,
		chunks:    make(map[world.ChunkPos]*Chunk),
		seed:      maphash.MakeSeed(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.store = txn.NewFileStore(filepath.Join(dir, txn.Dir), w.log)
	return w
}

// Path returns the level directory.
func (w *World) Path() string { return w.dir }

// Store returns the file store holding elements for chunks not generated yet.
func (w *World) Store() *txn.FileStore { return w.store }

// lockChunk serializes enqueue routing and publication of one chunk.
func (w *World) lockChunk(pos world.ChunkPos) func() {
	var h maphash.Hash
	h.SetSeed(w.seed)
	h.WriteString(strconv.Itoa(int(pos.X)))
	h.WriteByte('.')
	h.WriteString(strconv.Itoa(int(pos.Z)))
	mu := &w.locks[h.Sum64()%chunkLockStripes]
	mu.Lock()
	return mu.Unlock
}

// Chunk returns the generated chunk at pos, if any.
func (w *World) Chunk(pos world.ChunkPos) (*Chunk, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	c, ok := w.chunks[pos]
	return c, ok
}

// Len returns the number of generated chunks.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// Enqueue delivers elems to the chunk at pos. A chunk that is already
// generated receives them immediately; otherwise they are appended to the
// chunk's transaction file.
func (w *World) Enqueue(pos world.ChunkPos, elems []txn.Element) error {
	if len(elems) == 0 {
		return nil
	}
	unlock := w.lockChunk(pos)
	defer unlock()

	if c, ok := w.Chunk(pos); ok {
		if err := txn.PlaceAll(c, w.reg, elems); err != nil {
			w.log.Warn("transaction elements not placed", "chunk_x", pos.X, "chunk_z", pos.Z, "error", err)
		}
		return nil
	}
	return w.store.Enqueue(pos, elems)
}

// GetOrGenerateChunk returns the chunk at (cx, cz), generating it first if
// needed. Concurrent callers asking for the same chunk share one generation.
func (w *World) GetOrGenerateChunk(cx, cz int32) (*Chunk, error) {
	pos := world.ChunkPos{X: cx, Z: cz}
	if c, ok := w.Chunk(pos); ok {
		return c, nil
	}

	key := strconv.Itoa(int(cx)) + "." + strconv.Itoa(int(cz))
	v, err, _ := w.flight.Do(key, func() (any, error) {
		if c, ok := w.Chunk(pos); ok {
			return c, nil
		}
		return w.generate(pos)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Chunk), nil
}

// pass is the level a chunk sees while it is generated. It counts the
// elements the generator defers to other chunks.
type pass struct {
	*World
	deferred int
}

func (p *pass) Enqueue(pos world.ChunkPos, elems []txn.Element) error {
	p.deferred += len(elems)
	return p.World.Enqueue(pos, elems)
}

func (w *World) generate(pos world.ChunkPos) (*Chunk, error) {
	start := time.Now()

	p := &pass{World: w}
	c := NewChunk(pos, p)
	if err := w.generator.GenerateChunk(world.NewChunkAccess(c, w.reg), pos.X, pos.Z); err != nil {
		return nil, fmt.Errorf("generate chunk %d,%d: %w", pos.X, pos.Z, err)
	}
	c.level = w

	unlock := w.lockChunk(pos)
	elems, err := w.store.Consume(pos)
	if err != nil {
		unlock()
		return nil, fmt.Errorf("post-process chunk %d,%d: %w", pos.X, pos.Z, err)
	}
	if err := txn.PlaceAll(c, w.reg, elems); err != nil {
		w.log.Warn("transaction elements not placed", "chunk_x", pos.X, "chunk_z", pos.Z, "error", err)
	}
	w.mu.Lock()
	w.chunks[pos] = c
	w.mu.Unlock()
	unlock()

	elapsed := time.Since(start)
	w.log.Debug("chunk generated",
		"chunk_x", pos.X, "chunk_z", pos.Z,
		"replayed", len(elems), "deferred", p.deferred,
		"elapsed", elapsed)

	if w.events != nil {
		e := genlog.ChunkEvent{
			Time:     start.UTC(),
			ChunkX:   pos.X,
			ChunkZ:   pos.Z,
			Elapsed:  elapsed.Microseconds(),
			Sections: c.SectionCount(),
			Replayed: len(elems),
			Deferred: p.deferred,
		}
		if err := w.events.WriteChunk(e); err != nil {
			w.log.Warn("write chunk event", "error", err)
		}
	}
	return c, nil
}

// GetBlock returns the block state at a global position, generating the
// chunk if needed. Positions outside the build height are air.
func (w *World) GetBlock(x, y, z int) (world.BlockState, error) {
	if y < world.MinY || y > world.MaxY {
		return world.Air, nil
	}
	c, err := w.GetOrGenerateChunk(int32(world.ChunkCoord(x)), int32(world.ChunkCoord(z)))
	if err != nil {
		return world.Air, err
	}
	return c.Block(world.LocalCoord(x), y, world.LocalCoord(z)), nil
}

// SetBlock writes a block state at a global position, generating the chunk
// if needed.
func (w *World) SetBlock(x, y, z int, b world.BlockState) error {
	c, err := w.GetOrGenerateChunk(int32(world.ChunkCoord(x)), int32(world.ChunkCoord(z)))
	if err != nil {
		return err
	}
	c.SetBlock(world.LocalCoord(x), y, world.LocalCoord(z), b)
	c.MarkDirty()
	return nil
}

// PreGenerate generates every chunk within radius of (0, 0) using up to
// workers goroutines and returns how many chunks were generated or already
// present. It stops at the first error or when ctx is done.
func (w *World) PreGenerate(ctx context.Context, radius, workers int) (int, error) {
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var (
		mu    sync.Mutex
		count int
	)
loop:
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			if gctx.Err() != nil {
				break loop
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if _, err := w.GetOrGenerateChunk(int32(cx), int32(cz)); err != nil {
					return err
				}
				mu.Lock()
				count++
				mu.Unlock()
				return nil
			})
		}
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	return count, err
}
