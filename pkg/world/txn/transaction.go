package txn

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-theft-craft/worldgen/pkg/world"
)

// Dir is the directory inside a level's save path holding pending files.
const Dir = "transactions"

// Queue accepts elements for chunks that are not being generated right now.
type Queue interface {
	Enqueue(pos world.ChunkPos, elems []Element) error
}

// QueueFor returns the queue of level. A level implementing Queue is used
// as is; otherwise elements go to a FileStore under the level's save path.
func QueueFor(level world.Level) Queue {
	if q, ok := level.(Queue); ok {
		return q
	}
	return NewFileStore(filepath.Join(level.Path(), Dir), nil)
}

// Link holds the elements of a transaction targeting one chunk, in the
// order they were added.
type Link struct {
	Pos      world.ChunkPos
	Elements []Element
}

// Transaction collects block placements across chunks during a generation
// pass. It is not safe for concurrent use.
type Transaction struct {
	links []*Link
}

// New creates an empty Transaction.
func New() *Transaction {
	return &Transaction{}
}

// AddBlock records a placement of block at the global position (x, y, z).
func (t *Transaction) AddBlock(x, y, z int, block string, data uint16, force bool) {
	pos := world.ChunkPosOf(x, z)
	e := NewElement(x, y, z, block, data, force)

	for _, l := range t.links {
		if l.Pos == pos {
			l.Elements = append(l.Elements, e)
			return
		}
	}
	t.links = append(t.links, &Link{Pos: pos, Elements: []Element{e}})
}

// Links returns the per-chunk element groups in creation order.
func (t *Transaction) Links() []*Link {
	return t.links
}

// Len returns the number of recorded elements.
func (t *Transaction) Len() int {
	n := 0
	for _, l := range t.links {
		n += len(l.Elements)
	}
	return n
}

// Apply places the elements targeting a's chunk immediately, in insertion
// order, and hands every other link to the level's queue. Failures of single
// elements do not stop the rest; they are returned joined.
func (t *Transaction) Apply(a *world.ChunkAccess) error {
	return t.ApplyTo(a.Chunk(), a.Registry(), QueueFor(a.Level()))
}

// ApplyTo is Apply with an explicit chunk, registry and queue.
func (t *Transaction) ApplyTo(c world.LevelChunk, reg world.Registry, q Queue) error {
	pos := c.Pos()
	var errs []error
	for _, l := range t.links {
		if l.Pos != pos {
			if err := q.Enqueue(l.Pos, l.Elements); err != nil {
				errs = append(errs, fmt.Errorf("defer %d elements to chunk %d,%d: %w", len(l.Elements), l.Pos.X, l.Pos.Z, err))
			}
			continue
		}
		if err := PlaceAll(c, reg, l.Elements); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
