package txn

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-theft-craft/worldgen/pkg/world"
)

func TestAddBlockGroupsByChunk(t *testing.T) {
	tx := New()
	tx.AddBlock(1, 64, 1, "stone", 0, true)
	tx.AddBlock(20, 5, 3, "leaves", 0, false)
	tx.AddBlock(2, 64, 2, "log", 0, true)
	tx.AddBlock(-1, 70, 0, "leaves", 0, false)
	tx.AddBlock(31, 6, 15, "leaves", 0, false)

	links := tx.Links()
	if len(links) != 3 {
		t.Fatalf("got %d links, want 3", len(links))
	}
	want := []struct {
		pos   world.ChunkPos
		count int
	}{
		{world.ChunkPos{X: 0, Z: 0}, 2},
		{world.ChunkPos{X: 1, Z: 0}, 2},
		{world.ChunkPos{X: -1, Z: 0}, 1},
	}
	for i, w := range want {
		if links[i].Pos != w.pos || len(links[i].Elements) != w.count {
			t.Errorf("link %d = %v with %d elements, want %v with %d", i, links[i].Pos, len(links[i].Elements), w.pos, w.count)
		}
	}
	if links[0].Elements[1].Block != "log" {
		t.Errorf("insertion order not kept: %+v", links[0].Elements)
	}
	if tx.Len() != 5 {
		t.Errorf("Len() = %d, want 5", tx.Len())
	}
}

func TestApplyPlacesOwnChunkAndDefersOthers(t *testing.T) {
	c := newTestChunk(world.ChunkPos{}, nil)
	c.SetBlock(3, 10, 3, 16)

	tx := New()
	tx.AddBlock(3, 10, 3, "leaves", 0, false) // occupied, skipped
	tx.AddBlock(3, 11, 3, "leaves", 0, false)
	tx.AddBlock(3, 11, 3, "log", 0, true) // later element wins
	tx.AddBlock(20, 5, 3, "leaves", 0, false)

	q := memQueue{}
	if err := tx.ApplyTo(c, blocks, q); err != nil {
		t.Fatalf("ApplyTo: %v", err)
	}

	if got := c.Block(3, 10, 3); got != 16 {
		t.Errorf("occupied block = %d, want 16", got)
	}
	if got := c.Block(3, 11, 3); got != 272 {
		t.Errorf("block at 3,11,3 = %d, want 272 (log)", got)
	}
	if got := c.Block(4, 5, 3); got != world.Air {
		t.Errorf("element for chunk 1,0 placed in chunk 0,0")
	}

	deferred := q[world.ChunkPos{X: 1, Z: 0}]
	if len(deferred) != 1 || deferred[0] != NewElement(20, 5, 3, "leaves", 0, false) {
		t.Errorf("deferred = %+v", deferred)
	}
	if len(q) != 1 {
		t.Errorf("queue has %d chunks, want 1", len(q))
	}
}

func TestApplyContinuesAfterFailure(t *testing.T) {
	c := newTestChunk(world.ChunkPos{}, nil)

	tx := New()
	tx.AddBlock(1, 1, 1, "unobtainium", 0, true)
	tx.AddBlock(2, 2, 2, "stone", 0, true)

	err := tx.ApplyTo(c, blocks, memQueue{})
	if !errors.Is(err, world.ErrUnknownBlock) {
		t.Fatalf("ApplyTo = %v, want ErrUnknownBlock", err)
	}
	if got := c.Block(2, 2, 2); got != 16 {
		t.Errorf("element after failure not placed: got %d", got)
	}
}

func TestApplyThroughAccessUsesLevelFiles(t *testing.T) {
	dir := t.TempDir()
	c := newTestChunk(world.ChunkPos{}, testLevel(dir))
	a := world.NewChunkAccess(c, blocks)

	tx := New()
	tx.AddBlock(20, 5, 3, "leaves", 0, false)
	if err := tx.Apply(a); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "transactions", "1.0"))
	if err != nil {
		t.Fatalf("read transaction file: %v", err)
	}
	if string(raw) != "leaves|4|5|3|0|0\n" {
		t.Errorf("file content = %q", raw)
	}
}

// queueLevel is a level that routes deferred elements itself.
type queueLevel struct {
	memQueue
}

func (queueLevel) Path() string { return "" }

func TestQueueForPrefersLevelQueue(t *testing.T) {
	l := queueLevel{memQueue{}}
	if _, ok := QueueFor(l).(queueLevel); !ok {
		t.Error("QueueFor should return a level implementing Queue")
	}
	fs, ok := QueueFor(testLevel("/tmp/lvl")).(*FileStore)
	if !ok {
		t.Fatal("QueueFor should fall back to a FileStore")
	}
	if fs.Dir() != filepath.Join("/tmp/lvl", "transactions") {
		t.Errorf("FileStore dir = %q", fs.Dir())
	}
}
