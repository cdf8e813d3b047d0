package txn

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"hash/maphash"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/go-theft-craft/worldgen/pkg/world"
)

const lockStripes = 64

// stripes guards the transaction files of one directory.
type stripes struct {
	seed  maphash.Seed
	locks [lockStripes]sync.Mutex
}

// dirStripes maps a cleaned absolute directory to its *stripes, so every
// FileStore over the same directory shares one lock table.
var dirStripes sync.Map

func stripesFor(dir string) *stripes {
	key := filepath.Clean(dir)
	if abs, err := filepath.Abs(key); err == nil {
		key = abs
	}
	if v, ok := dirStripes.Load(key); ok {
		return v.(*stripes)
	}
	v, _ := dirStripes.LoadOrStore(key, &stripes{seed: maphash.MakeSeed()})
	return v.(*stripes)
}

// FileStore keeps pending elements in <dir>/<chunkX>.<chunkZ>, one encoded
// element per line. Appends and consumes of the same chunk are serialized,
// also across stores opened on the same directory.
type FileStore struct {
	dir     string
	log     *slog.Logger
	stripes *stripes
}

// NewFileStore creates a FileStore rooted at dir. A nil log discards output.
func NewFileStore(dir string, log *slog.Logger) *FileStore {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &FileStore{dir: dir, log: log, stripes: stripesFor(dir)}
}

// Dir returns the directory the store writes to.
func (s *FileStore) Dir() string { return s.dir }

// Path returns the file holding the pending elements of pos.
func (s *FileStore) Path(pos world.ChunkPos) string {
	return filepath.Join(s.dir, fileName(pos))
}

func fileName(pos world.ChunkPos) string {
	return strconv.Itoa(int(pos.X)) + "." + strconv.Itoa(int(pos.Z))
}

func (s *FileStore) lock(pos world.ChunkPos) func() {
	var h maphash.Hash
	h.SetSeed(s.stripes.seed)
	h.WriteString(fileName(pos))
	mu := &s.stripes.locks[h.Sum64()%lockStripes]
	mu.Lock()
	return mu.Unlock
}

// Enqueue appends elems to the file of pos, creating it if needed.
func (s *FileStore) Enqueue(pos world.ChunkPos, elems []Element) error {
	if len(elems) == 0 {
		return nil
	}
	unlock := s.lock(pos)
	defer unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create transaction dir: %w", err)
	}

	path := s.Path(pos)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open transaction file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	terminated, err := endsWithNewline(f)
	if err != nil {
		return fmt.Errorf("read transaction file: %w", err)
	}
	if !terminated {
		buf.WriteByte('\n')
	}
	for _, e := range elems {
		buf.WriteString(e.Encode())
		buf.WriteByte('\n')
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("append transaction file: %w", err)
	}

	s.log.Debug("queued transaction elements", "chunk_x", pos.X, "chunk_z", pos.Z, "count", len(elems))
	return nil
}

// endsWithNewline reports whether f is empty or ends with a line break.
// Files written without a final newline are extended on a new line.
func endsWithNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}
	var last [1]byte
	if _, err := f.ReadAt(last[:], info.Size()-1); err != nil {
		return false, err
	}
	return last[0] == '\n', nil
}

// Consume reads and removes the pending elements of pos. A missing file
// yields no elements. Malformed lines are logged and skipped. The file is
// only removed after it was read completely.
func (s *FileStore) Consume(pos world.ChunkPos) ([]Element, error) {
	unlock := s.lock(pos)
	defer unlock()

	path := s.Path(pos)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open transaction file: %w", err)
	}

	elems, err := s.decode(f, pos)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("read transaction file %s: %w", path, err)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("remove transaction file: %w", err)
	}
	return elems, nil
}

func (s *FileStore) decode(r io.Reader, pos world.ChunkPos) ([]Element, error) {
	var elems []Element
	br := bufio.NewReader(r)
	for line := 1; ; line++ {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		text = strings.TrimRight(text, "\r\n")
		if text != "" {
			e, derr := DecodeElement(text)
			if derr != nil {
				s.log.Warn("skipping transaction element",
					"chunk_x", pos.X, "chunk_z", pos.Z, "line", line, "len", len(text), "error", derr)
			} else {
				elems = append(elems, e)
			}
		}
		if err == io.EOF {
			return elems, nil
		}
	}
}

// PostProcess replays the pending elements of c's chunk in file order and
// removes the file. Elements that fail to place are logged and returned
// joined but do not stop the others. It returns the number of elements read.
func (s *FileStore) PostProcess(c world.LevelChunk, reg world.Registry) (int, error) {
	pos := c.Pos()
	elems, err := s.Consume(pos)
	if err != nil {
		return 0, err
	}
	if err := PlaceAll(c, reg, elems); err != nil {
		s.log.Warn("transaction elements not placed", "chunk_x", pos.X, "chunk_z", pos.Z, "error", err)
		return len(elems), err
	}
	return len(elems), nil
}

// Pending lists the chunks that have a transaction file.
func (s *FileStore) Pending() ([]world.ChunkPos, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list transaction dir: %w", err)
	}

	var out []world.ChunkPos
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		pos, ok := parseFileName(e.Name())
		if !ok {
			continue
		}
		out = append(out, pos)
	}
	return out, nil
}

func parseFileName(name string) (world.ChunkPos, bool) {
	xs, zs, ok := strings.Cut(name, ".")
	if !ok {
		return world.ChunkPos{}, false
	}
	x, err := strconv.ParseInt(xs, 10, 32)
	if err != nil {
		return world.ChunkPos{}, false
	}
	z, err := strconv.ParseInt(zs, 10, 32)
	if err != nil {
		return world.ChunkPos{}, false
	}
	return world.ChunkPos{X: int32(x), Z: int32(z)}, true
}
