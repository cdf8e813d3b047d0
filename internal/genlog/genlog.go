// Package genlog records chunk generation events as zstd-compressed JSON lines.
package genlog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
)

// Dir is the subdirectory of a level that holds event logs.
const Dir = "events"

// ChunkEvent describes one generated chunk.
type ChunkEvent struct {
	Time     time.Time `json:"time"`
	ChunkX   int32     `json:"chunk_x"`
	ChunkZ   int32     `json:"chunk_z"`
	Elapsed  int64     `json:"elapsed_us"`
	Sections int       `json:"sections"`
	Replayed int       `json:"replayed"`
	Deferred int       `json:"deferred"`
}

var errClosed = errors.New("genlog: writer closed")

// Writer appends JSON values, one per line, to a zstd stream.
// It is safe for concurrent use.
type Writer struct {
	path string

	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// Create opens a new log at path, creating parent directories.
func Create(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	return &Writer{
		path: path,
		f:    f,
		enc:  enc,
		w:    bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

// Path returns the file the writer appends to.
func (w *Writer) Path() string { return w.path }

func (w *Writer) Write(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return errClosed
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Close flushes buffered events and closes the file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return nil
	}
	err := w.w.Flush()
	err = errors.Join(err, w.enc.Close(), w.f.Close())
	w.w, w.enc, w.f = nil, nil, nil
	return err
}

// ChunkLogger writes one ChunkEvent per generated chunk.
type ChunkLogger struct{ w *Writer }

// NewChunkLogger creates a log under <levelDir>/events named after the
// current UTC time.
func NewChunkLogger(levelDir string) (*ChunkLogger, error) {
	name := "chunks-" + time.Now().UTC().Format("20060102-150405") + ".jsonl.zst"
	w, err := Create(filepath.Join(levelDir, Dir, name))
	if err != nil {
		return nil, err
	}
	return &ChunkLogger{w: w}, nil
}

func (l *ChunkLogger) WriteChunk(e ChunkEvent) error { return l.w.Write(e) }
func (l *ChunkLogger) Path() string                  { return l.w.Path() }
func (l *ChunkLogger) Close() error                  { return l.w.Close() }

// ReadFile decodes every event of a closed chunk log.
func ReadFile(path string) ([]ChunkEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	var events []ChunkEvent
	jd := json.NewDecoder(dec)
	for {
		var e ChunkEvent
		if err := jd.Decode(&e); err != nil {
			if errors.Is(err, io.EOF) {
				return events, nil
			}
			return events, fmt.Errorf("decode event %d: %w", len(events), err)
		}
		events = append(events, e)
	}
}
