// Package txn defers block placements that target chunks other than the one
// being generated. Pending placements are kept on disk, one file per target
// chunk, and replayed when that chunk is generated.
package txn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-theft-craft/worldgen/pkg/world"
)

// ErrMalformedElement is returned when an encoded element cannot be parsed.
var ErrMalformedElement = errors.New("malformed transaction element")

const (
	fieldSep   = "|"
	fieldCount = 6
)

// Element is one pending block placement. Coordinates are local to the
// target chunk; the chunk itself is tracked by the owning Link.
type Element struct {
	Block string
	X     int8
	Y     int16
	Z     int8
	Data  uint16

	// Force overwrites whatever occupies the destination. Without it the
	// block is only placed on air.
	Force bool
}

// NewElement creates an Element for the global position (x, y, z).
func NewElement(x, y, z int, block string, data uint16, force bool) Element {
	return Element{
		Block: block,
		X:     int8(world.LocalCoord(x)),
		Y:     int16(y),
		Z:     int8(world.LocalCoord(z)),
		Data:  data,
		Force: force,
	}
}

// Encode returns the element as blockId|localX|localY|localZ|tileData|forceFlag.
func (e Element) Encode() string {
	force := "0"
	if e.Force {
		force = "1"
	}
	return strings.Join([]string{
		e.Block,
		strconv.Itoa(int(e.X)),
		strconv.Itoa(int(e.Y)),
		strconv.Itoa(int(e.Z)),
		strconv.Itoa(int(e.Data)),
		force,
	}, fieldSep)
}

// DecodeElement parses a line produced by Encode.
func DecodeElement(line string) (Element, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != fieldCount {
		return Element{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedElement, fieldCount, len(fields))
	}
	if fields[0] == "" {
		return Element{}, fmt.Errorf("%w: empty block id", ErrMalformedElement)
	}

	x, err := strconv.ParseInt(fields[1], 10, 8)
	if err != nil {
		return Element{}, fmt.Errorf("%w: x: %w", ErrMalformedElement, err)
	}
	y, err := strconv.ParseInt(fields[2], 10, 16)
	if err != nil {
		return Element{}, fmt.Errorf("%w: y: %w", ErrMalformedElement, err)
	}
	z, err := strconv.ParseInt(fields[3], 10, 8)
	if err != nil {
		return Element{}, fmt.Errorf("%w: z: %w", ErrMalformedElement, err)
	}
	data, err := strconv.ParseUint(fields[4], 10, 16)
	if err != nil {
		return Element{}, fmt.Errorf("%w: data: %w", ErrMalformedElement, err)
	}
	force, err := strconv.ParseUint(fields[5], 10, 1)
	if err != nil {
		return Element{}, fmt.Errorf("%w: force: %w", ErrMalformedElement, err)
	}

	return Element{
		Block: fields[0],
		X:     int8(x),
		Y:     int16(y),
		Z:     int8(z),
		Data:  uint16(data),
		Force: force == 1,
	}, nil
}

// TryPlace writes the element into c. A non-forced element is skipped
// without error when the destination is not air.
func (e Element) TryPlace(c world.LevelChunk, reg world.Registry) error {
	x, y, z := int(e.X), int(e.Y), int(e.Z)
	if x < 0 || x >= world.ChunkSize || z < 0 || z >= world.ChunkSize || y < world.MinY || y > world.MaxY {
		return fmt.Errorf("place %s at %d,%d,%d: position outside chunk", e.Block, x, y, z)
	}
	if !e.Force && c.Block(x, y, z) != world.Air {
		return nil
	}
	b, err := reg.Block(e.Block, e.Data)
	if err != nil {
		return fmt.Errorf("place %s at %d,%d,%d: %w", e.Block, x, y, z, err)
	}
	c.SetBlock(x, y, z, b)
	return nil
}

// PlaceAll places elems into c in order. A failing element does not stop the
// rest; all failures are returned joined. The chunk is marked dirty when
// there was anything to place.
func PlaceAll(c world.LevelChunk, reg world.Registry, elems []Element) error {
	if len(elems) == 0 {
		return nil
	}
	var errs []error
	for _, e := range elems {
		if err := e.TryPlace(c, reg); err != nil {
			errs = append(errs, err)
		}
	}
	c.MarkDirty()
	return errors.Join(errs...)
}
