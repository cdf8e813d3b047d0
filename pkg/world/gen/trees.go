package gen

import (
	"fmt"

	"github.com/go-theft-craft/worldgen/pkg/world"
	"github.com/go-theft-craft/worldgen/pkg/world/txn"
)

// TreeDecorator places oak trees on the surface block. Canopies may reach into
// neighbouring chunks; those leaves are written through a block transaction
// and land once the neighbour is generated.
type TreeDecorator struct {
	perChunk int
	grass    world.BlockState
	log      world.BlockState
	leaves   string
}

// NewTreeDecorator creates a TreeDecorator that plants on grass.
func NewTreeDecorator(reg world.Registry, grass world.BlockState, opts TreeOptions) (*TreeDecorator, error) {
	log, err := reg.Block(opts.Log, 0)
	if err != nil {
		return nil, fmt.Errorf("resolve block %q: %w", opts.Log, err)
	}
	if _, err := reg.Block(opts.Leaves, 0); err != nil {
		return nil, fmt.Errorf("resolve block %q: %w", opts.Leaves, err)
	}
	return &TreeDecorator{
		perChunk: opts.PerChunk,
		grass:    grass,
		log:      log,
		leaves:   opts.Leaves,
	}, nil
}

// Decorate plants trees in the chunk behind a, drawing positions from rng.
func (td *TreeDecorator) Decorate(a *world.ChunkAccess, rng *Random) error {
	pos := a.Pos()
	tx := txn.New()

	for range td.perChunk {
		x := pos.BlockX(int(rng.NextIntn(world.ChunkSize)))
		z := pos.BlockZ(int(rng.NextIntn(world.ChunkSize)))
		trunkHeight := int(rng.NextIntRange(4, 6))

		y := a.HighestBlockAt(x, z)
		if a.BlockAt(x, y, z) != td.grass {
			continue
		}
		if y+trunkHeight+2 > world.MaxY {
			continue
		}
		td.placeOak(a, tx, x, y+1, z, trunkHeight, rng)
	}

	return tx.Apply(a)
}

// placeOak places a trunk in the current column and queues a leaf canopy.
func (td *TreeDecorator) placeOak(a *world.ChunkAccess, tx *txn.Transaction, x, baseY, z, trunkHeight int, rng *Random) {
	for y := baseY; y < baseY+trunkHeight; y++ {
		a.SetBlockAt(x, y, z, td.log)
	}

	leafBase := baseY + trunkHeight - 2
	for dy := range 4 {
		y := leafBase + dy
		radius := 2
		if dy >= 2 {
			radius = 1
		}
		for dx := -radius; dx <= radius; dx++ {
			for dz := -radius; dz <= radius; dz++ {
				if dx == 0 && dz == 0 && y < baseY+trunkHeight {
					continue
				}
				// Skip corners for a round shape on wider layers.
				if radius == 2 && abs(dx) == 2 && abs(dz) == 2 && rng.NextBool() {
					continue
				}
				tx.AddBlock(x+dx, y, z+dz, td.leaves, 0, false)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
