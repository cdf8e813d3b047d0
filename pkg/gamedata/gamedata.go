// Package gamedata resolves block and biome names for world generation.
package gamedata

import (
	"fmt"

	"github.com/go-theft-craft/worldgen/pkg/world"
)

const (
	maxBlockID = 1<<12 - 1
	maxMeta    = 15
	maxBiomeID = 255
)

// GameData is one version's block and biome tables. It implements
// world.Registry with block states encoded as id<<4 | metadata.
type GameData struct {
	Version string
	Blocks  BlockRegistry
	Biomes  BiomeRegistry
}

// New creates GameData from block and biome lists.
func New(version string, blocks []Block, biomes []Biome) *GameData {
	return &GameData{
		Version: version,
		Blocks:  newBlockTable(blocks),
		Biomes:  newBiomeTable(biomes),
	}
}

// Block resolves name with metadata data to a block state.
func (gd *GameData) Block(name string, data uint16) (world.BlockState, error) {
	b, ok := gd.Blocks.ByName(name)
	if !ok {
		return world.Air, fmt.Errorf("%w: %q", world.ErrUnknownBlock, name)
	}
	if b.ID > maxBlockID {
		return world.Air, fmt.Errorf("block %q: id %d does not fit a block state", name, b.ID)
	}
	if data > maxMeta {
		return world.Air, fmt.Errorf("block %q: metadata %d out of range", name, data)
	}
	return world.BlockState(b.ID<<4 | int(data)), nil
}

// Biome resolves name to a biome id.
func (gd *GameData) Biome(name string) (world.BiomeID, error) {
	b, ok := gd.Biomes.ByName(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", world.ErrUnknownBiome, name)
	}
	if b.ID < 0 || b.ID > maxBiomeID {
		return 0, fmt.Errorf("biome %q: id %d out of range", name, b.ID)
	}
	return world.BiomeID(b.ID), nil
}

// BlockName returns the name of the block stored in state.
func (gd *GameData) BlockName(state world.BlockState) (string, bool) {
	b, ok := gd.Blocks.ByID(int(state >> 4))
	if !ok {
		return "", false
	}
	return b.Name, true
}
