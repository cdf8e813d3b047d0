package world

import "errors"

// BlockState is a block value resolved by the host registry.
type BlockState uint16

// Air is the empty block. Non-forced placements only land on Air.
const Air BlockState = 0

// BiomeID identifies a biome in the host registry.
type BiomeID uint8

var (
	ErrUnknownBlock = errors.New("unknown block")
	ErrUnknownBiome = errors.New("unknown biome")
)

// Level is the world a chunk belongs to.
type Level interface {
	// Path is the directory the level is saved in.
	Path() string
}

// LevelChunk is the host's storage for one chunk column.
// Block coordinates are local: x, z in [0,16), y in [MinY, MaxY].
type LevelChunk interface {
	Pos() ChunkPos
	Level() Level

	Block(x, y, z int) BlockState
	SetBlock(x, y, z int, b BlockState)

	Biome(x, z int) BiomeID
	SetBiome(x, z int, b BiomeID)

	// MarkDirty flags the chunk as modified so the host persists it.
	MarkDirty()
}

// Registry resolves block and biome names to host values.
type Registry interface {
	Block(name string, data uint16) (BlockState, error)
	Biome(name string) (BiomeID, error)
}
