package world

const (
	ChunkSize = 16
	CoordBits = 4

	MinY   = 0
	MaxY   = 383
	Height = MaxY - MinY + 1
)

// ChunkPos identifies a chunk by its X and Z coordinates.
type ChunkPos struct{ X, Z int32 }

// ChunkPosOf returns the chunk owning the global block column (x, z).
func ChunkPosOf(x, z int) ChunkPos {
	return ChunkPos{X: int32(ChunkCoord(x)), Z: int32(ChunkCoord(z))}
}

// ChunkCoord converts a global block coordinate to its chunk coordinate.
func ChunkCoord(g int) int { return g >> CoordBits }

// LocalCoord converts a global block coordinate to a position inside its chunk.
func LocalCoord(g int) int { return g & (ChunkSize - 1) }

// GlobalCoord is the inverse of ChunkCoord and LocalCoord.
func GlobalCoord(chunk, local int) int { return chunk<<CoordBits + local }

// Contains reports whether the global block column (x, z) belongs to the chunk.
func (p ChunkPos) Contains(x, z int) bool {
	return int32(ChunkCoord(x)) == p.X && int32(ChunkCoord(z)) == p.Z
}

// BlockX returns the global X coordinate of the chunk's local column lx.
func (p ChunkPos) BlockX(lx int) int { return GlobalCoord(int(p.X), lx) }

// BlockZ returns the global Z coordinate of the chunk's local column lz.
func (p ChunkPos) BlockZ(lz int) int { return GlobalCoord(int(p.Z), lz) }
