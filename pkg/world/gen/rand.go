package gen

// Xorshift128 seed constants.
const (
	seedX = 123456789
	seedY = 362436069
	seedZ = 521288629
	seedW = 88675123

	int31Mask = 0x7fffffff

	// chunkSeedSalt is mixed into every per-chunk seed.
	chunkSeedSalt = 0xdeadbeef
)

const int31MaxFloat float32 = int31Mask

// Random is a seedable xorshift128 generator. Its output sequence is fully
// determined by the seed and is stable across platforms.
//
// A Random is not safe for concurrent use; derive one per chunk with ChunkSeed.
type Random struct {
	seed       int32
	x, y, z, w uint32
}

// NewRandom creates a Random seeded with seed.
func NewRandom(seed int32) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// ChunkSeed derives the seed used for a single chunk so terrain does not
// depend on the order chunks are generated in.
func ChunkSeed(worldSeed, chunkX, chunkZ int32) int32 {
	return int32(uint32(chunkSeedSalt) ^ uint32(chunkX<<8) ^ uint32(chunkZ) ^ uint32(worldSeed))
}

// SetSeed resets the generator state.
func (r *Random) SetSeed(seed int32) {
	s := seed
	r.seed = s
	r.x = uint32(seedX ^ s)
	r.y = uint32((seedY ^ s<<17) | (s>>15)&int31Mask)
	r.z = uint32((seedZ ^ s<<31) | (s>>1)&int31Mask)
	r.w = uint32((seedW ^ s<<18) | (s>>14)&int31Mask)
}

// Seed returns the seed the generator was last reset with.
func (r *Random) Seed() int32 { return r.seed }

// Next advances the state by one step.
func (r *Random) Next() {
	t := r.x ^ r.x<<11
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = r.w ^ r.w>>19 ^ (t ^ t>>8)
}

// NextSignedInt returns the next raw 32-bit value.
func (r *Random) NextSignedInt() int32 {
	r.Next()
	return int32(r.w)
}

// NextInt returns a value in [0, 2^31-1].
func (r *Random) NextInt() int32 {
	return r.NextSignedInt() & int31Mask
}

// NextIntn returns NextInt() % bound. The result is modulo-biased; worlds
// depend on that exact sequence. It panics if bound < 1.
func (r *Random) NextIntn(bound int32) int32 {
	if bound <= 0 {
		panic("gen: invalid argument to NextIntn")
	}
	return r.NextInt() % bound
}

// NextIntRange returns a value in [lo, hi]. It panics if hi < lo.
func (r *Random) NextIntRange(lo, hi int32) int32 {
	return lo + r.NextIntn(hi+1-lo)
}

// NextFloat returns a value in [0, 1].
func (r *Random) NextFloat() float32 {
	return float32(r.NextInt()) / int31MaxFloat
}

// NextSignedFloat returns a value in [-1, 1].
func (r *Random) NextSignedFloat() float32 {
	return float32(r.NextSignedInt()) / int31MaxFloat
}

// NextBool reports whether the low bit of the next NextInt is zero.
func (r *Random) NextBool() bool {
	return r.NextInt()&1 == 0
}
