package gen

import "testing"

func TestRandomKnownSequence(t *testing.T) {
	tests := []struct {
		seed int32
		want [4]int32
	}{
		{0, [4]int32{-593279510, 458299110, -1794094678, -661847888}},
		{42, [4]int32{-603319163, -1156836452, 894261467, 943238602}},
		{-7, [4]int32{638943678, 638943876, 638947756, 638947990}},
	}
	for _, tt := range tests {
		r := NewRandom(tt.seed)
		for i, want := range tt.want {
			if got := r.NextSignedInt(); got != want {
				t.Errorf("seed %d draw %d: got %d, want %d", tt.seed, i, got, want)
			}
		}
	}
}

func TestRandomNextIntMasksSign(t *testing.T) {
	r := NewRandom(0)
	want := []int32{1554204138, 458299110, 353388970, 1485635760}
	for i, w := range want {
		if got := r.NextInt(); got != w {
			t.Errorf("draw %d: NextInt() = %d, want %d", i, got, w)
		}
	}

	r = NewRandom(12345)
	for range 1000 {
		if v := r.NextInt(); v < 0 {
			t.Fatalf("NextInt() = %d, want non-negative", v)
		}
	}
}

func TestRandomNextIntnBiasedModulo(t *testing.T) {
	if got := NewRandom(0).NextIntn(10); got != 8 {
		t.Errorf("seed 0 NextIntn(10) = %d, want 8", got)
	}
	if got := NewRandom(42).NextIntn(10); got != 5 {
		t.Errorf("seed 42 NextIntn(10) = %d, want 5", got)
	}

	a, b := NewRandom(99), NewRandom(99)
	for range 100 {
		if a.NextIntn(7) != b.NextInt()%7 {
			t.Fatal("NextIntn must equal NextInt() % bound")
		}
	}
}

func TestRandomNextIntnPanicsOnBadBound(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NextIntn(0) did not panic")
		}
	}()
	NewRandom(1).NextIntn(0)
}

func TestRandomNextIntRange(t *testing.T) {
	r := NewRandom(7)
	for range 1000 {
		v := r.NextIntRange(-3, 3)
		if v < -3 || v > 3 {
			t.Fatalf("NextIntRange(-3,3) = %d", v)
		}
	}
}

func TestRandomFloats(t *testing.T) {
	r := NewRandom(3)
	for range 1000 {
		if f := r.NextFloat(); f < 0 || f > 1 {
			t.Fatalf("NextFloat() = %f, out of [0,1]", f)
		}
		if f := r.NextSignedFloat(); f < -1 || f > 1 {
			t.Fatalf("NextSignedFloat() = %f, out of [-1,1]", f)
		}
	}

	a, b := NewRandom(5), NewRandom(5)
	if a.NextFloat() != float32(b.NextInt())/float32(2147483647) {
		t.Error("NextFloat must divide NextInt by 2^31-1")
	}
}

func TestRandomNextBoolInvertedBit(t *testing.T) {
	a, b := NewRandom(11), NewRandom(11)
	for range 100 {
		want := b.NextInt()&1 == 0
		if got := a.NextBool(); got != want {
			t.Fatalf("NextBool() = %v, want %v", got, want)
		}
	}
}

func TestRandomSetSeedResets(t *testing.T) {
	r := NewRandom(42)
	first := r.NextSignedInt()
	r.NextSignedInt()
	r.SetSeed(42)
	if got := r.NextSignedInt(); got != first {
		t.Errorf("after SetSeed got %d, want %d", got, first)
	}
	if r.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", r.Seed())
	}
}

func TestChunkSeed(t *testing.T) {
	tests := []struct {
		world, cx, cz int32
		want          int32
	}{
		{42, 0, 0, -559038779},
		{42, 1, 0, -559038523},
		{0, -1, -1, -559038960},
		{42, -3, 5, 559039424},
	}
	for _, tt := range tests {
		if got := ChunkSeed(tt.world, tt.cx, tt.cz); got != tt.want {
			t.Errorf("ChunkSeed(%d,%d,%d) = %d, want %d", tt.world, tt.cx, tt.cz, got, tt.want)
		}
	}
}
