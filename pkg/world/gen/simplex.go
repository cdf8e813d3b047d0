package gen

// Simplex noise after Ken Perlin's algorithm, built on a permutation table
// shuffled by a Random. Samples are roughly in [-1, 1].

// grad3 are gradient vectors for simplex noise.
var grad3 = [12][3]float32{
	{1, 1, 0},
	{-1, 1, 0},
	{1, -1, 0},
	{-1, -1, 0},
	{1, 0, 1},
	{-1, 0, 1},
	{1, 0, -1},
	{-1, 0, -1},
	{0, 1, 1},
	{0, -1, 1},
	{0, 1, -1},
	{0, -1, -1},
}

const (
	permSize = 256

	// shuffledSlots is how many leading slots the shuffle touches.
	shuffledSlots = 245
)

var (
	sqrt3 float32 = 1.7320508075689

	f2  = 0.5 * (sqrt3 - 1)
	g2  = (3 - sqrt3) / 6
	g22 = g2*2 - 1

	f3 float32 = 1.0 / 3.0
	g3 float32 = 1.0 / 6.0
)

// Simplex is a seeded simplex noise sampler. It is immutable after
// construction and safe for concurrent use.
type Simplex struct {
	offsetX, offsetY, offsetZ float32

	// perm holds a permutation of 0..255 twice, so lookups never wrap.
	perm [permSize * 2]int
}

// NewSimplex draws offsets and a permutation table from r. It consumes the
// same number of draws in the same order as the legacy generator, but the
// drawn slot values are discarded and the table starts as the identity, so
// sampled values differ from worlds made with the legacy non-bijective table.
func NewSimplex(r *Random) *Simplex {
	s := &Simplex{}
	s.offsetX = r.NextFloat() * 256
	s.offsetY = r.NextFloat() * 256
	s.offsetZ = r.NextFloat() * 256

	// One draw per slot precedes the shuffle. The table itself starts as the
	// identity so the shuffled result is always a permutation.
	for i := range permSize {
		r.NextIntn(permSize)
		s.perm[i] = i
	}
	for i := range shuffledSlots {
		pos := int(r.NextIntn(int32(permSize-i))) + i
		s.perm[i], s.perm[pos] = s.perm[pos], s.perm[i]
	}
	for i := range permSize {
		s.perm[i+permSize] = s.perm[i]
	}

	r.Next()
	return s
}

// Sample2D returns simplex noise at (x, z).
func (s *Simplex) Sample2D(x, z float32) float32 {
	x += s.offsetX
	z += s.offsetY

	// Skew input space to determine the simplex cell.
	sk := (x + z) * f2
	i := fastFloor(x + sk)
	j := fastFloor(z + sk)
	t := float32(i+j) * g2

	x0 := x - (float32(i) - t)
	y0 := z - (float32(j) - t)

	var i1, j1 int
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float32(i1) + g2
	y1 := y0 - float32(j1) + g2
	x2 := x0 + g22
	y2 := y0 + g22

	ii := i & 255
	jj := j & 255

	var n float32

	if ti := 0.5 - x0*x0 - y0*y0; ti > 0 {
		g := &grad3[s.perm[ii+s.perm[jj]]%12]
		n += pow4(ti) * (g[0]*x0 + g[1]*y0)
	}

	if ti := 0.5 - x1*x1 - y1*y1; ti > 0 {
		g := &grad3[s.perm[ii+i1+s.perm[jj+j1]]%12]
		n += pow4(ti) * (g[0]*x1 + g[1]*y1)
	}

	if ti := 0.5 - x2*x2 - y2*y2; ti > 0 {
		g := &grad3[s.perm[ii+1+s.perm[jj+1]]%12]
		n += pow4(ti) * (g[0]*x2 + g[1]*y2)
	}

	return 70 * n
}

// Sample3D returns simplex noise at (x, y, z).
func (s *Simplex) Sample3D(x, y, z float32) float32 {
	x += s.offsetX
	y += s.offsetY
	z += s.offsetZ

	sk := (x + y + z) * f3
	i := fastFloor(x + sk)
	j := fastFloor(y + sk)
	k := fastFloor(z + sk)
	t := float32(i+j+k) * g3

	x0 := x - (float32(i) - t)
	y0 := y - (float32(j) - t)
	z0 := z - (float32(k) - t)

	// Pick the traversal order of the simplex corners.
	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		if y0 >= z0 {
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 1, 0
		} else if x0 >= z0 {
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 0, 1
		} else {
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 1, 0, 1
		}
	} else {
		if y0 < z0 {
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 0, 1, 1
		} else if x0 < z0 {
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 0, 1, 1
		} else {
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 1, 1, 0
		}
	}

	x1 := x0 - float32(i1) + g3
	y1 := y0 - float32(j1) + g3
	z1 := z0 - float32(k1) + g3
	x2 := x0 - float32(i2) + 2*g3
	y2 := y0 - float32(j2) + 2*g3
	z2 := z0 - float32(k2) + 2*g3
	x3 := x0 - 1 + 3*g3
	y3 := y0 - 1 + 3*g3
	z3 := z0 - 1 + 3*g3

	ii := i & 255
	jj := j & 255
	kk := k & 255

	var n float32

	if ti := 0.6 - x0*x0 - y0*y0 - z0*z0; ti > 0 {
		g := &grad3[s.perm[ii+s.perm[jj+s.perm[kk]]]%12]
		n += pow4(ti) * (g[0]*x0 + g[1]*y0 + g[2]*z0)
	}

	if ti := 0.6 - x1*x1 - y1*y1 - z1*z1; ti > 0 {
		g := &grad3[s.perm[ii+i1+s.perm[jj+j1+s.perm[kk+k1]]]%12]
		n += pow4(ti) * (g[0]*x1 + g[1]*y1 + g[2]*z1)
	}

	if ti := 0.6 - x2*x2 - y2*y2 - z2*z2; ti > 0 {
		g := &grad3[s.perm[ii+i2+s.perm[jj+j2+s.perm[kk+k2]]]%12]
		n += pow4(ti) * (g[0]*x2 + g[1]*y2 + g[2]*z2)
	}

	if ti := 0.6 - x3*x3 - y3*y3 - z3*z3; ti > 0 {
		g := &grad3[s.perm[ii+1+s.perm[jj+1+s.perm[kk+1]]]%12]
		n += pow4(ti) * (g[0]*x3 + g[1]*y3 + g[2]*z3)
	}

	return 32 * n
}

func fastFloor(x float32) int {
	xi := int(x)
	if x < float32(xi) {
		return xi - 1
	}
	return xi
}

func pow4(v float32) float32 {
	return v * v * v * v
}
