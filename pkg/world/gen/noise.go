package gen

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Sampler evaluates a single layer of gradient noise.
type Sampler interface {
	Sample2D(x, z float32) float32
	Sample3D(x, y, z float32) float32
}

// Noise sums several octaves of a Sampler. Layer i is sampled at the input
// scaled by expansion*2^i and weighted by persistence^i.
type Noise struct {
	sampler     Sampler
	octaves     int
	persistence float32
	expansion   float32
}

// NewNoise creates a Noise over s. It panics if octaves < 1.
func NewNoise(s Sampler, octaves int, persistence, expansion float32) *Noise {
	if octaves < 1 {
		panic(fmt.Sprintf("gen: invalid octave count %d", octaves))
	}
	return &Noise{
		sampler:     s,
		octaves:     octaves,
		persistence: persistence,
		expansion:   expansion,
	}
}

// Noise2D returns the octave sum at (x, z). With normalized set the sum is
// divided by the total amplitude, keeping the result within the range of a
// single layer.
func (n *Noise) Noise2D(x, z float32, normalized bool) float32 {
	var result, total float32
	amp, freq := float32(1), float32(1)

	x *= n.expansion
	z *= n.expansion

	for range n.octaves {
		result += n.sampler.Sample2D(x*freq, z*freq) * amp
		total += amp
		freq *= 2
		amp *= n.persistence
	}

	if normalized {
		return result / total
	}
	return result
}

// Noise3D is the three dimensional form of Noise2D.
func (n *Noise) Noise3D(x, y, z float32, normalized bool) float32 {
	var result, total float32
	amp, freq := float32(1), float32(1)

	x *= n.expansion
	y *= n.expansion
	z *= n.expansion

	for range n.octaves {
		result += n.sampler.Sample3D(x*freq, y*freq, z*freq) * amp
		total += amp
		freq *= 2
		amp *= n.persistence
	}

	if normalized {
		return result / total
	}
	return result
}

// Sampler kinds accepted by NewSampler.
const (
	KindSimplex     = "simplex"
	KindOpenSimplex = "opensimplex"
	KindPerlin      = "perlin"
)

// NewSampler builds the sampler named by kind, seeding it from r.
func NewSampler(kind string, r *Random) (Sampler, error) {
	switch kind {
	case KindSimplex, "":
		return NewSimplex(r), nil
	case KindOpenSimplex:
		return NewOpenSimplex(r), nil
	case KindPerlin:
		return NewPerlin(r), nil
	default:
		return nil, fmt.Errorf("unknown noise kind %q", kind)
	}
}

// OpenSimplex samples github.com/ojrac/opensimplex-go.
type OpenSimplex struct {
	n opensimplex.Noise
}

// NewOpenSimplex seeds an OpenSimplex sampler with the next draw from r.
func NewOpenSimplex(r *Random) *OpenSimplex {
	return &OpenSimplex{n: opensimplex.New(int64(r.NextSignedInt()))}
}

func (o *OpenSimplex) Sample2D(x, z float32) float32 {
	return float32(o.n.Eval2(float64(x), float64(z)))
}

func (o *OpenSimplex) Sample3D(x, y, z float32) float32 {
	return float32(o.n.Eval3(float64(x), float64(y), float64(z)))
}

// Perlin samples classic Perlin noise from github.com/aquilax/go-perlin.
// Octaves are layered by Noise, so the library is asked for a single one.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin seeds a Perlin sampler with the next draw from r.
func NewPerlin(r *Random) *Perlin {
	return &Perlin{p: perlin.NewPerlin(2, 2, 1, int64(r.NextSignedInt()))}
}

func (p *Perlin) Sample2D(x, z float32) float32 {
	return float32(p.p.Noise2D(float64(x), float64(z)))
}

func (p *Perlin) Sample3D(x, y, z float32) float32 {
	return float32(p.p.Noise3D(float64(x), float64(y), float64(z)))
}
