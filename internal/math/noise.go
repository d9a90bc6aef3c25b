package math

import (
	"time"

	"github.com/drakos74/go-ex-machina/xmath"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source creates a random source for the given seed.
// A zero seed falls back to the current time, runs are then not reproducible.
func Source(seed uint64) rand.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewSource(seed)
}

// Uniform draws values uniformly within [-amplitude, amplitude].
type Uniform struct {
	amplitude float64
	dist      distuv.Uniform
}

// NewUniform creates a new uniform generator on the given source.
func NewUniform(amplitude float64, src rand.Source) Uniform {
	if src == nil {
		src = Source(0)
	}
	return Uniform{
		amplitude: amplitude,
		dist: distuv.Uniform{
			Min: -amplitude,
			Max: amplitude,
			Src: src,
		},
	}
}

// Rand returns the next value.
// A zero amplitude returns 0 and leaves the source untouched.
func (u Uniform) Rand() float64 {
	if u.amplitude == 0 {
		return 0
	}
	return u.dist.Rand()
}

// Vector fills a vector of the given size.
func (u Uniform) Vector(n int) xmath.Vector {
	v := xmath.Vec(n)
	for i := range v {
		v[i] = u.Rand()
	}
	return v
}

// Amplitude returns the half width of the range.
func (u Uniform) Amplitude() float64 {
	return u.amplitude
}
