// Package noise provides seeded fractal noise samplers for terrain generation.
package noise

import (
	"github.com/aquilax/go-perlin"
)

// Perlin fractal parameters. Alpha is the per-octave amplitude divisor,
// beta the per-octave frequency multiplier.
const (
	alpha = 2.0
	beta  = 2.0
)

// Sampler is a deterministic 2D fractal noise source. Two independently
// seeded samplers drive terrain height and per-hex radius so the two
// fields stay visually uncorrelated.
type Sampler struct {
	p     *perlin.Perlin
	scale float64
}

// NewSampler creates a fractal sampler with the given seed, octave count,
// and spatial scale divisor. The same arguments always produce the same
// noise field.
func NewSampler(seed int64, octaves int, scale float64) *Sampler {
	return &Sampler{
		p:     perlin.NewPerlin(alpha, beta, int32(octaves), seed),
		scale: scale,
	}
}

// Sample returns fractal noise in approximately [-1, 1] for a world-space
// position. The position is divided by the sampler's spatial scale before
// sampling.
func (s *Sampler) Sample(x, z float64) float64 {
	return s.p.Noise2D(x/s.scale, z/s.scale)
}

// MapToRange linearly remaps a noise value from [-1, 1] into [min, max].
// Exact at the boundaries: -1 maps to min, +1 to max, 0 to the midpoint.
func MapToRange(noise float64, min, max float32) float32 {
	return min + ((float32(noise)+1.0)/2.0)*(max-min)
}
