// Package noise provides the smooth 1D scalar field used to jitter bolts
package noise

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/fulgur/parameter"
)

// Source is a deterministic coherent noise field indexed by a single coordinate
// Permutation tables are fixed at construction, sampling has no side effects
type Source struct {
	field opensimplex.Noise
}

// New builds a field from seed, equal seeds yield identical fields
func New(seed int64) *Source {
	return &Source{field: opensimplex.New(seed)}
}

// Sample returns raw noise at x, nominally in [-1, 1]
// The field is 2D; the second axis is held at 0
func (s *Source) Sample(x float64) float64 {
	return s.field.Eval2(x, 0)
}

// Fractal sums parameter.NoiseOctaves octaves of Sample remapped to [0, 1]
// Amplitude halves before each octave, so weights sum to 1-2^-octaves (~0.984)
// Output is not clamped
func (s *Source) Fractal(x float64) float64 {
	amp, freq, sum := 1.0, 1.0, 0.0
	for i := 0; i < parameter.NoiseOctaves; i++ {
		amp *= parameter.NoiseFalloff
		sum += amp * (s.Sample(x*freq) + 1) * 0.5
		freq *= 2
	}
	return sum
}
