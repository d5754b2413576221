package lightning

import (
	"github.com/lixenwraith/fulgur/parameter"
	"github.com/lixenwraith/fulgur/render"
)

// Style is the per-frame visual state of one bolt
// Recomputed top-down each frame and passed by value; nodes never store it
type Style struct {
	Color      render.RGB
	Alpha      float64
	GlowColor  render.RGB
	GlowAlpha  float64
	GlowRadius float64

	Speed     float64 // phase advance per frame
	Amplitude float64 // jitter band multiplier
	LineWidth float64 // lower bound of the randomized stroke width
}

// DefaultStyle returns the root style built from parameter defaults
func DefaultStyle() Style {
	return Style{
		Color:      render.MustParseHex(parameter.BoltColorHex),
		Alpha:      parameter.BoltAlpha,
		GlowColor:  render.MustParseHex(parameter.BoltGlowColorHex),
		GlowAlpha:  parameter.BoltGlowAlpha,
		GlowRadius: parameter.BoltGlowRadius,
		Speed:      parameter.BoltSpeed,
		Amplitude:  parameter.BoltAmplitude,
		LineWidth:  parameter.BoltLineWidth,
	}
}

// Child derives the style of the next generation
// Colors, glow and amplitude carry over; speed and width scale, compounding per generation
func (s Style) Child() Style {
	c := s
	c.Speed = s.Speed * parameter.ChildSpeedScale
	c.LineWidth = s.LineWidth * parameter.ChildLineWidthScale
	return c
}
