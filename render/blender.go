package render

// BlendMode is the composite operation applied by Stroke and Fill
type BlendMode uint8

const (
	BlendAlpha  BlendMode = iota // source-over: Dst = Src*α + Dst*(1-α)
	BlendAdd                     // lighter: Dst = clamp(Dst + Src*α)
	BlendScreen                  // Dst = 1 - (1-Dst)*(1-Src), mixed by α
)

// Apply composites src onto dst with the given coverage-weighted alpha
func (m BlendMode) Apply(dst, src RGB, alpha float64) RGB {
	switch m {
	case BlendAdd:
		return Add(dst, src, alpha)
	case BlendScreen:
		return Screen(dst, src, alpha)
	default:
		return Blend(dst, src, alpha)
	}
}

func (m BlendMode) String() string {
	switch m {
	case BlendAlpha:
		return "alpha"
	case BlendAdd:
		return "add"
	case BlendScreen:
		return "screen"
	default:
		return "unknown"
	}
}
