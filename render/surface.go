package render

// Surface is a 2D immediate-mode drawing context in float surface units
// Path and style calls mirror an HTML canvas subset; implementations own the pixels
type Surface interface {
	// Size reports the drawable extent in surface units
	Size() (width, height int)

	// Clear resets every pixel to the background color
	Clear()

	// Save pushes the style state, Restore pops it
	Save()
	Restore()

	SetBlendMode(mode BlendMode)
	SetLineWidth(width float64)
	SetStrokeStyle(color RGB, alpha float64)
	SetFillStyle(color RGB, alpha float64)

	// BeginPath discards the current path
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	// Stroke and Fill paint the current path and keep it
	Stroke()
	Fill()
}

// Paint is a color with straight alpha
type Paint struct {
	Color RGB
	Alpha float64
}

// DrawState is the style portion of a Surface saved by Save
type DrawState struct {
	Blend     BlendMode
	LineWidth float64
	Stroke    Paint
	Fill      Paint
}

// DefaultDrawState is canvas-like: opaque white, width 1, source-over
func DefaultDrawState() DrawState {
	return DrawState{
		Blend:     BlendAlpha,
		LineWidth: 1,
		Stroke:    Paint{Color: RGBWhite, Alpha: 1},
		Fill:      Paint{Color: RGBWhite, Alpha: 1},
	}
}

// StateStack implements Save/Restore for Surface implementations
// Restore on an empty stack is a no-op, as on a canvas
type StateStack struct {
	Current DrawState
	saved   []DrawState
}

func NewStateStack() StateStack {
	return StateStack{Current: DefaultDrawState()}
}

func (s *StateStack) Save() {
	s.saved = append(s.saved, s.Current)
}

func (s *StateStack) Restore() {
	n := len(s.saved)
	if n == 0 {
		return
	}
	s.Current = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

// Depth returns the number of saved states
func (s *StateStack) Depth() int {
	return len(s.saved)
}
