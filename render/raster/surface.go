// Package raster implements render.Surface over an offscreen gg context
// Used for headless snapshots; pixels are exported as PNG
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/fulgur/render"
)

// Surface draws into a software pixmap, one surface unit per pixel
// The first paint error is kept and reported by Err
type Surface struct {
	dc         *gg.Context
	background render.RGB
	state      render.StateStack
	err        error
}

var _ render.Surface = (*Surface)(nil)

// New allocates a width x height pixmap cleared to background
func New(width, height int, background render.RGB) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	s := &Surface{
		dc:         gg.NewContext(width, height),
		background: background,
		state:      render.NewStateStack(),
	}
	s.Clear()
	return s, nil
}

// Resize reallocates the pixmap, contents are cleared
func (s *Surface) Resize(width, height int) error {
	if err := s.dc.Resize(width, height); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	s.Clear()
	return nil
}

func (s *Surface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

func (s *Surface) Clear() {
	s.dc.ClearWithColor(toRGBA(s.background, 1))
}

func (s *Surface) Save() {
	s.state.Save()
	s.dc.Push()
}

func (s *Surface) Restore() {
	if s.state.Depth() == 0 {
		return
	}
	s.state.Restore()
	s.dc.Pop()
}

func (s *Surface) SetBlendMode(mode render.BlendMode) { s.state.Current.Blend = mode }
func (s *Surface) SetLineWidth(width float64)         { s.state.Current.LineWidth = width }

func (s *Surface) SetStrokeStyle(color render.RGB, alpha float64) {
	s.state.Current.Stroke = render.Paint{Color: color, Alpha: alpha}
}

func (s *Surface) SetFillStyle(color render.RGB, alpha float64) {
	s.state.Current.Fill = render.Paint{Color: color, Alpha: alpha}
}

func (s *Surface) BeginPath()          { s.dc.ClearPath() }
func (s *Surface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.dc.LineTo(x, y) }
func (s *Surface) ClosePath()          { s.dc.ClosePath() }

func (s *Surface) Stroke() {
	st := s.state.Current
	if st.Stroke.Alpha <= 0 || st.LineWidth <= 0 {
		return
	}
	s.composite(st.Blend, func() error {
		c := toRGBA(st.Stroke.Color, st.Stroke.Alpha)
		s.dc.SetRGBA(c.R, c.G, c.B, c.A)
		s.dc.SetLineWidth(st.LineWidth)
		return s.dc.StrokePreserve()
	})
}

func (s *Surface) Fill() {
	st := s.state.Current
	if st.Fill.Alpha <= 0 {
		return
	}
	s.composite(st.Blend, func() error {
		c := toRGBA(st.Fill.Color, st.Fill.Alpha)
		s.dc.SetRGBA(c.R, c.G, c.B, c.A)
		return s.dc.FillPreserve()
	})
}

// composite runs paint inside a screen layer for the lighter modes
// gg has no additive operator; screen is the closest saturating blend
func (s *Surface) composite(mode render.BlendMode, paint func() error) {
	switch mode {
	case render.BlendAdd, render.BlendScreen:
		s.dc.PushLayer(gg.BlendScreen, 1)
		s.record(paint())
		s.dc.PopLayer()
	default:
		s.record(paint())
	}
}

func (s *Surface) record(err error) {
	if err != nil && s.err == nil {
		s.err = fmt.Errorf("raster: paint: %w", err)
	}
}

// Err returns the first paint error since creation
func (s *Surface) Err() error {
	return s.err
}

// Image returns the current pixels
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

// Close releases renderer resources
func (s *Surface) Close() error {
	return s.dc.Close()
}

func toRGBA(c render.RGB, alpha float64) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: alpha,
	}
}
