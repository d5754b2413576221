package raster

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/fulgur/render"
)

func newTestSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s, err := New(w, h, render.RGB{R: 10, G: 20, B: 30})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func rgbAt(t *testing.T, s *Surface, x, y int) (uint8, uint8, uint8) {
	t.Helper()
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

// isBackground tolerates one step of float to 8-bit rounding
func isBackground(r, g, b uint8) bool {
	near := func(v, want uint8) bool { return v+1 >= want && v <= want+1 }
	return near(r, 10) && near(g, 20) && near(b, 30)
}

func TestNewRejectsEmptySize(t *testing.T) {
	if _, err := New(0, 10, render.RGBBlack); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestSurfaceClearsToBackground(t *testing.T) {
	s := newTestSurface(t, 16, 8)
	if w, h := s.Size(); w != 16 || h != 8 {
		t.Fatalf("Size = %dx%d", w, h)
	}
	r, g, b := rgbAt(t, s, 3, 3)
	if !isBackground(r, g, b) {
		t.Errorf("background = (%d,%d,%d), want (10,20,30)", r, g, b)
	}
}

func TestSurfaceFillRect(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	s.SetFillStyle(render.RGB{R: 255}, 1)
	s.BeginPath()
	s.MoveTo(2, 2)
	s.LineTo(18, 2)
	s.LineTo(18, 18)
	s.LineTo(2, 18)
	s.ClosePath()
	s.Fill()
	if err := s.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}

	r, g, b := rgbAt(t, s, 10, 10)
	if r < 240 || g > 15 || b > 15 {
		t.Errorf("inside = (%d,%d,%d), want red", r, g, b)
	}
	r, g, b = rgbAt(t, s, 0, 0)
	if !isBackground(r, g, b) {
		t.Errorf("outside = (%d,%d,%d), want background", r, g, b)
	}
}

func TestSurfaceStrokeLightensAlongLine(t *testing.T) {
	s := newTestSurface(t, 40, 20)
	s.SetBlendMode(render.BlendAdd)
	s.SetLineWidth(6)
	s.SetStrokeStyle(render.RGBWhite, 1)
	s.BeginPath()
	s.MoveTo(0, 10)
	s.LineTo(40, 10)
	s.Stroke()

	r, g, b := rgbAt(t, s, 20, 10)
	if r < 200 || g < 200 || b < 200 {
		t.Errorf("on line = (%d,%d,%d), want near white", r, g, b)
	}
	r, g, b = rgbAt(t, s, 20, 1)
	if !isBackground(r, g, b) {
		t.Errorf("off line = (%d,%d,%d), want background", r, g, b)
	}
}

func TestSurfaceZeroAlphaIsNoop(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.SetStrokeStyle(render.RGBWhite, 0)
	s.BeginPath()
	s.MoveTo(0, 5)
	s.LineTo(10, 5)
	s.Stroke()
	if r, g, b := rgbAt(t, s, 5, 5); !isBackground(r, g, b) {
		t.Errorf("pixel = (%d,%d,%d), want untouched background", r, g, b)
	}
}

func TestSurfaceSaveRestore(t *testing.T) {
	s := newTestSurface(t, 4, 4)
	s.SetLineWidth(3)
	s.Save()
	s.SetLineWidth(9)
	s.Restore()
	if got := s.state.Current.LineWidth; got != 3 {
		t.Errorf("LineWidth after Restore = %v, want 3", got)
	}
	// Unbalanced restore is ignored
	s.Restore()
	if got := s.state.Current.LineWidth; got != 3 {
		t.Errorf("LineWidth after extra Restore = %v, want 3", got)
	}
}

func TestSurfaceSavePNG(t *testing.T) {
	s := newTestSurface(t, 8, 8)
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}
