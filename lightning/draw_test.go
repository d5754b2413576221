package lightning

import (
	"testing"

	"github.com/lixenwraith/fulgur/render"
	"github.com/lixenwraith/fulgur/vmath"
)

// recordSurface counts paint calls and tracks the style active at each one
type recordSurface struct {
	state   render.StateStack
	strokes []render.DrawState
	fills   []render.DrawState
	moves   int
	lines   int
}

func newRecordSurface() *recordSurface {
	return &recordSurface{state: render.NewStateStack()}
}

func (r *recordSurface) Size() (int, int)                { return 100, 100 }
func (r *recordSurface) Clear()                          {}
func (r *recordSurface) Save()                           { r.state.Save() }
func (r *recordSurface) Restore()                        { r.state.Restore() }
func (r *recordSurface) SetBlendMode(m render.BlendMode) { r.state.Current.Blend = m }
func (r *recordSurface) SetLineWidth(w float64)          { r.state.Current.LineWidth = w }
func (r *recordSurface) SetStrokeStyle(c render.RGB, a float64) {
	r.state.Current.Stroke = render.Paint{Color: c, Alpha: a}
}
func (r *recordSurface) SetFillStyle(c render.RGB, a float64) {
	r.state.Current.Fill = render.Paint{Color: c, Alpha: a}
}
func (r *recordSurface) BeginPath()          {}
func (r *recordSurface) MoveTo(x, y float64) { r.moves++ }
func (r *recordSurface) LineTo(x, y float64) { r.lines++ }
func (r *recordSurface) ClosePath()          {}
func (r *recordSurface) Stroke()             { r.strokes = append(r.strokes, r.state.Current) }
func (r *recordSurface) Fill()               { r.fills = append(r.fills, r.state.Current) }

func TestDrawStrokesTreeWithGlow(t *testing.T) {
	f := NewForest(nil, 3)
	root := f.NewRoot(vmath.V2(0, 0), vmath.V2(90, 0), 5)
	f.SetChildCount(root, 2)

	style := DefaultStyle()
	f.Update(root, style)

	s := newRecordSurface()
	f.Draw(s, root, style)

	if len(s.strokes) != 3 || len(s.fills) != 3 {
		t.Fatalf("strokes=%d fills=%d, want 3 each", len(s.strokes), len(s.fills))
	}
	for _, fill := range s.fills {
		if fill.Blend != render.BlendAdd {
			t.Errorf("glow blend = %v, want add", fill.Blend)
		}
		if fill.Fill.Alpha != style.GlowAlpha {
			t.Errorf("glow alpha = %v, want %v", fill.Fill.Alpha, style.GlowAlpha)
		}
	}

	// Root stroke first, children after with narrower lower bound
	if w := s.strokes[0].LineWidth; w < style.LineWidth || w > 12 {
		t.Errorf("root stroke width %v outside [%v, 12]", w, style.LineWidth)
	}
	for _, st := range s.strokes[1:] {
		if w := st.LineWidth; w < style.Child().LineWidth || w > 12 {
			t.Errorf("child stroke width %v outside [%v, 12]", w, style.Child().LineWidth)
		}
	}

	if s.state.Depth() != 0 {
		t.Errorf("unbalanced Save/Restore, depth %d", s.state.Depth())
	}
}

func TestDrawWithoutGlow(t *testing.T) {
	f := NewForest(nil, 5)
	root := f.NewRoot(vmath.V2(0, 0), vmath.V2(50, 50), 4)
	style := DefaultStyle()
	style.GlowRadius = 0
	f.Update(root, style)

	s := newRecordSurface()
	f.Draw(s, root, style)
	if len(s.fills) != 0 {
		t.Errorf("fills = %d, want 0", len(s.fills))
	}
	if len(s.strokes) != 1 || s.moves != 1 || s.lines != 4 {
		t.Errorf("strokes=%d moves=%d lines=%d, want 1/1/4", len(s.strokes), s.moves, s.lines)
	}
}

func TestDrawSkipsUnupdatedBolts(t *testing.T) {
	f := NewForest(nil, 7)
	root := f.NewRoot(vmath.V2(0, 0), vmath.V2(50, 0), 4)
	s := newRecordSurface()
	f.Draw(s, root, DefaultStyle())
	if len(s.strokes) != 0 {
		t.Errorf("strokes = %d, want 0 before first Update", len(s.strokes))
	}
}
