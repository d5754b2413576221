package render

import (
	"testing"

	"github.com/lixenwraith/fulgur/vmath"
)

func TestPathSubpaths(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.MoveTo(5, 5)
	p.LineTo(6, 6)
	p.LineTo(7, 5)
	p.Close()

	sps := p.Subpaths()
	if len(sps) != 2 {
		t.Fatalf("subpaths = %d, want 2", len(sps))
	}
	if len(sps[0].Points) != 2 || sps[0].Closed {
		t.Errorf("first subpath = %+v", sps[0])
	}
	if len(sps[1].Points) != 3 || !sps[1].Closed {
		t.Errorf("second subpath = %+v", sps[1])
	}
}

func TestPathLineToWithoutMoveTo(t *testing.T) {
	var p Path
	p.LineTo(3, 4)
	sps := p.Subpaths()
	if len(sps) != 1 || sps[0].Points[0] != vmath.V2(3, 4) {
		t.Errorf("subpaths = %+v, want single point at (3,4)", sps)
	}
}

func TestPathLineToAfterClose(t *testing.T) {
	var p Path
	p.MoveTo(1, 1)
	p.LineTo(2, 1)
	p.Close()
	p.LineTo(9, 9)

	sps := p.Subpaths()
	if len(sps) != 2 {
		t.Fatalf("subpaths = %d, want 2", len(sps))
	}
	want := []vmath.Vec2{vmath.V2(1, 1), vmath.V2(9, 9)}
	for i, pt := range want {
		if sps[1].Points[i] != pt {
			t.Errorf("points[%d] = %v, want %v", i, sps[1].Points[i], pt)
		}
	}
}

func TestPathResetReusesStorage(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(1, 1)
	p.Close()
	p.Reset()
	if len(p.Subpaths()) != 0 {
		t.Fatal("Reset left subpaths")
	}
	p.MoveTo(2, 2)
	sps := p.Subpaths()
	if len(sps) != 1 || len(sps[0].Points) != 1 || sps[0].Closed {
		t.Errorf("after reuse = %+v", sps)
	}
}
