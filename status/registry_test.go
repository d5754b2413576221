package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("frames")
	b := r.Ints.Get("frames")
	if a != b {
		t.Fatal("Get returned different cells for the same key")
	}
	a.Add(3)
	if got := b.Load(); got != 3 {
		t.Errorf("Load = %d, want 3", got)
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewRegistry().Ints
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("bolts").Add(1)
		}()
	}
	wg.Wait()
	if got := m.Get("bolts").Load(); got != 16 {
		t.Errorf("bolts = %d, want 16", got)
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}

func TestAtomicFloatAdd(t *testing.T) {
	var f AtomicFloat
	f.Set(1.5)
	if got := f.Add(2.25); got != 3.75 {
		t.Errorf("Add = %v, want 3.75", got)
	}
	if got := f.Get(); got != 3.75 {
		t.Errorf("Get = %v, want 3.75", got)
	}
}

func TestRegistryLine(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("respans").Store(7)
	r.Ints.Get("bolts").Store(36)
	r.Floats.Get("frame_ms").Set(1.234)

	want := "bolts=36 respans=7 frame_ms=1.23"
	if got := r.Line(); got != want {
		t.Errorf("Line = %q, want %q", got, want)
	}
	if r.TotalCount() != 3 {
		t.Errorf("TotalCount = %d, want 3", r.TotalCount())
	}
}
