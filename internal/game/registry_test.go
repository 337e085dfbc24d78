package game

import "testing"

type fakePointSet struct {
	name  string
	dirty bool
}

func (f *fakePointSet) Angles() []float64 { return nil }
func (f *fakePointSet) Colors() []float64 { return nil }
func (f *fakePointSet) Radius() float64   { return 1 }
func (f *fakePointSet) SizeHint() float64 { return 1 }
func (f *fakePointSet) Dirty() bool       { return f.dirty }
func (f *fakePointSet) ClearDirty()       { f.dirty = false }

// TestRegistry_VisitsInRegistrationOrder tests the stable iteration
// order the renderer relies on for consistent layering.
func TestRegistry_VisitsInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	a := &fakePointSet{name: "a"}
	b := &fakePointSet{name: "b"}
	c := &fakePointSet{name: "c"}
	r.Register(a)
	r.Register(b)
	r.Register(c)

	var seen []string
	r.Each(func(ps PointSet) {
		seen = append(seen, ps.(*fakePointSet).name)
	})
	if len(seen) != 3 || seen[0] != "a" || seen[1] != "b" || seen[2] != "c" {
		t.Errorf("Expected a, b, c order, got %v", seen)
	}
}

// TestRegistry_RemoveTearsDownOneSet tests removal by handle.
func TestRegistry_RemoveTearsDownOneSet(t *testing.T) {
	r := NewRegistry()
	a := &fakePointSet{name: "a"}
	b := &fakePointSet{name: "b"}
	ha := r.Register(a)
	hb := r.Register(b)
	if ha == hb {
		t.Fatal("Expected distinct handles")
	}

	r.Remove(ha)
	if r.Len() != 1 {
		t.Fatalf("Expected one set left, got %d", r.Len())
	}
	r.Each(func(ps PointSet) {
		if ps.(*fakePointSet).name != "b" {
			t.Errorf("Wrong set removed: %s", ps.(*fakePointSet).name)
		}
	})

	// Unknown handles are ignored.
	r.Remove("nope")
	r.Remove(ha)
	if r.Len() != 1 {
		t.Errorf("Expected removal of unknown handles to be a no-op, got %d", r.Len())
	}
}
