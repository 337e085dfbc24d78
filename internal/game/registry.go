package game

import "github.com/google/uuid"

// PointSet is a renderable circular point layout the host draws every
// frame: fixed angles on a circle of Radius, an RGB triple per point,
// and a uniform on-screen point size from SizeHint. rings.Field
// satisfies it.
type PointSet interface {
	Angles() []float64
	Colors() []float64
	Radius() float64
	SizeHint() float64
	Dirty() bool
	ClearDirty()
}

// Registry tracks the point sets registered for display, in
// registration order, each under an opaque handle.
type Registry struct {
	order []string
	sets  map[string]PointSet
}

func NewRegistry() *Registry {
	return &Registry{sets: make(map[string]PointSet)}
}

// Register adds ps and returns its handle.
func (r *Registry) Register(ps PointSet) string {
	handle := uuid.NewString()
	r.order = append(r.order, handle)
	r.sets[handle] = ps
	return handle
}

// Remove tears down the point set under handle. Unknown handles are
// ignored.
func (r *Registry) Remove(handle string) {
	if _, ok := r.sets[handle]; !ok {
		return
	}
	delete(r.sets, handle)
	for i, h := range r.order {
		if h == handle {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered point sets.
func (r *Registry) Len() int { return len(r.order) }

// Each visits the registered point sets in registration order.
func (r *Registry) Each(fn func(PointSet)) {
	for _, h := range r.order {
		fn(r.sets[h])
	}
}
