package rings

import "math"

const (
	// minTailArc floors degenerate tail arcs before the division in
	// Paint.
	minTailArc = 1e-6

	// arcBoundaryEpsilon widens the lit-arc cutoff slightly so the
	// point sitting exactly on the boundary does not flicker between
	// frames.
	arcBoundaryEpsilon = 1e-6

	tau = 2 * math.Pi
)

// Field owns one ring's geometry and color buffer. The angle layout is
// fixed at construction; Paint rewrites the color buffer every frame
// with a directional intensity gradient trailing backward from the
// head angle.
type Field struct {
	spec           RingSpec
	falloffPower   float64
	thicknessScale float64

	angles []float64 // point angles in [0, tau), evenly spaced, index-stable
	colors []float64 // RGB triples, stride 3, channels in [0,1]
	dirty  bool
}

// NewField builds the ring's point layout from spec and zeroes the
// color buffer so the ring starts invisible. Out-of-range spec values
// are floored rather than rejected.
func NewField(spec RingSpec) *Field {
	if spec.PointCount < 3 {
		spec.PointCount = 3
	}
	if spec.Radius <= 0 {
		spec.Radius = 1
	}
	if spec.Thickness <= 0 {
		spec.Thickness = 0.1
	}
	f := &Field{
		spec:           spec,
		falloffPower:   spec.FalloffPower(),
		thicknessScale: 1,
		angles:         make([]float64, spec.PointCount),
		colors:         make([]float64, spec.PointCount*3),
	}
	step := tau / float64(spec.PointCount)
	for i := range f.angles {
		f.angles[i] = float64(i) * step
	}
	return f
}

// Paint rewrites the color buffer for a head at headAngle with a lit
// arc of tailArcRadians trailing behind it. Points inside the arc ramp
// from full intensity at the head down to tailFloor at the far end,
// shaped by the ring's falloff power; points outside go dark. All
// inputs are clamped or floored, never rejected, and every written
// channel lands in [0,1].
func (f *Field) Paint(headAngle, tailArcRadians, intensityScale, tailFloor float64) {
	if tailArcRadians < minTailArc {
		tailArcRadians = minTailArc
	}
	if intensityScale < 0 {
		intensityScale = 0
	}
	tailFloor = clamp01(tailFloor)
	head := normalizeAngle(headAngle)

	for i, a := range f.angles {
		// Angular distance from the head back to this point,
		// following the direction of time's motion.
		deltaBack := head - a
		if deltaBack < 0 {
			deltaBack += tau
		}

		var intensity float64
		if deltaBack <= tailArcRadians+arcBoundaryEpsilon {
			t := 1 - deltaBack/tailArcRadians
			if t < 0 {
				t = 0
			}
			shaped := math.Pow(t, f.falloffPower)
			intensity = clamp01((tailFloor + (1-tailFloor)*shaped) * intensityScale)
		}

		f.colors[i*3+0] = f.spec.BaseColor[0] * intensity
		f.colors[i*3+1] = f.spec.BaseColor[1] * intensity
		f.colors[i*3+2] = f.spec.BaseColor[2] * intensity
	}
	f.dirty = true
}

// SetThicknessScale rescales the presentation-size hint. Geometry and
// colors are untouched. Non-positive scales are floored.
func (f *Field) SetThicknessScale(scale float64) {
	if scale <= 0 {
		scale = 1e-3
	}
	f.thicknessScale = scale
}

// Angles returns the fixed point layout. Callers must not mutate it.
func (f *Field) Angles() []float64 { return f.angles }

// Colors returns the live color buffer, stride 3. Callers must not
// mutate it; it is rewritten by every Paint.
func (f *Field) Colors() []float64 { return f.colors }

// PointCount returns the number of points on the ring.
func (f *Field) PointCount() int { return len(f.angles) }

// Radius returns the ring's world-unit radius.
func (f *Field) Radius() float64 { return f.spec.Radius }

// SizeHint returns the scaled world-unit thickness used for on-screen
// point size.
func (f *Field) SizeHint() float64 { return f.spec.Thickness * f.thicknessScale }

// Dirty reports whether the buffer changed since ClearDirty.
func (f *Field) Dirty() bool { return f.dirty }

// ClearDirty is called by the host renderer after it consumed the
// buffer.
func (f *Field) ClearDirty() { f.dirty = false }

// normalizeAngle maps any angle into [0, tau).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, tau)
	if a < 0 {
		a += tau
	}
	return a
}
