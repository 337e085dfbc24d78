package rings

// Falloff shape inputs in [0,1] map linearly onto this power range.
// Higher powers concentrate brightness near the head of the trail.
const (
	MinFalloffPower = 1.2
	MaxFalloffPower = 3.0
)

// RingSpec holds one ring's immutable construction parameters.
type RingSpec struct {
	Radius       float64    // world units, > 0
	Thickness    float64    // presentation size hint in world units, > 0
	PointCount   int        // number of sample points on the circle, >= 3
	FalloffShape float64    // 0..1, mapped onto [MinFalloffPower, MaxFalloffPower]
	BaseColor    [3]float64 // RGB channels in [0,1]
}

// FalloffPower returns the intensity shaping exponent derived from
// FalloffShape.
func (s RingSpec) FalloffPower() float64 {
	return MinFalloffPower + (MaxFalloffPower-MinFalloffPower)*clamp01(s.FalloffShape)
}

// RingPreset bundles a ring's spec with its paint-time tuning.
type RingPreset struct {
	Spec      RingSpec
	TailFloor float64 // minimum intensity for lit points, in [0,1)
}

// DefaultPresets returns the built-in hour/minute/second ring tiers,
// outermost first. The tail floors and falloff shapes differ per tier;
// they are tuned by eye and kept as configuration rather than derived.
func DefaultPresets() [3]RingPreset {
	return [3]RingPreset{
		{ // hour: outer, coarse, warm
			Spec: RingSpec{
				Radius:       18,
				Thickness:    0.9,
				PointCount:   720,
				FalloffShape: 0.65,
				BaseColor:    [3]float64{1.0, 0.78, 0.35},
			},
			TailFloor: 0.12,
		},
		{ // minute: middle tier
			Spec: RingSpec{
				Radius:       14,
				Thickness:    0.7,
				PointCount:   540,
				FalloffShape: 0.45,
				BaseColor:    [3]float64{0.35, 0.85, 0.95},
			},
			TailFloor: 0.07,
		},
		{ // second: inner, fine
			Spec: RingSpec{
				Radius:       10,
				Thickness:    0.5,
				PointCount:   360,
				FalloffShape: 0.25,
				BaseColor:    [3]float64{0.75, 0.45, 1.0},
			},
			TailFloor: 0.03,
		},
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
