package rings

import "time"

// audioBoostGain scales how strongly a band level lifts its ring's
// intensity: boost = 1 + level*audioBoostGain.
const audioBoostGain = 0.6

// Ring indexes the three tiers, outermost first.
type Ring int

const (
	RingHour Ring = iota
	RingMinute
	RingSecond
)

// PresenceSource supplies the per-ring presence values consumed each
// frame. Satisfied by presence.Model.
type PresenceSource interface {
	ClockPresenceLevels() (hour, minute, second float64)
}

// ControllerConfig collects the construction parameters for a
// Controller.
type ControllerConfig struct {
	Presets [3]RingPreset

	// Presence maps through these arc fractions of the full circle:
	// tailArc = lerp(MinArcFraction, MaxArcFraction, presence) * tau.
	MinArcFraction float64
	MaxArcFraction float64

	// Clock defaults to SystemClock when nil.
	Clock Clock
}

// DefaultControllerConfig returns the built-in presets and arc range.
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		Presets:        DefaultPresets(),
		MinArcFraction: 0.04,
		MaxArcFraction: 0.96,
	}
}

// Controller translates wall-clock time and external modulation
// signals into per-ring paint calls, once per frame. All setters clamp
// rather than reject so the frame loop stays branch-free and
// non-throwing.
type Controller struct {
	fields   [3]*Field
	presets  [3]RingPreset
	presence PresenceSource
	clock    Clock

	minArcFraction float64
	maxArcFraction float64

	globalIntensity float64
	distanceFactor  float64
	audio           [3]float64 // low, mid, high
	mode            Mode
}

// NewController builds the three ring fields from cfg and wires the
// presence source. cfg fractions are clamped into [0,1] and ordered.
func NewController(cfg ControllerConfig, presence PresenceSource) *Controller {
	minFrac := clamp01(cfg.MinArcFraction)
	maxFrac := clamp01(cfg.MaxArcFraction)
	if maxFrac < minFrac {
		minFrac, maxFrac = maxFrac, minFrac
	}
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock()
	}
	c := &Controller{
		presets:         cfg.Presets,
		presence:        presence,
		clock:           clock,
		minArcFraction:  minFrac,
		maxArcFraction:  maxFrac,
		globalIntensity: 1,
		distanceFactor:  1,
		mode:            ModeClassic,
	}
	for i, p := range cfg.Presets {
		c.fields[i] = NewField(p.Spec)
	}
	return c
}

// Update derives the three head angles from the current wall-clock
// reading, queries presence for the tail arcs, and paints each ring.
// dt is not used for time derivation: heads track the real clock so
// the rings stay correct across pause and resume.
func (c *Controller) Update(dt float64) {
	coarse, medium, fine := clockProgress(c.clock.Now())
	angles := [3]float64{coarse * tau, medium * tau, fine * tau}

	ph, pm, ps := c.presence.ClockPresenceLevels()
	levels := [3]float64{clamp01(ph), clamp01(pm), clamp01(ps)}

	baseIntensity := c.globalIntensity * c.distanceFactor
	for i, f := range c.fields {
		tailArc := lerp(c.minArcFraction, c.maxArcFraction, levels[i]) * tau
		boost := 1 + c.audio[i]*audioBoostGain
		f.Paint(angles[i], tailArc, baseIntensity*boost, c.presets[i].TailFloor)
	}
}

// SetGlobalIntensity sets the external brightness multiplier, floored
// at 0.
func (c *Controller) SetGlobalIntensity(v float64) {
	if v < 0 {
		v = 0
	}
	c.globalIntensity = v
}

// SetDistanceFactor sets the camera-distance multiplier, floored at 0.
func (c *Controller) SetDistanceFactor(v float64) {
	if v < 0 {
		v = 0
	}
	c.distanceFactor = v
}

// SetAudioLevels feeds the three band levels, each clamped to [0,1].
// Low boosts the hour ring, mid the minute ring, high the second ring.
func (c *Controller) SetAudioLevels(low, mid, high float64) {
	c.audio[0] = clamp01(low)
	c.audio[1] = clamp01(mid)
	c.audio[2] = clamp01(high)
}

// SetThicknessScale rescales the size hint of all three rings.
func (c *Controller) SetThicknessScale(scale float64) {
	for _, f := range c.fields {
		f.SetThicknessScale(scale)
	}
}

// SetRingThicknessScale rescales a single ring's size hint.
func (c *Controller) SetRingThicknessScale(ring Ring, scale float64) {
	if ring < RingHour || ring > RingSecond {
		return
	}
	c.fields[ring].SetThicknessScale(scale)
}

// SetColorMode selects the gradient palette. Modes other than classic
// are stored and reported but deliberately change nothing yet.
func (c *Controller) SetColorMode(m Mode) { c.mode = m }

// ColorMode returns the current palette selector.
func (c *Controller) ColorMode() Mode { return c.mode }

// Field returns the ring's point field for registration with the host
// renderer.
func (c *Controller) Field(ring Ring) *Field {
	if ring < RingHour || ring > RingSecond {
		return nil
	}
	return c.fields[ring]
}

// clockProgress derives the three head progress fractions in [0,1)
// from t: half-day for the hour ring, hour for the minute ring, minute
// for the second ring. Each is smooth across its unit boundary.
func clockProgress(t time.Time) (coarse, medium, fine float64) {
	sec := float64(t.Second()) + float64(t.Nanosecond())/1e9
	min := float64(t.Minute()) + sec/60
	hour := float64(t.Hour()%12) + min/60
	return hour / 12, min / 60, sec / 60
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
