// Package presence turns a single observer-presence scalar into a
// staged, sequential three-window fade schedule. As presence drops the
// hour stage fades first, then the minute stage, then the second
// stage; transitions are continuous at the window boundaries and never
// overlap or reorder.
package presence

import "math"

// minFadeSeconds floors the configured window durations so the
// timeline math never divides by zero.
const minFadeSeconds = 1e-3

// GateConfig sets the fade timeline: one window duration per stage
// plus the shared ease exponent.
type GateConfig struct {
	HourFadeSeconds   float64
	MinuteFadeSeconds float64
	SecondFadeSeconds float64
	EasePower         float64
}

// DefaultGateConfig returns the stock 60/30/15 second timeline with a
// quadratic ease.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		HourFadeSeconds:   60,
		MinuteFadeSeconds: 30,
		SecondFadeSeconds: 15,
		EasePower:         1,
	}
}

// clamped forces every duration positive and the ease non-negative.
func (g GateConfig) clamped() GateConfig {
	if g.HourFadeSeconds < minFadeSeconds {
		g.HourFadeSeconds = minFadeSeconds
	}
	if g.MinuteFadeSeconds < minFadeSeconds {
		g.MinuteFadeSeconds = minFadeSeconds
	}
	if g.SecondFadeSeconds < minFadeSeconds {
		g.SecondFadeSeconds = minFadeSeconds
	}
	if g.EasePower < 0 {
		g.EasePower = 0
	}
	return g
}

// GatePatch is a partial GateConfig for merging; nil fields keep the
// current value.
type GatePatch struct {
	HourFadeSeconds   *float64
	MinuteFadeSeconds *float64
	SecondFadeSeconds *float64
	EasePower         *float64
}

// Model holds the presence level and derives the three stage values.
// The level only moves through the explicit setters; the ring layer
// reads from this model and never writes to it.
type Model struct {
	level float64
	gates GateConfig

	overridden [3]bool
	override   [3]float64

	sinceChange float64
}

// NewModel starts fully present with cfg's (clamped) timeline.
func NewModel(cfg GateConfig) *Model {
	return &Model{
		level: 1,
		gates: cfg.clamped(),
	}
}

// Update advances the model's frame clock. The level itself never
// drifts here; the elapsed time only feeds the debug surface.
func (m *Model) Update(dt float64) {
	if dt > 0 {
		m.sinceChange += dt
	}
}

// SetLevel sets the presence level, clamped to [0,1], and restarts the
// change timestamp.
func (m *Model) SetLevel(v float64) {
	m.level = clamp01(v)
	m.sinceChange = 0
}

// Nudge applies a relative adjustment through the same clamp.
func (m *Model) Nudge(delta float64) {
	m.SetLevel(m.level + delta)
}

// Level returns the current presence level.
func (m *Model) Level() float64 { return m.level }

// SecondsSinceChange returns the frame time accumulated since the last
// explicit level change. Debug surface only.
func (m *Model) SecondsSinceChange() float64 { return m.sinceChange }

// SetGates merges the non-nil patch fields into the timeline and
// re-clamps it.
func (m *Model) SetGates(p GatePatch) {
	g := m.gates
	if p.HourFadeSeconds != nil {
		g.HourFadeSeconds = *p.HourFadeSeconds
	}
	if p.MinuteFadeSeconds != nil {
		g.MinuteFadeSeconds = *p.MinuteFadeSeconds
	}
	if p.SecondFadeSeconds != nil {
		g.SecondFadeSeconds = *p.SecondFadeSeconds
	}
	if p.EasePower != nil {
		g.EasePower = *p.EasePower
	}
	m.gates = g.clamped()
}

// Gates returns the active timeline configuration.
func (m *Model) Gates() GateConfig { return m.gates }

// ClockPresenceLevels returns the three derived stage values, hour
// first, each in [0,1]. Overridden stages return their pinned value
// instead of the derived one.
func (m *Model) ClockPresenceLevels() (hour, minute, second float64) {
	g := m.gates
	hour = m.stageValue(0, 0, g.HourFadeSeconds)
	minute = m.stageValue(1, g.HourFadeSeconds, g.MinuteFadeSeconds)
	second = m.stageValue(2, g.HourFadeSeconds+g.MinuteFadeSeconds, g.SecondFadeSeconds)
	return hour, minute, second
}

// OverrideLevels pins one or more stage values directly, bypassing the
// staged derivation. Nil arguments leave the corresponding stage
// derived. Debug and test aid only.
func (m *Model) OverrideLevels(hour, minute, second *float64) {
	for i, v := range []*float64{hour, minute, second} {
		if v != nil {
			m.overridden[i] = true
			m.override[i] = clamp01(*v)
		}
	}
}

// ClearOverrides removes all stage overrides, reverting to the derived
// values.
func (m *Model) ClearOverrides() {
	m.overridden = [3]bool{}
	m.override = [3]float64{}
}

// stageValue evaluates one window of the combined timeline. With
// progressed = (1-level)*total seconds traveled through the timeline,
// the stage is untouched before its window opens, fully faded after it
// closes, and eased in between.
func (m *Model) stageValue(stage int, start, duration float64) float64 {
	if m.overridden[stage] {
		return m.override[stage]
	}
	g := m.gates
	total := g.HourFadeSeconds + g.MinuteFadeSeconds + g.SecondFadeSeconds
	progressed := (1 - m.level) * total
	t := (progressed - start) / duration
	if t <= 0 {
		return 1
	}
	if t >= 1 {
		return 0
	}
	return clamp01(math.Pow(1-t, 1+g.EasePower))
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
