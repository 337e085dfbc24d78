package presence

import (
	"math"
	"testing"
)

func levels(m *Model) [3]float64 {
	h, min, s := m.ClockPresenceLevels()
	return [3]float64{h, min, s}
}

// TestModel_FullPresenceAllStagesOn tests that at level 1 every stage
// reads fully present.
func TestModel_FullPresenceAllStagesOn(t *testing.T) {
	m := NewModel(DefaultGateConfig())

	for i, v := range levels(m) {
		if math.Abs(v-1) > 1e-12 {
			t.Errorf("Stage %d: expected 1, got %v", i, v)
		}
	}
}

// TestModel_ZeroPresenceAllStagesOff tests that at level 0 every stage
// reads fully faded.
func TestModel_ZeroPresenceAllStagesOff(t *testing.T) {
	m := NewModel(DefaultGateConfig())
	m.SetLevel(0)

	for i, v := range levels(m) {
		if math.Abs(v) > 1e-12 {
			t.Errorf("Stage %d: expected 0, got %v", i, v)
		}
	}
}

// TestModel_LevelsAlwaysInRange sweeps the presence level and checks
// every derived stage value stays in [0,1].
func TestModel_LevelsAlwaysInRange(t *testing.T) {
	m := NewModel(DefaultGateConfig())

	for p := -0.5; p <= 1.5; p += 0.01 {
		m.SetLevel(p)
		for i, v := range levels(m) {
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("p=%v stage %d out of range: %v", p, i, v)
			}
		}
	}
}

// TestModel_MonotonicInPresence tests that raising presence never
// lowers any stage value.
func TestModel_MonotonicInPresence(t *testing.T) {
	m := NewModel(DefaultGateConfig())

	var prev [3]float64
	for i := range prev {
		prev[i] = -1
	}
	for p := 0.0; p <= 1.0; p += 0.005 {
		m.SetLevel(p)
		cur := levels(m)
		for i := range cur {
			if cur[i] < prev[i]-1e-12 {
				t.Fatalf("Stage %d decreased as presence rose: %v -> %v at p=%v", i, prev[i], cur[i], p)
			}
		}
		prev = cur
	}
}

// TestModel_SequentialOrdering tests that while the minute window is
// active the hour stage is already gone and the second stage is still
// untouched.
func TestModel_SequentialOrdering(t *testing.T) {
	m := NewModel(DefaultGateConfig()) // 60/30/15, total 105

	// progressed = 70s: past the hour window, inside the minute window.
	m.SetLevel(1 - 70.0/105)

	hour, minute, second := m.ClockPresenceLevels()
	if hour != 0 {
		t.Errorf("Expected hour fully faded, got %v", hour)
	}
	if minute <= 0 || minute >= 1 {
		t.Errorf("Expected minute mid-fade, got %v", minute)
	}
	if second != 1 {
		t.Errorf("Expected second untouched, got %v", second)
	}
}

// TestModel_GatePatchScenario tests the 10/10/10 ease-0 reference
// scenario: half presence lands halfway through the minute window.
func TestModel_GatePatchScenario(t *testing.T) {
	m := NewModel(DefaultGateConfig())
	ten := 10.0
	zero := 0.0
	m.SetGates(GatePatch{
		HourFadeSeconds:   &ten,
		MinuteFadeSeconds: &ten,
		SecondFadeSeconds: &ten,
		EasePower:         &zero,
	})
	m.SetLevel(0.5)

	hour, minute, second := m.ClockPresenceLevels()
	if hour != 0 {
		t.Errorf("Expected hour 0, got %v", hour)
	}
	if math.Abs(minute-0.5) > 1e-9 {
		t.Errorf("Expected minute 0.5, got %v", minute)
	}
	if second != 1 {
		t.Errorf("Expected second 1, got %v", second)
	}
}

// TestModel_ContinuousAtStageBoundary tests that the derived values do
// not jump where one window hands over to the next.
func TestModel_ContinuousAtStageBoundary(t *testing.T) {
	m := NewModel(DefaultGateConfig()) // boundary at progressed = 60s
	const boundary = 60.0 / 105
	const delta = 1e-7

	m.SetLevel(1 - boundary + delta)
	before := levels(m)
	m.SetLevel(1 - boundary - delta)
	after := levels(m)

	for i := range before {
		if math.Abs(before[i]-after[i]) > 1e-3 {
			t.Errorf("Stage %d discontinuous at boundary: %v vs %v", i, before[i], after[i])
		}
	}
}

// TestModel_SettersClamp tests level and gate clamping.
func TestModel_SettersClamp(t *testing.T) {
	m := NewModel(GateConfig{HourFadeSeconds: -5, MinuteFadeSeconds: 0, SecondFadeSeconds: 10, EasePower: -2})

	g := m.Gates()
	if g.HourFadeSeconds <= 0 || g.MinuteFadeSeconds <= 0 {
		t.Errorf("Expected positive durations, got %+v", g)
	}
	if g.EasePower != 0 {
		t.Errorf("Expected ease floored at 0, got %v", g.EasePower)
	}

	m.SetLevel(2)
	if m.Level() != 1 {
		t.Errorf("Expected level clamped to 1, got %v", m.Level())
	}
	m.SetLevel(-1)
	if m.Level() != 0 {
		t.Errorf("Expected level clamped to 0, got %v", m.Level())
	}

	m.SetLevel(0.9)
	m.Nudge(0.5)
	if m.Level() != 1 {
		t.Errorf("Expected nudge clamped to 1, got %v", m.Level())
	}
	m.Nudge(-3)
	if m.Level() != 0 {
		t.Errorf("Expected nudge clamped to 0, got %v", m.Level())
	}

	bad := -4.0
	m.SetGates(GatePatch{SecondFadeSeconds: &bad})
	if m.Gates().SecondFadeSeconds <= 0 {
		t.Errorf("Expected patched duration floored positive, got %v", m.Gates().SecondFadeSeconds)
	}
}

// TestModel_GatePatchMergesPartially tests that nil patch fields keep
// their current values.
func TestModel_GatePatchMergesPartially(t *testing.T) {
	m := NewModel(DefaultGateConfig())
	v := 42.0
	m.SetGates(GatePatch{MinuteFadeSeconds: &v})

	g := m.Gates()
	if g.MinuteFadeSeconds != 42 {
		t.Errorf("Expected minute window 42, got %v", g.MinuteFadeSeconds)
	}
	if g.HourFadeSeconds != 60 || g.SecondFadeSeconds != 15 || g.EasePower != 1 {
		t.Errorf("Unpatched fields changed: %+v", g)
	}
}

// TestModel_OverridesBypassDerivation tests pinning and clearing stage
// overrides.
func TestModel_OverridesBypassDerivation(t *testing.T) {
	m := NewModel(DefaultGateConfig())
	v := 0.25
	m.OverrideLevels(nil, &v, nil)

	hour, minute, second := m.ClockPresenceLevels()
	if hour != 1 || second != 1 {
		t.Errorf("Non-overridden stages changed: %v, %v", hour, second)
	}
	if minute != 0.25 {
		t.Errorf("Expected pinned minute 0.25, got %v", minute)
	}

	// Overrides clamp like everything else.
	big := 7.0
	m.OverrideLevels(&big, nil, nil)
	hour, _, _ = m.ClockPresenceLevels()
	if hour != 1 {
		t.Errorf("Expected clamped override 1, got %v", hour)
	}

	m.ClearOverrides()
	hour, minute, second = m.ClockPresenceLevels()
	if hour != 1 || minute != 1 || second != 1 {
		t.Errorf("Expected derived values after clear, got %v, %v, %v", hour, minute, second)
	}
}

// TestModel_UpdateTracksTimeSinceChange tests the frame hook's debug
// clock.
func TestModel_UpdateTracksTimeSinceChange(t *testing.T) {
	m := NewModel(DefaultGateConfig())

	m.Update(0.5)
	m.Update(0.5)
	if math.Abs(m.SecondsSinceChange()-1) > 1e-12 {
		t.Errorf("Expected 1s accumulated, got %v", m.SecondsSinceChange())
	}

	m.Update(-3) // ignored
	if math.Abs(m.SecondsSinceChange()-1) > 1e-12 {
		t.Errorf("Negative dt should be ignored, got %v", m.SecondsSinceChange())
	}

	before := m.Level()
	m.SetLevel(before)
	if m.SecondsSinceChange() != 0 {
		t.Errorf("Expected reset on explicit set, got %v", m.SecondsSinceChange())
	}

	// The frame hook itself never moves the level.
	m.SetLevel(0.4)
	m.Update(100)
	if m.Level() != 0.4 {
		t.Errorf("Update drifted the level: %v", m.Level())
	}
}
