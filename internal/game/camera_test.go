package game

import (
	"math"
	"testing"
)

// TestCamera_DistanceFactorClampsAtEnds tests the near/far clamp of
// the distance remap.
func TestCamera_DistanceFactorClampsAtEnds(t *testing.T) {
	c := NewCamera()

	c.Zoom(100) // way in
	if c.Distance() != nearDistance {
		t.Errorf("Expected distance clamped at %v, got %v", nearDistance, c.Distance())
	}
	if c.DistanceFactor() != nearFactor {
		t.Errorf("Expected near factor %v, got %v", nearFactor, c.DistanceFactor())
	}

	c.Zoom(-100) // way out
	if c.Distance() != farDistance {
		t.Errorf("Expected distance clamped at %v, got %v", farDistance, c.Distance())
	}
	if c.DistanceFactor() != farFactor {
		t.Errorf("Expected far factor %v, got %v", farFactor, c.DistanceFactor())
	}
}

// TestCamera_DistanceFactorLinearMidpoint tests the remap at the
// halfway distance.
func TestCamera_DistanceFactorLinearMidpoint(t *testing.T) {
	c := NewCamera()

	// Default 20 -> midpoint 23 with a 1.5-unit zoom step.
	c.Zoom(-2)
	if math.Abs(c.Distance()-23) > 1e-12 {
		t.Fatalf("Expected distance 23, got %v", c.Distance())
	}
	want := (nearFactor + farFactor) / 2
	if math.Abs(c.DistanceFactor()-want) > 1e-12 {
		t.Errorf("Expected midpoint factor %v, got %v", want, c.DistanceFactor())
	}
}

// TestCamera_ScaleGrowsWhenZoomingIn tests that closing in raises the
// pixel-per-unit scale.
func TestCamera_ScaleGrowsWhenZoomingIn(t *testing.T) {
	c := NewCamera()
	far := c.Scale()

	c.Zoom(4)
	if c.Scale() <= far {
		t.Errorf("Expected larger scale when closer: %v vs %v", c.Scale(), far)
	}
}
