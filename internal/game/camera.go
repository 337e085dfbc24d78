package game

// Distance-factor remap: close-in views brighten the rings, far views
// dim them.
const (
	nearDistance = 6.0
	farDistance  = 40.0
	nearFactor   = 1.2
	farFactor    = 0.35

	defaultDistance = 20.0
	zoomStep        = 1.5 // world units per wheel notch

	// viewScale converts the camera distance into pixels per world
	// unit: scale = viewScale / distance.
	viewScale = 380.0
)

// Camera tracks the orbit distance to the scene center. The distance
// drives both the screen projection scale and the intensity distance
// factor fed to the ring controller.
type Camera struct {
	distance float64
}

func NewCamera() *Camera {
	return &Camera{distance: defaultDistance}
}

// Zoom moves the camera by wheel notches; positive wheelY zooms in.
// The distance stays inside [nearDistance, farDistance].
func (c *Camera) Zoom(wheelY float64) {
	c.distance -= wheelY * zoomStep
	if c.distance < nearDistance {
		c.distance = nearDistance
	}
	if c.distance > farDistance {
		c.distance = farDistance
	}
}

// Distance returns the camera-to-center distance in world units.
func (c *Camera) Distance() float64 { return c.distance }

// DistanceFactor linearly remaps the distance onto the intensity
// multiplier, clamped at both ends: <= nearDistance gives nearFactor,
// >= farDistance gives farFactor.
func (c *Camera) DistanceFactor() float64 {
	t := (c.distance - nearDistance) / (farDistance - nearDistance)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return nearFactor + (farFactor-nearFactor)*t
}

// Scale returns the projection scale in pixels per world unit.
func (c *Camera) Scale() float64 {
	return viewScale / c.distance
}
