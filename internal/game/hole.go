package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Cosmetic centerpiece tuning. Nothing here feeds back into the ring
// or presence state.
const (
	holeRadius     = 4.5 // world units
	auraLayers     = 4
	auraBaseHue    = 38.0 // golden
	auraHueDrift   = 18.0
	auraNoiseSpeed = 0.35
)

// Hole draws the black-hole sphere and its shimmering aura at the
// scene center.
type Hole struct {
	noise opensimplex.Noise
	t     float64
}

func NewHole(seed int64) *Hole {
	return &Hole{noise: opensimplex.New(seed)}
}

// Update advances the shimmer phase.
func (h *Hole) Update(dt float64) {
	h.t += dt
}

// Draw renders the dark disc and aura. cx, cy are the screen center
// and scale is pixels per world unit.
func (h *Hole) Draw(screen *ebiten.Image, cx, cy float32, scale float64) {
	discR := float32(holeRadius * scale)

	// Aura layers, outermost first so the disc overdraws their inner
	// edge.
	for i := auraLayers - 1; i >= 0; i-- {
		fi := float64(i)
		shimmer := h.noise.Eval2(fi*0.7, h.t*auraNoiseSpeed)
		radius := discR * float32(1.12+0.22*fi+0.05*shimmer)
		hue := auraBaseHue + auraHueDrift*h.noise.Eval2(fi*1.3+5, h.t*auraNoiseSpeed*0.5)
		r, g, b := hsvToRgb(hue, 0.55, 0.85)
		alpha := uint8((0.22 - 0.045*fi + 0.04*shimmer) * 255)
		width := float32(1.5 + 0.5*math.Abs(shimmer))
		vector.StrokeCircle(screen, cx, cy, radius, width, color.RGBA{R: r, G: g, B: b, A: alpha}, true)
	}

	vector.DrawFilledCircle(screen, cx, cy, discR, color.RGBA{R: 4, G: 3, B: 8, A: 255}, true)
}
