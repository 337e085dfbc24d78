// Package game hosts the visual: it owns the ebiten frame loop, the
// renderable point-set registry, and the glue between the audio
// pipeline, the camera, the presence model and the clock rings.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/StillReverend/the-still-base/internal/audio"
	"github.com/StillReverend/the-still-base/internal/config"
	"github.com/StillReverend/the-still-base/internal/presence"
	"github.com/StillReverend/the-still-base/internal/rings"
)

// frameDelta is the assumed per-frame time step at ebiten's default
// 60 TPS. Ring head positions do not depend on it; it only paces the
// presence frame hook and the aura shimmer.
const frameDelta = 1.0 / 60.0

// errStatusFrames is how long a failed input action stays on the
// status line (~5s at 60 TPS).
const errStatusFrames = 5 * 60

// Game runs the scene. Update order is fixed: input, camera, audio
// levels, then presence before rings, so each frame's tail lengths
// reflect that same frame's presence.
type Game struct {
	cfg *config.Config
	log zerolog.Logger

	model    *presence.Model
	ctl      *rings.Controller
	registry *Registry
	camera   *Camera
	hole     *Hole
	player   *audio.Player
	analyzer *audio.BandAnalyzer
	keys     *KeyAdapter

	ringLayer     *ebiten.Image
	lastErr       error
	lastErrFrames int
}

// New wires the scene from cfg.
func New(cfg *config.Config, log zerolog.Logger) *Game {
	model := presence.NewModel(gateConfig(cfg.Presence))
	ctl := rings.NewController(controllerConfig(cfg.Rings), model)
	player := audio.NewPlayer(log)

	g := &Game{
		cfg:      cfg,
		log:      log,
		model:    model,
		ctl:      ctl,
		registry: NewRegistry(),
		camera:   NewCamera(),
		hole:     NewHole(time.Now().UnixNano()),
		player:   player,
		analyzer: audio.NewBandAnalyzer(audio.DefaultSmoothing),
	}
	g.keys = NewKeyAdapter(model, ctl, player, log)

	for _, ring := range []rings.Ring{rings.RingHour, rings.RingMinute, rings.RingSecond} {
		handle := g.registry.Register(ctl.Field(ring))
		log.Debug().Int("ring", int(ring)).Str("handle", handle).Msg("ring registered")
	}
	return g
}

func (g *Game) Update() error {
	if err := g.keys.Update(); err != nil {
		if errors.Is(err, ebiten.Termination) {
			return err
		}
		g.noteInputError(err)
		g.log.Warn().Err(err).Msg("input action failed")
	} else {
		g.decayInputError()
	}

	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		g.camera.Zoom(wheelY)
	}
	g.ctl.SetDistanceFactor(g.camera.DistanceFactor())

	g.updateAudioLevels()

	g.hole.Update(frameDelta)

	// Presence first, rings second: the controller must consume this
	// frame's derived presence, never a stale one.
	g.model.Update(frameDelta)
	g.ctl.Update(frameDelta)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 6, G: 5, B: 12, A: 255})

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx, cy := float32(w)/2, float32(h)/2
	scale := g.camera.Scale()

	g.hole.Draw(screen, cx, cy, scale)
	g.drawRings(screen, cx, cy, scale)

	status := fmt.Sprintf("presence %.2f | mode %s | %s | Up/Down: presence  C: mode  O: open  Space: pause  Q: quit",
		g.model.Level(), g.ctl.ColorMode(), g.audioStatus())
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// drawRings composites every registered point set onto an offscreen
// layer and blends the layer additively over the scene.
func (g *Game) drawRings(screen *ebiten.Image, cx, cy float32, scale float64) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.ringLayer == nil || g.ringLayer.Bounds().Dx() != w || g.ringLayer.Bounds().Dy() != h {
		g.ringLayer = ebiten.NewImage(w, h)
	}
	g.ringLayer.Clear()

	g.registry.Each(func(ps PointSet) {
		angles := ps.Angles()
		colors := ps.Colors()
		radius := ps.Radius() * scale
		size := float32(ps.SizeHint() * scale)
		if size < 1 {
			size = 1
		}

		for i, a := range angles {
			ci := i * 3
			cr, cg, cb := colors[ci], colors[ci+1], colors[ci+2]
			if cr+cg+cb < 0.004 {
				continue
			}
			// Angle 0 points at twelve o'clock and time runs
			// clockwise on screen.
			sa := a - math.Pi/2
			x := cx + float32(math.Cos(sa)*radius)
			y := cy + float32(math.Sin(sa)*radius)
			clr := color.RGBA{
				R: uint8(cr * 255),
				G: uint8(cg * 255),
				B: uint8(cb * 255),
				A: 255,
			}
			vector.DrawFilledCircle(g.ringLayer, x, y, size, clr, false)
		}
		ps.ClearDirty()
	})

	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendLighter
	screen.DrawImage(g.ringLayer, op)
}

// updateAudioLevels feeds the band analyzer while audio plays and
// returns the rings to the silent default when it stops: without the
// reset the last nonzero levels would stay latched in the controller's
// boost for as long as playback is paused.
func (g *Game) updateAudioLevels() {
	if tap := g.player.Tap(); tap != nil && !g.player.Paused() {
		levels := g.analyzer.Process(tap.Snapshot(config.AnalysisWindow))
		g.ctl.SetAudioLevels(levels.Low, levels.Mid, levels.High)
		return
	}
	if g.analyzer.Current() != (audio.Levels{}) {
		g.analyzer.Reset()
		g.ctl.SetAudioLevels(0, 0, 0)
	}
}

// noteInputError puts a failed input action on the status line for a
// limited number of frames.
func (g *Game) noteInputError(err error) {
	g.lastErr = err
	g.lastErrFrames = errStatusFrames
}

// decayInputError ages the displayed error out so it does not outlive
// its relevance.
func (g *Game) decayInputError() {
	if g.lastErrFrames <= 0 {
		return
	}
	g.lastErrFrames--
	if g.lastErrFrames == 0 {
		g.lastErr = nil
	}
}

func (g *Game) audioStatus() string {
	switch {
	case !g.player.Loaded():
		return "no audio"
	case g.player.Paused():
		return "paused"
	}
	return "playing"
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close releases the audio chain.
func (g *Game) Close() {
	g.player.Close()
}

func gateConfig(pc config.PresenceConfig) presence.GateConfig {
	return presence.GateConfig{
		HourFadeSeconds:   pc.HourFadeSeconds,
		MinuteFadeSeconds: pc.MinuteFadeSeconds,
		SecondFadeSeconds: pc.SecondFadeSeconds,
		EasePower:         pc.EasePower,
	}
}

func controllerConfig(rc config.RingsConfig) rings.ControllerConfig {
	return rings.ControllerConfig{
		Presets: [3]rings.RingPreset{
			ringPreset(rc.Hour),
			ringPreset(rc.Minute),
			ringPreset(rc.Second),
		},
		MinArcFraction: rc.MinArcFraction,
		MaxArcFraction: rc.MaxArcFraction,
	}
}

func ringPreset(rc config.RingConfig) rings.RingPreset {
	return rings.RingPreset{
		Spec: rings.RingSpec{
			Radius:       rc.Radius,
			Thickness:    rc.Thickness,
			PointCount:   rc.Points,
			FalloffShape: rc.FalloffShape,
			BaseColor:    rc.Color,
		},
		TailFloor: rc.TailFloor,
	}
}
