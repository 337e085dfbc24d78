package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/StillReverend/the-still-base/internal/audio"
	"github.com/StillReverend/the-still-base/internal/presence"
	"github.com/StillReverend/the-still-base/internal/rings"
)

// presenceNudgeStep is the per-keypress presence adjustment.
const presenceNudgeStep = 0.05

// KeyAdapter maps the debug hotkeys onto the presence and ring
// setters. The host registers and drives it; the core packages never
// read input themselves.
//
//	Up / Down   nudge presence
//	R           reset presence to 1
//	Z           drop presence to 0
//	C           cycle color mode
//	Space       pause / resume audio
//	O           open an audio file
//	Esc / Q     quit
type KeyAdapter struct {
	model  *presence.Model
	ctl    *rings.Controller
	player *audio.Player
	log    zerolog.Logger
}

func NewKeyAdapter(model *presence.Model, ctl *rings.Controller, player *audio.Player, log zerolog.Logger) *KeyAdapter {
	return &KeyAdapter{model: model, ctl: ctl, player: player, log: log}
}

// Update processes one frame of hotkeys. It returns
// ebiten.Termination on a quit key and operational errors (file open
// failures) otherwise.
func (a *KeyAdapter) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		a.model.Nudge(presenceNudgeStep)
		a.log.Debug().Float64("level", a.model.Level()).Msg("presence nudged up")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		a.model.Nudge(-presenceNudgeStep)
		a.log.Debug().Float64("level", a.model.Level()).Msg("presence nudged down")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.model.SetLevel(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		a.model.SetLevel(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		next := a.ctl.ColorMode().Next()
		a.ctl.SetColorMode(next)
		if !next.Implemented() {
			a.log.Info().Stringer("mode", next).Msg("color mode selected but not yet implemented")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.player.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := a.player.OpenDialog(); err != nil {
			return err
		}
	}
	return nil
}
