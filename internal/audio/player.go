package audio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"
)

// tapRingSize is the number of recent stereo samples kept for the band
// analyzer.
const tapRingSize = 8192

// speakerPrepAction tells Load how to ready the speaker for a new
// stream.
type speakerPrepAction int

const (
	speakerInit   speakerPrepAction = iota // first stream
	speakerReinit                          // sample rate changed
	speakerClear                           // same rate, clear the mixer
)

// speakerPrep picks the preparation step for a new stream. Both init
// actions call speaker.Init bare: Init acquires the speaker mutex
// internally, so it can never be wrapped in speaker.Lock.
func speakerPrep(initDone bool, current, next beep.SampleRate) speakerPrepAction {
	switch {
	case !initDone:
		return speakerInit
	case current != next:
		return speakerReinit
	}
	return speakerClear
}

// Player owns the beep playback chain: decoded file -> tap -> ctrl ->
// speaker. Playback is optional for the visual; with nothing loaded
// the tap is nil and the band levels stay at their defaults.
type Player struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *Tap

	paused   bool
	initDone bool
	log      zerolog.Logger
}

func NewPlayer(log zerolog.Logger) *Player {
	return &Player{log: log}
}

// OpenDialog shows a file picker and loads the chosen audio file. A
// canceled dialog is not an error.
func (p *Player) OpenDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return p.Load(filename)
}

// Load decodes path by extension and starts playback through a fresh
// tap.
func (p *Player) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return errors.New("unsupported file type: " + filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return err
	}

	tap := NewTap(streamer, tapRingSize)
	ctrl := &beep.Ctrl{Streamer: tap}

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch speakerPrep(p.initDone, p.format.SampleRate, format.SampleRate) {
	case speakerInit, speakerReinit:
		// Init tears down and replaces the running mixer itself, and
		// it takes the speaker mutex to do so: it must run outside
		// speaker.Lock or the frame loop parks forever.
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return err
		}
		p.initDone = true
	case speakerClear:
		// Same rate: just drop any previous playback.
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}

	p.closeCurrent()
	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = tap
	p.paused = false

	p.log.Info().Str("path", path).Int("sample_rate", int(format.SampleRate)).Msg("audio loaded")

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		p.log.Info().Str("path", path).Msg("playback finished")
	})))
	return nil
}

// TogglePause flips the playback pause state. No-op with nothing
// loaded.
func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

// Paused reports the playback pause state.
func (p *Player) Paused() bool { return p.paused }

// Loaded reports whether a file is playing or paused.
func (p *Player) Loaded() bool { return p.streamer != nil }

// Tap returns the sample tap for analysis, or nil with nothing loaded.
func (p *Player) Tap() *Tap { return p.tap }

// Close stops playback and releases the current file.
func (p *Player) Close() {
	if p.initDone {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	p.closeCurrent()
}

func (p *Player) closeCurrent() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
	p.tap = nil
	p.ctrl = nil
}
