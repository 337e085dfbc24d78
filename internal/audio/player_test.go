package audio

import (
	"testing"

	"github.com/faiface/beep"
)

// TestSpeakerPrep_FirstLoadInitializes tests that the first stream
// always takes the plain init path.
func TestSpeakerPrep_FirstLoadInitializes(t *testing.T) {
	if got := speakerPrep(false, 0, beep.SampleRate(44100)); got != speakerInit {
		t.Errorf("Expected speakerInit for first load, got %v", got)
	}
}

// TestSpeakerPrep_RateChangeReinitializesBare tests that a changed
// sample rate maps to a bare re-init rather than a locked clear:
// beep's Init locks the speaker mutex itself, so running it under
// speaker.Lock would block the loading goroutine — and with it the
// frame loop — forever.
func TestSpeakerPrep_RateChangeReinitializesBare(t *testing.T) {
	got := speakerPrep(true, beep.SampleRate(44100), beep.SampleRate(48000))
	if got != speakerReinit {
		t.Errorf("Expected speakerReinit on rate change, got %v", got)
	}
	if got == speakerClear {
		t.Error("Rate change must never take the locked clear path")
	}
}

// TestSpeakerPrep_SameRateClears tests that a matching rate keeps the
// running mixer and only clears previous playback.
func TestSpeakerPrep_SameRateClears(t *testing.T) {
	if got := speakerPrep(true, beep.SampleRate(44100), beep.SampleRate(44100)); got != speakerClear {
		t.Errorf("Expected speakerClear for matching rate, got %v", got)
	}
}
