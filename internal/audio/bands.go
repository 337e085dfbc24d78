package audio

import "math"

// One-pole filter coefficients for the cheap band split. The slow
// filter tracks the low band, the fast filter separates mid from high.
const (
	slowAlpha = 0.02
	fastAlpha = 0.25

	// magCompression flattens the RMS magnitudes toward the visible
	// range, same exponent the visual bar path has always used.
	magCompression = 0.3

	// DefaultSmoothing is the frame-to-frame level smoothing factor.
	DefaultSmoothing = 0.6
)

// Levels holds the smoothed 0..1 band levels.
type Levels struct {
	Low  float64
	Mid  float64
	High float64
}

// BandAnalyzer collapses a window of recent samples into three coarse
// band levels. The split is a time-domain one-pole cascade, not a true
// spectrum: the slowly-averaged signal stands in for the low band, the
// residual above the fast average for the high band, and the
// difference between the two averages for the mid band. Good enough to
// drive a per-ring brightness boost.
type BandAnalyzer struct {
	smoothing float64
	levels    Levels
}

// NewBandAnalyzer creates an analyzer with the given frame smoothing
// factor, clamped to [0,1).
func NewBandAnalyzer(smoothing float64) *BandAnalyzer {
	if smoothing < 0 {
		smoothing = 0
	}
	if smoothing >= 1 {
		smoothing = 0.99
	}
	return &BandAnalyzer{smoothing: smoothing}
}

// Process folds a sample window into the smoothed levels and returns
// them. An empty window leaves the previous levels in place.
func (b *BandAnalyzer) Process(samples [][2]float64) Levels {
	if len(samples) == 0 {
		return b.levels
	}

	var slow, fast float64
	var sumLow, sumMid, sumHigh float64
	for i, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		if i == 0 {
			slow, fast = mono, mono
		}
		slow += slowAlpha * (mono - slow)
		fast += fastAlpha * (mono - fast)

		low := slow
		mid := fast - slow
		high := mono - fast
		sumLow += low * low
		sumMid += mid * mid
		sumHigh += high * high
	}

	n := float64(len(samples))
	b.levels.Low = b.smooth(b.levels.Low, magnitude(sumLow/n))
	b.levels.Mid = b.smooth(b.levels.Mid, magnitude(sumMid/n))
	b.levels.High = b.smooth(b.levels.High, magnitude(sumHigh/n))
	return b.levels
}

// Current returns the last computed levels.
func (b *BandAnalyzer) Current() Levels { return b.levels }

// Reset zeroes the levels, e.g. when playback stops.
func (b *BandAnalyzer) Reset() { b.levels = Levels{} }

func (b *BandAnalyzer) smooth(prev, next float64) float64 {
	return b.smoothing*prev + (1-b.smoothing)*next
}

// magnitude turns a mean square into a clamped, compressed 0..1 level.
func magnitude(meanSquare float64) float64 {
	mag := math.Pow(math.Sqrt(meanSquare), magCompression)
	if mag > 1 {
		mag = 1
	}
	return mag
}
