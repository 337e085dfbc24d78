package rings

// Mode selects the gradient palette the ring painter applies. Only the
// classic per-ring base-color gradient renders; the other selectors are
// accepted and reported but leave painting unchanged until their
// palettes land.
type Mode int

const (
	ModeClassic Mode = iota
	ModeRainbow
	ModeVinyl
)

func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeRainbow:
		return "rainbow"
	case ModeVinyl:
		return "vinyl"
	}
	return "unknown"
}

// Implemented reports whether selecting the mode has any rendering
// effect in this version.
func (m Mode) Implemented() bool { return m == ModeClassic }

// Next cycles through the known modes, wrapping after vinyl.
func (m Mode) Next() Mode {
	if m >= ModeVinyl || m < ModeClassic {
		return ModeClassic
	}
	return m + 1
}
