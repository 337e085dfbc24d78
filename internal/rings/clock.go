package rings

import "time"

// Clock supplies the wall-clock reading the ring heads are derived
// from. Injecting it keeps head positions deterministic in tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the machine's wall clock.
func SystemClock() Clock { return ClockFunc(time.Now) }
