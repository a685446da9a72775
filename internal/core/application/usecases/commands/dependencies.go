package commands

import "time"

// Clock supplies the wall-clock time used for creation timestamps and
// cancellation-age checks. Injected so handlers stay deterministic in tests;
// no allowance for clock skew is made.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
