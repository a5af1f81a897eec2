package animation

import (
	"sync"
	"time"
)

// Clock is the time source tickers measure elapsed time against.
type Clock interface {
	Now() time.Time
}

// SystemClock reads wall-clock time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

var (
	clockMu sync.RWMutex
	clock   Clock = SystemClock{}
)

// SetClock installs c as the package time source and returns the previous
// one. A nil clock restores SystemClock. Tickers started before the swap keep
// their start timestamps, so swap clocks only while nothing is animating.
func SetClock(c Clock) Clock {
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	if c == nil {
		c = SystemClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the installed clock.
func Now() time.Time {
	clockMu.RLock()
	c := clock
	clockMu.RUnlock()
	return c.Now()
}
