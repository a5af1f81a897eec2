package testing

import (
	"sync"
	"time"

	"github.com/go-drift/badgeview/pkg/animation"
)

// FakeClock is a manually advanced animation.Clock. All methods are safe for
// concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Cleanup is the subset of *testing.T InstallFakeClock needs.
type Cleanup interface {
	Helper()
	Cleanup(func())
}

// InstallFakeClock makes a new FakeClock the animation clock until the test
// ends.
func InstallFakeClock(t Cleanup) *FakeClock {
	t.Helper()
	clk := NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

// Now returns the fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward without firing tickers.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Step advances the clock by d and fires every active ticker once, like one
// host frame.
func (c *FakeClock) Step(d time.Duration) {
	c.Advance(d)
	animation.StepTickers()
}

// StepFrames runs n frames of d each.
func (c *FakeClock) StepFrames(n int, d time.Duration) {
	for range n {
		c.Step(d)
	}
}
