// Package animation drives time-based value changes for badge transitions.
//
// An [AnimationController] moves a value from 0 to 1 over a duration, shaped
// by a [Curve]. Controllers run on [Ticker]s, which do nothing on their own:
// the host calls [StepTickers] once per frame and every active ticker
// receives the time elapsed since it started, read from the package [Clock].
// Tests install a fake clock with [SetClock] and step frames by hand.
//
// A [Tween] maps controller progress onto concrete values such as colors,
// offsets or rectangles.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker invokes its callback once per StepTickers call while active.
type Ticker struct {
	mu       sync.Mutex
	callback func(elapsed time.Duration)
	active   bool
	start    time.Time
}

// NewTicker returns an inactive ticker.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start registers the ticker and records the start time. Starting an active
// ticker does nothing.
func (t *Ticker) Start() {
	t.mu.Lock()
	if t.active {
		t.mu.Unlock()
		return
	}
	t.active = true
	t.start = Now()
	t.mu.Unlock()

	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop unregisters the ticker.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}
	t.active = false
	t.mu.Unlock()

	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive reports whether the ticker is registered.
func (t *Ticker) IsActive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Elapsed returns the time since Start, or 0 when inactive.
func (t *Ticker) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return 0
	}
	return Now().Sub(t.start)
}

func (t *Ticker) fire() {
	t.mu.Lock()
	if !t.active || t.callback == nil {
		t.mu.Unlock()
		return
	}
	cb := t.callback
	elapsed := Now().Sub(t.start)
	t.mu.Unlock()
	cb(elapsed)
}

// StepTickers fires every active ticker once. Callbacks run without the
// registry lock held, so they may start or stop tickers.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	tickers := make([]*Ticker, 0, len(activeTickers))
	for t := range activeTickers {
		tickers = append(tickers, t)
	}
	tickerMu.Unlock()

	for _, t := range tickers {
		t.fire()
	}
}

// HasActiveTickers reports whether any ticker is running.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
