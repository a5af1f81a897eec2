package animation

import (
	"fmt"
	"time"
)

// AnimationStatus is the lifecycle state of an [AnimationController].
type AnimationStatus int

const (
	// AnimationDismissed means the value rests at 0.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the value is moving toward a higher target.
	AnimationForward
	// AnimationReverse means the value is moving toward a lower target.
	AnimationReverse
	// AnimationCompleted means the value rests at 1.
	AnimationCompleted
)

func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController moves Value between 0 and 1 over Duration.
//
// Progress is linear in time and shaped by Curve before it is written to
// Value. A non-positive Duration jumps straight to the target on the first
// tick. Controllers are not safe for concurrent use; drive them from the
// goroutine that calls StepTickers.
type AnimationController struct {
	// Value is the current, curved, progress.
	Value float64

	// Duration is the time a full 0 to 1 run takes.
	Duration time.Duration

	// Curve shapes linear progress. Nil means linear.
	Curve Curve

	status          AnimationStatus
	ticker          *Ticker
	from            float64
	target          float64
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextID          int
}

// NewAnimationController returns a dismissed controller with a linear curve.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		Curve:           LinearCurve,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Forward animates from the current value to 1.
func (c *AnimationController) Forward() {
	c.animateTo(1, AnimationForward)
}

// Reverse animates from the current value to 0.
func (c *AnimationController) Reverse() {
	c.animateTo(0, AnimationReverse)
}

// AnimateTo animates from the current value to target.
func (c *AnimationController) AnimateTo(target float64) {
	if target >= c.Value {
		c.animateTo(target, AnimationForward)
		return
	}
	c.animateTo(target, AnimationReverse)
}

func (c *AnimationController) animateTo(target float64, direction AnimationStatus) {
	c.Stop()
	c.from = c.Value
	c.target = target
	c.setStatus(direction)
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	progress := 1.0
	if c.Duration > 0 {
		progress = float64(elapsed) / float64(c.Duration)
		if progress > 1 {
			progress = 1
		}
	}
	eased := progress
	if c.Curve != nil && progress < 1 {
		eased = c.Curve(progress)
	}
	c.Value = c.from + (c.target-c.from)*eased
	c.notify()
	if progress >= 1 {
		c.settle()
	}
}

// Complete jumps to the current target and stops, notifying listeners as if
// the final tick had run. It does nothing when the controller is idle.
func (c *AnimationController) Complete() {
	if !c.IsAnimating() {
		return
	}
	c.Value = c.target
	c.notify()
	c.settle()
}

func (c *AnimationController) settle() {
	c.Stop()
	switch {
	case c.Value <= 0:
		c.setStatus(AnimationDismissed)
	case c.Value >= 1:
		c.setStatus(AnimationCompleted)
	}
}

// Reset stops the controller and sets Value to 0.
func (c *AnimationController) Reset() {
	c.Stop()
	c.Value = 0
	c.setStatus(AnimationDismissed)
	c.notify()
}

// Stop freezes the controller at its current value. The status is left as
// is, so a stopped run still reports its direction.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating reports whether a ticker is driving the controller.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil
}

// AddListener registers fn to run after every value change and returns a
// function that removes it.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

// AddStatusListener registers fn to run on status changes and returns a
// function that removes it.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextID
	c.nextID++
	c.statusListeners[id] = fn
	return func() { delete(c.statusListeners, id) }
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, fn := range c.statusListeners {
		fn(status)
	}
}

func (c *AnimationController) notify() {
	for _, fn := range c.listeners {
		fn()
	}
}

// Dispose stops the controller and drops its listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = make(map[int]func())
	c.statusListeners = make(map[int]func(AnimationStatus))
}
