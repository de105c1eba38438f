// Package animate provides a cooperative animation scheduler: a single
// authority owning zero or more in-flight numeric interpolations, advanced by
// an external periodic tick source. The scheduler never spawns goroutines of
// its own; all callbacks fire synchronously within Start, Stop or Advance.
package animate

import (
	"math"
	"time"

	"github.com/kmaicher/tabline/internal/logging"
)

// Kind selects the arithmetic of interpolated values.
type Kind int

const (
	// Integer animations round each interpolated value to the nearest whole
	// number.
	Integer Kind = iota
	// Fractional animations retain full precision.
	Fractional
)

// OnTick is invoked with the animation and its current value on every pulse.
// The animation reports Running() == false exactly once, on its final
// invocation, whether it ran to completion or was stopped early.
type OnTick func(a *Animation, value float64)

// An Animation interpolates a value from one number to another over a fixed
// duration.
type Animation struct {
	duration time.Duration
	from, to float64
	kind     Kind
	fn       OnTick

	// elapsed starts negative for a delayed animation; the ratio clamp below
	// makes ticks before the delay expires replay the starting value.
	elapsed time.Duration
	last    float64
	running bool

	scheduler *Scheduler
}

// Running reports whether the animation is still live. Callbacks consult this
// to distinguish an intermediate tick from the final one.
func (a *Animation) Running() bool {
	return a.running
}

// Stop cancels the animation early. The callback is synchronously invoked
// once more with the last computed value (not necessarily the end value)
// before the animation is deregistered.
func (a *Animation) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.scheduler.remove(a)
	a.fn(a, a.last)
}

func (a *Animation) value() float64 {
	var ratio float64 = 1
	if a.duration > 0 {
		ratio = math.Min(math.Max(float64(a.elapsed)/float64(a.duration), 0), 1)
	}
	v := a.from + (a.to-a.from)*ratio
	if a.kind == Integer {
		v = math.Round(v)
	}
	return v
}

// advance moves the animation forward by dt, firing its callback, and reports
// whether it has finished.
func (a *Animation) advance(dt time.Duration) bool {
	if !a.running {
		return true
	}
	a.elapsed += dt
	if a.elapsed >= a.duration {
		a.running = false
		a.elapsed = a.duration
		a.last = a.value()
		a.fn(a, a.last)
		return true
	}
	a.last = a.value()
	a.fn(a, a.last)
	return false
}

// Scheduler is the single scheduling authority for animations.
type Scheduler struct {
	animations map[*Animation]struct{}

	logger logging.Interface
}

func NewScheduler(logger logging.Interface) *Scheduler {
	return &Scheduler{
		animations: make(map[*Animation]struct{}),
		logger:     logger,
	}
}

// Start registers a new animation and performs one immediate synchronous tick
// at ratio zero before the first scheduled pulse.
func (s *Scheduler) Start(duration time.Duration, from, to float64, kind Kind, fn OnTick) *Animation {
	return s.StartDelayed(0, duration, from, to, kind, fn)
}

// StartDelayed is Start with the interpolation held at its starting value
// until delay has elapsed.
func (s *Scheduler) StartDelayed(delay, duration time.Duration, from, to float64, kind Kind, fn OnTick) *Animation {
	a := &Animation{
		duration:  duration,
		from:      from,
		to:        to,
		kind:      kind,
		fn:        fn,
		elapsed:   -delay,
		running:   true,
		scheduler: s,
	}
	s.animations[a] = struct{}{}
	s.logger.Debug("starting animation", "from", from, "to", to, "duration", duration, "delay", delay)
	a.last = a.value()
	a.fn(a, a.last)
	return a
}

// Advance moves every live animation forward by dt, invoking callbacks
// synchronously, and reports whether any animation remains live. Callbacks
// are free to stop animations, including their own, mid-advance.
func (s *Scheduler) Advance(dt time.Duration) bool {
	for a := range s.animations {
		if a.advance(dt) {
			delete(s.animations, a)
		}
	}
	return len(s.animations) > 0
}

// Active reports whether any animations are live.
func (s *Scheduler) Active() bool {
	return len(s.animations) > 0
}

func (s *Scheduler) remove(a *Animation) {
	delete(s.animations, a)
}
