package animate

import (
	"testing"
	"time"

	"github.com/kmaicher/tabline/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects every callback invocation.
type recorder struct {
	values []float64
	finals int
}

func (r *recorder) onTick(a *Animation, v float64) {
	r.values = append(r.values, v)
	if !a.Running() {
		r.finals++
	}
}

func TestAnimation_interpolation(t *testing.T) {
	s := NewScheduler(logging.Discard)
	rec := &recorder{}

	s.Start(150*time.Millisecond, 0, 100, Integer, rec.onTick)

	// one immediate tick at ratio zero
	require.Equal(t, []float64{0}, rec.values)

	s.Advance(75 * time.Millisecond)
	assert.InDelta(t, 50, rec.values[len(rec.values)-1], 1)
	assert.Zero(t, rec.finals)

	s.Advance(75 * time.Millisecond)
	assert.Equal(t, float64(100), rec.values[len(rec.values)-1])
	assert.Equal(t, 1, rec.finals)
	assert.False(t, s.Active())

	// a finished animation receives no further ticks
	calls := len(rec.values)
	s.Advance(75 * time.Millisecond)
	assert.Equal(t, calls, len(rec.values))
}

func TestAnimation_overshootClamped(t *testing.T) {
	s := NewScheduler(logging.Discard)
	rec := &recorder{}

	s.Start(150*time.Millisecond, 0, 100, Integer, rec.onTick)
	s.Advance(time.Second)

	assert.Equal(t, float64(100), rec.values[len(rec.values)-1])
	assert.Equal(t, 1, rec.finals)
}

func TestAnimation_fractionalRetainsPrecision(t *testing.T) {
	s := NewScheduler(logging.Discard)
	rec := &recorder{}

	s.Start(100*time.Millisecond, 0, 1, Fractional, rec.onTick)
	s.Advance(25 * time.Millisecond)

	assert.Equal(t, 0.25, rec.values[len(rec.values)-1])
}

func TestAnimation_stop(t *testing.T) {
	s := NewScheduler(logging.Discard)
	rec := &recorder{}

	a := s.Start(150*time.Millisecond, 0, 100, Integer, rec.onTick)
	s.Advance(30 * time.Millisecond)
	a.Stop()

	// final callback fires synchronously with the last computed value, not
	// the end value
	assert.Equal(t, float64(20), rec.values[len(rec.values)-1])
	assert.Equal(t, 1, rec.finals)
	assert.False(t, s.Active())

	// stopping again is a no-op
	a.Stop()
	assert.Equal(t, 1, rec.finals)
}

func TestAnimation_delayedStart(t *testing.T) {
	s := NewScheduler(logging.Discard)
	rec := &recorder{}

	s.StartDelayed(50*time.Millisecond, 100*time.Millisecond, 1, 11, Integer, rec.onTick)
	require.Equal(t, []float64{1}, rec.values)

	// still within the delay: value held at the start
	s.Advance(25 * time.Millisecond)
	assert.Equal(t, float64(1), rec.values[len(rec.values)-1])

	s.Advance(75 * time.Millisecond)
	assert.Equal(t, float64(6), rec.values[len(rec.values)-1])

	s.Advance(100 * time.Millisecond)
	assert.Equal(t, float64(11), rec.values[len(rec.values)-1])
	assert.Equal(t, 1, rec.finals)
}

func TestAnimation_stopWithinCallback(t *testing.T) {
	s := NewScheduler(logging.Discard)

	var finals int
	s.Start(150*time.Millisecond, 0, 100, Integer, func(a *Animation, v float64) {
		if !a.Running() {
			finals++
			return
		}
		if v >= 50 {
			a.Stop()
		}
	})
	s.Advance(75 * time.Millisecond)

	assert.Equal(t, 1, finals)
	assert.False(t, s.Active())
}

func TestScheduler_concurrentAnimations(t *testing.T) {
	s := NewScheduler(logging.Discard)
	a := &recorder{}
	b := &recorder{}

	s.Start(100*time.Millisecond, 0, 10, Integer, a.onTick)
	s.Start(200*time.Millisecond, 0, 10, Integer, b.onTick)

	assert.True(t, s.Advance(100*time.Millisecond))
	assert.Equal(t, 1, a.finals)
	assert.Zero(t, b.finals)

	assert.False(t, s.Advance(100*time.Millisecond))
	assert.Equal(t, 1, b.finals)
}
