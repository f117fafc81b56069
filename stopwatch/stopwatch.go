// Package stopwatch measures the wall-clock duration of exactly one unit of
// work against a monotonic clock.
//
// Measure brackets a function call: the start reading is taken immediately
// before the call and the stop reading in a deferred block, so an elapsed
// duration is always produced, including when the function returns an error
// or panics. A panic is recovered and reported as ErrPanicked.
//
// The default clock is System, backed by time.Now, whose readings carry Go's
// monotonic clock component; Sub between two such readings is immune to wall
// clock adjustments. Tests substitute a Manual clock.
package stopwatch

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

// ErrPanicked wraps a panic recovered from a measured function.
var ErrPanicked = errors.New("stopwatch: measured function panicked")

// Clock supplies time readings.
type Clock interface {
	Now() time.Time
}

// System is the process clock (time.Now, monotonic).
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Measure runs fn once and returns how long it took according to clock.
// A nil clock means System. If fn panics, the panic is recovered and err
// wraps ErrPanicked; elapsed still covers the time until the panic.
func Measure(clock Clock, fn func() error) (elapsed time.Duration, err error) {
	if clock == nil {
		clock = System
	}
	start := clock.Now()
	defer func() {
		elapsed = clock.Now().Sub(start)
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()

	return 0, fn()
}

// Millis converts d to milliseconds rounded half away from zero to 2 decimals.
func Millis(d time.Duration) float64 {
	ms := float64(d) / float64(time.Millisecond)

	return math.Round(ms*100) / 100
}

// Manual is a Clock that only moves when told to. Safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now time.Time
	// step is added after every Now call, so consecutive readings differ.
	step time.Duration
}

// NewManual returns a Manual clock reading start that advances by step after
// every reading (step may be zero).
func NewManual(start time.Time, step time.Duration) *Manual {
	return &Manual{now: start, step: step}
}

// Now returns the current reading and then advances by the configured step.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.now
	m.now = m.now.Add(m.step)

	return t
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}
