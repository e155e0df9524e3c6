// Copyright (C) 2025 Jan Wrobel <jan@wwwhisper.io>
// This program is freely distributable under the terms of the
// Simplified BSD License. See COPYING.

// Package timer provides a stopwatch that accumulates wall-clock
// time over any number of start/stop cycles.
package timer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"k8s.io/utils/clock"
)

// MaxPrecision is the largest number of fractional digits a total
// can be rounded to.
const MaxPrecision = 16

// Interval is a single period during which the timer was running.
// End is zero while the interval is open.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Open returns true if the interval was started but not yet stopped.
func (i Interval) Open() bool {
	return i.End.IsZero()
}

// Duration returns the length of a closed interval, 0 for an open
// one.
func (i Interval) Duration() time.Duration {
	if i.Open() {
		return 0
	}
	return i.End.Sub(i.Start)
}

type Option func(*Timer) error

// WithPrecision makes Total round to n fractional digits of a second.
func WithPrecision(n int) Option {
	return func(t *Timer) error {
		if n < 0 || n > MaxPrecision {
			return errors.Wrapf(ErrInvalidArgument,
				"precision %d out of range 0..%d", n, MaxPrecision)
		}
		t.precision = n
		t.hasPrecision = true
		return nil
	}
}

func WithClock(c clock.PassiveClock) Option {
	return func(t *Timer) error {
		t.clock = c
		return nil
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(t *Timer) error {
		t.log = log
		return nil
	}
}

// Timer is a stopwatch. It starts stopped, with no recorded
// intervals. All methods are safe for concurrent use.
type Timer struct {
	mu           sync.Mutex
	clock        clock.PassiveClock
	log          *slog.Logger
	running      bool
	intervals    []Interval
	precision    int
	hasPrecision bool
}

// New creates a stopped timer. Without options the timer reads the
// system clock and reports totals with full precision.
func New(opts ...Option) (*Timer, error) {
	t := &Timer{
		clock: clock.RealClock{},
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Start opens a new interval. Fails with ErrAlreadyRunning if the
// timer runs.
func (t *Timer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return errors.Wrap(ErrAlreadyRunning, "start")
	}
	t.intervals = append(t.intervals, Interval{Start: t.clock.Now()})
	t.running = true
	t.log.Debug("timer started", slog.Int("interval", len(t.intervals)))
	return nil
}

// Stop closes the open interval. Fails with ErrNotRunning if the timer
// is stopped.
func (t *Timer) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return errors.Wrap(ErrNotRunning, "stop")
	}
	last := &t.intervals[len(t.intervals)-1]
	end := t.clock.Now()
	if end.Before(last.Start) {
		// Wall clock moved backwards, record an empty interval.
		end = last.Start
	}
	last.End = end
	t.running = false
	t.log.Debug("timer stopped",
		slog.Int("interval", len(t.intervals)),
		slog.Duration("duration", last.Duration()))
	return nil
}

// Reset discards all recorded intervals. Fails with ErrStillRunning
// if the timer runs.
func (t *Timer) Reset() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return errors.Wrap(ErrStillRunning, "reset")
	}
	t.intervals = nil
	t.log.Debug("timer reset")
	return nil
}

// elapsed must be called with the mutex held.
func (t *Timer) elapsed() time.Duration {
	var sum time.Duration
	for _, i := range t.intervals {
		sum += i.Duration()
	}
	return sum
}

// Elapsed returns the time accumulated over all intervals. Fails with
// ErrStillRunning if the timer runs.
func (t *Timer) Elapsed() (time.Duration, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return 0, errors.Wrap(ErrStillRunning, "elapsed")
	}
	return t.elapsed(), nil
}

// Total returns the accumulated time in seconds. If the timer was
// created with a precision, the result is rounded half away from zero
// to that many fractional digits. Fails with ErrStillRunning if the
// timer runs.
func (t *Timer) Total() (decimal.Decimal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return decimal.Zero, errors.Wrap(ErrStillRunning, "total")
	}
	total := Seconds(t.elapsed())
	if t.hasPrecision {
		total = total.Round(int32(t.precision))
	}
	t.log.LogAttrs(context.Background(), slog.LevelDebug, "timer total",
		slog.Int("intervals", len(t.intervals)),
		slog.String("total", total.String()))
	return total, nil
}

// Running returns true between Start and Stop.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Status returns the running state in the requested representation.
func (t *Timer) Status(rep Representation) (any, error) {
	return RenderStatus(t.Running(), rep)
}

// Precision returns the configured precision, ok is false if totals
// are not rounded.
func (t *Timer) Precision() (n int, ok bool) {
	return t.precision, t.hasPrecision
}

// Intervals returns a copy of the recorded intervals in chronological
// order. The last one is open if the timer runs.
func (t *Timer) Intervals() []Interval {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Interval, len(t.intervals))
	copy(out, t.intervals)
	return out
}

// Seconds converts a duration to an exact decimal number of seconds.
func Seconds(d time.Duration) decimal.Decimal {
	return decimal.New(int64(d), -9)
}
