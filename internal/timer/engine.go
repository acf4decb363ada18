// Package timer implements the countdown engine behind the clock: time
// accounting, start/stop/reset transitions and the one-shot expiry
// notification. It performs no I/O and does not read the wall clock itself;
// every instant arrives through Tick.
package timer

import (
	"fmt"
	"time"
)

// State is the engine's position in its run lifecycle.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateFinished State = "finished"
)

// Expiry describes a finished run. It is a value copy taken at the moment
// the engine detected expiry, so listeners may read it from any goroutine.
type Expiry struct {
	Total       time.Duration
	Accumulated time.Duration
	At          time.Time
}

// ExpiryListener is called once per finished run, on its own goroutine.
type ExpiryListener func(Expiry)

// Engine is a countdown that accumulates the real time elapsed between ticks
// while running. It is not safe for concurrent use; the owning event loop is
// the only writer.
type Engine struct {
	total       time.Duration
	accumulated time.Duration
	lastTick    time.Time
	running     bool
	finished    bool
	listener    ExpiryListener
}

// New creates an idle engine loaded with the given duration.
func New(total time.Duration) *Engine {
	return &Engine{total: total}
}

// Start lets ticks accumulate time. It is a no-op when already running or
// finished.
func (e *Engine) Start() {
	if e.running || e.finished {
		return
	}
	e.running = true
}

// Stop pauses accumulation without clearing it.
func (e *Engine) Stop() {
	e.running = false
}

// Reset rearms the engine: accumulation is cleared, the next tick only
// records its instant, and the engine is left idle.
func (e *Engine) Reset() {
	e.accumulated = 0
	e.lastTick = time.Time{}
	e.running = false
	e.finished = false
}

// SetTotal replaces the configured duration. Accumulated time is kept; call
// Reset afterwards for a clean switch.
func (e *Engine) SetTotal(total time.Duration) {
	e.total = total
}

// SetExpiryListener replaces the single expiry slot. A nil listener disables
// notification.
func (e *Engine) SetExpiryListener(listener ExpiryListener) {
	e.listener = listener
}

// Tick advances the engine to now.
//
// The first tick after construction or Reset only records the instant.
// Later ticks add the elapsed time when running. The instant is recorded on
// every tick, paused or not, so a pause never counts toward the run.
// Detection happens at tick granularity: accumulated time may overshoot the
// total by up to one tick interval.
func (e *Engine) Tick(now time.Time) {
	if e.finished {
		return
	}
	if e.lastTick.IsZero() {
		e.lastTick = now
		return
	}
	if e.running {
		if delta := now.Sub(e.lastTick); delta > 0 {
			e.accumulated += delta
		}
		if e.total-e.accumulated <= 0 {
			e.finish(now)
		}
	}
	e.lastTick = now
}

func (e *Engine) finish(now time.Time) {
	e.finished = true
	e.running = false
	if e.listener == nil {
		return
	}
	expiry := Expiry{Total: e.total, Accumulated: e.accumulated, At: now}
	go e.listener(expiry)
}

// Remaining returns the time left, clamped at zero.
func (e *Engine) Remaining() time.Duration {
	remaining := e.total - e.accumulated
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RemainingText formats Remaining as MM:SS, truncating to whole seconds.
// Minutes are not wrapped into hours.
func (e *Engine) RemainingText() string {
	return FormatClock(e.Remaining())
}

// FormatClock renders d as MM:SS using whole seconds; negative durations
// render as 00:00.
func FormatClock(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Progress reports the fraction of the total consumed, in [0, 1].
func (e *Engine) Progress() float64 {
	if e.total <= 0 {
		return 1
	}
	progress := float64(e.accumulated) / float64(e.total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (e *Engine) Total() time.Duration       { return e.total }
func (e *Engine) Accumulated() time.Duration { return e.accumulated }
func (e *Engine) IsRunning() bool            { return e.running }
func (e *Engine) IsFinished() bool           { return e.finished }

// State collapses the flags into the lifecycle state.
func (e *Engine) State() State {
	switch {
	case e.finished:
		return StateFinished
	case e.running:
		return StateRunning
	default:
		return StateIdle
	}
}
