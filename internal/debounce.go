package internal

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of notifications into a single callback, fired
// once the quiescence window elapses with no further notifications. There is
// at most one scheduled callback at any time: a new notification cancels and
// reschedules the pending one rather than queuing another.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	fn     func()
	timer  *time.Timer
	closed bool
}

// NewDebouncer creates a debouncer that invokes fn after window of quiet.
func NewDebouncer(window time.Duration, fn func()) *Debouncer {
	return &Debouncer{window: window, fn: fn}
}

// Notify schedules the callback, replacing any pending schedule.
func (d *Debouncer) Notify() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	// The callback runs outside the lock so it may Notify again.
	d.fn()
}

// Flush executes a pending callback immediately, if one is scheduled.
// An in-flight callback is never interrupted.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	timer := d.timer
	if timer == nil || !timer.Stop() {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	d.fn()
}

// Close flushes any pending callback and stops accepting notifications.
func (d *Debouncer) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	timer := d.timer
	d.timer = nil
	pending := timer != nil && timer.Stop()
	d.closed = true
	d.mu.Unlock()
	if pending {
		d.fn()
	}
}
