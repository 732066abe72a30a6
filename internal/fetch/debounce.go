// Package fetch coordinates search-driven refetches: a debouncer delays
// initiating a request while the user is still typing, and a sequencer
// drops responses that a newer request has already superseded.
package fetch

import (
	"sync"
	"time"
)

// Debouncer delays a function until its duration has elapsed without a new
// call. It controls when a request starts; it never cancels one in flight.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{duration: duration}
}

// Do schedules fn after the quiet period. A call while a previous fn is
// still pending replaces it and restarts the timer.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel drops any pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
