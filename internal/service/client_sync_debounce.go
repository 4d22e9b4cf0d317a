package service

import (
	"sync"
	"time"
)

type debounceState int

const (
	debounceIdle debounceState = iota
	debouncePending
)

// Debouncer calls fire once the delay has passed since the last Schedule.
// The result of fire is only surfaced through Fire.
// It is either idle or pending with a deadline; every Schedule starts a new
// generation and timers of older generations do nothing.
type Debouncer struct {
	delay time.Duration
	fire  func() bool

	mu         sync.Mutex
	state      debounceState
	deadline   time.Time
	generation uint64
	timer      *time.Timer
}

func NewDebouncer(delay time.Duration, fire func() bool) *Debouncer {
	return &Debouncer{delay: delay, fire: fire}
}

// Schedule moves the deadline to now plus the delay.
func (d *Debouncer) Schedule(now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopTimerLocked()
	d.generation++
	gen := d.generation
	d.state = debouncePending
	d.deadline = now.Add(d.delay)

	wait := max(time.Until(d.deadline), 0)
	d.timer = time.AfterFunc(wait, func() { d.expire(gen) })
}

// Fire runs fire immediately if a deadline is pending. fired reports whether
// it ran and ok is what fire returned.
func (d *Debouncer) Fire() (fired, ok bool) {
	d.mu.Lock()
	if d.state != debouncePending {
		d.mu.Unlock()
		return false, false
	}
	d.resetLocked()
	d.mu.Unlock()

	return true, d.fire()
}

// Cancel drops the pending deadline, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resetLocked()
}

// Pending returns the deadline and whether one is set.
func (d *Debouncer) Pending() (time.Time, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deadline, d.state == debouncePending
}

func (d *Debouncer) expire(gen uint64) {
	d.mu.Lock()
	if d.state != debouncePending || gen != d.generation {
		d.mu.Unlock()
		return
	}
	d.state = debounceIdle
	d.deadline = time.Time{}
	d.timer = nil
	d.mu.Unlock()

	d.fire()
}

func (d *Debouncer) resetLocked() {
	d.stopTimerLocked()
	d.generation++
	d.state = debounceIdle
	d.deadline = time.Time{}
}

func (d *Debouncer) stopTimerLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
