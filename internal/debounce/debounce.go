package debounce

import (
	"sync"
	"time"
)

// Debouncer delays propagation of a rapidly changing value until it has
// been stable for the configured interval. Each Set cancels any pending
// delivery and schedules a new one; when the interval elapses with no
// further changes, the callback fires exactly once with the last value.
//
// The callback runs on a timer goroutine. It never fires after Stop
// returns a pending delivery cancelled.
type Debouncer[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(T)
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// DefaultDelay matches the settle interval the search box was tuned to.
const DefaultDelay = 500 * time.Millisecond

// New builds a Debouncer delivering stable values to fn. A non-positive
// delay uses DefaultDelay.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Set records a new source value, cancelling any pending delivery and
// scheduling one for after the delay.
func (d *Debouncer[T]) Set(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		// A fired timer can lose the race against a newer Set or a
		// Stop; the generation check keeps stale values from leaking.
		d.mu.Lock()
		live := !d.stopped && gen == d.gen
		d.mu.Unlock()
		if live {
			d.fn(value)
		}
	})
}

// Stop cancels any pending delivery and prevents future ones. Safe to call
// more than once.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
