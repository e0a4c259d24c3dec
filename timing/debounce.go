package timing

import (
	"sync"
	"time"

	"github.com/romdo/go-debounce"
)

// Debounced is a function wrapper that delays invocation until no call
// has been made for a full delay. Create it with [Debounce].
type Debounced[A any] struct {
	fn        func(A)
	debounced func()
	cancel    func()

	mu      sync.Mutex
	pending bool
	arg     A
}

// Debounce returns a debounced wrapper around fn. fn must not be nil.
//
// fn runs on the timer's goroutine, so a panic in fn cannot be recovered
// by the caller of [Debounced.Call].
func Debounce[A any](fn func(A), delay time.Duration) *Debounced[A] {
	d := &Debounced[A]{fn: fn}
	d.debounced, d.cancel = debounce.New(delay, d.fire)
	return d
}

// DebounceFunc is the zero-argument form of [Debounce] returning a plain
// func.
func DebounceFunc(fn func(), delay time.Duration) func() {
	d := Debounce(func(struct{}) { fn() }, delay)
	return func() { d.Call(struct{}{}) }
}

// Call cancels any pending invocation and schedules fn(arg) to run after
// the delay.
func (d *Debounced[A]) Call(arg A) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.arg = arg
	d.pending = true
	d.debounced()
}

func (d *Debounced[A]) fire() {
	d.mu.Lock()
	if !d.pending {
		// Cancelled, or already delivered by a timer that raced a Call.
		d.mu.Unlock()
		return
	}
	arg := d.arg
	var zero A
	d.arg = zero
	d.pending = false
	d.mu.Unlock()

	d.fn(arg)
}

// Cancel drops the pending invocation, if any, and reports whether one
// was pending.
func (d *Debounced[A]) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancel()
	was := d.pending
	d.pending = false
	var zero A
	d.arg = zero
	return was
}

// Pending reports whether an invocation is scheduled.
func (d *Debounced[A]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Func returns the wrapper as a plain func(A).
func (d *Debounced[A]) Func() func(A) {
	return d.Call
}
