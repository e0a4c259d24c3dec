package timing

import (
	"time"

	"golang.org/x/time/rate"
)

// Throttled is a function wrapper that fires at most once per cooldown
// window. Create it with [Throttle].
//
// The cooldown is a token bucket with a burst of one that refills once
// every delay: a call that finds the token fires and takes it, calls that
// find the bucket empty are dropped. Nothing is queued and there is no
// trailing call.
type Throttled[A any] struct {
	fn      func(A)
	limiter *rate.Limiter
}

// Throttle returns a throttled wrapper around fn. fn must not be nil.
//
// A delay <= 0 disables the cooldown and every call fires.
func Throttle[A any](fn func(A), delay time.Duration) *Throttled[A] {
	return &Throttled[A]{
		fn:      fn,
		limiter: rate.NewLimiter(rate.Every(delay), 1),
	}
}

// ThrottleFunc is the zero-argument form of [Throttle] returning a plain
// func.
func ThrottleFunc(fn func(), delay time.Duration) func() {
	t := Throttle(func(struct{}) { fn() }, delay)
	return func() { t.Call(struct{}{}) }
}

// Call invokes fn(arg) synchronously when no cooldown is active and
// reports whether it did. A panic in fn propagates to the caller; the
// cooldown has already started at that point.
func (t *Throttled[A]) Call(arg A) bool {
	if !t.limiter.Allow() {
		return false
	}
	t.fn(arg)
	return true
}

// Func returns the wrapper as a plain func(A), discarding the fired flag.
func (t *Throttled[A]) Func() func(A) {
	return func(arg A) { t.Call(arg) }
}
