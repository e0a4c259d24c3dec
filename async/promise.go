package async

import (
	"context"
	"fmt"
	"sync"
)

// Awaitable is the type-erased view of a [Promise]. It is sealed: only
// *Promise[T] implements it, which is what [IsPromise] relies on.
type Awaitable interface {
	// Done returns a channel closed once the promise has settled.
	Done() <-chan struct{}

	// Settled reports whether the promise has been fulfilled or rejected.
	Settled() bool

	awaitable() bool
}

// Promise is a write-once container for a value of type T or an error.
//
// The zero value is not usable; create promises with [Go], [Resolve],
// [Reject] or [Defer]. All methods are safe for concurrent use.
type Promise[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

func newPromise[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Go runs fn on a new goroutine and returns a promise for its result.
func Go[T any](fn func() (T, error)) *Promise[T] {
	p := newPromise[T]()
	if fn == nil {
		var zero T
		p.settle(zero, ErrNilFunc)
		return p
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				p.settle(zero, fmt.Errorf("%w: %v", ErrPanicked, r))
			}
		}()
		v, err := fn()
		p.settle(v, err)
	}()
	return p
}

// Resolve returns a promise already fulfilled with v.
func Resolve[T any](v T) *Promise[T] {
	p := newPromise[T]()
	p.settle(v, nil)
	return p
}

// Reject returns a promise already rejected with err.
func Reject[T any](err error) *Promise[T] {
	p := newPromise[T]()
	var zero T
	p.settle(zero, err)
	return p
}

// Defer returns a pending promise together with the function that settles
// it. Only the first call to settle has any effect.
//
//	p, settle := async.Defer[int]()
//	time.AfterFunc(time.Second, func() { settle(42, nil) })
func Defer[T any]() (*Promise[T], func(T, error)) {
	p := newPromise[T]()
	return p, p.settle
}

func (p *Promise[T]) settle(v T, err error) {
	p.once.Do(func() {
		p.value, p.err = v, err
		close(p.done)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Awaiting
// ─────────────────────────────────────────────────────────────────────────────

// Done returns a channel that is closed once the promise settles.
func (p *Promise[T]) Done() <-chan struct{} { return p.done }

// Settled reports whether the promise has been fulfilled or rejected.
func (p *Promise[T]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Await blocks until the promise settles or ctx is done, whichever comes
// first. When ctx ends first, the zero value and ctx.Err() are returned
// and the promise itself is left untouched.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Wait blocks until the promise settles.
func (p *Promise[T]) Wait() (T, error) {
	<-p.done
	return p.value, p.err
}

func (p *Promise[T]) awaitable() bool { return p != nil }

// IsPromise reports whether value is a non-nil *Promise of any element
// type. It never waits on or otherwise consumes the promise.
func IsPromise(value any) bool {
	a, ok := value.(Awaitable)
	return ok && a.awaitable()
}
