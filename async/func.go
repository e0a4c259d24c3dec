package async

import "context"

// Func is a function explicitly declared as asynchronous. Declaring a
// callable as Func is the only way for [IsAsyncFunction] to report true.
type Func[T any] func(ctx context.Context) (T, error)

// Call starts f on a new goroutine and returns a promise for its result.
func (f Func[T]) Call(ctx context.Context) *Promise[T] {
	if f == nil {
		return Go[T](nil)
	}
	return Go(func() (T, error) { return f(ctx) })
}

func (f Func[T]) asyncFunc() bool { return f != nil }

// IsAsyncFunction reports whether value is a non-nil [Func].
//
// The check is by declared type only and the function is never invoked.
// A plain func that returns a *Promise when called is therefore reported
// as false even though it behaves asynchronously.
func IsAsyncFunction(value any) bool {
	f, ok := value.(interface{ asyncFunc() bool })
	return ok && f.asyncFunc()
}
