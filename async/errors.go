package async

import "errors"

// Sentinel errors returned by promise operations.
var (
	// ErrPanicked wraps the value recovered from a panicking [Go] or
	// [Func] body. The recovered value is formatted into the message.
	ErrPanicked = errors.New("async: function panicked")

	// ErrNilFunc is returned (as a rejection) when [Go] or [Func.Call] is
	// given a nil function.
	ErrNilFunc = errors.New("async: nil function")
)
