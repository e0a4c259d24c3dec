package timing

import (
	"context"
	"time"

	"github.com/hasbyte1/go-js-utils/async"
)

// Sleep returns a promise that fulfils after d. It never rejects, and
// nothing needs to be released if the promise is never awaited.
//
//	_, _ = timing.Sleep(100 * time.Millisecond).Wait()
func Sleep(d time.Duration) *async.Promise[struct{}] {
	p, settle := async.Defer[struct{}]()
	time.AfterFunc(d, func() { settle(struct{}{}, nil) })
	return p
}

// SleepContext blocks for d or until ctx is done. It returns ctx.Err() when
// the context ends first and nil otherwise.
func SleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
