package timing_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-js-utils/timing"
)

// recorder collects debounced invocations from the timer goroutine.
type recorder struct {
	mu    sync.Mutex
	calls []int
}

func (r *recorder) record(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, n)
}

func (r *recorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.calls...)
}

func TestDebounce_FiresOnceWithLastArgs(t *testing.T) {
	var rec recorder
	d := timing.Debounce(rec.record, 50*time.Millisecond)

	for i := 1; i <= 5; i++ {
		d.Call(i)
	}

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{5}, rec.snapshot())

	require.Never(t, func() bool { return len(rec.snapshot()) > 1 }, 150*time.Millisecond, 10*time.Millisecond)
}

func TestDebounce_NoLeadingCall(t *testing.T) {
	var rec recorder
	d := timing.Debounce(rec.record, 50*time.Millisecond)

	d.Call(1)
	assert.Empty(t, rec.snapshot())
	assert.True(t, d.Pending())
}

func TestDebounce_SeparateQuietPeriodsFireSeparately(t *testing.T) {
	var rec recorder
	d := timing.Debounce(rec.record, 30*time.Millisecond)

	d.Call(1)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.False(t, d.Pending())

	d.Call(2)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{1, 2}, rec.snapshot())
}

func TestDebounce_Cancel(t *testing.T) {
	var rec recorder
	d := timing.Debounce(rec.record, 30*time.Millisecond)

	d.Call(1)
	require.True(t, d.Cancel())
	assert.False(t, d.Cancel(), "second Cancel has nothing to drop")
	assert.False(t, d.Pending())

	require.Never(t, func() bool { return len(rec.snapshot()) > 0 }, 100*time.Millisecond, 10*time.Millisecond)
}

func TestDebounce_ConcurrentCallsFireOnce(t *testing.T) {
	var count atomic.Int32
	d := timing.Debounce(func(int) { count.Add(1) }, 50*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d.Call(i)
		}(i)
	}
	wg.Wait()

	require.Eventually(t, func() bool { return count.Load() == 1 }, time.Second, 5*time.Millisecond)
	require.Never(t, func() bool { return count.Load() > 1 }, 150*time.Millisecond, 10*time.Millisecond)
}

func TestDebounceFunc(t *testing.T) {
	var count atomic.Int32
	f := timing.DebounceFunc(func() { count.Add(1) }, 20*time.Millisecond)
	f()
	f()
	f()
	require.Eventually(t, func() bool { return count.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestDebounce_SpacedCallsInsideDelayFireOnce(t *testing.T) {
	var rec recorder
	d := timing.Debounce(rec.record, 40*time.Millisecond)

	for i := 0; i < 5; i++ {
		d.Call(i)
		time.Sleep(15 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	require.Never(t, func() bool { return len(rec.snapshot()) > 1 }, 120*time.Millisecond, 10*time.Millisecond)
	assert.Equal(t, []int{4}, rec.snapshot())
}

func TestDebounce_CallAfterCancelReschedules(t *testing.T) {
	var rec recorder
	d := timing.Debounce(rec.record, 20*time.Millisecond)

	d.Call(1)
	d.Cancel()
	d.Call(2)
	assert.True(t, d.Pending())

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{2}, rec.snapshot())
	assert.False(t, d.Pending())
}
