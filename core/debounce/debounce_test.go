package debounce

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// recorder collects invocations with their arguments.
type recorder[T any] struct {
	mu   sync.Mutex
	args []T
}

func (r *recorder[T]) record(arg T) {
	r.mu.Lock()
	r.args = append(r.args, arg)
	r.mu.Unlock()
}

func (r *recorder[T]) snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.args...)
}

func TestNew_Validation(t *testing.T) {
	_, err := New[int](10*time.Millisecond, nil)
	require.ErrorIs(t, err, ErrNilFunc)

	_, err = New(-time.Millisecond, func(int) {})
	require.ErrorIs(t, err, ErrNegativeWait)
}

func TestDebouncer_CollapsesBurst(t *testing.T) {
	rec := &recorder[string]{}
	d, err := New(50*time.Millisecond, rec.record)
	require.NoError(t, err)

	d.Call("first")
	time.Sleep(10 * time.Millisecond)
	d.Call("second")
	time.Sleep(10 * time.Millisecond)
	d.Call("third")

	time.Sleep(100 * time.Millisecond)

	got := rec.snapshot()
	require.Equal(t, []string{"third"}, got)
}

func TestDebouncer_CancelSuppresses(t *testing.T) {
	var calls atomic.Int32
	d, err := New(30*time.Millisecond, func(int) { calls.Add(1) })
	require.NoError(t, err)

	d.Call(1)
	d.Cancel()

	time.Sleep(80 * time.Millisecond)
	require.Equal(t, int32(0), calls.Load())

	// Cancel with nothing pending is a no-op.
	d.Cancel()
}

func TestDebouncer_FiresAgainAfterQuietPeriod(t *testing.T) {
	rec := &recorder[int]{}
	d, err := New(20*time.Millisecond, rec.record)
	require.NoError(t, err)

	d.Call(1)
	time.Sleep(60 * time.Millisecond)
	d.Call(2)
	time.Sleep(60 * time.Millisecond)

	require.Equal(t, []int{1, 2}, rec.snapshot())
}

func TestDebouncer_ZeroWaitIsAsynchronous(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	d, err := New(0, func(int) {
		<-release
		calls.Add(1)
	})
	require.NoError(t, err)

	d.Call(1)
	// Even with wait=0 the invocation happens on a timer tick, never
	// synchronously inside Call: fn is still blocked, so Call returned
	// without running it.
	require.Equal(t, int32(0), calls.Load())

	close(release)
	require.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestDebouncer_Flush(t *testing.T) {
	rec := &recorder[string]{}
	d, err := New(time.Hour, rec.record)
	require.NoError(t, err)

	d.Call("now")
	require.True(t, d.Pending())

	d.Flush()
	require.Equal(t, []string{"now"}, rec.snapshot())
	require.False(t, d.Pending())

	// Flush with nothing pending is a no-op.
	d.Flush()
	require.Equal(t, []string{"now"}, rec.snapshot())
}

func TestDebouncer_ConcurrentCalls(t *testing.T) {
	var calls atomic.Int32
	d, err := New(20*time.Millisecond, func(int) { calls.Add(1) })
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			d.Call(n)
		}(i)
	}
	wg.Wait()

	time.Sleep(80 * time.Millisecond)
	require.Equal(t, int32(1), calls.Load())
}
