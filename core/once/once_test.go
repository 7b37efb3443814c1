package once

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValue_ExactlyOnce(t *testing.T) {
	var calls atomic.Int32
	f := Value(func() (int, error) {
		calls.Add(1)
		return 42, nil
	})

	for i := 0; i < 10; i++ {
		v, err := f()
		require.NoError(t, err)
		require.Equal(t, 42, v)
	}
	require.Equal(t, int32(1), calls.Load())
}

func TestValue_ErrorReplayed(t *testing.T) {
	var calls atomic.Int32
	boom := errors.New("boom")
	f := Value(func() (int, error) {
		calls.Add(1)
		return 0, boom
	})

	_, err := f()
	require.ErrorIs(t, err, boom)

	// The failure is part of the stored result; fn never runs again.
	_, err = f()
	require.ErrorIs(t, err, boom)
	require.Equal(t, int32(1), calls.Load())
}

func TestArg_FirstArgumentWins(t *testing.T) {
	var calls atomic.Int32
	f := Arg(func(n int) (int, error) {
		calls.Add(1)
		return n * 10, nil
	})

	v, err := f(1)
	require.NoError(t, err)
	require.Equal(t, 10, v)

	// Different arguments do not trigger a second execution.
	v, err = f(2)
	require.NoError(t, err)
	require.Equal(t, 10, v)

	v, err = f(99)
	require.NoError(t, err)
	require.Equal(t, 10, v)

	require.Equal(t, int32(1), calls.Load())
}

func TestValue_Concurrent(t *testing.T) {
	var calls atomic.Int32
	f := Value(func() (int, error) {
		calls.Add(1)
		time.Sleep(10 * time.Millisecond)
		return 7, nil
	})

	const n = 50
	results := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := f()
			require.NoError(t, err)
			results[i] = v
		}(i)
	}
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		require.Equal(t, 7, v)
	}
}

func TestDo(t *testing.T) {
	var calls atomic.Int32
	f := Do(func() error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, f())
	require.NoError(t, f())
	require.Equal(t, int32(1), calls.Load())
}

func TestGroup_DeduplicatesConcurrent(t *testing.T) {
	g := NewGroup[string]()

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := g.Do("k", func() (string, error) {
			calls.Add(1)
			close(started)
			<-release
			return "shared", nil
		})
		require.NoError(t, err)
		require.Equal(t, "shared", v)
	}()

	<-started

	const waiters = 10
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := g.Do("k", func() (string, error) {
				calls.Add(1)
				return "not shared", nil
			})
			require.NoError(t, err)
			require.Equal(t, "shared", v)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())
}

func TestGroup_SequentialCallsExecuteAgain(t *testing.T) {
	g := NewGroup[int]()

	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		v, err := g.Do("k", func() (int, error) {
			return int(calls.Add(1)), nil
		})
		require.NoError(t, err)
		require.Equal(t, i+1, v)
	}
}
