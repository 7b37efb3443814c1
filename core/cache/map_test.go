package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMap_Basic(t *testing.T) {
	m := NewMap()

	m.Put("a", 1)
	m.Put("b", 2)

	val, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, val)

	require.Equal(t, 2, m.Len())

	m.Delete("a")
	_, ok = m.Get("a")
	require.False(t, ok)
}

func TestMap_NeverEvicts(t *testing.T) {
	m := NewMap()

	for i := 0; i < 10_000; i++ {
		m.Put(fmt.Sprintf("k-%d", i%500), i)
	}
	require.Equal(t, 500, m.Len())
}

func TestMap_TTL(t *testing.T) {
	m := NewMap()

	m.Put("a", 1, WithTTL(30*time.Millisecond))

	_, ok := m.Get("a")
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	_, ok = m.Get("a")
	require.False(t, ok)
}

func TestMap_Clear(t *testing.T) {
	m := NewMap()

	m.Put("a", 1)
	m.Put("b", 2)
	m.Clear()

	require.Equal(t, 0, m.Len())
}

func TestTyped(t *testing.T) {
	m := NewMap()
	tc := NewTyped[string](m)

	tc.Put("k", "v")

	got, ok := tc.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", got)

	// Wrong type stored directly in the backing cache.
	m.Put("n", 42)
	_, ok = tc.Get("n")
	require.False(t, ok)
}
