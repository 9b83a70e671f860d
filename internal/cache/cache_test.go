package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Expired(t *testing.T) {
	e := NewEntry("v", 50*time.Millisecond)

	assert.False(t, e.Expired(time.Now()))
	assert.True(t, e.Expired(time.Now().Add(100*time.Millisecond)))
}

func TestStore_GetSet(t *testing.T) {
	s, err := NewStore[string](10, time.Minute)
	require.NoError(t, err)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("k", "value")
	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestStore_ExpiredEntryIsAMiss(t *testing.T) {
	s, err := NewStore[int](10, 10*time.Millisecond)
	require.NoError(t, err)

	s.Set("k", 42)
	time.Sleep(30 * time.Millisecond)

	_, ok := s.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStore_RemoveAndPurge(t *testing.T) {
	s, err := NewStore[int](10, time.Minute)
	require.NoError(t, err)

	s.Set("a", 1)
	s.Set("b", 2)

	s.Remove("a")
	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())

	s.Purge()
	assert.Equal(t, 0, s.Len())
}

func TestStore_BoundedByCapacity(t *testing.T) {
	s, err := NewStore[int](2, time.Minute)
	require.NoError(t, err)

	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("c", 3)

	assert.Equal(t, 2, s.Len())
	_, ok := s.Get("a") // oldest evicted
	assert.False(t, ok)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s, err := NewStore[int](100, time.Minute)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", j%10)
				s.Set(key, n)
				s.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, s.Len(), 10)
}
