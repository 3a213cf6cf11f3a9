package fetch

import (
	"context"
	"sync"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSuccess(t *testing.T) {
	got := Load(context.Background(), "queue",
		func(context.Context) ([]int, error) { return []int{1, 2}, nil },
		[]int{9},
	)

	require.NoError(t, got.Err)
	assert.False(t, got.Degraded)
	assert.Equal(t, []int{1, 2}, got.Value)
}

func TestLoadFallbackOnError(t *testing.T) {
	cause := eris.New("upstream 503")
	got := Load(context.Background(), "queue",
		func(context.Context) ([]int, error) { return nil, cause },
		[]int{9},
	)

	assert.True(t, got.Degraded, "caller can tell fallback from true success")
	assert.Equal(t, []int{9}, got.Value, "fallback data is served, not an error state")
	assert.ErrorIs(t, got.Err, cause)
}

func TestGuardDiscardsStaleResponses(t *testing.T) {
	var g Guard

	slow := g.Next()
	fast := g.Next()

	// The later-issued fetch resolves first and is applied.
	assert.True(t, g.Accept(fast))

	// The earlier fetch resolves afterwards; it must be discarded so it
	// cannot overwrite fresher state.
	assert.False(t, g.Accept(slow))
}

func TestGuardLatestWinsAfterManyRequests(t *testing.T) {
	var g Guard
	var last uint64
	for i := 0; i < 100; i++ {
		last = g.Next()
	}
	assert.True(t, g.Accept(last))
	assert.False(t, g.Accept(last-1))
	assert.False(t, g.Accept(1))
}

func TestGuardConcurrentIDsUnique(t *testing.T) {
	var g Guard
	var mu sync.Mutex
	seen := make(map[uint64]bool)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := g.Next()
			mu.Lock()
			defer mu.Unlock()
			assert.False(t, seen[id], "duplicate request id %d", id)
			seen[id] = true
		}()
	}
	wg.Wait()
}
