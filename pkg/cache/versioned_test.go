package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersioned_HitRequiresSameVersion(t *testing.T) {
	c := NewVersioned[string, []int]("recs", time.Hour)

	c.Set("user-1", 2, []int{10, 20})

	v, ok := c.Get("user-1", 2)
	require.True(t, ok)
	assert.Equal(t, []int{10, 20}, v)

	_, ok = c.Get("user-1", 3)
	assert.False(t, ok, "a changed version must force a miss within the TTL")
}

func TestVersioned_ExpiresByClock(t *testing.T) {
	c := NewVersioned[string, int]("recs", 20*time.Millisecond)

	c.Set("user-1", 1, 99)
	time.Sleep(40 * time.Millisecond)

	_, ok := c.Get("user-1", 1)
	assert.False(t, ok, "an expired entry misses even when the version matches")
}

func TestVersioned_GetOrLoad_RecomputesOnVersionChange(t *testing.T) {
	c := NewVersioned[string, int]("recs", time.Hour)
	ctx := context.Background()

	var calls int
	load := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	v, err := c.GetOrLoad(ctx, "u", 1, load)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = c.GetOrLoad(ctx, "u", 1, load)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "same version should hit")

	v, err = c.GetOrLoad(ctx, "u", 2, load)
	require.NoError(t, err)
	assert.Equal(t, 2, v, "new version should recompute")

	got, ok := c.Get("u", 2)
	require.True(t, ok)
	assert.Equal(t, 2, got)

	_, ok = c.Get("u", 1)
	assert.False(t, ok, "old version is replaced")
}

func TestVersioned_GetOrLoad_SingleFlightPerVersion(t *testing.T) {
	c := NewVersioned[string, string]("recs", time.Hour)
	ctx := context.Background()

	var calls atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.GetOrLoad(ctx, "u", 5, func(context.Context) (string, error) {
				calls.Add(1)
				<-release
				return "recs", nil
			})
			assert.NoError(t, err)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestVersioned_DeleteDuringLoad_SameVersionReloads(t *testing.T) {
	c := NewVersioned[string, string]("recs", time.Hour)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		v, err := c.GetOrLoad(ctx, "u", 3, func(context.Context) (string, error) {
			close(started)
			<-release
			return "before write", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "before write", v)
	}()

	<-started
	c.Delete("u")
	close(release)
	<-done

	_, ok := c.Get("u", 3)
	require.False(t, ok, "result of a load overtaken by Delete must not be stored")

	v, err := c.GetOrLoad(ctx, "u", 3, func(context.Context) (string, error) {
		return "after write", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "after write", v)
}
