package lock

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_TryAcquire(t *testing.T) {
	r := NewRegistry()

	release, ok := r.TryAcquire("stats:u1")
	require.True(t, ok)
	assert.True(t, r.Held("stats:u1"))

	_, ok = r.TryAcquire("stats:u1")
	assert.False(t, ok)

	_, ok = r.TryAcquire("stats:u2")
	assert.True(t, ok)

	release()
	release()
	assert.False(t, r.Held("stats:u1"))

	_, ok = r.TryAcquire("stats:u1")
	assert.True(t, ok)
}

func TestRegistry_SingleWinnerUnderContention(t *testing.T) {
	r := NewRegistry()

	var wins atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, ok := r.TryAcquire("k"); ok {
				wins.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}
