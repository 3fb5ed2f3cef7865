package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	req := require.New(t)
	c := NewCounter()

	req.Equal(uint64(0), c.Load())
	req.Equal(uint64(1), c.Increment())
	req.Equal(uint64(2), c.Increment())

	c.Store(42)
	req.Equal(uint64(42), c.Load())

	c.Store(0)
	req.Equal(uint64(0), c.Load())
}

func TestCounter_ConcurrentIncrements(t *testing.T) {
	const workers, perWorker = 32, 500
	c := NewCounter()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				c.Increment()
				_ = c.Load()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, uint64(workers*perWorker), c.Load())
}
