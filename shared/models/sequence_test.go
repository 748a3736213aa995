package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_Next(t *testing.T) {
	var zero Sequence
	assert.Equal(t, int64(1), zero.Next())
	assert.Equal(t, int64(2), zero.Next())

	seq := NewSequence(100)
	assert.Equal(t, int64(100), seq.Next())
	assert.Equal(t, int64(101), seq.Next())
}

func TestSequence_ConcurrentNextIsUnique(t *testing.T) {
	seq := NewSequence(1)

	const workers = 50
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[int64]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				n := seq.Next()
				mu.Lock()
				seen[n] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
