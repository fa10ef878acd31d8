package sequence_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagestore/testkit/pkg/util/sequence"
)

func TestCounter_Next(t *testing.T) {
	var c sequence.Counter

	for i := uint64(1); i <= 10_000; i++ {
		require.Equal(t, i, c.Next())
	}
}

func TestCounter_NextConcurrent(t *testing.T) {
	const (
		workers   = 8
		perWorker = 1_000
	)

	var (
		c  sequence.Counter
		wg sync.WaitGroup

		res = make(chan uint64, workers*perWorker)
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				res <- c.Next()
			}
		}()
	}

	wg.Wait()
	close(res)

	seen := make(map[uint64]struct{}, workers*perWorker)
	for v := range res {
		_, ok := seen[v]
		require.False(t, ok, v)
		seen[v] = struct{}{}
	}

	require.Len(t, seen, workers*perWorker)
	require.Equal(t, uint64(workers*perWorker+1), c.Next())
}
