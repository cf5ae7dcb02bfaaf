package queue

import (
	"context"
	"sync"
	"testing"

	"github.com/orbitl2/operator/ethsender/core"
	"github.com/stretchr/testify/require"
)

func TestConsumerQueue(t *testing.T) {
	t.Parallel()

	t.Run("try dequeue empty", func(t *testing.T) {
		t.Parallel()

		q := NewConsumerQueue[int]()

		_, ok := q.TryDequeue()
		require.False(t, ok)
	})

	t.Run("fifo ordering", func(t *testing.T) {
		t.Parallel()

		q := NewConsumerQueue[int]()
		q.Add(1)
		q.Add(2)
		q.Add(3)

		for _, expected := range []int{1, 2, 3} {
			item, ok := q.TryDequeue()
			require.True(t, ok)
			require.Equal(t, expected, item)
		}

		require.Equal(t, 0, q.Len())
	})

	t.Run("stopped queue yields nothing", func(t *testing.T) {
		t.Parallel()

		q := NewConsumerQueue[int]()
		q.Add(1)
		q.Stop()

		_, ok := q.TryDequeue()
		require.False(t, ok)
		require.Nil(t, q.WaitForItems())
	})

	t.Run("concurrent producers", func(t *testing.T) {
		t.Parallel()

		const (
			producers = 6
			perWorker = 100
		)

		q := NewConsumerQueue[int]()

		var wg sync.WaitGroup

		for i := 0; i < producers; i++ {
			wg.Add(1)

			go func() {
				defer wg.Done()

				for j := 0; j < perWorker; j++ {
					q.Add(j)
				}
			}()
		}

		wg.Wait()

		require.Equal(t, producers*perWorker, q.Len())
	})
}

func TestPayloadQueue(t *testing.T) {
	t.Parallel()

	pq := NewPayloadQueue()

	payload, err := pq.NextPayload(context.Background())
	require.NoError(t, err)
	require.Nil(t, payload)

	pq.Add(&core.TxPayload{ID: 1})
	pq.Add(&core.TxPayload{ID: 2})

	payload, err = pq.NextPayload(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(1), payload.ID)

	payload, err = pq.NextPayload(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(2), payload.ID)

	pq.Stop()

	payload, err = pq.NextPayload(context.Background())
	require.NoError(t, err)
	require.Nil(t, payload)
}
