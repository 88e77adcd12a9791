package datastructure_test

import (
	"testing"

	"lintang/penaltyroute/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeap(t *testing.T) {
	t.Run("extract in rank order", func(t *testing.T) {
		pq := datastructure.NewMinHeap[int64]()
		pq.Insert(datastructure.PriorityQueueNode[int64]{Rank: 4, Item: 4})
		pq.Insert(datastructure.PriorityQueueNode[int64]{Rank: 2, Item: 2})
		pq.Insert(datastructure.PriorityQueueNode[int64]{Rank: 1, Item: 1})
		pq.Insert(datastructure.PriorityQueueNode[int64]{Rank: 3, Item: 3})
		pq.Insert(datastructure.PriorityQueueNode[int64]{Rank: 0.5, Item: 9})

		min, err := pq.GetMin()
		require.NoError(t, err)
		assert.Equal(t, int64(9), min.Item)

		got := []int64{}
		for pq.Size() > 0 {
			n, err := pq.ExtractMin()
			require.NoError(t, err)
			got = append(got, n.Item)
		}
		assert.Equal(t, []int64{9, 1, 2, 3, 4}, got)
	})

	t.Run("equal rank broken by smaller item", func(t *testing.T) {
		pq := datastructure.NewMinHeap[datastructure.NodeID]()
		pq.Insert(datastructure.PriorityQueueNode[datastructure.NodeID]{Rank: 10, Item: 7})
		pq.Insert(datastructure.PriorityQueueNode[datastructure.NodeID]{Rank: 10, Item: 3})
		pq.Insert(datastructure.PriorityQueueNode[datastructure.NodeID]{Rank: 10, Item: 5})

		n, _ := pq.ExtractMin()
		assert.Equal(t, datastructure.NodeID(3), n.Item)
		n, _ = pq.ExtractMin()
		assert.Equal(t, datastructure.NodeID(5), n.Item)
		n, _ = pq.ExtractMin()
		assert.Equal(t, datastructure.NodeID(7), n.Item)
	})

	t.Run("duplicate items are kept", func(t *testing.T) {
		pq := datastructure.NewMinHeap[int64]()
		pq.Insert(datastructure.PriorityQueueNode[int64]{Rank: 8, Item: 1})
		pq.Insert(datastructure.PriorityQueueNode[int64]{Rank: 3, Item: 1})
		assert.Equal(t, 2, pq.Size())

		n, _ := pq.ExtractMin()
		assert.Equal(t, 3.0, n.Rank)
		n, _ = pq.ExtractMin()
		assert.Equal(t, 8.0, n.Rank)
	})

	t.Run("empty heap", func(t *testing.T) {
		pq := datastructure.NewMinHeap[int64]()
		_, err := pq.ExtractMin()
		assert.Error(t, err)
		_, err = pq.GetMin()
		assert.Error(t, err)
	})
}
