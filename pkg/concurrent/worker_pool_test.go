package concurrent_test

import (
	"testing"

	"lintang/penaltyroute/pkg/concurrent"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	t.Run("sum every job", func(t *testing.T) {
		jobs := [][]int64{{1, 2, 3}, {4, 5}, {}, {10}}
		wp := concurrent.NewWorkerPool[[]int64, int64](3, len(jobs))
		for _, j := range jobs {
			wp.AddJob(j)
		}
		wp.Close()

		wp.Start(func(job []int64) int64 {
			var s int64
			for _, x := range job {
				s += x
			}
			return s
		})
		wp.Wait()

		var total int64
		count := 0
		for r := range wp.CollectResults() {
			total += r
			count++
		}
		assert.Equal(t, int64(25), total)
		assert.Equal(t, len(jobs), count)
	})

	t.Run("save node jobs", func(t *testing.T) {
		items := []concurrent.SaveNodeJobItem{
			{KeyStr: "a", ValArr: []concurrent.SmallNode{{ID: 1}, {ID: 2}}},
			{KeyStr: "b", ValArr: []concurrent.SmallNode{{ID: 3}}},
		}
		wp := concurrent.NewWorkerPool[concurrent.SaveNodeJobItem, int](2, len(items))
		for _, it := range items {
			wp.AddJob(it)
		}
		wp.Close()
		wp.Start(func(job concurrent.SaveNodeJobItem) int {
			return len(job.ValArr)
		})
		wp.Wait()

		n := 0
		for r := range wp.CollectResults() {
			n += r
		}
		assert.Equal(t, 3, n)
	})
}
