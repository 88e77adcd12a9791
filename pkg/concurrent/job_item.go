package concurrent

// SmallNode node yang disimpan per h3 cell, cukup buat road snapping
type SmallNode struct {
	ID  int64
	Lat float64
	Lon float64
}

type SaveNodeJobItem struct {
	KeyStr string
	ValArr []SmallNode
}

type JobI interface {
	[]int64 | SaveNodeJobItem
}

type Job[T JobI] struct {
	ID      int
	JobItem T
}

type JobFunc[T JobI, G any] func(job T) G
