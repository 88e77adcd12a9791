package datastructure

import (
	"errors"

	"golang.org/x/exp/constraints"
)

type PriorityQueueNode[T constraints.Ordered] struct {
	Rank float64
	Item T
}

// less urut berdasarkan rank, kalau rank sama pakai item yang lebih kecil.
func (n PriorityQueueNode[T]) less(o PriorityQueueNode[T]) bool {
	if n.Rank != o.Rank {
		return n.Rank < o.Rank
	}
	return n.Item < o.Item
}

// MinHeap binary heap priorityqueue. item yang sama boleh masuk berkali-kali (lazy deletion), entry basi dibuang sama pemanggil.
type MinHeap[T constraints.Ordered] struct {
	heap []PriorityQueueNode[T]
}

func NewMinHeap[T constraints.Ordered]() *MinHeap[T] {
	return &MinHeap[T]{
		heap: make([]PriorityQueueNode[T], 0),
	}
}

// parent get index dari parent
func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / 2
}

func (h *MinHeap[T]) leftChild(index int) int {
	return 2*index + 1
}

func (h *MinHeap[T]) rightChild(index int) int {
	return 2*index + 2
}

// heapifyUp check apakah parent dari index lebih besar kalau iya swap, then lanjut ke parent. O(logN).
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.heap[index].less(h.heap[h.parent(index)]) {
		h.heap[index], h.heap[h.parent(index)] = h.heap[h.parent(index)], h.heap[index]
		index = h.parent(index)
	}
}

// heapifyDown check apakah salah satu children dari index lebih kecil kalau iya swap, then lanjut ke children tadi. O(logN).
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		smallest := index
		left := h.leftChild(index)
		right := h.rightChild(index)

		if left < len(h.heap) && h.heap[left].less(h.heap[smallest]) {
			smallest = left
		}
		if right < len(h.heap) && h.heap[right].less(h.heap[smallest]) {
			smallest = right
		}
		if smallest == index {
			return
		}
		h.heap[index], h.heap[smallest] = h.heap[smallest], h.heap[index]
		index = smallest
	}
}

func (h *MinHeap[T]) isEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

// GetMin nilai minimum dari min-heap (index 0)
func (h *MinHeap[T]) GetMin() (PriorityQueueNode[T], error) {
	if h.isEmpty() {
		return PriorityQueueNode[T]{}, errors.New("heap is empty")
	}
	return h.heap[0], nil
}

func (h *MinHeap[T]) Insert(key PriorityQueueNode[T]) {
	h.heap = append(h.heap, key)
	h.heapifyUp(h.Size() - 1)
}

// ExtractMin ambil nilai minimum & pop dari heap. O(logN)
func (h *MinHeap[T]) ExtractMin() (PriorityQueueNode[T], error) {
	if h.isEmpty() {
		return PriorityQueueNode[T]{}, errors.New("heap is empty")
	}
	root := h.heap[0]
	last := h.Size() - 1
	h.heap[0] = h.heap[last]
	h.heap = h.heap[:last]
	if !h.isEmpty() {
		h.heapifyDown(0)
	}
	return root, nil
}
