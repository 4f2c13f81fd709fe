package main

import "container/heap"

// A minHeap is a min-heap backed by a slice.
type minHeap[E any] struct {
	s sliceHeap[E]
}

func newMinHeap[E any](less func(E, E) bool) *minHeap[E] {
	return &minHeap[E]{sliceHeap[E]{less: less}}
}

func (h *minHeap[E]) Push(elem E) {
	heap.Push(&h.s, elem)
}

// Pop removes and returns the minimum element. Pop panics if the heap is
// empty.
func (h *minHeap[E]) Pop() E {
	return heap.Pop(&h.s).(E)
}

func (h *minHeap[E]) Len() int {
	return len(h.s.s)
}

// Slice returns the underlying slice, in heap order.
func (h *minHeap[E]) Slice() []E {
	return h.s.s
}

// sliceHeap adapts a slice and less function to heap.Interface.
type sliceHeap[E any] struct {
	s    []E
	less func(E, E) bool
}

func (s *sliceHeap[E]) Len() int           { return len(s.s) }
func (s *sliceHeap[E]) Swap(i, j int)      { s.s[i], s.s[j] = s.s[j], s.s[i] }
func (s *sliceHeap[E]) Less(i, j int) bool { return s.less(s.s[i], s.s[j]) }

func (s *sliceHeap[E]) Push(x interface{}) {
	s.s = append(s.s, x.(E))
}

func (s *sliceHeap[E]) Pop() interface{} {
	e := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return e
}

// largest returns the n largest values of vs, in no particular order.
func largest(vs []int, n int) []int {
	if n <= 0 {
		return nil
	}
	h := newMinHeap(func(a, b int) bool { return a < b })
	for _, v := range vs {
		h.Push(v)
		if h.Len() > n {
			h.Pop()
		}
	}
	return h.Slice()
}
