package heap

import "github.com/reusee/delegate/syncs"

// Shared serializes access to a Heap with a single global lock.
type Shared struct {
	heap *Heap
	lock syncs.Semaphore
}

func NewShared(h *Heap) *Shared {
	return &Shared{
		heap: h,
		lock: syncs.NewSemaphore(1),
	}
}

// Do runs fn holding the lock. The heap must not escape fn.
func (s *Shared) Do(fn func(h *Heap) error) error {
	s.lock.Acquire()
	defer s.lock.Release()
	return fn(s.heap)
}
