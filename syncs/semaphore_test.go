package syncs

import (
	"sync"
	"testing"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(1)
	sem.Acquire()
	if sem.TryAcquire() {
		t.Fatal("should be held")
	}
	sem.Release()
	if !sem.TryAcquire() {
		t.Fatal("should be free")
	}
	sem.Release()

	n := 0
	wg := new(sync.WaitGroup)
	for range 100 {
		wg.Go(func() {
			sem.Acquire()
			defer sem.Release()
			n++
		})
	}
	wg.Wait()
	if n != 100 {
		t.Fatalf("got %v", n)
	}
}
