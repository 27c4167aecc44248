package mainloop

import (
	"sync"
	"testing"
)

func TestQueueDrainRunsInPostingOrder(t *testing.T) {
	q := NewQueue()

	var got []int
	for i := 0; i < 3; i++ {
		v := i
		q.Post(func() { got = append(got, v) })
	}

	if n := q.Drain(); n != 3 {
		t.Fatalf("expected 3 functions to run, got %d", n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("expected FIFO order, got %v", got)
		}
	}
	if n := q.Drain(); n != 0 {
		t.Fatalf("expected empty queue on second drain, got %d", n)
	}
}

func TestQueuePostDuringDrainWaitsForNextDrain(t *testing.T) {
	q := NewQueue()

	inner := false
	q.Post(func() {
		q.Post(func() { inner = true })
	})

	q.Drain()
	if inner {
		t.Fatalf("expected work posted while draining to wait")
	}
	if q.Len() != 1 {
		t.Fatalf("expected 1 pending function, got %d", q.Len())
	}

	q.Drain()
	if !inner {
		t.Fatalf("expected inner function to run on second drain")
	}
}

func TestQueueConcurrentPosts(t *testing.T) {
	q := NewQueue()

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				q.Post(func() {})
			}
		}()
	}
	wg.Wait()

	if n := q.Drain(); n != workers*perWorker {
		t.Fatalf("expected %d functions, got %d", workers*perWorker, n)
	}
}

func TestQueueCloseDropsWork(t *testing.T) {
	q := NewQueue()

	ran := false
	q.Post(func() { ran = true })
	q.Close()
	q.Post(func() { ran = true })

	if n := q.Drain(); n != 0 {
		t.Fatalf("expected nothing to run after close, got %d", n)
	}
	if ran {
		t.Fatalf("expected dropped work not to run")
	}
}

func TestQueueIgnoresNil(t *testing.T) {
	q := NewQueue()
	q.Post(nil)

	if q.Len() != 0 {
		t.Fatalf("expected nil post to be ignored")
	}
}
