package worker_test

import (
	"sync"
	"testing"

	"github.com/eduassist/backend/internal/worker"
)

func TestPool_RunsAllJobs(t *testing.T) {
	p := worker.NewPool[int](3, 8)

	seen := make(map[string]int)
	var mu sync.Mutex
	done := make(chan struct{})
	go func() {
		defer close(done)
		for r := range p.Results() {
			mu.Lock()
			seen[r.JobID] = r.Output
			mu.Unlock()
		}
	}()

	for i, id := range []string{"a", "b", "c", "d"} {
		n := i
		p.Submit(id, func() int { return n * n })
	}
	p.Close()
	<-done

	if len(seen) != 4 {
		t.Fatalf("expected 4 results, got %d", len(seen))
	}
	if seen["c"] != 4 {
		t.Errorf("expected job c to produce 4, got %d", seen["c"])
	}
}

func TestPool_CloseDrainsQueued(t *testing.T) {
	// One worker, deep buffer: everything queued before Close must still run.
	p := worker.NewPool[string](1, 16)

	for i := 0; i < 10; i++ {
		p.Submit("job", func() string { return "done" })
	}
	p.Close()

	count := 0
	for range p.Results() {
		count++
	}
	if count != 10 {
		t.Errorf("expected 10 drained results, got %d", count)
	}
}
