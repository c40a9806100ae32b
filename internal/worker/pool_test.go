package worker

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess2d-go/internal/script"
)

func item(i int) WorkItem {
	return WorkItem{Script: &script.Script{Name: fmt.Sprintf("s%d", i)}, Index: i}
}

// echo returns a process function that counts calls and echoes the item.
func echo(calls *int32) ProcessFunc {
	return func(it WorkItem) ProcessResult {
		atomic.AddInt32(calls, 1)
		return ProcessResult{Script: it.Script, Index: it.Index}
	}
}

// TestPoolCollect checks every item comes back once, in submission order.
func TestPoolCollect(t *testing.T) {
	for _, workers := range []int{1, 4, 16} {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			var calls int32
			pool := NewPool(workers, 8, echo(&calls))
			pool.Start()

			const n = 50
			go func() {
				for i := 0; i < n; i++ {
					pool.Submit(item(i))
				}
				pool.Close()
			}()

			results := pool.Collect()
			if len(results) != n {
				t.Fatalf("results = %d; want %d", len(results), n)
			}
			for i, r := range results {
				if r.Index != i || r.Script.Name != fmt.Sprintf("s%d", i) {
					t.Errorf("results[%d] = index %d, script %s", i, r.Index, r.Script.Name)
				}
			}
			if got := atomic.LoadInt32(&calls); got != n {
				t.Errorf("calls = %d; want %d", got, n)
			}
		})
	}
}

// TestPoolStop checks that items queued after Stop are skipped.
func TestPoolStop(t *testing.T) {
	release := make(chan struct{})
	var calls int32
	pool := NewPool(1, 10, func(it WorkItem) ProcessResult {
		atomic.AddInt32(&calls, 1)
		<-release
		return ProcessResult{Index: it.Index}
	})
	pool.Start()

	for i := 0; i < 5; i++ {
		pool.Submit(item(i))
	}
	// Wait until the single worker is blocked on the first item.
	for atomic.LoadInt32(&calls) == 0 {
		time.Sleep(time.Millisecond)
	}

	pool.Stop()
	if !pool.IsStopped() {
		t.Fatal("IsStopped() = false after Stop")
	}
	if pool.TrySubmit(item(99)) {
		t.Error("TrySubmit succeeded after Stop")
	}
	close(release)

	go pool.Close()
	results := pool.Collect()
	if len(results) != 1 {
		t.Errorf("results = %d; want only the item in flight", len(results))
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("calls = %d; want 1", got)
	}
}

// TestPoolTrySubmit checks non-blocking submission against a full buffer.
func TestPoolTrySubmit(t *testing.T) {
	var calls int32
	pool := NewPool(1, 2, echo(&calls))

	// Not started, so nothing drains the buffer.
	if !pool.TrySubmit(item(0)) || !pool.TrySubmit(item(1)) {
		t.Fatal("TrySubmit failed with free buffer space")
	}
	if pool.TrySubmit(item(2)) {
		t.Error("TrySubmit succeeded with a full buffer")
	}

	pool.Start()
	go pool.Close()
	if got := len(pool.Collect()); got != 2 {
		t.Errorf("results = %d; want 2", got)
	}
}

func TestPoolOptions(t *testing.T) {
	tests := []struct {
		name       string
		pool       *Pool
		workers    int
		bufferSize int
	}{
		{"defaults", NewPoolWithOptions(nil), 1, 10},
		{"workers", NewPoolWithOptions(nil, WithWorkers(4)), 4, 10},
		{"buffer", NewPoolWithOptions(nil, WithBufferSize(50)), 1, 50},
		{"both", NewPoolWithOptions(nil, WithWorkers(8), WithBufferSize(100)), 8, 100},
		{"invalid ignored", NewPoolWithOptions(nil, WithWorkers(0), WithBufferSize(-5)), 1, 10},
		{"NewPool", NewPool(3, 7, nil), 3, 7},
		{"NewPool clamps", NewPool(-1, 0, nil), 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pool.NumWorkers(); got != tt.workers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.workers)
			}
			if tt.pool.bufferSize != tt.bufferSize {
				t.Errorf("bufferSize = %d; want %d", tt.pool.bufferSize, tt.bufferSize)
			}
			if cap(tt.pool.items) != tt.bufferSize {
				t.Errorf("cap(items) = %d; want %d", cap(tt.pool.items), tt.bufferSize)
			}
		})
	}
}
