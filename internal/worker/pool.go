// Package worker provides a worker pool for replaying move scripts in parallel.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess2d-go/internal/config"
	"github.com/lgbarn/chess2d-go/internal/game"
	"github.com/lgbarn/chess2d-go/internal/script"
)

// WorkItem is one script queued for replay.
type WorkItem struct {
	Script *script.Script
	Index  int // submission order, echoed in the result
}

// ProcessResult is the outcome of replaying one script.
type ProcessResult struct {
	Script *script.Script
	Index  int
	Game   *game.Controller    // final position; nil if the worker produced none
	Steps  []script.StepResult // steps applied before any error
	Error  error
}

// ProcessFunc turns a work item into a result. It runs on a worker goroutine.
type ProcessFunc func(item WorkItem) ProcessResult

// ReplayFunc returns a ProcessFunc that replays each script on a game of its
// own. Workers share only cfg, which they read.
func ReplayFunc(cfg *config.Config) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		c, steps, err := script.Replay(cfg, item.Script)
		return ProcessResult{
			Script: item.Script,
			Index:  item.Index,
			Game:   c,
			Steps:  steps,
			Error:  err,
		}
	}
}

// Pool fans work items out to a fixed set of goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	process    ProcessFunc

	items   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result channels. Values
// below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with numWorkers goroutines and channels of
// bufferSize. Values below 1 keep the NewPoolWithOptions defaults.
func NewPool(numWorkers, bufferSize int, process ProcessFunc) *Pool {
	return NewPoolWithOptions(process, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool with one worker and a buffer of 10
// unless options say otherwise.
func NewPoolWithOptions(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{numWorkers: 1, bufferSize: 10, process: process}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.items {
		// After Stop, queued items are drained unprocessed.
		if p.stopped.Load() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.items <- item
}

// TrySubmit queues an item without blocking. It reports false when the
// buffer is full or the pool has been stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.stopped.Load() {
		return false
	}
	select {
	case p.items <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers skip every item they have not started yet.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Results.
// Results must be drained concurrently or Close may block.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results are delivered on, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Collect drains Results and returns them in submission order.
func (p *Pool) Collect() []ProcessResult {
	var out []ProcessResult
	for r := range p.results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
