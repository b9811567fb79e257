// Package workers runs per-chunk tasks on a bounded, shared set of slots.
//
// A Pool is created once and reused by every disguise and recovery call.
// Each call opens a Batch, submits one task per chunk and joins on Wait.
// Failures never cancel sibling tasks. Wait reports whether any task failed;
// callers then inspect the Futures to pick the failure they report.
package workers

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool bounds how many tasks run at once across all batches.
type Pool struct {
	size int64
	sem  *semaphore.Weighted
}

// New creates a pool with size slots. size <= 0 means one per CPU.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	return &Pool{size: int64(size), sem: semaphore.NewWeighted(int64(size))}
}

// Size returns the number of slots.
func (p *Pool) Size() int { return int(p.size) }

// Batch groups the tasks of one call so they can be joined together.
type Batch struct {
	pool *Pool
	g    errgroup.Group
}

// NewBatch opens a batch on p.
func (p *Pool) NewBatch() *Batch {
	return &Batch{pool: p}
}

// Wait blocks until every submitted task has finished and returns the
// first error to complete, or nil when all tasks succeeded. Completion order
// is not deterministic; use the Futures to pick a specific failure.
func (b *Batch) Wait() error {
	return b.g.Wait()
}

// Future is the eventual result of one task.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Wait blocks until the task has finished and returns its result.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}

// Submit schedules fn on the batch's pool without blocking the caller.
func Submit[T any](b *Batch, fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	b.g.Go(func() error {
		defer close(f.done)
		// Background never cancels, so Acquire only returns once a slot frees.
		_ = b.pool.sem.Acquire(context.Background(), 1)
		defer b.pool.sem.Release(1)
		f.val, f.err = fn()
		return f.err
	})
	return f
}
