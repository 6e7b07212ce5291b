package worker

import (
	"context"
	"sync"
)

// Pool runs a bounded number of goroutines over a batch of items.
// Results keep the input order regardless of which worker finished first.
type Pool struct {
	workers int
}

// NewPool creates new pool with the given concurrency. Values below 1
// degrade to sequential execution.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Workers returns the configured concurrency
func (p *Pool) Workers() int {
	return p.workers
}

// Map applies fn to every item concurrently and returns results in input order.
// Stops dispatching new items once ctx is cancelled; already running calls finish.
func Map[T any, R any](ctx context.Context, p *Pool, items []T, fn func(context.Context, T) R) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = fn(ctx, items[i])
			}
		}()
	}

	for i := range items {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return results[:i]
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}
