package pool

import (
	"context"
	"sync"
)

// WorkerFunc processes one item and returns its outcome.
type WorkerFunc[T, R any] func(ctx context.Context, item T) (R, error)

// Result pairs an input item with its outcome.
type Result[T, R any] struct {
	Item  T
	Value R
	Err   error
}

type task[T any] struct {
	index int
	item  T
}

// Map runs workerFunc over items with numWorkers goroutines and returns one
// Result per item, in input order. Items not started before ctx is cancelled
// carry ctx.Err().
func Map[T, R any](ctx context.Context, items []T, numWorkers int, workerFunc WorkerFunc[T, R]) []Result[T, R] {
	results := make([]Result[T, R], len(items))
	for i, item := range items {
		results[i] = Result[T, R]{Item: item}
	}
	if len(items) == 0 {
		return results
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	var wg sync.WaitGroup
	started := make([]bool, len(items))
	taskChan := make(chan task[T], numWorkers)

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range taskChan {
				select {
				case <-ctx.Done():
					continue
				default:
				}
				// Each index is owned by exactly one worker.
				started[t.index] = true
				results[t.index].Value, results[t.index].Err = workerFunc(ctx, t.item)
			}
		}()
	}

OUT:
	for i, item := range items {
		select {
		case taskChan <- task[T]{index: i, item: item}:
		case <-ctx.Done():
			break OUT
		}
	}
	close(taskChan)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for i := range results {
			if !started[i] {
				results[i].Err = err
			}
		}
	}
	return results
}

// Errors collects the non-nil errors of results.
func Errors[T, R any](results []Result[T, R]) []error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}
