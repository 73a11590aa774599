// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Map applies transform to every key on up to workerCount goroutines and returns the
// results in key order. A non-positive workerCount runs one goroutine per key.
//
// The first transform error aborts the whole call: the context handed to transforms is
// canceled, no further keys are dispatched and the results collected so far are dropped.
// Map returns once every started transform has returned.
func Map[K, R any](
	ctx context.Context,
	workerCount int,
	keys []K,
	transform func(context.Context, K) (R, error),
) ([]R, error) {
	if len(keys) == 0 {
		return []R{}, nil
	}
	if workerCount <= 0 || workerCount > len(keys) {
		workerCount = len(keys)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		results  = make([]R, len(keys))
		tasks    = make(chan int)
		wg       sync.WaitGroup
		failOnce sync.Once
		firstErr error
	)
	fail := func(err error) {
		failOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				if ctx.Err() != nil {
					continue
				}
				res, err := transform(ctx, keys[idx])
				if err != nil {
					fail(err)
					continue
				}
				results[idx] = res
			}
		}()
	}

dispatch:
	for idx := range keys {
		select {
		case <-ctx.Done():
			break dispatch
		case tasks <- idx:
		}
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
