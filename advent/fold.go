package main

import (
	"runtime"

	"github.com/cespare/wait"
)

// forChunks splits [0, n) into at most workers contiguous chunks and runs
// fn on each chunk in its own goroutine. Chunk c covers [start, end).
// The first error stops the remaining chunks.
func forChunks(n, workers int, fn func(c, start, end int) error) (numChunks int, err error) {
	if n == 0 {
		return 0, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers
	var wg wait.Group
	for start := 0; start < n; start += size {
		c := numChunks
		end := min(start+size, n)
		wg.Go(func(quit <-chan struct{}) error {
			select {
			case <-quit:
				return nil
			default:
			}
			return fn(c, start, end)
		})
		numChunks++
	}
	return numChunks, wg.Wait()
}

// mapRecords applies fn to every record in parallel. The results keep the
// order of records.
func mapRecords[T, R any](records []T, workers int, fn func(T) (R, error)) ([]R, error) {
	results := make([]R, len(records))
	_, err := forChunks(len(records), workers, func(_, start, end int) error {
		for i := start; i < end; i++ {
			v, err := fn(records[i])
			if err != nil {
				return err
			}
			results[i] = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// sumRecords sums fn over records. Each chunk accumulates into its own
// partial sum.
func sumRecords[T any](records []T, workers int, fn func(T) (int, error)) (int, error) {
	partials := make([]int, len(records))
	numChunks, err := forChunks(len(records), workers, func(c, start, end int) error {
		var sum int
		for _, rec := range records[start:end] {
			n, err := fn(rec)
			if err != nil {
				return err
			}
			sum += n
		}
		partials[c] = sum
		return nil
	})
	if err != nil {
		return 0, err
	}
	var total int
	for _, n := range partials[:numChunks] {
		total += n
	}
	return total, nil
}

// countRecords counts the records satisfying pred.
func countRecords[T any](records []T, workers int, pred func(T) bool) (int, error) {
	return sumRecords(records, workers, func(rec T) (int, error) {
		if pred(rec) {
			return 1, nil
		}
		return 0, nil
	})
}
