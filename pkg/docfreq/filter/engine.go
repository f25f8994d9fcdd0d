package filter

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Engine runs Chunk across a bounded worker pool. The word stream is
// partitioned into contiguous chunks, filtered concurrently, and
// reassembled in original chunk order so the output sequence does not
// depend on worker scheduling.
type Engine struct {
	Classifier Classifier
	// Workers caps the pool size; <= 0 means runtime.NumCPU().
	Workers int
}

// task carries everything one worker needs: its chunk, the shared
// read-only exclusion set and the target languages. No other state is
// shared between workers.
type task struct {
	index   int
	words   []string
	exclude Exclusion
	targets []string
}

// FilterAll filters the whole word stream. Any worker failure aborts
// the operation with no partial result.
func (e *Engine) FilterAll(ctx context.Context, words []string, excluded Exclusion, targets []string) ([]string, error) {
	if len(words) == 0 {
		return nil, nil
	}

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(words) {
		workers = len(words)
	}

	chunkSize := (len(words) + workers - 1) / workers
	var tasks []task
	for start := 0; start < len(words); start += chunkSize {
		end := start + chunkSize
		if end > len(words) {
			end = len(words)
		}
		tasks = append(tasks, task{
			index:   len(tasks),
			words:   words[start:end],
			exclude: excluded,
			targets: targets,
		})
	}

	results := make([][]string, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, t := range tasks {
		t := t
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("filter worker %d: %v", t.index, r)
				}
			}()
			if err := ctx.Err(); err != nil {
				return err
			}
			results[t.index] = Chunk(t.words, t.exclude, t.targets, e.Classifier)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Reassemble by chunk index, not completion order.
	var filtered []string
	for _, chunk := range results {
		filtered = append(filtered, chunk...)
	}
	return filtered, nil
}
