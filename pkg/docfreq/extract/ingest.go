package extract

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/docfreq/docfreq/pkg/docfreq/logging"
)

// DefaultIOWorkers bounds the reading pool when no worker count is
// configured.
const DefaultIOWorkers = 8

// Ingestor reads many documents concurrently and concatenates their
// text into one corpus. Reading is I/O bound, so the fan-out is a
// bounded pool of goroutines blocking on extraction calls.
type Ingestor struct {
	Extractor Extractor
	// MaxWorkers caps concurrent extractions; <= 0 means DefaultIOWorkers.
	MaxWorkers int
	Log        *slog.Logger
}

// Ingest extracts every path and returns the space-joined corpus.
// Accumulation order is non-deterministic; downstream frequency
// counting does not depend on it. A failed file is logged, contributes
// no text, and still advances the progress counter. Never aborts on a
// per-file failure.
func (in *Ingestor) Ingest(ctx context.Context, paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	log := in.Log
	if log == nil {
		log = logging.Discard()
	}

	workers := in.MaxWorkers
	if workers <= 0 {
		workers = DefaultIOWorkers
	}

	total := len(paths)
	log.Info("reading documents", "total", total, "workers", workers)

	var (
		texts   []string
		textsMu sync.Mutex

		completed  int
		progressMu sync.Mutex
	)

	// Increment-and-report is a single critical section so progress
	// lines never repeat or skip a count.
	advance := func(file string, ok bool) {
		progressMu.Lock()
		defer progressMu.Unlock()
		completed++
		if ok {
			log.Info("file read", "file", file, "progress", completed, "total", total)
		} else {
			log.Info("file skipped", "file", file, "progress", completed, "total", total)
		}
	}

	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, path := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			file := filepath.Base(path)

			if err := sem.Acquire(ctx, 1); err != nil {
				log.Error("failed to read file", "file", file, "error", err)
				advance(file, false)
				return
			}
			defer sem.Release(1)

			text, err := in.Extractor.Extract(ctx, path)
			if err != nil {
				log.Error("failed to read file", "file", file, "error", err)
				advance(file, false)
				return
			}

			textsMu.Lock()
			texts = append(texts, text)
			textsMu.Unlock()

			advance(file, true)
		}(path)
	}
	wg.Wait()

	return strings.Join(texts, " ")
}
