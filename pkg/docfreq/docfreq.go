// Package docfreq analyzes a corpus of PDF documents and produces a
// filtered word-frequency report.
package docfreq

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/docfreq/docfreq/pkg/docfreq/extract"
	"github.com/docfreq/docfreq/pkg/docfreq/filter"
	"github.com/docfreq/docfreq/pkg/docfreq/freq"
	"github.com/docfreq/docfreq/pkg/docfreq/lang"
	"github.com/docfreq/docfreq/pkg/docfreq/logging"
	"github.com/docfreq/docfreq/pkg/docfreq/store"
	"github.com/docfreq/docfreq/pkg/docfreq/tokenize"
)

// Options configures an Analyzer. Zero values select the production
// defaults: the PDF extractor, the lingua-backed classifier, a discard
// logger and no run history.
type Options struct {
	Extractor  extract.Extractor
	Classifier filter.Classifier
	Store      store.Store
	Log        *slog.Logger
	// IOWorkers bounds the document-reading pool (default 8).
	IOWorkers int
	// CPUWorkers bounds the filtering pool (default NumCPU).
	CPUWorkers int
}

// Analyzer is the analysis pipeline facade.
type Analyzer struct {
	ingestor *extract.Ingestor
	engine   *filter.Engine
	store    store.Store
	log      *slog.Logger
}

// New creates an Analyzer with the given dependencies.
func New(opts Options) *Analyzer {
	if opts.Extractor == nil {
		opts.Extractor = extract.PDFExtractor{}
	}
	if opts.Classifier == nil {
		opts.Classifier = lang.NewClassifier(lang.NewLinguaDetector())
	}
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}

	return &Analyzer{
		ingestor: &extract.Ingestor{
			Extractor:  opts.Extractor,
			MaxWorkers: opts.IOWorkers,
			Log:        opts.Log,
		},
		engine: &filter.Engine{
			Classifier: opts.Classifier,
			Workers:    opts.CPUWorkers,
		},
		store: opts.Store,
		log:   opts.Log,
	}
}

// Request describes one analysis run.
type Request struct {
	// InputPath is a PDF file or a directory containing PDF files.
	InputPath string
	// Excluded words are removed regardless of frequency or language.
	Excluded []string
	// Languages optionally restricts words to these ISO 639-1 codes.
	Languages []string
	// Frequency is applied after aggregation; the zero value passes
	// everything through.
	Frequency freq.Spec
}

// Result is the outcome of a run. TotalValidWords counts every word
// that survived exclusion, length and language filtering, before any
// frequency filter; it measures filtering effectiveness, not report
// size.
type Result struct {
	TotalValidWords int
	Frequencies     map[string]int
	FileCount       int
	Duration        time.Duration
}

func emptyResult() Result {
	return Result{Frequencies: map[string]int{}}
}

// Analyze runs discovery, parallel ingestion, tokenization, parallel
// filtering, aggregation and frequency filtering. Discovery failures
// and an empty corpus are terminal but not errors: they log a message
// and yield an empty result. A filter-worker failure is fatal and
// returns an error with no partial result.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (Result, error) {
	start := time.Now()

	paths, err := extract.Discover(req.InputPath)
	if err != nil {
		a.log.Error("discovery failed", "input", req.InputPath, "error", err)
		return emptyResult(), nil
	}
	if len(paths) == 0 {
		a.log.Error("no PDF files found", "input", req.InputPath)
		return emptyResult(), nil
	}

	corpus := a.ingestor.Ingest(ctx, paths)
	a.log.Info("reading complete", "files", len(paths), "duration", time.Since(start))

	if strings.TrimSpace(corpus) == "" {
		a.log.Warn("no text extracted from PDF files")
		return emptyResult(), nil
	}

	filterStart := time.Now()
	words := tokenize.Words(corpus)
	excluded := filter.NewExclusion(req.Excluded)

	filtered, err := a.engine.FilterAll(ctx, words, excluded, req.Languages)
	if err != nil {
		a.log.Error("word filtering failed", "error", err)
		return emptyResult(), err
	}
	a.log.Info("filtering complete", "words", len(filtered), "duration", time.Since(filterStart))

	counts := freq.Count(filtered)
	final := req.Frequency.Apply(counts)
	if final == nil {
		final = map[string]int{}
	}

	result := Result{
		TotalValidWords: len(filtered),
		Frequencies:     final,
		FileCount:       len(paths),
		Duration:        time.Since(start),
	}

	a.recordRun(ctx, req, result, start, len(counts))
	return result, nil
}

// recordRun persists the run summary when a history store is
// configured. Persistence failures do not fail the analysis.
func (a *Analyzer) recordRun(ctx context.Context, req Request, res Result, start time.Time, distinct int) {
	if a.store == nil {
		return
	}

	run := store.Run{
		ID:              store.NewRunID(),
		InputPath:       req.InputPath,
		StartedAt:       start,
		Duration:        res.Duration,
		FileCount:       res.FileCount,
		TotalValidWords: res.TotalValidWords,
		DistinctWords:   distinct,
	}
	if err := a.store.SaveRun(ctx, run); err != nil {
		a.log.Warn("failed to record run", "error", err)
		return
	}
	a.log.Info("run recorded", "id", run.ID)
}
