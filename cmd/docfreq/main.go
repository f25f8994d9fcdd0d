// Command docfreq analyzes a PDF file or a folder of PDFs and writes a
// filtered word-frequency report.
//
// Usage:
//
//	docfreq [flags] <pdf-file-or-directory>
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/docfreq/docfreq/pkg/docfreq"
	"github.com/docfreq/docfreq/pkg/docfreq/config"
	"github.com/docfreq/docfreq/pkg/docfreq/freq"
	"github.com/docfreq/docfreq/pkg/docfreq/logging"
	"github.com/docfreq/docfreq/pkg/docfreq/report"
	"github.com/docfreq/docfreq/pkg/docfreq/store/sqlite"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Optional YAML config file")
		exclude     = flag.String("exclude", "", "Comma-separated words to exclude (e.g. the,and,is)")
		excludeFile = flag.String("exclude-file", "", "Text file with words to exclude, one per line")
		minFreq     = flag.Int("min-freq", -1, "Minimum frequency to keep (inclusive)")
		maxFreq     = flag.Int("max-freq", -1, "Maximum frequency to keep (inclusive)")
		exactFreq   = flag.String("exact-freq", "", "Comma-separated exact frequency values to keep (e.g. 3,7)")
		langs       = flag.String("langs", "", "Comma-separated ISO 639-1 target language codes (e.g. en,tr)")
		format      = flag.String("format", "", "Output format: txt, csv, json or xlsx (default txt)")
		out         = flag.String("out", "", "Output file name; a default is derived from the format")
		historyDB   = flag.String("history", "", "SQLite file for run history; empty disables it")
		ioWorkers   = flag.Int("io-workers", 0, "Max threads reading PDFs (default 8)")
		cpuWorkers  = flag.Int("cpu-workers", 0, "Max workers filtering words (default: CPU count)")
		logLevel    = flag.String("log-level", "", "Log level: debug, info, warn, error")
		logFormat   = flag.String("log-format", "", "Log format: text or json")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: docfreq [flags] <pdf-file-or-directory>")
	}
	inputPath := flag.Arg(0)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	// Explicit flags override config file values.
	if *exclude != "" {
		cfg.Exclude = append(cfg.Exclude, splitList(*exclude)...)
	}
	if *excludeFile != "" {
		cfg.ExcludeFile = *excludeFile
	}
	if *langs != "" {
		cfg.Languages = splitList(*langs)
	}
	if *format != "" {
		cfg.OutputFormat = *format
	}
	if *out != "" {
		cfg.OutputFile = *out
	}
	if *historyDB != "" {
		cfg.HistoryDB = *historyDB
	}
	if *ioWorkers > 0 {
		cfg.IOWorkers = *ioWorkers
	}
	if *cpuWorkers > 0 {
		cfg.CPUWorkers = *cpuWorkers
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid settings: %v", err)
	}

	spec, err := frequencySpec(*minFreq, *maxFreq, *exactFreq)
	if err != nil {
		log.Fatal(err)
	}

	excluded := cfg.Exclude
	if cfg.ExcludeFile != "" {
		fileWords, err := config.LoadExcludeFile(cfg.ExcludeFile)
		if err != nil {
			log.Fatalf("load exclude file: %v", err)
		}
		excluded = append(excluded, fileWords...)
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	opts := docfreq.Options{
		Log:        logger,
		IOWorkers:  cfg.IOWorkers,
		CPUWorkers: cfg.CPUWorkers,
	}
	if cfg.HistoryDB != "" {
		st, err := sqlite.Open(ctx, cfg.HistoryDB)
		if err != nil {
			log.Fatalf("open history store: %v", err)
		}
		defer st.Close()
		opts.Store = st
	}

	analyzer := docfreq.New(opts)

	logger.Info("word analysis started", "input", inputPath)
	result, err := analyzer.Analyze(ctx, docfreq.Request{
		InputPath: inputPath,
		Excluded:  excluded,
		Languages: cfg.Languages,
		Frequency: spec,
	})
	if err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	if result.TotalValidWords == 0 || len(result.Frequencies) == 0 {
		fmt.Println("Analysis complete, but no results matched the specified filters.")
		return
	}

	written, err := report.Write(result.Frequencies, result.TotalValidWords, cfg.OutputFormat, cfg.OutputFile)
	if err != nil {
		logger.Error("write report", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Results written to %s (%d valid words, %d distinct).\n",
		written, result.TotalValidWords, len(result.Frequencies))
}

// frequencySpec builds the post-aggregation filter. Range and exact
// filters are mutually exclusive.
func frequencySpec(minFreq, maxFreq int, exactFreq string) (freq.Spec, error) {
	hasRange := minFreq >= 0 || maxFreq >= 0
	if hasRange && exactFreq != "" {
		return freq.Spec{}, fmt.Errorf("-exact-freq cannot be combined with -min-freq/-max-freq")
	}

	if exactFreq != "" {
		var values []int
		for _, field := range splitList(exactFreq) {
			v, err := strconv.Atoi(field)
			if err != nil {
				return freq.Spec{}, fmt.Errorf("invalid -exact-freq value %q", field)
			}
			values = append(values, v)
		}
		return freq.Exact(values), nil
	}

	if hasRange {
		min := minFreq
		if min < 0 {
			min = 0
		}
		if maxFreq < 0 {
			return freq.RangeFrom(min), nil
		}
		return freq.Range(min, maxFreq), nil
	}

	return freq.None(), nil
}

func splitList(s string) []string {
	var items []string
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field != "" {
			items = append(items, field)
		}
	}
	return items
}
