// Package report serializes frequency results to txt, csv, json and
// xlsx files.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/docfreq/docfreq/pkg/docfreq/internalerr"
)

// Formats lists the supported output formats.
var Formats = []string{"txt", "csv", "json", "xlsx"}

// Entry is one word/frequency pair in the sorted report.
type Entry struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

type jsonMetadata struct {
	TotalValidWordCount int    `json:"total_valid_word_count"`
	AnalysisTime        string `json:"analysis_time"`
}

type jsonReport struct {
	Metadata      jsonMetadata `json:"metadata"`
	FrequencyList []Entry      `json:"frequency_list"`
}

// ValidFormat reports whether format names a supported writer.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Write persists the frequency map sorted by descending frequency.
// An empty filename falls back to word_analysis_output.<format>. Parent
// directories are created as needed. Returns the file written.
func Write(frequencies map[string]int, totalCount int, format, filename string) (string, error) {
	if !ValidFormat(format) {
		return "", fmt.Errorf("%w: unsupported output format %q", internalerr.ErrInvalidConfig, format)
	}

	if filename == "" {
		filename = "word_analysis_output." + format
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	entries := sortedEntries(frequencies)

	var err error
	switch format {
	case "txt":
		err = writeTXT(filename, entries, totalCount)
	case "csv":
		err = writeCSV(filename, entries)
	case "json":
		err = writeJSON(filename, entries, totalCount)
	case "xlsx":
		err = writeXLSX(filename, entries)
	}
	if err != nil {
		return "", err
	}
	return filename, nil
}

// sortedEntries orders by descending frequency, ties broken by word so
// reports are reproducible.
func sortedEntries(frequencies map[string]int) []Entry {
	entries := make([]Entry, 0, len(frequencies))
	for word, freq := range frequencies {
		entries = append(entries, Entry{Word: word, Frequency: freq})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Frequency != entries[j].Frequency {
			return entries[i].Frequency > entries[j].Frequency
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}

func writeTXT(filename string, entries []Entry, totalCount int) error {
	var b strings.Builder
	b.WriteString("--- Word Analysis Results ---\n")
	fmt.Fprintf(&b, "Total Valid Word Count: %d\n", totalCount)
	b.WriteString(strings.Repeat("=", 35) + "\n")
	fmt.Fprintf(&b, "%-25s%-10s\n", "Word", "Frequency")
	b.WriteString(strings.Repeat("-", 35) + "\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%-25s%-10d\n", e.Word, e.Frequency)
	}
	return os.WriteFile(filename, []byte(b.String()), 0o644)
}

func writeCSV(filename string, entries []Entry) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Word", "Frequency"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := w.Write([]string{e.Word, strconv.Itoa(e.Frequency)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(filename string, entries []Entry, totalCount int) error {
	out := jsonReport{
		Metadata: jsonMetadata{
			TotalValidWordCount: totalCount,
			AnalysisTime:        time.Now().Format("2006-01-02 15:04:05"),
		},
		FrequencyList: entries,
	}

	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

func writeXLSX(filename string, entries []Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	if err := f.SetCellValue(sheet, "A1", "Word"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "B1", "Frequency"); err != nil {
		return err
	}
	for i, e := range entries {
		row := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.Word); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), e.Frequency); err != nil {
			return err
		}
	}
	return f.SaveAs(filename)
}
