package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

var sample = map[string]int{"hello": 5, "world": 2, "again": 2}

func TestWriteTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	written, err := Write(sample, 9, "txt", path)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if written != path {
		t.Errorf("Expected %s, got %s", path, written)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	text := string(data)

	if !strings.Contains(text, "Total Valid Word Count: 9") {
		t.Error("TXT header should carry the total count")
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	// hello first (highest frequency), then again/world by word.
	if !strings.HasPrefix(lines[len(lines)-3], "hello") {
		t.Errorf("Expected hello first, got %q", lines[len(lines)-3])
	}
	if !strings.HasPrefix(lines[len(lines)-2], "again") {
		t.Errorf("Ties should break by word, got %q", lines[len(lines)-2])
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	if _, err := Write(sample, 9, "csv", path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	if !reflect.DeepEqual(records[0], []string{"Word", "Frequency"}) {
		t.Errorf("Expected header row, got %v", records[0])
	}
	if !reflect.DeepEqual(records[1], []string{"hello", "5"}) {
		t.Errorf("Expected hello first, got %v", records[1])
	}
	if len(records) != 4 {
		t.Errorf("Expected 4 rows, got %d", len(records))
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if _, err := Write(sample, 9, "json", path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var out struct {
		Metadata struct {
			TotalValidWordCount int    `json:"total_valid_word_count"`
			AnalysisTime        string `json:"analysis_time"`
		} `json:"metadata"`
		FrequencyList []Entry `json:"frequency_list"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("parse json: %v", err)
	}

	if out.Metadata.TotalValidWordCount != 9 {
		t.Errorf("Expected total 9, got %d", out.Metadata.TotalValidWordCount)
	}
	if out.Metadata.AnalysisTime == "" {
		t.Error("Expected a populated analysis_time")
	}
	if len(out.FrequencyList) != 3 || out.FrequencyList[0].Word != "hello" {
		t.Errorf("Expected hello first in frequency_list, got %v", out.FrequencyList)
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	if _, err := Write(sample, 9, "xlsx", path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Sheet1", "A1")
	if err != nil || header != "Word" {
		t.Errorf("Expected Word header, got %q (%v)", header, err)
	}
	first, err := f.GetCellValue("Sheet1", "A2")
	if err != nil || first != "hello" {
		t.Errorf("Expected hello in first data row, got %q (%v)", first, err)
	}
}

func TestWriteCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.csv")

	if _, err := Write(sample, 9, "csv", path); err != nil {
		t.Fatalf("Write should create parent directories: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Output file missing: %v", err)
	}
}

func TestWriteDefaultFilename(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })

	written, err := Write(sample, 9, "txt", "")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if written != "word_analysis_output.txt" {
		t.Errorf("Expected default filename, got %s", written)
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	if _, err := Write(sample, 9, "pdf", ""); err == nil {
		t.Error("Expected an error for an unsupported format")
	}
}
