package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/docfreq/docfreq/pkg/docfreq/internalerr"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.IOWorkers != 8 {
		t.Errorf("Expected 8 io workers, got %d", cfg.IOWorkers)
	}
	if cfg.OutputFormat != "txt" {
		t.Errorf("Expected txt default format, got %s", cfg.OutputFormat)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults should validate: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docfreq.yaml")
	content := `
io_workers: 4
cpu_workers: 2
exclude:
  - the
  - and
languages:
  - en
  - tr
output_format: json
history_db: runs.db
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.IOWorkers != 4 || cfg.CPUWorkers != 2 {
		t.Errorf("Worker counts not loaded: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Exclude, []string{"the", "and"}) {
		t.Errorf("Exclude not loaded: %v", cfg.Exclude)
	}
	if !reflect.DeepEqual(cfg.Languages, []string{"en", "tr"}) {
		t.Errorf("Languages not loaded: %v", cfg.Languages)
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("Format not loaded: %s", cfg.OutputFormat)
	}
	// Unset keys keep defaults.
	if cfg.LogFormat != "text" {
		t.Errorf("Expected default log format, got %s", cfg.LogFormat)
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docfreq.yaml")
	if err := os.WriteFile(path, []byte("output_format: pdf\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadExcludeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.txt")
	content := "The\n\n# comment\nAND\n  is  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write exclude file: %v", err)
	}

	words, err := LoadExcludeFile(path)
	if err != nil {
		t.Fatalf("LoadExcludeFile: %v", err)
	}

	expected := []string{"the", "and", "is"}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("Expected %v, got %v", expected, words)
	}
}

func TestLoadExcludeFileMissing(t *testing.T) {
	_, err := LoadExcludeFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("Expected an error for a missing exclude file")
	}
}
