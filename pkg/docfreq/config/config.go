// Package config loads analyzer settings from YAML files and exclusion
// word lists from plain text files.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docfreq/docfreq/pkg/docfreq/internalerr"
	"github.com/docfreq/docfreq/pkg/docfreq/report"
)

// Config holds the analyzer settings. CLI flags override file values.
type Config struct {
	IOWorkers    int      `yaml:"io_workers"`
	CPUWorkers   int      `yaml:"cpu_workers"`
	Exclude      []string `yaml:"exclude"`
	ExcludeFile  string   `yaml:"exclude_file"`
	Languages    []string `yaml:"languages"`
	OutputFormat string   `yaml:"output_format"`
	OutputFile   string   `yaml:"output_file"`
	HistoryDB    string   `yaml:"history_db"`
	LogLevel     string   `yaml:"log_level"`
	LogFormat    string   `yaml:"log_format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		IOWorkers:    8,
		OutputFormat: "txt",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that have a closed set of valid values.
func (c Config) Validate() error {
	if !report.ValidFormat(c.OutputFormat) {
		return fmt.Errorf("%w: output format %q", internalerr.ErrInvalidConfig, c.OutputFormat)
	}
	return nil
}

// LoadExcludeFile reads an exclusion word list, one word per line.
// Blank lines and #-comments are skipped; words are lowercased.
func LoadExcludeFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	return words, nil
}
