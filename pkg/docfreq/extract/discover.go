package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/docfreq/docfreq/pkg/docfreq/internalerr"
)

// Discover resolves the input path to a list of absolute PDF file
// paths. A single file is accepted when its extension says PDF or its
// content sniffs as one; a directory is scanned non-recursively for
// .pdf entries. Any other path is an ErrInvalidInput. An empty list is
// a valid result for a directory without PDFs; the caller decides
// whether that is fatal.
func Discover(inputPath string) ([]string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", internalerr.ErrInvalidInput, inputPath)
	}

	if info.Mode().IsRegular() {
		if !isPDF(inputPath) {
			return nil, fmt.Errorf("%w: not a PDF file: %s", internalerr.ErrInvalidInput, inputPath)
		}
		abs, err := filepath.Abs(inputPath)
		if err != nil {
			return nil, err
		}
		return []string{abs}, nil
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", internalerr.ErrInvalidInput, inputPath)
	}

	abs, err := filepath.Abs(inputPath)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", abs, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(abs, entry.Name()))
		}
	}
	return paths, nil
}

// isPDF accepts a .pdf extension or, failing that, sniffs the file
// content so that misnamed PDFs are still picked up.
func isPDF(path string) bool {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return true
	}
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	return mtype.Is("application/pdf")
}
