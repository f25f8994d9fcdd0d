// Package extract discovers PDF documents and reads their text in
// parallel.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor yields the full text content of a single document.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// PDFExtractor extracts text with ledongthuc/pdf (pure Go, no CGO).
type PDFExtractor struct{}

// Extract reads every page of the PDF in order. A page whose extraction
// fails contributes a single space instead of aborting the document; a
// document that cannot be opened returns an error naming the file.
func (PDFExtractor) Extract(ctx context.Context, path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	parts := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			parts = append(parts, " ")
			continue
		}

		text, err := pageText(page)
		if err != nil || text == "" {
			text = " "
		}
		parts = append(parts, text)
	}

	return strings.Join(parts, " "), nil
}

// pageText isolates per-page extraction; the underlying parser panics
// on some malformed content streams, which counts as a page failure.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page extraction: %v", r)
		}
	}()
	return page.GetPlainText(nil)
}
