// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements document-to-Markdown conversion through an
// external converter binary.
// Implements: prd001-markdown-conversion (R2-R5);
//
//	docs/ARCHITECTURE § Conversion.
package convert

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/docpress/internal/scan"
	"github.com/pdiddy/docpress/pkg/types"
)

// Converter transforms a word-processor document into a Markdown file on
// disk. The backend is responsible for writing outputPath itself.
type Converter interface {
	// Convert reads the document at inputPath and writes Markdown to outputPath.
	Convert(inputPath, outputPath string) error
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertFile converts a single document to Markdown placed next to it, with
// the extension replaced by .md. An existing output file is overwritten. It
// returns the status of the conversion.
func ConvertFile(c Converter, docPath string, w io.Writer) types.Status {
	base := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
	mdPath := strings.TrimSuffix(docPath, filepath.Ext(docPath)) + ".md"

	if err := c.Convert(docPath, mdPath); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.StatusFailed
	}

	fmt.Fprintf(w, "converted: %s\n", base)
	return types.StatusDone
}

// ConvertFiles processes a list of documents through the converter, printing
// per-file status to w and returning a summary. A failed file does not stop
// the rest of the batch.
func ConvertFiles(c Converter, docPaths []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range docPaths {
		switch ConvertFile(c, p, w) {
		case types.StatusDone:
			result.Converted++
		case types.StatusFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}

// ConvertDir scans dir (non-recursively) for documents matching exts and
// converts each one. When no documents match, it prints a notice and returns
// an empty result.
func ConvertDir(c Converter, dir string, exts []string, w io.Writer) (BatchResult, error) {
	files, err := scan.Discover(dir, exts)
	if err != nil {
		return BatchResult{}, err
	}
	if len(files) == 0 {
		fmt.Fprintf(w, "No %s files found in %s\n", strings.Join(exts, "/"), dir)
		return BatchResult{}, nil
	}
	return ConvertFiles(c, files, w), nil
}
