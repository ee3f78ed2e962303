package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/docpress/internal/browser"
	"github.com/pdiddy/docpress/internal/scan"
	"github.com/pdiddy/docpress/pkg/types"
)

// Pipeline drives the Markdown-to-PDF batch: render each file to HTML, then
// try the available browsers in order until one produces a valid PDF.
type Pipeline struct {
	Renderer *HTMLRenderer
	Browsers []browser.Browser
	OutDir   string
}

// BatchResult holds the outcome of a batch print run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any files failed printing.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertFile renders one Markdown file and prints it to a PDF named after
// the file's base name in the output directory. Each available browser is
// tried in order; a PDF that fails verification is removed before the next
// browser runs. It returns the status of the conversion.
func (p *Pipeline) ConvertFile(mdPath string, w io.Writer) types.Status {
	base := strings.TrimSuffix(filepath.Base(mdPath), filepath.Ext(mdPath))
	pdfPath := filepath.Join(p.OutDir, base+".pdf")

	src, err := os.ReadFile(mdPath)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.StatusFailed
	}

	page, err := p.Renderer.RenderPage(src, base)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.StatusFailed
	}

	if len(p.Browsers) == 0 {
		fmt.Fprintf(w, "failed:  %s (no headless browser available)\n", base)
		return types.StatusFailed
	}

	var lastErr error
	for _, b := range p.Browsers {
		if err := b.PrintToPDF(page, pdfPath); err != nil {
			lastErr = err
			continue
		}
		if err := VerifyPDF(pdfPath); err != nil {
			os.Remove(pdfPath)
			lastErr = fmt.Errorf("%s produced an invalid PDF: %w", b.Name(), err)
			continue
		}
		fmt.Fprintf(w, "converted: %s (%s)\n", base, b.Name())
		return types.StatusDone
	}

	fmt.Fprintf(w, "failed:  %s (%v)\n", base, lastErr)
	return types.StatusFailed
}

// ConvertTree walks root for Markdown files and prints each one. Output
// lands flat in OutDir regardless of how deeply files nest under root, and
// the directory is created once before the first file is printed.
func (p *Pipeline) ConvertTree(root string, w io.Writer) (BatchResult, error) {
	files, err := scan.DiscoverTree(root, []string{".md"})
	if err != nil {
		return BatchResult{}, err
	}

	fmt.Fprintf(w, "Found %d Markdown files under %s\n", len(files), root)
	if len(files) == 0 {
		return BatchResult{}, nil
	}

	if err := os.MkdirAll(p.OutDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("creating output directory %s: %w", p.OutDir, err)
	}

	var result BatchResult
	for _, f := range files {
		switch p.ConvertFile(f, w) {
		case types.StatusDone:
			result.Converted++
		case types.StatusFailed:
			result.Failed++
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result, nil
}
