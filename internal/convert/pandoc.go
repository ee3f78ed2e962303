// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/docpress/internal/executil"
)

const binPandoc = "pandoc"

// PandocConverter converts word-processor documents by shelling out to the
// pandoc binary, targeting GitHub-flavored Markdown with line wrapping
// disabled so that paragraphs stay on single lines.
type PandocConverter struct {
	exec executil.Executor
}

// NewPandocConverter creates a converter backed by the pandoc binary. It
// verifies that pandoc is installed and runnable before returning.
func NewPandocConverter() (*PandocConverter, error) {
	return newPandocConverter(executil.System)
}

func newPandocConverter(exec executil.Executor) (*PandocConverter, error) {
	if _, err := exec.LookPath(binPandoc); err != nil {
		return nil, fmt.Errorf("pandoc not found on PATH (install it from https://pandoc.org/installing.html): %w", err)
	}
	if err := exec.RunSilent(binPandoc, "--version"); err != nil {
		return nil, fmt.Errorf("pandoc found but not runnable: %w", err)
	}
	return &PandocConverter{exec: exec}, nil
}

// Convert runs pandoc on inputPath and has it write GitHub-flavored Markdown
// to outputPath.
func (p *PandocConverter) Convert(inputPath, outputPath string) error {
	out, err := p.exec.RunCapture(binPandoc, inputPath, "-t", "gfm", "--wrap=none", "-o", outputPath)
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("converting %s with pandoc: %w: %s", filepath.Base(inputPath), err, msg)
		}
		return fmt.Errorf("converting %s with pandoc: %w", filepath.Base(inputPath), err)
	}
	return nil
}
