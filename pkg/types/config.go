// Package types defines shared data structures for the docpress pipeline.
// Implements: prd001-markdown-conversion (MarkdownConfig, Status);
//
//	prd002-pdf-rendering (PDFConfig).
//
// See docs/ARCHITECTURE § Pipeline Interface, § Data Structures.
package types

// MarkdownConfig holds settings for the document-to-Markdown stage.
type MarkdownConfig struct {
	// InputDir is the directory scanned for word-processor documents.
	// The scan does not descend into subdirectories.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// Extensions lists the file extensions converted to Markdown (default .docx).
	// Matching is case-insensitive and a missing leading dot is tolerated.
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// PDFConfig holds settings for the Markdown-to-PDF stage.
type PDFConfig struct {
	// InputRoot is the directory walked recursively for Markdown files.
	InputRoot string `json:"input_root" yaml:"input_root"`

	// OutputDir is the flat directory that receives printed PDFs (default "pdf").
	// Files from nested input directories all land here under their base name.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Theme is a theme name resolved against ThemesDir, or a path to a theme
	// file. Empty selects the built-in theme.
	Theme string `json:"theme,omitempty" yaml:"theme,omitempty"`

	// ThemesDir is the directory holding named theme files (default "themes").
	ThemesDir string `json:"themes_dir" yaml:"themes_dir"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Markdown MarkdownConfig `json:"markdown" yaml:"markdown"`
	PDF      PDFConfig      `json:"pdf" yaml:"pdf"`
}

// DefaultConfig returns the settings used when no config file, environment
// variable, or flag overrides a value.
func DefaultConfig() PipelineConfig {
	return PipelineConfig{
		Markdown: MarkdownConfig{
			InputDir:   ".",
			Extensions: []string{".docx"},
		},
		PDF: PDFConfig{
			InputRoot: ".",
			OutputDir: "pdf",
			ThemesDir: "themes",
		},
	}
}
