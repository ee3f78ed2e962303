// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docpress/internal/browser"
	"github.com/pdiddy/docpress/internal/render"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf [root]",
	Short: "Render Markdown trees to print-quality PDFs",
	Long: `Pdf walks a directory tree for Markdown files, renders each one to a
styled HTML page, and prints it to PDF through a headless browser (Chrome,
Chromium, or Firefox, in that order). All PDFs land flat in the output
directory under the source file's base name.

Themes are YAML files: pick one by name from the themes directory, or pass
a path to a theme file directly. Without a theme the built-in defaults
apply (A4, 1.5cm margins, GitHub-style code highlighting).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPDF,
}

func init() {
	pdfCmd.Flags().String("out", "", `output directory for PDFs (default "pdf")`)
	pdfCmd.Flags().String("theme", "", "theme name or path to a theme file")
	pdfCmd.Flags().String("themes-dir", "", `directory holding named themes (default "themes")`)

	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, args []string) error {
	root := viper.GetString("pdf.input_root")
	if len(args) == 1 {
		root = args[0]
	}

	theme, err := render.ResolveTheme(
		setting(cmd, "theme", "pdf.theme"),
		setting(cmd, "themes-dir", "pdf.themes_dir"),
	)
	if err != nil {
		return err
	}

	renderer, err := render.NewHTMLRenderer(theme)
	if err != nil {
		return err
	}

	browsers := browser.Detect()
	if len(browsers) == 0 {
		fmt.Fprintln(os.Stderr, "warning: no headless browser found (install Google Chrome, Chromium, or Firefox); every file will fail")
	}

	pipeline := &render.Pipeline{
		Renderer: renderer,
		Browsers: browsers,
		OutDir:   setting(cmd, "out", "pdf.output_dir"),
	}

	if _, err := pipeline.ConvertTree(root, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return nil
}
