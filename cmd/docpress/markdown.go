package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docpress/internal/convert"
)

var markdownCmd = &cobra.Command{
	Use:   "markdown [dir]",
	Short: "Convert word-processor documents to GitHub-flavored Markdown",
	Long: `Markdown scans a directory (non-recursively) for word-processor documents
and converts each one to GitHub-flavored Markdown through pandoc, with line
wrapping disabled. Output lands next to each source file with the extension
replaced by .md; existing output files are overwritten.

The command fails outright only when pandoc itself is missing. Individual
files that pandoc cannot convert are reported and skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMarkdown,
}

func init() {
	markdownCmd.Flags().String("dir", "", `directory to scan for documents (default ".")`)
	markdownCmd.Flags().StringSlice("ext", nil, "file extensions to convert (default .docx)")

	rootCmd.AddCommand(markdownCmd)
}

func runMarkdown(cmd *cobra.Command, args []string) error {
	dir := setting(cmd, "dir", "markdown.dir")
	if len(args) == 1 {
		dir = args[0]
	}
	exts := settingSlice(cmd, "ext", "markdown.extensions")

	conv, err := convert.NewPandocConverter()
	if err != nil {
		return err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		absDir = dir
	}
	fmt.Printf("Scanning for %s files in %s\n", strings.Join(exts, "/"), absDir)

	if _, err := convert.ConvertDir(conv, dir, exts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return nil
}
