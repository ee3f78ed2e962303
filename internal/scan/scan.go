// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan discovers convertible files on disk.
// Implements: prd001-markdown-conversion R1, prd002-pdf-rendering R1 (discovery).
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover returns the files directly inside dir whose extension matches one
// of exts. It does not descend into subdirectories. Matching is
// case-insensitive, and extensions may be given with or without a leading dot.
func Discover(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if matchExt(e.Name(), exts) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// DiscoverTree returns the files anywhere under root whose extension matches
// one of exts, in lexical walk order.
func DiscoverTree(root string, exts []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if matchExt(d.Name(), exts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

// matchExt reports whether name has one of the given extensions.
func matchExt(name string, exts []string) bool {
	got := filepath.Ext(name)
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if strings.EqualFold(got, ext) {
			return true
		}
	}
	return false
}
