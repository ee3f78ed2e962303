// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Theme controls the look of the printed page. Fields absent from a theme
// file keep their built-in default values.
type Theme struct {
	// PageSize is the CSS @page size (e.g. "A4", "Letter").
	PageSize string `yaml:"page_size"`

	// Margin is the CSS @page margin (e.g. "1.5cm").
	Margin string `yaml:"margin"`

	// HighlightStyle names the chroma style used for fenced code blocks
	// (e.g. "github", "monokai").
	HighlightStyle string `yaml:"highlight_style"`

	// TOC inserts a linked table of contents before the content.
	TOC bool `yaml:"toc"`

	// TOCTitle is the heading above the table of contents (default "Contents").
	TOCTitle string `yaml:"toc_title,omitempty"`

	// ExtraCSS is appended verbatim to the page stylesheet.
	ExtraCSS string `yaml:"extra_css,omitempty"`
}

// DefaultTheme returns the built-in theme: A4 pages with 1.5cm margins and
// GitHub-style code highlighting.
func DefaultTheme() Theme {
	return Theme{
		PageSize:       "A4",
		Margin:         "1.5cm",
		HighlightStyle: "github",
		TOCTitle:       "Contents",
	}
}

// ReadThemeFile loads a theme from a YAML file.
func ReadThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}
	theme := DefaultTheme()
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("parsing theme file %s: %w", filepath.Base(path), err)
	}
	return theme, nil
}

// WriteThemeFile saves a theme to a YAML file.
func WriteThemeFile(path string, theme Theme) error {
	data, err := yaml.Marshal(&theme)
	if err != nil {
		return fmt.Errorf("marshaling theme: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadThemes reads all theme files in dir and returns a map of theme name
// (the filename without its .yaml or .yml extension) to theme. A missing
// directory is not an error; LoadThemes returns an empty map. Unreadable or
// unparseable files produce a warning on stderr but do not abort.
func LoadThemes(dir string) (map[string]Theme, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Theme{}, nil
		}
		return nil, fmt.Errorf("reading themes directory %s: %w", dir, err)
	}

	themes := make(map[string]Theme)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		ext := filepath.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		theme, err := ReadThemeFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not load theme %s: %v\n", name, err)
			continue
		}
		themes[strings.TrimSuffix(name, ext)] = theme
	}

	return themes, nil
}

// ResolveTheme picks the theme for a run. An empty name selects the built-in
// theme. A name that is an existing file path is loaded directly; otherwise
// the name is looked up among the themes in themesDir.
func ResolveTheme(name, themesDir string) (Theme, error) {
	if name == "" {
		return DefaultTheme(), nil
	}
	if _, err := os.Stat(name); err == nil {
		return ReadThemeFile(name)
	}
	themes, err := LoadThemes(themesDir)
	if err != nil {
		return Theme{}, err
	}
	theme, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (no %s.yaml in %s)", name, name, themesDir)
	}
	return theme, nil
}
