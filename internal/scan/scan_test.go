// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// relNames converts absolute result paths to slash-separated paths relative
// to root, for comparison.
func relNames(t *testing.T, root string, paths []string) []string {
	t.Helper()
	var rels []string
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatal(err)
		}
		rels = append(rels, filepath.ToSlash(rel))
	}
	return rels
}

func TestDiscover(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		exts  []string
		want  []string
	}{
		{
			name:  "matches extension case-insensitively",
			files: []string{"a.docx", "B.DOCX", "c.Docx", "notes.txt"},
			exts:  []string{".docx"},
			want:  []string{"B.DOCX", "a.docx", "c.Docx"},
		},
		{
			name:  "does not descend into subdirectories",
			files: []string{"top.docx", "sub/inner.docx"},
			exts:  []string{".docx"},
			want:  []string{"top.docx"},
		},
		{
			name:  "accepts extensions without a leading dot",
			files: []string{"a.docx", "b.odt"},
			exts:  []string{"docx", "odt"},
			want:  []string{"a.docx", "b.odt"},
		},
		{
			name:  "empty directory",
			files: nil,
			exts:  []string{".docx"},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFiles(t, root, tt.files...)

			got, err := Discover(root, tt.exts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotRel := relNames(t, root, got); strings.Join(gotRel, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", gotRel, tt.want)
			}
		})
	}
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "absent"), []string{".docx"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestDiscoverTree(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"index.md",
		"guide/install.md",
		"guide/deep/usage.MD",
		"guide/assets/logo.png",
		"notes.txt",
	)

	got, err := DiscoverTree(root, []string{".md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"guide/deep/usage.MD", "guide/install.md", "index.md"}
	if gotRel := relNames(t, root, got); strings.Join(gotRel, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", gotRel, want)
	}
}

func TestDiscoverTreeMissingRoot(t *testing.T) {
	_, err := DiscoverTree(filepath.Join(t.TempDir(), "absent"), []string{".md"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
