// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func newTestRenderer(t *testing.T, theme Theme) *HTMLRenderer {
	t.Helper()
	r, err := NewHTMLRenderer(theme)
	require.NoError(t, err)
	return r
}

// findTitle returns the text content of the first <title> element.
func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		if n.FirstChild != nil {
			return n.FirstChild.Data
		}
		return ""
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := findTitle(c); title != "" {
			return title
		}
	}
	return ""
}

func TestRenderFragment(t *testing.T) {
	r := newTestRenderer(t, DefaultTheme())

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "pipe table",
			src:  "| Col A | Col B |\n|-------|-------|\n| 1     | 2     |\n",
			want: []string{"<table>", "<th>Col A</th>", "<td>1</td>"},
		},
		{
			name: "fenced code block with highlighting classes",
			src:  "```go\nfunc main() {}\n```\n",
			want: []string{"<pre", "chroma", "func"},
		},
		{
			name: "strikethrough",
			src:  "~~gone~~\n",
			want: []string{"<del>gone</del>"},
		},
		{
			name: "hard line break inside a paragraph",
			src:  "first line\nsecond line\n",
			want: []string{"<br>"},
		},
		{
			name: "typographic quotes",
			src:  "\"quoted\"\n",
			want: []string{"&ldquo;quoted&rdquo;"},
		},
		{
			name: "heading anchor",
			src:  "# Getting Started\n",
			want: []string{`<h1 id="getting-started">`},
		},
		{
			name: "raw HTML passes through",
			src:  "before\n\n<div class=\"note\">kept</div>\n",
			want: []string{`<div class="note">kept</div>`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.RenderFragment([]byte(tt.src))
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, string(out), want)
			}
		})
	}
}

func TestRenderFragmentTOC(t *testing.T) {
	theme := DefaultTheme()
	theme.TOC = true
	r := newTestRenderer(t, theme)

	out, err := r.RenderFragment([]byte("# One\n\ntext\n\n# Two\n"))
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `id="toc"`)
	assert.Contains(t, s, `href="#one"`)
	assert.Contains(t, s, `href="#two"`)
	assert.Contains(t, s, "Contents")
}

func TestRenderFragmentNoTOCByDefault(t *testing.T) {
	r := newTestRenderer(t, DefaultTheme())

	out, err := r.RenderFragment([]byte("# One\n\ntext\n"))
	require.NoError(t, err)
	assert.NotContains(t, string(out), `id="toc"`)
	// Headings still carry anchors so that in-document links keep working.
	assert.Contains(t, string(out), `<h1 id="one">`)
}

func TestRenderPage(t *testing.T) {
	r := newTestRenderer(t, DefaultTheme())

	page, err := r.RenderPage([]byte("# Hello\n\nWorld.\n"), "hello")
	require.NoError(t, err)

	doc, err := html.Parse(bytes.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, "hello", findTitle(doc))

	s := string(page)
	assert.Contains(t, s, "<!DOCTYPE html>")
	assert.Contains(t, s, "size: A4;")
	assert.Contains(t, s, "margin: 1.5cm;")
	assert.Contains(t, s, ".chroma")
	assert.Contains(t, s, `<h1 id="hello">Hello</h1>`)
}

func TestRenderPageThemeValues(t *testing.T) {
	theme := DefaultTheme()
	theme.PageSize = "Letter"
	theme.Margin = "2cm"
	theme.ExtraCSS = "h1 { color: navy; }"
	r := newTestRenderer(t, theme)

	page, err := r.RenderPage([]byte("text\n"), "doc")
	require.NoError(t, err)

	s := string(page)
	assert.Contains(t, s, "size: Letter;")
	assert.Contains(t, s, "margin: 2cm;")
	assert.Contains(t, s, "h1 { color: navy; }")
}

func TestHighlightCSSUnknownStyle(t *testing.T) {
	css, err := highlightCSS("no-such-style")
	require.NoError(t, err)
	assert.NotEmpty(t, string(css))
}
