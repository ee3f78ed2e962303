// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns Markdown files into styled HTML pages and drives
// headless browsers to print them as PDFs.
// Implements: prd002-pdf-rendering (R2, R3, R5, R6);
//
//	docs/ARCHITECTURE § Rendering.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"go.abhg.dev/goldmark/toc"
)

// HTMLRenderer converts Markdown source into a complete printable HTML page.
type HTMLRenderer struct {
	md    goldmark.Markdown
	tmpl  *template.Template
	theme Theme
	css   template.CSS
}

// NewHTMLRenderer builds a renderer for the given theme. The Markdown dialect
// is GitHub-flavored (tables, strikethrough, task lists, autolinks) with
// typographic quotes and dashes, syntax-highlighted fenced code blocks,
// stable heading anchors, and hard line breaks. Raw HTML in the source is
// passed through.
func NewHTMLRenderer(theme Theme) (*HTMLRenderer, error) {
	extenders := []goldmark.Extender{
		extension.GFM,
		extension.Typographer,
		highlighting.NewHighlighting(
			highlighting.WithStyle(theme.HighlightStyle),
			highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
		),
	}
	if theme.TOC {
		extenders = append(extenders, &toc.Extender{
			Title:  theme.TOCTitle,
			ListID: "toc",
		})
	}

	md := goldmark.New(
		goldmark.WithExtensions(extenders...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(ghtml.WithHardWraps(), ghtml.WithUnsafe()),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	css, err := highlightCSS(theme.HighlightStyle)
	if err != nil {
		return nil, err
	}

	return &HTMLRenderer{md: md, tmpl: tmpl, theme: theme, css: css}, nil
}

// RenderFragment converts Markdown source to an HTML fragment.
func (r *HTMLRenderer) RenderFragment(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage converts Markdown source into a full HTML page with the given
// document title.
func (r *HTMLRenderer) RenderPage(src []byte, title string) ([]byte, error) {
	fragment, err := r.RenderFragment(src)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	data := pageData{
		Title:        title,
		PageSize:     r.theme.PageSize,
		Margin:       r.theme.Margin,
		HighlightCSS: r.css,
		ExtraCSS:     template.CSS(r.theme.ExtraCSS),
		Content:      template.HTML(fragment),
	}
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return buf.Bytes(), nil
}
