// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"html/template"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// pageData fills pageTemplate for one document.
type pageData struct {
	Title        string
	PageSize     string
	Margin       string
	HighlightCSS template.CSS
	ExtraCSS     template.CSS
	Content      template.HTML
}

// pageTemplate is the HTML shell wrapped around every rendered document. The
// stylesheet targets print: the @page rule sizes the sheet, the rest keeps
// the document readable on paper.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        @page {
            size: {{.PageSize}};
            margin: {{.Margin}};
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 100%;
            padding: 0;
            margin: 0;
        }
        h1 {
            font-size: 24pt;
            color: #333;
            border-bottom: 1px solid #ddd;
            padding-bottom: 0.3cm;
        }
        h2 {
            font-size: 18pt;
            color: #444;
            margin-top: 1.5em;
            border-bottom: 1px solid #eee;
            padding-bottom: 0.2cm;
        }
        h3 {
            font-size: 14pt;
            color: #555;
        }
        h4, h5, h6 {
            color: #666;
        }
        p {
            text-align: justify;
            margin: 1em 0;
        }
        code {
            background-color: #f5f5f5;
            border-radius: 3px;
            font-family: SFMono-Regular, Consolas, "Liberation Mono", Menlo, monospace;
            font-size: 85%;
            padding: 0.2em 0.4em;
        }
        pre {
            background-color: #f5f5f5;
            border: 1px solid #ddd;
            border-radius: 3px;
            padding: 1em;
            overflow-x: auto;
            margin: 1em 0;
        }
        pre code {
            background-color: transparent;
            padding: 0;
        }
        blockquote {
            border-left: 4px solid #ddd;
            padding-left: 1em;
            color: #666;
            margin: 1em 0 1em 1em;
        }
        ul, ol {
            margin: 1em 0;
            padding-left: 2em;
        }
        li {
            margin-bottom: 0.5em;
        }
        li > ul, li > ol {
            margin: 0.5em 0;
        }
        table {
            border-collapse: collapse;
            width: 100%;
            margin: 1em 0;
        }
        th, td {
            border: 1px solid #ddd;
            padding: 8px 12px;
            text-align: left;
        }
        th {
            background-color: #f2f2f2;
            font-weight: bold;
        }
        tr:nth-child(even) {
            background-color: #f9f9f9;
        }
        a {
            color: #0366d6;
            text-decoration: none;
        }
        a:hover {
            text-decoration: underline;
        }
        hr {
            border: 0;
            border-top: 1px solid #ddd;
            margin: 2em 0;
        }
        img {
            max-width: 100%;
            height: auto;
        }
        #toc {
            background-color: #f8f8f8;
            border: 1px solid #ddd;
            border-radius: 5px;
            padding: 1em 1em 1em 2.5em;
            margin: 1em 0;
        }
        #toc ul {
            margin: 0.5em 0;
        }
        {{.HighlightCSS}}
        {{.ExtraCSS}}
    </style>
</head>
<body>
    <div class="container">
        {{.Content}}
    </div>
</body>
</html>
`

// highlightCSS generates the stylesheet for fenced code blocks from a chroma
// style name. Unknown names fall back to chroma's default style.
func highlightCSS(styleName string) (template.CSS, error) {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("generating highlight stylesheet: %w", err)
	}
	return template.CSS(buf.String()), nil
}
