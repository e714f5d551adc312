package utils

import (
	"bytes"

	chromahtml "github.com/alecthomas/chroma/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Markdown renders blog and lesson bodies. Raw HTML in the source is
// dropped, and fenced code is highlighted with CSS classes.
var Markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
			highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
		),
	),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RenderMarkdown converts source to HTML.
func RenderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := Markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
