package app

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/JaimeStill/discourse/internal/cards"
)

var md = goldmark.New(
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// Markdown renders generated text as HTML. Raw HTML in the source is
// omitted by the renderer.
func Markdown(s string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func funcs(links cards.Links) template.FuncMap {
	return template.FuncMap{
		"markdown":  Markdown,
		"scripture": links.Scripture,
	}
}
