package render

import (
	"bytes"
	"html/template"
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Raw HTML in admin-edited copy is dropped; goldmark escapes it unless
// html.WithUnsafe is set.
var engine = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Linkify),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Markdown renders admin-edited copy (about text, FAQ answers) to HTML.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := engine.Convert([]byte(src), &buf); err != nil {
		log.Println("⚠️ markdown render failed:", err)
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
