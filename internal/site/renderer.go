package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"math"
	"time"

	"github.com/unclebandit/sparkles-site/internal/render"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer struct {
	tmpl *template.Template
}

var funcs = template.FuncMap{
	"markdown": render.Markdown,
	"stars":    stars,
	"year":     func() int { return time.Now().Year() },
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes into a buffer first so a template error never sends a
// half-written page.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// stars returns a slice with one entry per whole star, capped at five.
func stars(rating any) []int {
	var n int
	switch v := rating.(type) {
	case int:
		n = v
	case float64:
		n = int(math.Round(v))
	}
	n = max(0, min(n, 5))
	return make([]int, n)
}
