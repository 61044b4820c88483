package render

import (
	"strings"
	"testing"
)

func TestMarkdownFormatsText(t *testing.T) {
	out := string(Markdown("Machine **washable** at 40C"))
	if !strings.Contains(out, "<strong>washable</strong>") {
		t.Errorf("expected bold text, got %q", out)
	}
}

func TestMarkdownDropsRawHTML(t *testing.T) {
	out := string(Markdown("hello <script>alert(1)</script>"))
	if strings.Contains(out, "<script>") {
		t.Errorf("expected raw HTML to be omitted, got %q", out)
	}
}

func TestMarkdownLinkify(t *testing.T) {
	out := string(Markdown("Visit https://tiffanysparkles.com today"))
	if !strings.Contains(out, `href="https://tiffanysparkles.com"`) {
		t.Errorf("expected autolinked url, got %q", out)
	}
}
