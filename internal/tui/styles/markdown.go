package styles

import (
	"strings"

	"github.com/charmbracelet/glamour/v2"
)

// GetMarkdownRenderer returns a glamour TermRenderer configured with the current theme
func GetMarkdownRenderer(width int) *glamour.TermRenderer {
	t := CurrentTheme()
	r, _ := glamour.NewTermRenderer(
		glamour.WithStyles(t.S().Markdown),
		glamour.WithWordWrap(width),
	)
	return r
}

// RenderMarkdown renders content for the terminal, falling back to the
// raw text if rendering fails.
func RenderMarkdown(content string, width int) string {
	r := GetMarkdownRenderer(width)
	if r == nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}
