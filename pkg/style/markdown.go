package style

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders cop documentation for the terminal using glamour.
type MarkdownRenderer struct {
	Style string // "dark", "light", "notty", "auto", or a path to a custom style
	Width int    // 0 = auto-detect
}

// NewMarkdownRenderer creates a renderer with terminal auto-detection.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// Render converts markdown to terminal output, falling back to the raw text
// when the renderer cannot be built.
func (r *MarkdownRenderer) Render(content string) string {
	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}
