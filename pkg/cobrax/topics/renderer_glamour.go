package topics

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// defaultWrap keeps topics readable on wide terminals
const defaultWrap = 80

// GlamourRenderer uses the glamour library for rich markdown rendering
type GlamourRenderer struct {
	Style string // "auto", a standard style name ("dark", "light", "notty"), or a style file path
	Width int    // Word wrap column; 0 uses defaultWrap
}

// NewGlamourRenderer creates a markdown renderer with auto-detected style
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to styled terminal output. Anything that is not
// markdown, or fails to render, is returned unchanged.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	width := r.Width
	if width <= 0 {
		width = defaultWrap
	}

	options := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch {
	case r.Style == "" || r.Style == "auto":
		options = append(options, glamour.WithAutoStyle())
	case isStandardStyle(r.Style):
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func isStandardStyle(name string) bool {
	_, ok := styles.DefaultStyles[name]
	return ok
}
