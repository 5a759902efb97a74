// Package styles defines the visual styling for xml2conf's terminal output.
//
// Styles are declared in an embedded YAML file with semantic names and
// adaptive colors. A Theme binds them to one output stream, so colors are
// only emitted when that stream supports them.
package styles

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var defaultConfig = mustLoad(embeddedStyles)

func mustLoad(data []byte) *Config {
	cfg, err := LoadStylesFromData(data)
	if err != nil {
		// Unstyled output is better than no output
		return &Config{}
	}
	return cfg
}

// LoadStylesFromData parses a YAML style configuration
func LoadStylesFromData(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}
	for name, def := range cfg.Styles {
		if def.Foreground == "" {
			continue
		}
		if _, ok := cfg.Colors[def.Foreground]; !ok {
			return nil, fmt.Errorf("style %s uses undefined color %s", name, def.Foreground)
		}
	}
	return &cfg, nil
}

// Theme renders named styles for a single output stream
type Theme struct {
	styles map[string]lipgloss.Style
}

// NewTheme creates a theme for w using the embedded styles
func NewTheme(w io.Writer) *Theme {
	return NewThemeWithConfig(w, defaultConfig)
}

// NewThemeWithConfig creates a theme for w from cfg. Color support is
// detected on w itself, so writers that are not terminals get plain text.
func NewThemeWithConfig(w io.Writer, cfg *Config) *Theme {
	renderer := lipgloss.NewRenderer(w, termenv.WithColorCache(true))

	t := &Theme{styles: make(map[string]lipgloss.Style, len(cfg.Styles))}
	for name, def := range cfg.Styles {
		t.styles[name] = buildStyle(renderer, cfg, def)
	}
	return t
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(r *lipgloss.Renderer, cfg *Config, def StyleDef) lipgloss.Style {
	style := r.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if color, ok := cfg.Colors[def.Foreground]; ok {
		style = style.Foreground(lipgloss.AdaptiveColor{Light: color.Light, Dark: color.Dark})
	}

	return style
}

// Render applies the named style to text; unknown names return text unchanged
func (t *Theme) Render(name, text string) string {
	style, ok := t.styles[name]
	if !ok {
		return text
	}
	return style.Render(text)
}
