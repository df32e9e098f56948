// Package style defines the visual styling for copper's terminal output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. They are declared in an embedded styles.yaml so the
// palette stays in one place.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
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
	MarginTop  int    `yaml:"marginTop,omitempty"`
	PadLeft    int    `yaml:"paddingLeft,omitempty"`
}

// sheet is the complete styles configuration
type sheet struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
var Registry map[string]lipgloss.Style

//go:embed styles.yaml
var embeddedStyles []byte

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		// Unstyled output beats a broken binary.
		Registry = map[string]lipgloss.Style{}
	}
}

// LoadStylesFromData parses a styles document and rebuilds the registry.
func LoadStylesFromData(data []byte) error {
	var cfg sheet
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		s := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if def.Foreground != "" {
			color, ok := colors[def.Foreground]
			if !ok {
				return fmt.Errorf("style %q references unknown color %q", name, def.Foreground)
			}
			s = s.Foreground(color)
		}
		if def.MarginTop > 0 {
			s = s.MarginTop(def.MarginTop)
		}
		if def.PadLeft > 0 {
			s = s.PaddingLeft(def.PadLeft)
		}
		registry[name] = s
	}

	Registry = registry
	return nil
}

// Get returns the named style, or a zero style for unknown names.
func Get(name string) lipgloss.Style {
	if s, ok := Registry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
