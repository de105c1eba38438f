package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// themeEntry is one style override in a theme file.
type themeEntry struct {
	Foreground string `yaml:"fg"`
	Background string `yaml:"bg"`
	Bold       bool   `yaml:"bold"`
}

// LoadTheme returns the default theme with any overrides from the YAML theme
// file at path applied over it. An empty path returns the default theme
// unchanged.
func LoadTheme(path string) (map[string]lipgloss.Style, error) {
	styles := DefaultTheme()
	if path == "" {
		return styles, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	var entries map[string]themeEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}
	for name, entry := range entries {
		style := Regular
		if entry.Foreground != "" {
			style = style.Foreground(lipgloss.Color(entry.Foreground))
		}
		if entry.Background != "" {
			style = style.Background(lipgloss.Color(entry.Background))
		}
		if entry.Bold {
			style = style.Bold(true)
		}
		styles[name] = style
	}
	return styles, nil
}
