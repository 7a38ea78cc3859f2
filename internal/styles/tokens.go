// Package styles defines the terminal themes used for command output.
package styles

import (
	"fmt"
	"sort"
	"strings"
)

// ThemeTokens defines the semantic color roles for command output.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// DefaultThemeName is used when no theme is configured.
const DefaultThemeName = "default"

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	DefaultTheme.Name:      DefaultTheme,
	HighContrastTheme.Name: HighContrastTheme,
}

// Lookup resolves a theme by name. An empty name selects the default theme.
func Lookup(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultThemeName
	}
	theme, ok := Themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown output theme %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return theme, nil
}

// Names returns theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
