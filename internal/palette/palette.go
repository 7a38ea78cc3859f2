// Package palette loads theme palettes and audits them for readable contrast.
package palette

import (
	"errors"
	"fmt"
	"sort"

	"github.com/opencode-ai/contrast/internal/color"
	"github.com/opencode-ai/contrast/internal/contrast"
)

// BackgroundKey names the primary background every palette must define.
const BackgroundKey = "background"

// ErrNotFound is returned when a named palette cannot be resolved.
var ErrNotFound = errors.New("palette not found")

// Appearance is a palette's light or dark variant.
type Appearance string

const (
	AppearanceDark  Appearance = "dark"
	AppearanceLight Appearance = "light"
)

// Palette is a named set of backgrounds and the foreground roles drawn on them.
type Palette struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Appearance  Appearance             `json:"appearance"`
	Backgrounds map[string]color.Color `json:"backgrounds"`
	Colors      map[string]color.Color `json:"colors"`
	// LargeText roles are graded with the large-text thresholds. Use it for
	// headings and non-text UI such as line numbers.
	LargeText []string `json:"large_text,omitempty"`
	// On pins a role to a single background instead of all of them.
	On     map[string]string `json:"on,omitempty"`
	Source string            `json:"source"`
}

// Background returns the primary background.
func (p *Palette) Background() color.Color {
	return p.Backgrounds[BackgroundKey]
}

// IsLargeText reports whether role is graded as large text.
func (p *Palette) IsLargeText(role string) bool {
	for _, name := range p.LargeText {
		if name == role {
			return true
		}
	}
	return false
}

// BackgroundNames returns background names with the primary one first.
func (p *Palette) BackgroundNames() []string {
	names := make([]string, 0, len(p.Backgrounds))
	for name := range p.Backgrounds {
		if name != BackgroundKey {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := p.Backgrounds[BackgroundKey]; ok {
		names = append([]string{BackgroundKey}, names...)
	}
	return names
}

// RoleNames returns foreground role names in sorted order.
func (p *Palette) RoleNames() []string {
	names := make([]string, 0, len(p.Colors))
	for name := range p.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the structural invariants of a palette.
func (p *Palette) Validate() error {
	if p.Name == "" {
		return errors.New("palette name is required")
	}
	if _, ok := p.Backgrounds[BackgroundKey]; !ok {
		return fmt.Errorf("palette %s: %q background is required", p.Name, BackgroundKey)
	}
	if len(p.Colors) == 0 {
		return fmt.Errorf("palette %s: at least one color is required", p.Name)
	}
	switch p.Appearance {
	case AppearanceDark, AppearanceLight:
	default:
		return fmt.Errorf("palette %s: appearance must be dark or light, got %q", p.Name, p.Appearance)
	}
	for _, role := range p.LargeText {
		if _, ok := p.Colors[role]; !ok {
			return fmt.Errorf("palette %s: large_text role %q is not a defined color", p.Name, role)
		}
	}
	for role, bg := range p.On {
		if _, ok := p.Colors[role]; !ok {
			return fmt.Errorf("palette %s: role %q in on is not a defined color", p.Name, role)
		}
		if _, ok := p.Backgrounds[bg]; !ok {
			return fmt.Errorf("palette %s: role %q is pinned to unknown background %q", p.Name, role, bg)
		}
	}
	return nil
}

// InferAppearance guesses dark or light from the primary background.
func InferAppearance(bg color.Color) Appearance {
	if contrast.BestText(bg) == color.White {
		return AppearanceDark
	}
	return AppearanceLight
}
