package palette

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/opencode-ai/contrast/internal/color"
	"github.com/opencode-ai/contrast/internal/styles"
)

// BuiltinSource marks palettes bundled with the binary.
const BuiltinSource = "builtin"

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltinPalettes returns the bundled palettes, including one per
// terminal output theme.
func LoadBuiltinPalettes() ([]*Palette, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin palettes: %w", err)
	}

	palettes := make([]*Palette, 0, len(entries)+len(styles.Themes))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := "builtin/" + entry.Name()
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read builtin palette %s: %w", entry.Name(), err)
		}
		p, err := ParsePalette(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin palette %s: %w", entry.Name(), err)
		}
		p.Source = BuiltinSource
		palettes = append(palettes, p)
	}

	for _, name := range styles.Names() {
		p, err := FromTheme(styles.Themes[name])
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, p)
	}

	sort.Slice(palettes, func(i, j int) bool {
		return palettes[i].Name < palettes[j].Name
	})

	return palettes, nil
}

// FromTheme exposes a terminal output theme as a palette named
// "term-<theme>". Border is decorative and left out.
func FromTheme(theme styles.Theme) (*Palette, error) {
	tokens := theme.Tokens
	backgrounds := map[string]string{
		BackgroundKey: tokens.Background,
		"panel":       tokens.Panel,
	}
	roles := map[string]string{
		"text":       tokens.Text,
		"text-muted": tokens.TextMuted,
		"accent":     tokens.Accent,
		"focus":      tokens.Focus,
		"success":    tokens.Success,
		"warning":    tokens.Warning,
		"error":      tokens.Error,
		"info":       tokens.Info,
	}

	p := &Palette{
		Name:        "term-" + theme.Name,
		Description: fmt.Sprintf("%s terminal output theme", theme.Name),
		Source:      BuiltinSource,
	}

	var err error
	if p.Backgrounds, err = parseColors("background", backgrounds); err != nil {
		return nil, fmt.Errorf("theme %s: %w", theme.Name, err)
	}
	if p.Colors, err = parseColors("color", roles); err != nil {
		return nil, fmt.Errorf("theme %s: %w", theme.Name, err)
	}
	p.Appearance = InferAppearance(p.Background())

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// MustColor returns a role's color or panics; for tests and literals.
func (p *Palette) MustColor(role string) color.Color {
	c, ok := p.Colors[role]
	if !ok {
		panic(fmt.Sprintf("color role %q not found in palette %s", role, p.Name))
	}
	return c
}
