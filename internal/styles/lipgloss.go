package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/opencode-ai/contrast/internal/color"
	"github.com/opencode-ai/contrast/internal/contrast"
)

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme    Theme
	renderer *lipgloss.Renderer

	Title     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	LevelAAA  lipgloss.Style
	LevelAA   lipgloss.Style
	LevelFail lipgloss.Style
}

// NewRenderer builds a renderer for out. When colors is false all styling is
// stripped; otherwise true color is forced.
func NewRenderer(out io.Writer, colors bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	if colors {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// BuildStyles converts theme tokens into lipgloss styles bound to r.
func BuildStyles(theme Theme, r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	tokens := theme.Tokens
	fg := func(hex string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(hex))
	}

	return Styles{
		Theme:     theme,
		renderer:  r,
		Title:     fg(tokens.Text).Bold(true),
		Text:      fg(tokens.Text),
		Muted:     fg(tokens.TextMuted),
		Accent:    fg(tokens.Accent),
		Success:   fg(tokens.Success),
		Warning:   fg(tokens.Warning),
		Error:     fg(tokens.Error),
		Info:      fg(tokens.Info),
		LevelAAA:  fg(tokens.Success).Bold(true),
		LevelAA:   fg(tokens.Info),
		LevelFail: fg(tokens.Error).Bold(true),
	}
}

// Level returns the style for a conformance level.
func (s Styles) Level(level contrast.Level) lipgloss.Style {
	switch level {
	case contrast.LevelAAA:
		return s.LevelAAA
	case contrast.LevelAA:
		return s.LevelAA
	default:
		return s.LevelFail
	}
}

// Swatch renders a two-cell block filled with c.
func (s Styles) Swatch(c color.Color) string {
	return s.renderer.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
}

// Sample renders text in fg on bg, the way it would appear in the theme.
func (s Styles) Sample(bg, fg color.Color, text string) string {
	return s.renderer.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Render(text)
}
