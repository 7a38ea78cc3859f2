package palette

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/opencode-ai/contrast/internal/color"
)

// ChromaPrefix prefixes palette names imported from chroma styles.
const ChromaPrefix = "chroma/"

// TronLegacy is the Tron Legacy syntax style registered with chroma.
var TronLegacy = styles.Register(chroma.MustNewStyle("tron-legacy", chroma.StyleEntries{
	chroma.Background:          "#aec2e0 bg:#14191f",
	chroma.LineHighlight:       "bg:#1c2128",
	chroma.LineNumbers:         "#647c9b",
	chroma.Comment:             "#586676 italic",
	chroma.CommentPreproc:      "#ff79c6",
	chroma.Keyword:             "#267fb5",
	chroma.KeywordType:         "#267fb5",
	chroma.NameFunction:        "#ffb20d",
	chroma.NameClass:           "#f79d1e",
	chroma.NameVariable:        "#c8d9e8",
	chroma.NameAttribute:       "#95cc5e",
	chroma.NameDecorator:       "#ff79c6",
	chroma.LiteralString:       "#ff410d",
	chroma.LiteralStringEscape: "#ff5f52",
	chroma.LiteralStringRegex:  "#6ee2ff",
	chroma.LiteralNumber:       "#c7f026",
	chroma.Operator:            "#aec2e0",
	chroma.Punctuation:         "#aec2e0",
	chroma.GenericDeleted:      "#f92672 bg:#660000",
	chroma.GenericInserted:     "#c7f026 bg:#144212",
	chroma.GenericEmph:         "italic",
	chroma.GenericStrong:       "bold",
	chroma.Error:               "#f92672",
}))

// ChromaStyleNames lists registered chroma styles.
func ChromaStyleNames() []string {
	return styles.Names()
}

// LoadChromaStyle converts a registered chroma style into a palette.
func LoadChromaStyle(name string) (*Palette, error) {
	style, ok := styles.Registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: chroma style %s", ErrNotFound, name)
	}
	return FromChromaStyle(style)
}

// FromChromaStyle turns every token type with a foreground color into a role
// on the style's background. Tokens that carry their own background are
// pinned to it, and a line highlight adds a shared background.
func FromChromaStyle(style *chroma.Style) (*Palette, error) {
	if style == nil {
		return nil, fmt.Errorf("chroma style is required")
	}

	base := style.Get(chroma.Background)
	if !base.Background.IsSet() {
		return nil, fmt.Errorf("chroma style %s has no background color", style.Name)
	}
	bg := fromColour(base.Background)

	p := &Palette{
		Name:        ChromaPrefix + style.Name,
		Description: fmt.Sprintf("chroma style %s", style.Name),
		Backgrounds: map[string]color.Color{BackgroundKey: bg},
		Colors:      map[string]color.Color{},
		On:          map[string]string{},
		Source:      "chroma",
	}

	for _, tt := range style.Types() {
		entry := style.Get(tt)
		switch tt {
		case chroma.PreWrapper, chroma.Line, chroma.LineTable, chroma.LineTableTD, chroma.LineLink, chroma.CodeLine:
			continue
		case chroma.LineHighlight:
			if entry.Background.IsSet() {
				if highlight := fromColour(entry.Background); highlight != bg {
					p.Backgrounds["LineHighlight"] = highlight
				}
			}
			continue
		}

		if !entry.Colour.IsSet() {
			continue
		}
		var own color.Color
		hasOwn := false
		if entry.Background.IsSet() {
			own = fromColour(entry.Background)
			hasOwn = own != bg
		}
		// Get fills unset colours from Background, so a token that only sets
		// italic or bold would repeat the default text as its own role.
		if tt != chroma.Background && entry.Colour == base.Colour && !hasOwn {
			continue
		}

		role := tt.String()
		if tt == chroma.Background {
			role = "Default"
		}
		p.Colors[role] = fromColour(entry.Colour)

		if tt == chroma.LineNumbers || tt == chroma.LineNumbersTable {
			p.LargeText = append(p.LargeText, role)
		}
		if hasOwn {
			p.Backgrounds[role] = own
			p.On[role] = role
		}
	}

	p.Appearance = InferAppearance(bg)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func fromColour(c chroma.Colour) color.Color {
	return color.Color{R: c.Red(), G: c.Green(), B: c.Blue()}
}
