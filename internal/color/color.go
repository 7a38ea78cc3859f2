// Package color provides the RGB color value used by contrast checks.
package color

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is wrapped by every parse and construction error.
var ErrInvalidColor = errors.New("invalid color")

// Color is an opaque sRGB color with 8-bit channels.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// RGB builds a color from integer channels, each of which must be in [0,255].
func RGB(r, g, b int) (Color, error) {
	channels := [3]struct {
		name  string
		value int
	}{{"red", r}, {"green", g}, {"blue", b}}
	for _, ch := range channels {
		if ch.value < 0 || ch.value > 255 {
			return Color{}, fmt.Errorf("%w: %s channel %d out of range [0,255]", ErrInvalidColor, ch.name, ch.value)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ParseHex parses "#RRGGBB". The leading '#' is optional and an 8-digit
// "#RRGGBBAA" value is accepted only when fully opaque; contrast is not
// defined for a translucent color without the surface beneath it.
func ParseHex(value string) (Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(trimmed) != 6 && len(trimmed) != 8 {
		return Color{}, fmt.Errorf("%w: %q must have 6 or 8 hex digits", ErrInvalidColor, value)
	}

	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidColor, value)
	}
	if len(raw) == 4 && raw[3] != 0xff {
		return Color{}, fmt.Errorf("%w: %q is translucent (alpha %02x); give the blended opaque color", ErrInvalidColor, value, raw[3])
	}
	return Color{R: raw[0], G: raw[1], B: raw[2]}, nil
}

// MustParseHex is ParseHex for package-level literals.
func MustParseHex(value string) Color {
	c, err := ParseHex(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse accepts a hex color, "rgb(r, g, b)" or a bare "r,g,b" triple.
func Parse(value string) (Color, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Color{}, fmt.Errorf("%w: empty value", ErrInvalidColor)
	}

	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		return parseTriple(value, trimmed[4:len(trimmed)-1])
	}
	if strings.Contains(trimmed, ",") {
		return parseTriple(value, trimmed)
	}
	return ParseHex(trimmed)
}

func parseTriple(original, body string) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("%w: %q must have exactly three channels", ErrInvalidColor, original)
	}

	var channels [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q channel %q is not an integer", ErrInvalidColor, original, strings.TrimSpace(part))
		}
		channels[i] = n
	}

	c, err := RGB(channels[0], channels[1], channels[2])
	if err != nil {
		return Color{}, fmt.Errorf("%s: %w", original, err)
	}
	return c, nil
}

// Hex formats the color as lower-case "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalText encodes the color as its hex form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts anything Parse accepts.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Colorful converts to go-colorful's float representation.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful clamps and rounds a go-colorful color back to 8-bit channels.
func FromColorful(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// HSL returns hue in degrees [0,360) and saturation/lightness in [0,1].
func (c Color) HSL() (h, s, l float64) {
	return c.Colorful().Hsl()
}

// FromHSL builds a color from hue in degrees and saturation/lightness in [0,1].
func FromHSL(h, s, l float64) Color {
	return FromColorful(colorful.Hsl(h, clamp01(s), clamp01(l)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
