// Package contrast computes WCAG relative luminance, contrast ratios and
// conformance levels for pairs of colors.
package contrast

import (
	"fmt"
	"math"

	"github.com/opencode-ai/contrast/internal/color"
)

// Level is a WCAG conformance tier.
type Level string

const (
	LevelFail Level = "fail"
	LevelAA   Level = "AA"
	LevelAAA  Level = "AAA"
)

// Rank orders levels so that a higher tier compares greater.
func (l Level) Rank() int {
	switch l {
	case LevelAAA:
		return 2
	case LevelAA:
		return 1
	default:
		return 0
	}
}

// MaxRatio is the contrast between pure black and pure white.
const MaxRatio = 21.0

// RelativeLuminance returns the perceptual brightness of c in [0,1].
func RelativeLuminance(c color.Color) float64 {
	r := linearize(float64(c.R) / 255.0)
	g := linearize(float64(c.G) / 255.0)
	b := linearize(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio returns the contrast ratio between a and b. The result is at least 1
// and does not depend on argument order.
func Ratio(a, b color.Color) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Classify grades ratio against DefaultThresholds.
func Classify(ratio float64, largeText bool) Level {
	return DefaultThresholds.Classify(ratio, largeText)
}

// FormatRatio renders a ratio for display, e.g. "4.56:1".
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}

// BestText returns black or white, whichever contrasts more with bg.
func BestText(bg color.Color) color.Color {
	if Ratio(color.Black, bg) >= Ratio(color.White, bg) {
		return color.Black
	}
	return color.White
}
