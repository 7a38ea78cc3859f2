package contrast

import (
	"errors"
	"fmt"
	"math"

	"github.com/opencode-ai/contrast/internal/color"
)

// ErrUnreachable marks a suggestion whose target could not be met.
var ErrUnreachable = errors.New("target ratio unreachable by lightness alone")

const (
	lightnessStep  = 0.01
	lightnessSteps = 100
)

// Variant is an alternative suggestion with reduced saturation.
type Variant struct {
	Saturation float64     `json:"saturation"`
	Color      color.Color `json:"color"`
	Ratio      float64     `json:"ratio"`
}

// Suggestion is a replacement foreground that reaches a target ratio.
type Suggestion struct {
	Background        color.Color `json:"background"`
	Original          color.Color `json:"original"`
	OriginalRatio     float64     `json:"original_ratio"`
	Color             color.Color `json:"color"`
	Ratio             float64     `json:"ratio"`
	Target            float64     `json:"target"`
	Hue               float64     `json:"hue"`
	Saturation        float64     `json:"saturation"`
	OriginalLightness float64     `json:"original_lightness"`
	Lightness         float64     `json:"lightness"`
	Found             bool        `json:"found"`
	Variants          []Variant   `json:"variants,omitempty"`
}

// Unchanged reports whether the original color already met the target.
func (s Suggestion) Unchanged() bool {
	return s.Found && s.Color == s.Original
}

// Suggest searches the HSL lightness of fg for the nearest value whose ratio
// against bg reaches target. Hue and saturation are kept. On equal distance
// the direction moving away from the background's luminance wins. When no
// lightness reaches target the highest-ratio candidate is returned with
// Found unset.
func Suggest(bg, fg color.Color, target float64) (Suggestion, error) {
	if target < 1 || target > MaxRatio {
		return Suggestion{}, fmt.Errorf("target ratio %.2f must be between 1 and %.0f", target, MaxRatio)
	}

	h, s, l := fg.HSL()
	result := Suggestion{
		Background:        bg,
		Original:          fg,
		OriginalRatio:     Ratio(bg, fg),
		Target:            target,
		Hue:               h,
		Saturation:        s,
		OriginalLightness: l,
		Color:             fg,
		Lightness:         l,
	}
	result.Ratio = result.OriginalRatio

	directions := [2]float64{1, -1}
	if RelativeLuminance(fg) < RelativeLuminance(bg) {
		directions = [2]float64{-1, 1}
	}

	for step := 0; step <= lightnessSteps && !result.Found; step++ {
		delta := float64(step) * lightnessStep
		for _, dir := range directions {
			candidateL := math.Min(1, math.Max(0, l+dir*delta))
			candidate := color.FromHSL(h, s, candidateL)
			ratio := Ratio(bg, candidate)
			if ratio >= target || ratio > result.Ratio {
				result.Color = candidate
				result.Ratio = ratio
				result.Lightness = candidateL
			}
			if ratio >= target {
				result.Found = true
				break
			}
		}
	}

	result.Variants = saturationVariants(bg, h, s, result.Lightness)
	return result, nil
}

// SuggestHex parses both colors before calling Suggest.
func SuggestHex(bg, fg string, target float64) (Suggestion, error) {
	bgColor, err := color.Parse(bg)
	if err != nil {
		return Suggestion{}, fmt.Errorf("background: %w", err)
	}
	fgColor, err := color.Parse(fg)
	if err != nil {
		return Suggestion{}, fmt.Errorf("foreground: %w", err)
	}
	return Suggest(bgColor, fgColor, target)
}

func saturationVariants(bg color.Color, h, s, l float64) []Variant {
	if s == 0 {
		return nil
	}
	variants := make([]Variant, 0, 8)
	for tenths := 10; tenths >= 3; tenths-- {
		sat := s * float64(tenths) / 10
		c := color.FromHSL(h, sat, l)
		variants = append(variants, Variant{
			Saturation: sat,
			Color:      c,
			Ratio:      Ratio(bg, c),
		})
	}
	return variants
}

