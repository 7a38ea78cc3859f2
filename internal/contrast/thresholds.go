package contrast

import (
	"errors"
	"fmt"
)

// Thresholds holds the minimum ratios for each tier.
type Thresholds struct {
	AA       float64 `json:"aa" mapstructure:"aa"`
	AAA      float64 `json:"aaa" mapstructure:"aaa"`
	LargeAA  float64 `json:"large_aa" mapstructure:"large_aa"`
	LargeAAA float64 `json:"large_aaa" mapstructure:"large_aaa"`
}

// DefaultThresholds are the WCAG 2.x values.
var DefaultThresholds = Thresholds{
	AA:       4.5,
	AAA:      7.0,
	LargeAA:  3.0,
	LargeAAA: 4.5,
}

// Validate reports thresholds that could never be met or that invert tiers.
func (t Thresholds) Validate() error {
	values := []struct {
		name  string
		value float64
	}{
		{"aa", t.AA},
		{"aaa", t.AAA},
		{"large_aa", t.LargeAA},
		{"large_aaa", t.LargeAAA},
	}
	for _, v := range values {
		if v.value < 1 || v.value > MaxRatio {
			return fmt.Errorf("threshold %s=%.2f must be between 1 and %.0f", v.name, v.value, MaxRatio)
		}
	}
	if t.AA > t.AAA {
		return errors.New("threshold aa must not exceed aaa")
	}
	if t.LargeAA > t.LargeAAA {
		return errors.New("threshold large_aa must not exceed large_aaa")
	}
	return nil
}

// Minimum is the passing threshold (AA) for the given text size.
func (t Thresholds) Minimum(largeText bool) float64 {
	if largeText {
		return t.LargeAA
	}
	return t.AA
}

// Classify returns the highest tier ratio meets. The unrounded ratio is
// compared, so 4.499 fails AA even though it displays as 4.50.
func (t Thresholds) Classify(ratio float64, largeText bool) Level {
	aa, aaa := t.AA, t.AAA
	if largeText {
		aa, aaa = t.LargeAA, t.LargeAAA
	}

	switch {
	case ratio >= aaa:
		return LevelAAA
	case ratio >= aa:
		return LevelAA
	default:
		return LevelFail
	}
}
