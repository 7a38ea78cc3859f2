// Package cli provides conformance level formatting helpers.
package cli

import (
	"fmt"

	"github.com/opencode-ai/contrast/internal/contrast"
	"github.com/opencode-ai/contrast/internal/styles"
)

func formatLevel(s styles.Styles, level contrast.Level) string {
	return s.Level(level).Render(formatStatusLabel(statusLabelForLevel(level), level))
}

func statusLabelForLevel(level contrast.Level) string {
	switch level {
	case contrast.LevelAAA, contrast.LevelAA:
		return "OK"
	default:
		return "ERR"
	}
}

func formatStatusLabel(label string, level contrast.Level) string {
	if level == "" {
		return label
	}
	return fmt.Sprintf("%s %s", label, level)
}
