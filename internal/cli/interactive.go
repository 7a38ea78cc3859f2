// Package cli provides helpers for terminal detection.
package cli

import (
	"io"
	"os"

	"github.com/opencode-ai/contrast/internal/config"
	"golang.org/x/term"
)

// colorEnabled decides whether output written to out should carry ANSI color.
func colorEnabled(out io.Writer) bool {
	if noColor {
		return false
	}
	switch GetConfig().Output.Color {
	case config.ColorNever:
		return false
	case config.ColorAlways:
		return true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
