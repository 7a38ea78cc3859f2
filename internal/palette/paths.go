package palette

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencode-ai/contrast/internal/logging"
)

// PaletteSearchPaths returns palette search directories in precedence order.
func PaletteSearchPaths(projectDir string, extra []string) []string {
	paths := make([]string, 0, 3+len(extra))
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".contrast", "palettes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "contrast", "palettes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "contrast", "palettes"))

	for _, dir := range extra {
		if dir = strings.TrimSpace(dir); dir != "" {
			paths = append(paths, dir)
		}
	}
	return paths
}

// LoadPalettesFromSearchPaths loads palettes from search paths with first-hit
// precedence, followed by any built-in palette not already shadowed.
func LoadPalettesFromSearchPaths(projectDir string, extra []string) ([]*Palette, error) {
	logger := logging.Component("palette")
	seen := make(map[string]*Palette)
	order := make([]string, 0)

	add := func(p *Palette) {
		if prev, exists := seen[p.Name]; exists {
			logger.Debug().
				Str("palette", p.Name).
				Str("source", p.Source).
				Str("shadowed_by", prev.Source).
				Msg("palette shadowed")
			return
		}
		seen[p.Name] = p
		order = append(order, p.Name)
	}

	for _, path := range PaletteSearchPaths(projectDir, extra) {
		palettes, err := LoadPalettesFromDir(path)
		if err != nil {
			return nil, err
		}
		for _, p := range palettes {
			add(p)
		}
	}

	builtins, err := LoadBuiltinPalettes()
	if err != nil {
		return nil, err
	}
	for _, p := range builtins {
		add(p)
	}

	resolved := make([]*Palette, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}

	logger.Debug().Int("count", len(resolved)).Msg("palettes resolved")
	return resolved, nil
}

// Find returns the palette with the given name.
func Find(palettes []*Palette, name string) (*Palette, error) {
	for _, p := range palettes {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}
