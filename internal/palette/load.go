package palette

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/opencode-ai/contrast/internal/color"
	"gopkg.in/yaml.v3"
)

// paletteFile is the on-disk YAML shape. Colors stay strings until parsed so
// that errors can name the offending role.
type paletteFile struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Appearance  string            `yaml:"appearance"`
	Backgrounds map[string]string `yaml:"backgrounds"`
	Colors      map[string]string `yaml:"colors"`
	LargeText   []string          `yaml:"large_text,omitempty"`
	On          map[string]string `yaml:"on,omitempty"`
}

// LoadPalette reads a single palette from disk.
func LoadPalette(path string) (*Palette, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("palette path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette %s: %w", path, err)
	}

	p, err := ParsePalette(data)
	if err != nil {
		return nil, fmt.Errorf("parse palette %s: %w", path, err)
	}
	p.Source = path
	return p, nil
}

// LoadPalettesFromDir loads all palettes from a directory.
func LoadPalettesFromDir(dir string) ([]*Palette, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Palette{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Palette{}, nil
		}
		return nil, fmt.Errorf("read palettes dir %s: %w", dir, err)
	}

	palettes := make([]*Palette, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		p, err := LoadPalette(filepath.Join(dir, name))
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

// ParsePalette decodes and validates palette YAML.
func ParsePalette(data []byte) (*Palette, error) {
	var raw paletteFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	p := &Palette{
		Name:        strings.TrimSpace(raw.Name),
		Description: strings.TrimSpace(raw.Description),
		Appearance:  Appearance(strings.ToLower(strings.TrimSpace(raw.Appearance))),
		LargeText:   raw.LargeText,
		On:          raw.On,
	}
	if p.Name == "" {
		return nil, fmt.Errorf("palette name is required")
	}

	var err error
	if p.Backgrounds, err = parseColors("background", raw.Backgrounds); err != nil {
		return nil, err
	}
	if p.Colors, err = parseColors("color", raw.Colors); err != nil {
		return nil, err
	}

	if p.Appearance == "" {
		if bg, ok := p.Backgrounds[BackgroundKey]; ok {
			p.Appearance = InferAppearance(bg)
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func parseColors(kind string, raw map[string]string) (map[string]color.Color, error) {
	parsed := make(map[string]color.Color, len(raw))
	for name, value := range raw {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%s name is required", kind)
		}
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%s %q has no value (quote hex colors: a bare # starts a YAML comment)", kind, name)
		}
		c, err := color.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", kind, name, err)
		}
		parsed[name] = c
	}
	return parsed, nil
}
