package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opencode-ai/contrast/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const examplePalette = `name: example
description: Example palette
backgrounds:
  background: "#14191f"
  panel: "#1c2128"
colors:
  comment: "#6684a7"
  dim: "rgb(60, 75, 93)"
  heading: "#586676"
large_text:
  - heading
`

func writePalette(t *testing.T, dir, file, body string) string {
	t.Helper()
	path := filepath.Join(dir, file)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadPalette(t *testing.T) {
	path := writePalette(t, t.TempDir(), "example.yaml", examplePalette)

	p, err := LoadPalette(path)
	require.NoError(t, err)

	assert.Equal(t, "example", p.Name)
	assert.Equal(t, path, p.Source)
	assert.Equal(t, AppearanceDark, p.Appearance)
	assert.Equal(t, color.MustParseHex("#14191f"), p.Background())
	assert.Equal(t, color.Color{R: 60, G: 75, B: 93}, p.MustColor("dim"))
	assert.True(t, p.IsLargeText("heading"))
	assert.False(t, p.IsLargeText("comment"))
	assert.Equal(t, []string{"background", "panel"}, p.BackgroundNames())
	assert.Equal(t, []string{"comment", "dim", "heading"}, p.RoleNames())
}

func TestParsePaletteErrors(t *testing.T) {
	tests := map[string]struct {
		body string
		want string
	}{
		"missing name": {
			body: "backgrounds:\n  background: \"#000000\"\ncolors:\n  a: \"#ffffff\"\n",
			want: "name is required",
		},
		"missing background": {
			body: "name: x\nbackgrounds:\n  panel: \"#000000\"\ncolors:\n  a: \"#ffffff\"\n",
			want: `"background" background is required`,
		},
		"unquoted hex": {
			body: "name: x\nbackgrounds:\n  background: #000000\ncolors:\n  a: \"#ffffff\"\n",
			want: "quote hex colors",
		},
		"bad color": {
			body: "name: x\nbackgrounds:\n  background: \"#000000\"\ncolors:\n  comment: \"#12345\"\n",
			want: `color "comment"`,
		},
		"no colors": {
			body: "name: x\nbackgrounds:\n  background: \"#000000\"\n",
			want: "at least one color",
		},
		"unknown large text role": {
			body: "name: x\nbackgrounds:\n  background: \"#000000\"\ncolors:\n  a: \"#ffffff\"\nlarge_text: [b]\n",
			want: `large_text role "b"`,
		},
		"bad appearance": {
			body: "name: x\nappearance: dim\nbackgrounds:\n  background: \"#000000\"\ncolors:\n  a: \"#ffffff\"\n",
			want: "appearance must be dark or light",
		},
		"pinned to unknown background": {
			body: "name: x\nbackgrounds:\n  background: \"#000000\"\ncolors:\n  a: \"#ffffff\"\non:\n  a: diff\n",
			want: `unknown background "diff"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePalette([]byte(tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadPalettesFromDir(t *testing.T) {
	dir := t.TempDir()
	writePalette(t, dir, "b.yaml", "name: zeta\nbackgrounds:\n  background: \"#ffffff\"\ncolors:\n  text: \"#000000\"\n")
	writePalette(t, dir, "a.yml", examplePalette)
	writePalette(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	palettes, err := LoadPalettesFromDir(dir)
	require.NoError(t, err)
	require.Len(t, palettes, 2)
	assert.Equal(t, "example", palettes[0].Name)
	assert.Equal(t, "zeta", palettes[1].Name)
	assert.Equal(t, AppearanceLight, palettes[1].Appearance)

	missing, err := LoadPalettesFromDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestLoadPalettesFromDirFailsOnBadFile(t *testing.T) {
	dir := t.TempDir()
	writePalette(t, dir, "bad.yaml", "name: [unterminated\n")

	_, err := LoadPalettesFromDir(dir)
	assert.Error(t, err)
}

func TestLoadBuiltinPalettes(t *testing.T) {
	palettes, err := LoadBuiltinPalettes()
	require.NoError(t, err)

	names := make([]string, 0, len(palettes))
	for _, p := range palettes {
		assert.Equal(t, BuiltinSource, p.Source)
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"term-default", "term-high-contrast", "tron-legacy", "tron-legacy-light"}, names)

	tron, err := Find(palettes, "tron-legacy")
	require.NoError(t, err)
	assert.Equal(t, AppearanceDark, tron.Appearance)

	light, err := Find(palettes, "tron-legacy-light")
	require.NoError(t, err)
	assert.Equal(t, AppearanceLight, light.Appearance)

	_, err = Find(palettes, "solarized")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchPathPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	project := t.TempDir()
	projectDir := filepath.Join(project, ".contrast", "palettes")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	writePalette(t, projectDir, "tron.yaml", "name: tron-legacy\nbackgrounds:\n  background: \"#000000\"\ncolors:\n  text: \"#ffffff\"\n")

	extra := t.TempDir()
	writePalette(t, extra, "extra.yaml", "name: extra\nbackgrounds:\n  background: \"#000000\"\ncolors:\n  text: \"#ffffff\"\n")
	writePalette(t, extra, "tron.yaml", "name: tron-legacy\nbackgrounds:\n  background: \"#111111\"\ncolors:\n  text: \"#ffffff\"\n")

	paths := PaletteSearchPaths(project, []string{" ", extra})
	assert.Equal(t, projectDir, paths[0])
	assert.Equal(t, extra, paths[len(paths)-1])

	palettes, err := LoadPalettesFromSearchPaths(project, []string{extra})
	require.NoError(t, err)

	tron, err := Find(palettes, "tron-legacy")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(projectDir, "tron.yaml"), tron.Source)
	assert.Equal(t, color.Black, tron.Background())

	_, err = Find(palettes, "extra")
	assert.NoError(t, err)
	_, err = Find(palettes, "tron-legacy-light")
	assert.NoError(t, err)
}
