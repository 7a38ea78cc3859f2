package color

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#14191f", Color{20, 25, 31}},
		{"#6684A7", Color{102, 132, 167}},
		{"3c4b5d", Color{60, 75, 93}},
		{"#14191fff", Color{20, 25, 31}},
		{"#FFFFFFFF", White},
		{"  #ffffff ", White},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "#", "#fff", "#12345", "#1234567", "#gg0000", "#14191f0", "#zzzzzz"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseHex(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidColor))
			assert.Contains(t, err.Error(), "\""+in+"\"")
		})
	}
}

func TestParseHexRejectsTranslucent(t *testing.T) {
	for _, in := range []string{"#6ee2ff40", "#14191f00", "#ffffffFE"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseHex(in)
			require.ErrorIs(t, err, ErrInvalidColor)
			assert.Contains(t, err.Error(), "translucent")
		})
	}

	_, err := Parse("#6ee2ff40")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestRGBRange(t *testing.T) {
	c, err := RGB(20, 25, 31)
	require.NoError(t, err)
	assert.Equal(t, "#14191f", c.Hex())

	_, err = RGB(256, 0, 0)
	require.ErrorIs(t, err, ErrInvalidColor)
	assert.Contains(t, err.Error(), "red")

	_, err = RGB(0, 0, -1)
	require.ErrorIs(t, err, ErrInvalidColor)
	assert.Contains(t, err.Error(), "blue")
}

func TestParseTriple(t *testing.T) {
	got, err := Parse("rgb(102, 132, 167)")
	require.NoError(t, err)
	assert.Equal(t, MustParseHex("#6684a7"), got)

	got, err = Parse("60,75,93")
	require.NoError(t, err)
	assert.Equal(t, MustParseHex("#3c4b5d"), got)

	_, err = Parse("1,2")
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, err = Parse("rgb(300, 0, 0)")
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, err = Parse("1,two,3")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestTextRoundTripInDocuments(t *testing.T) {
	type doc struct {
		Fg Color `json:"fg" yaml:"fg"`
	}

	var fromYAML doc
	require.NoError(t, yaml.Unmarshal([]byte("fg: \"#AEC2E0\"\n"), &fromYAML))
	assert.Equal(t, Color{174, 194, 224}, fromYAML.Fg)

	out, err := json.Marshal(fromYAML)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fg":"#aec2e0"}`, string(out))

	var bad doc
	assert.Error(t, yaml.Unmarshal([]byte("fg: nope\n"), &bad))
}

func TestHSLRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#14191f", "#ff410d", "#267fb5"} {
		c := MustParseHex(hex)
		h, s, l := c.HSL()
		assert.Equal(t, c, FromHSL(h, s, l), hex)
	}

	h, s, l := White.HSL()
	assert.InDelta(t, 0, s, 1e-9)
	assert.InDelta(t, 1, l, 1e-9)
	assert.InDelta(t, 0, h, 1e-9)

	assert.Equal(t, White, FromHSL(210, 0.5, 1.4))
	assert.Equal(t, Black, FromHSL(210, 0.5, -0.2))
}
