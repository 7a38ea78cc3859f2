package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJSONComponent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "debug", Format: "json"}, &buf))
	t.Cleanup(func() { _ = Init(Config{}, nil) })

	logger := Component("palette")
	logger.Debug().Str("name", "tron-legacy").Msg("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "palette", entry["component"])
	assert.Equal(t, "tron-legacy", entry["name"])
	assert.Equal(t, "debug", entry["level"])
}

func TestInitFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "error", Format: "json"}, &buf))
	t.Cleanup(func() { _ = Init(Config{}, nil) })

	logger := Component("cli")
	logger.Info().Msg("hidden")
	assert.Zero(t, buf.Len())
}

func TestInitRejectsBadConfig(t *testing.T) {
	assert.Error(t, Init(Config{Level: "loud"}, nil))
	assert.Error(t, Init(Config{Format: "xml"}, nil))
}

func TestParseLevelDefault(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)

	level, err = ParseLevel(" INFO ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
}
