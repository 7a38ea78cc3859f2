package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrConfigExists is returned by WriteDefault when a file is already present
// and force is not set.
var ErrConfigExists = errors.New("config file already exists")

const defaultConfigTemplate = `# Contrast Configuration File
#
# Environment variables override any value here, e.g.
#   CONTRAST_THRESHOLDS_AA=4.5 CONTRAST_OUTPUT_COLOR=never

thresholds:
  aa: 4.5         # normal text
  aaa: 7.0
  large_aa: 3.0   # large text, UI components
  large_aaa: 4.5

output:
  theme: default  # default | high-contrast
  color: auto     # auto | always | never

logging:
  level: warn
  format: console

palettes:
  dirs: []

suggest:
  target: 4.5
`

// WriteDefault writes the commented default configuration to path.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
