// Package config loads contrast configuration from defaults, a YAML file and
// CONTRAST_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencode-ai/contrast/internal/contrast"
	"github.com/opencode-ai/contrast/internal/logging"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. CONTRAST_THRESHOLDS_AA.
const EnvPrefix = "CONTRAST"

// Color output modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the full application configuration.
type Config struct {
	Thresholds contrast.Thresholds `mapstructure:"thresholds" json:"thresholds"`
	Output     OutputConfig        `mapstructure:"output" json:"output"`
	Logging    logging.Config      `mapstructure:"logging" json:"logging"`
	Palettes   PalettesConfig      `mapstructure:"palettes" json:"palettes"`
	Suggest    SuggestConfig       `mapstructure:"suggest" json:"suggest"`
}

// OutputConfig controls human-readable output.
type OutputConfig struct {
	Theme string `mapstructure:"theme" json:"theme"`
	Color string `mapstructure:"color" json:"color"`
}

// PalettesConfig lists extra palette directories searched after the
// project and user directories.
type PalettesConfig struct {
	Dirs []string `mapstructure:"dirs" json:"dirs"`
}

// SuggestConfig holds defaults for `contrast suggest`.
type SuggestConfig struct {
	Target float64 `mapstructure:"target" json:"target"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Thresholds: contrast.DefaultThresholds,
		Output: OutputConfig{
			Theme: "default",
			Color: ColorAuto,
		},
		Logging: logging.Config{
			Level:  "warn",
			Format: logging.FormatConsole,
		},
		Palettes: PalettesConfig{
			Dirs: []string{},
		},
		Suggest: SuggestConfig{
			Target: contrast.DefaultThresholds.AA,
		},
	}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/contrast or ~/.config/contrast.
func DefaultConfigDir() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "contrast")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", "contrast")
	}
	return filepath.Join(".config", "contrast")
}

// Load reads configuration. An empty path searches DefaultConfigDir for
// config.yaml and tolerates its absence; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("thresholds.aa", cfg.Thresholds.AA)
	v.SetDefault("thresholds.aaa", cfg.Thresholds.AAA)
	v.SetDefault("thresholds.large_aa", cfg.Thresholds.LargeAA)
	v.SetDefault("thresholds.large_aaa", cfg.Thresholds.LargeAAA)
	v.SetDefault("output.theme", cfg.Output.Theme)
	v.SetDefault("output.color", cfg.Output.Color)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("palettes.dirs", cfg.Palettes.Dirs)
	v.SetDefault("suggest.target", cfg.Suggest.Target)
}

// Validate checks values that viper cannot type-check.
func (c *Config) Validate() error {
	if err := c.Thresholds.Validate(); err != nil {
		return err
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be auto, always or never, got %q", c.Output.Color)
	}

	if c.Suggest.Target < 1 || c.Suggest.Target > contrast.MaxRatio {
		return fmt.Errorf("suggest.target %.2f must be between 1 and %.0f", c.Suggest.Target, contrast.MaxRatio)
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}
