// Package cli implements the contrast command-line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/opencode-ai/contrast/internal/config"
	"github.com/opencode-ai/contrast/internal/contrast"
	"github.com/opencode-ai/contrast/internal/logging"
	"github.com/opencode-ai/contrast/internal/styles"
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	jsonOutput  bool
	jsonlOutput bool
	logLevel    string
	noColor     bool
	noProgress  bool

	appConfig *config.Config
	version   = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "contrast",
	Short: "Check color contrast against WCAG thresholds",
	Long: `contrast measures the WCAG 2.x contrast ratio between colors, grades
pairs as AA or AAA, proposes compliant replacements and audits whole theme
palettes and chroma syntax styles.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/contrast/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	rootCmd.PersistentFlags().BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable progress output")
}

// Execute runs the root command.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	rootCmd.Version = version
	return rootCmd.Execute()
}

// skipConfigLoad marks commands that must run without reading the config
// file, such as `config init` writing a fresh or replacement one.
const skipConfigLoad = "contrast/skip-config-load"

func initConfig(cmd *cobra.Command) error {
	if jsonOutput && jsonlOutput {
		return &InputError{
			Message: "--json and --jsonl are mutually exclusive",
			Hint:    "pick one output format",
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := logging.Init(cfg.Logging, cmd.ErrOrStderr()); err != nil {
		return err
	}
	if _, err := styles.Lookup(cfg.Output.Theme); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	appConfig = cfg
	logger := logging.Component("cli")
	logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("config", cfgFile).
		Msg("config loaded")
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Annotations[skipConfigLoad] == "true" {
		return config.DefaultConfig(), nil
	}
	return config.Load(cfgFile)
}

// GetConfig returns the loaded configuration, or defaults before loading.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

func newEvaluator() (*contrast.Evaluator, error) {
	return contrast.NewEvaluator(
		contrast.WithThresholds(GetConfig().Thresholds),
		contrast.WithLogger(logging.Component("evaluator")),
	)
}

func outputStyles(out io.Writer) styles.Styles {
	theme, err := styles.Lookup(GetConfig().Output.Theme)
	if err != nil {
		theme = styles.DefaultTheme
	}
	return styles.BuildStyles(theme, styles.NewRenderer(out, colorEnabled(out)))
}
