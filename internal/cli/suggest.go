// Package cli provides the suggest command.
package cli

import (
	"fmt"

	"github.com/opencode-ai/contrast/internal/contrast"
	"github.com/opencode-ai/contrast/internal/logging"
	"github.com/spf13/cobra"
)

var (
	suggestTarget   float64
	suggestLarge    bool
	suggestStrict   bool
	suggestVariants bool
)

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().Float64Var(&suggestTarget, "target", 0, "target ratio (default suggest.target from config)")
	suggestCmd.Flags().BoolVar(&suggestLarge, "large", false, "target the large-text AA threshold")
	suggestCmd.Flags().BoolVar(&suggestStrict, "strict", false, "exit with status 2 when the target cannot be reached")
	suggestCmd.Flags().BoolVar(&suggestVariants, "variants", true, "list reduced-saturation variants")
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <background> <foreground>",
	Short: "Propose a foreground that meets a target ratio",
	Long: `Search the foreground's HSL lightness for the nearest value that reaches
the target ratio against the background, keeping hue and saturation.`,
	Example: `  contrast suggest '#14191f' '#324357'
  contrast suggest --target 7 '#f5f7fa' '#6b7e96'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := resolveSuggestTarget(cmd)

		suggestion, err := contrast.SuggestHex(args[0], args[1], target)
		if err != nil {
			return &InputError{
				Message: "cannot suggest a color",
				Hint:    "colors use #RRGGBB, rgb(r, g, b) or r,g,b; --target must be between 1 and 21",
				Err:     err,
			}
		}

		logger := logging.Component("suggest")
		logger.Debug().
			Str("original", suggestion.Original.Hex()).
			Str("suggested", suggestion.Color.Hex()).
			Bool("found", suggestion.Found).
			Msg("suggestion computed")

		if !suggestVariants {
			suggestion.Variants = nil
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			if err := WriteOutput(out, suggestion); err != nil {
				return err
			}
		} else if err := writeSuggestion(cmd, suggestion); err != nil {
			return err
		}

		if suggestStrict && !suggestion.Found {
			return fmt.Errorf("%w: %v (best %s)", ErrCheckFailed, contrast.ErrUnreachable, contrast.FormatRatio(suggestion.Ratio))
		}
		return nil
	},
}

func resolveSuggestTarget(cmd *cobra.Command) float64 {
	if cmd.Flags().Changed("target") {
		return suggestTarget
	}
	if suggestLarge {
		return GetConfig().Thresholds.LargeAA
	}
	return GetConfig().Suggest.Target
}

func writeSuggestion(cmd *cobra.Command, sg contrast.Suggestion) error {
	out := cmd.OutOrStdout()
	s := outputStyles(out)
	thresholds := GetConfig().Thresholds

	status := "target reached"
	switch {
	case sg.Unchanged():
		status = "already meets target"
	case !sg.Found:
		status = s.Warning.Render("target unreachable; showing best lightness")
	}

	rows := [][]string{
		{"Background", sg.Background.Hex(), s.Swatch(sg.Background), ""},
		{"Original", sg.Original.Hex(), s.Swatch(sg.Original), contrast.FormatRatio(sg.OriginalRatio)},
		{"Suggested", sg.Color.Hex(), s.Swatch(sg.Color), contrast.FormatRatio(sg.Ratio)},
		{"Target", contrast.FormatRatio(sg.Target), "", status},
		{"Lightness", fmt.Sprintf("%.2f -> %.2f", sg.OriginalLightness, sg.Lightness), "", ""},
	}
	if err := writeTable(out, nil, rows); err != nil {
		return err
	}

	if len(sg.Variants) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	variantRows := make([][]string, 0, len(sg.Variants))
	for _, v := range sg.Variants {
		level := thresholds.Classify(v.Ratio, suggestLarge)
		variantRows = append(variantRows, []string{
			fmt.Sprintf("%.2f", v.Saturation),
			v.Color.Hex(),
			s.Swatch(v.Color),
			contrast.FormatRatio(v.Ratio),
			formatLevel(s, level),
		})
	}
	return writeTable(out, []string{"SATURATION", "COLOR", "", "RATIO", "LEVEL"}, variantRows)
}
