// Package cli provides the check and luminance commands.
package cli

import (
	"fmt"

	"github.com/opencode-ai/contrast/internal/color"
	"github.com/opencode-ai/contrast/internal/contrast"
	"github.com/spf13/cobra"
)

var (
	checkLarge  bool
	checkStrict bool
	checkSample string
)

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(luminanceCmd)

	checkCmd.Flags().BoolVar(&checkLarge, "large", false, "grade as large text (3:1 for AA)")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "exit with status 2 when the pair fails")
	checkCmd.Flags().StringVar(&checkSample, "sample", "The quick brown fox", "sample text rendered in the pair")
}

var checkCmd = &cobra.Command{
	Use:   "check <background> <foreground>",
	Short: "Check the contrast of one color pair",
	Long: `Compute the contrast ratio of a foreground on a background and grade it.

Colors may be given as #RRGGBB, rgb(r, g, b) or r,g,b.`,
	Example: `  contrast check '#14191f' '#6684a7'
  contrast check --large '20,25,31' 'rgb(88, 102, 118)'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, err := newEvaluator()
		if err != nil {
			return err
		}

		result, err := ev.EvaluateHex(args[0], args[1], checkLarge)
		if err != nil {
			return &InputError{
				Message: "invalid color",
				Hint:    "use #RRGGBB, rgb(r, g, b) or r,g,b with channels in [0,255]",
				Err:     err,
			}
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			if err := WriteOutput(out, result); err != nil {
				return err
			}
		} else {
			s := outputStyles(out)
			rows := [][]string{
				{"Background", result.Background.Hex(), s.Swatch(result.Background)},
				{"Foreground", result.Foreground.Hex(), s.Swatch(result.Foreground)},
				{"Ratio", result.Display(), ""},
				{"Level", formatLevel(s, result.Level), ""},
				{"Minimum", formatMinimum(result), formatPassFail(result.Passes)},
			}
			if err := writeTable(out, nil, rows); err != nil {
				return err
			}
			if checkSample != "" {
				fmt.Fprintln(out, s.Sample(result.Background, result.Foreground, " "+checkSample+" "))
			}
		}

		if checkStrict && !result.Passes {
			return fmt.Errorf("%w: %s on %s is %s", ErrCheckFailed, result.Foreground.Hex(), result.Background.Hex(), result.Display())
		}
		return nil
	},
}

// LuminanceEntry is one row of `contrast luminance` output.
type LuminanceEntry struct {
	Color     color.Color `json:"color"`
	Luminance float64     `json:"luminance"`
	BestText  color.Color `json:"best_text"`
}

var luminanceCmd = &cobra.Command{
	Use:   "luminance <color>...",
	Short: "Print the relative luminance of colors",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := make([]LuminanceEntry, 0, len(args))
		for _, arg := range args {
			c, err := color.Parse(arg)
			if err != nil {
				return &InputError{Message: "invalid color", Err: err}
			}
			entries = append(entries, LuminanceEntry{
				Color:     c,
				Luminance: contrast.RelativeLuminance(c),
				BestText:  contrast.BestText(c),
			})
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, entries)
		}

		s := outputStyles(out)
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{
				e.Color.Hex(),
				s.Swatch(e.Color),
				fmt.Sprintf("%.4f", e.Luminance),
				e.BestText.Hex(),
			})
		}
		return writeTable(out, []string{"COLOR", "", "LUMINANCE", "BEST TEXT"}, rows)
	},
}
