// Package cli provides the palettes command.
package cli

import (
	"fmt"
	"os"

	"github.com/opencode-ai/contrast/internal/palette"
	"github.com/spf13/cobra"
)

var palettesChroma bool

func init() {
	rootCmd.AddCommand(palettesCmd)

	palettesCmd.Flags().BoolVar(&palettesChroma, "chroma", false, "list registered chroma styles instead")
}

// PaletteSummary is one row of `contrast palettes` output.
type PaletteSummary struct {
	Name        string             `json:"name"`
	Appearance  palette.Appearance `json:"appearance"`
	Source      string             `json:"source"`
	Background  string             `json:"background"`
	Backgrounds int                `json:"backgrounds"`
	Roles       int                `json:"roles"`
}

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List available palettes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if palettesChroma {
			names := palette.ChromaStyleNames()
			if IsJSONOutput() || IsJSONLOutput() {
				return WriteOutput(out, names)
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		}

		projectDir, _ := os.Getwd()
		palettes, err := palette.LoadPalettesFromSearchPaths(projectDir, GetConfig().Palettes.Dirs)
		if err != nil {
			return err
		}

		summaries := make([]PaletteSummary, 0, len(palettes))
		for _, p := range palettes {
			summaries = append(summaries, PaletteSummary{
				Name:        p.Name,
				Appearance:  p.Appearance,
				Source:      p.Source,
				Background:  p.Background().Hex(),
				Backgrounds: len(p.Backgrounds),
				Roles:       len(p.Colors),
			})
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, summaries)
		}

		s := outputStyles(out)
		rows := make([][]string, 0, len(summaries))
		for i, sum := range summaries {
			rows = append(rows, []string{
				sum.Name,
				string(sum.Appearance),
				s.Swatch(palettes[i].Background()),
				sum.Background,
				fmt.Sprintf("%d", sum.Backgrounds),
				fmt.Sprintf("%d", sum.Roles),
				sum.Source,
			})
		}
		return writeTable(out, []string{"NAME", "APPEARANCE", "", "BACKGROUND", "BACKGROUNDS", "ROLES", "SOURCE"}, rows)
	},
}
