// Package cli provides the audit command.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opencode-ai/contrast/internal/logging"
	"github.com/opencode-ai/contrast/internal/palette"
	"github.com/opencode-ai/contrast/internal/styles"
	"github.com/spf13/cobra"
)

var (
	auditFiles        []string
	auditChroma       []string
	auditAll          bool
	auditAllChroma    bool
	auditStrict       bool
	auditFailuresOnly bool
)

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().StringSliceVarP(&auditFiles, "file", "f", nil, "palette YAML file to audit (repeatable)")
	auditCmd.Flags().StringSliceVar(&auditChroma, "chroma", nil, "chroma style to audit (repeatable)")
	auditCmd.Flags().BoolVar(&auditAll, "all", false, "audit every resolved palette")
	auditCmd.Flags().BoolVar(&auditAllChroma, "all-chroma", false, "audit every registered chroma style")
	auditCmd.Flags().BoolVar(&auditStrict, "strict", false, "exit with status 2 when any pair fails")
	auditCmd.Flags().BoolVar(&auditFailuresOnly, "failures-only", false, "only list failing pairs")
}

var auditCmd = &cobra.Command{
	Use:   "audit [palette...]",
	Short: "Audit every role of a palette against its backgrounds",
	Long: `Evaluate every foreground role of one or more palettes against each
background it is drawn on and report failures and duplicated colors.

Palettes are resolved by name from ./.contrast/palettes,
~/.config/contrast/palettes, /usr/share/contrast/palettes, palettes.dirs
and the built-in set. Use --file for a palette outside the search paths and
--chroma to audit a syntax-highlighting style.`,
	Example: `  contrast audit tron-legacy
  contrast audit --file theme.yaml --failures-only
  contrast audit --chroma monokai --chroma tron-legacy`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && len(auditFiles) == 0 && len(auditChroma) == 0 && !auditAll && !auditAllChroma {
			return &InputError{
				Message: "nothing to audit",
				Hint:    "name a palette, or use --file, --chroma, --all or --all-chroma (see `contrast palettes`)",
			}
		}

		palettes, err := collectAuditPalettes(cmd.ErrOrStderr(), args)
		if err != nil {
			return err
		}

		ev, err := newEvaluator()
		if err != nil {
			return err
		}

		logger := logging.Component("audit")
		reports := make([]palette.Report, 0, len(palettes))
		failed := 0
		for _, p := range palettes {
			report := palette.Audit(p, ev)
			if auditFailuresOnly {
				report.Findings = report.Failures()
			}
			if !report.Passed() {
				failed++
			}
			logger.Debug().
				Str("palette", p.Name).
				Int("findings", len(report.Findings)).
				Bool("passed", report.Passed()).
				Msg("palette audited")
			reports = append(reports, report)
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			if err := WriteOutput(out, reports); err != nil {
				return err
			}
		} else if err := writeReports(out, reports, palettes); err != nil {
			return err
		}

		if auditStrict && failed > 0 {
			return fmt.Errorf("%w: %d of %d palettes have failing pairs", ErrCheckFailed, failed, len(reports))
		}
		return nil
	},
}

func collectAuditPalettes(progressOut io.Writer, names []string) ([]*palette.Palette, error) {
	cfg := GetConfig()
	logger := logging.Component("audit")
	selected := make([]*palette.Palette, 0)

	if len(names) > 0 || auditAll {
		projectDir, _ := os.Getwd()
		resolved, err := palette.LoadPalettesFromSearchPaths(projectDir, cfg.Palettes.Dirs)
		if err != nil {
			return nil, err
		}
		if auditAll {
			selected = append(selected, resolved...)
		}
		for _, name := range names {
			p, err := palette.Find(resolved, name)
			if err != nil {
				return nil, &InputError{
					Message: fmt.Sprintf("unknown palette %q", name),
					Hint:    "run `contrast palettes` to list available palettes",
					Err:     err,
				}
			}
			selected = append(selected, p)
		}
	}

	for _, path := range auditFiles {
		p, err := palette.LoadPalette(path)
		if err != nil {
			return nil, err
		}
		selected = append(selected, p)
	}

	chromaNames := auditChroma
	if auditAllChroma {
		chromaNames = palette.ChromaStyleNames()
	}
	if len(chromaNames) > 0 {
		step := startProgress(progressOut, fmt.Sprintf("Importing %d chroma styles", len(chromaNames)))
		for _, name := range chromaNames {
			p, err := palette.LoadChromaStyle(name)
			if err != nil {
				if auditAllChroma {
					// Some registered styles define no background; skip them.
					logger.Debug().Err(err).Str("style", name).Msg("skipping chroma style")
					continue
				}
				step.Fail(err)
				return nil, &InputError{
					Message: fmt.Sprintf("cannot audit chroma style %q", name),
					Hint:    "run `contrast palettes --chroma` to list registered styles",
					Err:     err,
				}
			}
			selected = append(selected, p)
		}
		step.Done()
	}

	return selected, nil
}

func writeReports(out io.Writer, reports []palette.Report, palettes []*palette.Palette) error {
	s := outputStyles(out)
	for i, report := range reports {
		if i > 0 {
			fmt.Fprintln(out)
		}
		writeReportHeader(out, s, report)

		if len(report.Findings) > 0 {
			p := palettes[i]
			rows := make([][]string, 0, len(report.Findings))
			for _, f := range report.Findings {
				rows = append(rows, []string{
					f.Background,
					f.Role,
					f.Foreground.Hex(),
					s.Sample(p.Backgrounds[f.Background], f.Foreground, " Aa "),
					f.Display(),
					formatLevel(s, f.Level),
					formatPassFail(f.Passes),
				})
			}
			if err := writeTable(out, []string{"BACKGROUND", "ROLE", "COLOR", "", "RATIO", "LEVEL", "MIN"}, rows); err != nil {
				return err
			}
		}

		for _, dup := range report.Duplicates {
			fmt.Fprintf(out, "%s %s shared by %s\n", s.Warning.Render("duplicate"), dup.Color.Hex(), strings.Join(dup.Roles, ", "))
		}
	}
	return nil
}

func writeReportHeader(out io.Writer, s styles.Styles, report palette.Report) {
	failures := len(report.Failures())
	summary := s.Success.Render("all pairs pass")
	if failures > 0 {
		summary = s.Error.Render(fmt.Sprintf("%d failing %s", failures, plural(failures, "pair", "pairs")))
	}
	fmt.Fprintf(out, "%s %s  %s\n", s.Title.Render(report.Palette), s.Muted.Render("("+report.Source+")"), summary)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
