// Package cli provides table helpers for human-readable output.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/opencode-ai/contrast/internal/contrast"
)

const tablePadding = 2

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

func formatPassFail(value bool) string {
	if value {
		return "pass"
	}
	return "fail"
}

func formatMinimum(result contrast.Result) string {
	size := "normal"
	if result.LargeText {
		size = "large"
	}
	return fmt.Sprintf("%s (%s text)", contrast.FormatRatio(result.Minimum), size)
}
