// Command contrast checks color pairs and palettes against WCAG contrast thresholds.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/contrast/internal/cli"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	err := cli.Execute(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
