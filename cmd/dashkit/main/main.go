package main

import (
	"os"

	"github.com/arthur-debert/dashkit/cmd/dashkit"
	"github.com/arthur-debert/dashkit/pkg/output"
)

func main() {
	rootCmd := dashkit.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		r := output.NewTextRenderer(os.Stderr, output.ColorProfile(os.Stderr, false))
		_ = r.RenderError(err)
		os.Exit(1)
	}
}
