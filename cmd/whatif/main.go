package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "whatif",
		Short: "Deterministic marketing-attribution what-if simulator",
		Long: `whatif runs a synthetic marketing-mix simulation: channel spend and a
handful of categorical assumptions in, per-channel performance, a budget
reallocation plan, weekly series and a conversion-lag table out.

The model is a fixed set of hand-tuned deterministic formulas; identical
inputs always reproduce identical outputs.`,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newRunCmd(),
		newPresetsCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
