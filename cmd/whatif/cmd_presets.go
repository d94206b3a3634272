package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmmlab/whatif/internal/scenario"
	"github.com/mmmlab/whatif/internal/sim"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := scenario.Presets()

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(presets)
			}
			for _, p := range presets {
				total := 0.0
				for _, ch := range sim.Channels() {
					total += p.Spend[ch]
				}
				fmt.Printf("%-16s model=%s window=%dd saturation=%s noise=%s total=%.0f\n",
					p.Name, p.Model, p.Window, p.Saturation, p.Noise, total)
			}
			return nil
		},
	}
}
