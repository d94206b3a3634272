package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmmlab/whatif/internal/scenario"
	"github.com/mmmlab/whatif/internal/sim"
)

func newRunCmd() *cobra.Command {
	var (
		file       string
		preset     string
		metaSpend  float64
		googSpend  float64
		liSpend    float64
		model      string
		window     int
		saturation string
		noise      string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one or more what-if scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := resolveScenarios(file, preset, scenario.Scenario{
				Name: "ad-hoc",
				Spend: map[sim.Channel]float64{
					sim.ChannelMeta:         metaSpend,
					sim.ChannelGoogleSearch: googSpend,
					sim.ChannelLinkedIn:     liSpend,
				},
				Model:      sim.Model(model),
				Window:     sim.Window(window),
				Saturation: sim.Level(saturation),
				Noise:      sim.Level(noise),
			})
			if err != nil {
				return err
			}

			outcomes, err := scenario.NewRunner(slog.Default()).Run(scenarios)
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(outcomes)
			}
			for _, o := range outcomes {
				printOutcome(o)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML scenario file to run")
	cmd.Flags().StringVar(&preset, "preset", "", "Built-in scenario to run")
	cmd.Flags().Float64Var(&metaSpend, "meta", 120000, "Meta spend")
	cmd.Flags().Float64Var(&googSpend, "google-search", 90000, "Google Search spend")
	cmd.Flags().Float64Var(&liSpend, "linkedin", 60000, "LinkedIn spend")
	cmd.Flags().StringVar(&model, "model", string(sim.ModelBayesianMMM), "Attribution model (last_click|position_based|time_decay|bayesian_mmm)")
	cmd.Flags().IntVar(&window, "window", int(sim.Window30), "Conversion window in days (7|14|30)")
	cmd.Flags().StringVar(&saturation, "saturation", string(sim.LevelMedium), "Saturation level (low|medium|high)")
	cmd.Flags().StringVar(&noise, "noise", string(sim.LevelMedium), "Noise level (low|medium|high)")

	return cmd
}

func resolveScenarios(file, preset string, adhoc scenario.Scenario) ([]scenario.Scenario, error) {
	if file != "" {
		return scenario.LoadFile(file)
	}
	if preset != "" {
		s, ok := scenario.PresetByName(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		return []scenario.Scenario{s}, nil
	}
	if _, err := adhoc.Input(); err != nil {
		return nil, err
	}
	return []scenario.Scenario{adhoc}, nil
}

// printOutcome renders the compact human view. All display formatting lives
// here; the engine only ever emits plain numbers.
func printOutcome(o scenario.Outcome) {
	res := o.Result
	fmt.Printf("== %s  (total spend %.0f, blended ROAS %.2f, blended CAC %.0f)\n",
		o.Name, res.TotalSpend, res.BlendedROAS, res.BlendedCAC)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "channel\troas\tcac\tattributed\tincremental\tcertainty")
	for _, c := range res.Channels {
		fmt.Fprintf(tw, "%s\t%.2f\t%.0f\t%.1f\t%.1f\t%s\n",
			c.Channel, c.ROAS, c.CAC, c.AttributedConversions, c.IncrementalConversions, c.Certainty)
	}
	tw.Flush()

	fmt.Println("budget plan:")
	for _, b := range res.Budget {
		fmt.Printf("  %-14s %10.0f -> %10.0f\n", b.Channel, b.Before, b.After)
	}

	fmt.Println("conversion lag:")
	for _, c := range res.Cohort {
		fmt.Printf("  %-10s cum %.2f  inc %.2f  %s\n", c.Bucket, c.Cumulative, c.Incremental, c.Note)
	}
	fmt.Println()
}
