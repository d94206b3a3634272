package scenario

import (
	"log/slog"

	"github.com/mmmlab/whatif/internal/sim"
)

// Outcome pairs a scenario with its simulation result.
type Outcome struct {
	Name   string      `json:"name"`
	Input  sim.Input   `json:"input"`
	Result *sim.Result `json:"result"`
}

// Runner executes scenario batches. Runs share no state, so order does not
// matter beyond the output ordering.
type Runner struct {
	log *slog.Logger
}

func NewRunner(log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{log: log}
}

// Run simulates every scenario in order, failing fast on the first invalid one.
func (r *Runner) Run(scenarios []Scenario) ([]Outcome, error) {
	out := make([]Outcome, 0, len(scenarios))
	for _, s := range scenarios {
		in, err := s.Input()
		if err != nil {
			return nil, err
		}
		res, err := sim.Run(in)
		if err != nil {
			return nil, err
		}
		r.log.Debug("scenario simulated",
			slog.String("name", s.Name),
			slog.Float64("total_spend", res.TotalSpend),
			slog.Float64("blended_roas", res.BlendedROAS))
		out = append(out, Outcome{Name: s.Name, Input: in, Result: res})
	}
	return out, nil
}
