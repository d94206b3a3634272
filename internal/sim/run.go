package sim

import "math"

// Run validates the input and executes the full pipeline: channel simulation,
// budget plan, weekly series plus its optimized variant, per-channel curves
// and the cohort table. Pure and deterministic; identical inputs always yield
// identical results.
func Run(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	channels := Simulate(in)
	total := in.TotalSpend()
	blendedROAS, blendedCAC := blend(in, channels)

	weekly := WeeklySeries(blendedROAS, blendedCAC, in.Window, in.Saturation, in.Noise, in.Model, total, DefaultWeekCount)
	optimized := OptimizedSeries(weekly, EfficiencyGain(in.Model))

	labels := make([]string, 0, len(weekly))
	for _, p := range weekly {
		labels = append(labels, p.Week)
	}

	return &Result{
		Channels:    channels,
		Budget:      DeriveBudgetPlan(in.Spend, in.Model),
		Weekly:      weekly,
		Optimized:   optimized,
		PerChannel:  ChannelSeries(labels, channels),
		Cohort:      CohortCurve(in.Window, in.Noise),
		TotalSpend:  total,
		BlendedROAS: blendedROAS,
		BlendedCAC:  blendedCAC,
	}, nil
}

// blend collapses per-channel outputs into the single ROAS/CAC pair that seeds
// the weekly series: spend-weighted ROAS, and total spend over total
// attributed conversions for CAC.
func blend(in Input, channels []ChannelResult) (roas, cac float64) {
	total := in.TotalSpend()
	var weighted, conversions float64
	for _, r := range channels {
		weighted += in.Spend[r.Channel] * r.ROAS
		conversions += r.AttributedConversions
	}
	roas = weighted / math.Max(total, 1)
	cac = total / math.Max(conversions, 1)
	return roas, cac
}
