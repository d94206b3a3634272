package sim

import (
	"fmt"
	"math"
)

// Hand-authored cumulative realization curves per window, monotonic and
// terminating at 1. Longer windows resolve over more lag buckets.
func baseCohortCurve(w Window) []float64 {
	switch w {
	case Window7:
		return []float64{0.42, 0.71, 0.89, 1.0}
	case Window14:
		return []float64{0.30, 0.52, 0.70, 0.84, 0.94, 1.0}
	default:
		return []float64{0.22, 0.40, 0.55, 0.68, 0.79, 0.88, 0.95, 1.0}
	}
}

func cohortNoiseAdjust(level Level) float64 {
	switch level {
	case LevelLow:
		return 0.01
	case LevelHigh:
		return 0.06
	default:
		return 0.03
	}
}

const (
	noteLowerFunnel      = "Mostly lower-funnel retargeting credit landing immediately"
	noteMixedFunnel      = "Mixed prospecting and retargeting influence"
	noteProspectingHeavy = "Prospecting-heavy credit from long-lag conversions"
)

// CohortCurve builds the conversion-lag table for the chosen window. The
// noise level tilts the curve slightly around its midpoint; values stay
// clamped to [0,1] and the cumulative column never decreases.
func CohortCurve(window Window, noise Level) []CohortRow {
	curve := baseCohortCurve(window)
	adjust := cohortNoiseAdjust(noise)

	rows := make([]CohortRow, 0, len(curve))
	prev := 0.0
	for i, cum := range curve {
		adjusted := clamp(cum+(float64(i)-float64(len(curve))/2)*adjust*0.1, 0, 1)
		rows = append(rows, CohortRow{
			Bucket:      bucketLabel(i),
			Cumulative:  adjusted,
			Incremental: math.Max(0, adjusted-prev),
			Note:        bucketNote(i),
		})
		prev = adjusted
	}
	return rows
}

func bucketLabel(i int) string {
	if i == 0 {
		return "Week 0–1"
	}
	return fmt.Sprintf("Week %d–%d", i, i+1)
}

func bucketNote(i int) string {
	switch {
	case i == 0:
		return noteLowerFunnel
	case i <= 2:
		return noteMixedFunnel
	default:
		return noteProspectingHeavy
	}
}
