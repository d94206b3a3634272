package sim

import (
	"fmt"
	"math"
)

// DefaultWeekCount is the length of the synthetic weekly series.
const DefaultWeekCount = 12

func lagFactor(w Window) float64 {
	switch w {
	case Window7:
		return 0.6
	case Window14:
		return 0.8
	default:
		return 1.0
	}
}

func saturationFactor(level Level) float64 {
	switch level {
	case LevelLow:
		return 1.05
	case LevelHigh:
		return 0.9
	default:
		return 1.0
	}
}

func noiseAmplitude(level Level) float64 {
	switch level {
	case LevelLow:
		return 0.04
	case LevelHigh:
		return 0.14
	default:
		return 0.08
	}
}

func trendDrift(m Model) float64 {
	switch m {
	case ModelBayesianMMM:
		return 0.015
	case ModelTimeDecay:
		return 0.01
	default:
		return 0.005
	}
}

func modelSeedConstant(m Model) float64 {
	switch m {
	case ModelBayesianMMM:
		return 17
	case ModelTimeDecay:
		return 11
	default:
		return 5
	}
}

// WeeklySeries builds the synthetic weekly ROAS/CAC series from the blended
// channel outputs. The seed folds total spend, model and window together so
// any assumption change reshuffles the noise while identical inputs always
// reproduce the identical sequence.
func WeeklySeries(blendedROAS, blendedCAC float64, window Window, saturation, noise Level, model Model, totalSpend float64, weekCount int) []WeeklyPoint {
	if weekCount <= 0 {
		weekCount = DefaultWeekCount
	}

	lag := lagFactor(window)
	sat := saturationFactor(saturation)
	amp := noiseAmplitude(noise)
	drift := trendDrift(model)

	rng := NewLCG(int64(math.Floor(totalSpend/1000 + modelSeedConstant(model) + float64(window))))

	startingROAS := blendedROAS * lag * sat
	denom := lag * sat
	if denom == 0 {
		denom = 1
	}
	startingCAC := blendedCAC / denom

	points := make([]WeeklyPoint, 0, weekCount)
	for week := 1; week <= weekCount; week++ {
		centered := float64(week) - (float64(weekCount)/2 + 0.5)
		trend := 1 + drift*centered
		shock := 1 + (rng.Next()-0.5)*2*amp
		mmmNoise := 1 + (rng.Next()-0.5)*amp*1.5
		roas := startingROAS * trend * shock * mmmNoise
		cac := math.Max(1, startingCAC*(2-trend)*(1+(rng.Next()-0.5)*amp))
		points = append(points, WeeklyPoint{Week: weekLabel(week), ROAS: roas, CAC: cac})
	}
	return points
}

// EfficiencyGain is the fixed modeled uplift the optimizer claims per model.
func EfficiencyGain(m Model) float64 {
	switch m {
	case ModelBayesianMMM:
		return 0.18
	case ModelTimeDecay:
		return 0.14
	default:
		return 0.11
	}
}

// OptimizedSeries projects an optimized variant of the weekly series: a fixed
// uplift scaled by a ramp that grows across the series, clamped to [0.8,1.1].
func OptimizedSeries(series []WeeklyPoint, efficiencyGain float64) []WeeklyPoint {
	uplift := 1 + efficiencyGain*0.65
	midpoint := float64(len(series)) / 2

	out := make([]WeeklyPoint, 0, len(series))
	for i, p := range series {
		ramp := clamp(0.9+(float64(i+1)-midpoint)*0.01, 0.8, 1.1)
		factor := uplift * ramp
		if factor == 0 {
			factor = 1
		}
		out = append(out, WeeklyPoint{Week: p.Week, ROAS: p.ROAS * factor, CAC: p.CAC / factor})
	}
	return out
}

// ChannelSeries projects per-channel weekly ROAS curves: each channel drifts
// from its simulated baseline by a fixed ordinal offset plus a shared weekly
// variance term.
func ChannelSeries(weekLabels []string, results []ChannelResult) []ChannelWeekRow {
	baseline := make(map[Channel]float64, len(results))
	for _, r := range results {
		baseline[r.Channel] = r.ROAS
	}

	weekCount := len(weekLabels)
	rows := make([]ChannelWeekRow, 0, weekCount)
	for i, label := range weekLabels {
		variance := 1 + (float64(i)-float64(weekCount)/2)*0.01
		roas := make(map[Channel]float64, len(Channels()))
		for pos, ch := range Channels() {
			base := baseline[ch]
			if base == 0 {
				base = 1
			}
			channelDrift := 1 + float64(pos)*0.03
			roas[ch] = base * variance * channelDrift
		}
		rows = append(rows, ChannelWeekRow{Week: label, ROAS: roas})
	}
	return rows
}

func weekLabel(week int) string {
	return fmt.Sprintf("W%d", week)
}
