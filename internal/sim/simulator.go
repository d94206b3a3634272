package sim

import "math"

// Hand-tuned per-channel constants. baseEfficiency is the ROAS ceiling before
// window/saturation adjustments; the prospecting/retargeting mix drives both
// the efficiency tilt and the attribution-share noise.
type channelProfile struct {
	baseEfficiency    float64
	prospectingWeight float64
	retargetingBias   float64
}

func profileFor(ch Channel) channelProfile {
	switch ch {
	case ChannelMeta:
		return channelProfile{baseEfficiency: 3.2, prospectingWeight: 0.55, retargetingBias: 0.65}
	case ChannelGoogleSearch:
		return channelProfile{baseEfficiency: 2.6, prospectingWeight: 0.45, retargetingBias: 0.35}
	case ChannelLinkedIn:
		return channelProfile{baseEfficiency: 1.9, prospectingWeight: 0.70, retargetingBias: 0.20}
	}
	return channelProfile{}
}

// modelWeight is the hand-authored base attribution share per model. Rows are
// intentionally only approximately normalized; do not re-normalize them.
func modelWeight(m Model, ch Channel) float64 {
	switch m {
	case ModelLastClick:
		switch ch {
		case ChannelMeta:
			return 0.42
		case ChannelGoogleSearch:
			return 0.46
		case ChannelLinkedIn:
			return 0.14
		}
	case ModelPositionBased:
		switch ch {
		case ChannelMeta:
			return 0.38
		case ChannelGoogleSearch:
			return 0.40
		case ChannelLinkedIn:
			return 0.21
		}
	case ModelTimeDecay:
		switch ch {
		case ChannelMeta:
			return 0.36
		case ChannelGoogleSearch:
			return 0.41
		case ChannelLinkedIn:
			return 0.24
		}
	case ModelBayesianMMM:
		switch ch {
		case ChannelMeta:
			return 0.33
		case ChannelGoogleSearch:
			return 0.37
		case ChannelLinkedIn:
			return 0.27
		}
	}
	return 0
}

func windowMultiplier(w Window) float64 {
	switch w {
	case Window7:
		return 0.8
	case Window14:
		return 0.95
	default:
		return 1.1
	}
}

// saturationPenalty models diminishing returns on spend within a channel.
// Spend is normalized by 100k; the multiplier is bounded below by 1-(base+0.15).
func saturationPenalty(level Level, spend float64) float64 {
	base := 0.25
	switch level {
	case LevelLow:
		base = 0.1
	case LevelHigh:
		base = 0.45
	}
	normalized := spend / 100000
	return 1 - math.Min(base*normalized, base+0.15)
}

func noiseFactor(level Level) float64 {
	switch level {
	case LevelLow:
		return 0.05
	case LevelHigh:
		return 0.22
	default:
		return 0.12
	}
}

// revenuePerConversion is the fixed modeled deal size.
const revenuePerConversion = 500

// Simulate derives per-channel performance from the input assumptions, one
// result per channel in fixed channel order. It assumes a validated Input.
func Simulate(in Input) []ChannelResult {
	nf := noiseFactor(in.Noise)
	wm := windowMultiplier(in.Window)

	out := make([]ChannelResult, 0, len(Channels()))
	for _, ch := range Channels() {
		spend := in.Spend[ch]
		p := profileFor(ch)

		effectiveROAS := p.baseEfficiency * wm * saturationPenalty(in.Saturation, spend) *
			(1 + (p.prospectingWeight-p.retargetingBias)*0.2)

		shareNoise := 0.8
		if in.Model == ModelLastClick {
			shareNoise = 1.2
		}
		noisyShare := modelWeight(in.Model, ch) + (p.retargetingBias-p.prospectingWeight)*nf*shareNoise
		boundedShare := clamp(noisyShare, 0.05, 0.7)

		modeledRevenue := spend * effectiveROAS
		conversions := modeledRevenue / revenuePerConversion

		incrementalBump := 0.1
		if in.Model == ModelBayesianMMM {
			incrementalBump = 0.2
		}
		incrementalShare := p.prospectingWeight*0.6 + (1-p.retargetingBias)*0.2 + incrementalBump

		out = append(out, ChannelResult{
			Channel:                ch,
			ROAS:                   (modeledRevenue / math.Max(spend, 1)) * boundedShare,
			CAC:                    spend / math.Max(conversions, 1),
			AttributedConversions:  conversions * boundedShare,
			IncrementalConversions: modeledRevenue * incrementalShare * (1 - nf*0.4) / revenuePerConversion,
			Certainty:              certaintyFor(in),
		})
	}
	return out
}

// certaintyFor grades confidence in the modeled numbers. High requires the
// full-credibility combination; short windows and high noise always degrade.
func certaintyFor(in Input) Certainty {
	if in.Model == ModelBayesianMMM && in.Window == Window30 && in.Noise == LevelLow {
		return CertaintyHigh
	}
	if in.Noise == LevelHigh || in.Window == Window7 {
		return CertaintyLow
	}
	return CertaintyMedium
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
