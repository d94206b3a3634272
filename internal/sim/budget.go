package sim

import "math"

// overCreditedBase is the target ceiling share per channel. Last-click inflates
// the click-adjacent channels, so their ceilings sit higher under that model.
func overCreditedBase(m Model, ch Channel) float64 {
	lastClick := m == ModelLastClick
	switch ch {
	case ChannelMeta:
		if lastClick {
			return 0.40
		}
		return 0.34
	case ChannelGoogleSearch:
		if lastClick {
			return 0.45
		}
		return 0.38
	default:
		return 0.25
	}
}

// underCreditedBase weights how the freed budget pool is redistributed.
func underCreditedBase(ch Channel) float64 {
	switch ch {
	case ChannelMeta:
		return 0.30
	case ChannelGoogleSearch:
		return 0.32
	default:
		return 0.38
	}
}

// minAfterShare floors every channel's post-reallocation share.
const minAfterShare = 0.08

// DeriveBudgetPlan turns the current spend mix into a directional before/after
// reallocation under the chosen model. The after shares form a proper
// partition: they are re-normalized so sum(after) matches sum(before).
func DeriveBudgetPlan(spend map[Channel]float64, model Model) []BudgetRow {
	total := 0.0
	for _, ch := range Channels() {
		total += spend[ch]
	}
	guarded := total
	if guarded == 0 {
		guarded = 1
	}

	intensity := 0.28
	if model == ModelBayesianMMM {
		intensity = 0.35
	}

	before := make(map[Channel]float64, len(Channels()))
	after := make(map[Channel]float64, len(Channels()))
	pool := 0.0
	for _, ch := range Channels() {
		share := spend[ch] / guarded
		before[ch] = share
		giveBack := math.Max(0, share-overCreditedBase(model, ch)) * intensity
		after[ch] = math.Max(minAfterShare, share-giveBack)
		pool += giveBack
	}

	underTotal := 0.0
	for _, ch := range Channels() {
		underTotal += underCreditedBase(ch)
	}
	for _, ch := range Channels() {
		after[ch] += pool * underCreditedBase(ch) / underTotal
	}

	afterSum := 0.0
	for _, ch := range Channels() {
		afterSum += after[ch]
	}
	if afterSum == 0 {
		afterSum = 1
	}

	rows := make([]BudgetRow, 0, len(Channels()))
	for _, ch := range Channels() {
		rows = append(rows, BudgetRow{
			Channel: ch,
			Before:  before[ch] * guarded,
			After:   after[ch] / afterSum * guarded,
		})
	}
	return rows
}
