package sim

import (
	"math"
	"testing"
)

func TestBudgetPlanPreservesTotal(t *testing.T) {
	distributions := []map[Channel]float64{
		{ChannelMeta: 120000, ChannelGoogleSearch: 90000, ChannelLinkedIn: 60000},
		{ChannelMeta: 500000, ChannelGoogleSearch: 1000, ChannelLinkedIn: 1000},
		{ChannelMeta: 1, ChannelGoogleSearch: 1, ChannelLinkedIn: 1},
		{ChannelMeta: 270000, ChannelGoogleSearch: 0, ChannelLinkedIn: 0},
		{ChannelMeta: 0, ChannelGoogleSearch: 42000, ChannelLinkedIn: 98000},
	}
	models := []Model{ModelLastClick, ModelPositionBased, ModelTimeDecay, ModelBayesianMMM}

	for _, spend := range distributions {
		total := spend[ChannelMeta] + spend[ChannelGoogleSearch] + spend[ChannelLinkedIn]
		for _, m := range models {
			rows := DeriveBudgetPlan(spend, m)
			if len(rows) != len(Channels()) {
				t.Fatalf("expected %d rows, got %d", len(Channels()), len(rows))
			}

			var beforeSum, afterSum float64
			for _, r := range rows {
				beforeSum += r.Before
				afterSum += r.After
			}
			if math.Abs(beforeSum-total) > 1e-6*math.Max(total, 1) {
				t.Fatalf("model=%s: before sum %v, want %v", m, beforeSum, total)
			}
			if math.Abs(afterSum-beforeSum) > 1e-6*math.Max(total, 1) {
				t.Fatalf("model=%s: after sum %v, before sum %v", m, afterSum, beforeSum)
			}

			for _, r := range rows {
				share := r.After / total
				if share < minAfterShare-1e-9 {
					t.Fatalf("model=%s channel=%s: after share %v below floor", m, r.Channel, share)
				}
			}
		}
	}
}

func TestBudgetPlanZeroSpendFallback(t *testing.T) {
	spend := map[Channel]float64{ChannelMeta: 0, ChannelGoogleSearch: 0, ChannelLinkedIn: 0}
	rows := DeriveBudgetPlan(spend, ModelBayesianMMM)

	for _, r := range rows {
		if r.Before != 0 {
			t.Fatalf("channel %s: before %v, want 0", r.Channel, r.Before)
		}
		if math.IsNaN(r.After) || math.IsInf(r.After, 0) {
			t.Fatalf("channel %s: after is not finite: %v", r.Channel, r.After)
		}
	}
}

func TestBudgetPlanShiftsFromOverCredited(t *testing.T) {
	// Meta holds far more than its credited ceiling, so the plan must move
	// budget away from it and toward the under-credited channels.
	spend := map[Channel]float64{ChannelMeta: 200000, ChannelGoogleSearch: 50000, ChannelLinkedIn: 20000}
	rows := DeriveBudgetPlan(spend, ModelBayesianMMM)

	byChannel := map[Channel]BudgetRow{}
	for _, r := range rows {
		byChannel[r.Channel] = r
	}
	if byChannel[ChannelMeta].After >= byChannel[ChannelMeta].Before {
		t.Fatalf("meta should lose budget: %+v", byChannel[ChannelMeta])
	}
	if byChannel[ChannelLinkedIn].After <= byChannel[ChannelLinkedIn].Before {
		t.Fatalf("linkedin should gain budget: %+v", byChannel[ChannelLinkedIn])
	}
}
