package sim

import (
	"errors"
	"testing"
)

func validSpend() map[Channel]float64 {
	return map[Channel]float64{
		ChannelMeta:         120000,
		ChannelGoogleSearch: 90000,
		ChannelLinkedIn:     60000,
	}
}

func TestSimulateOneResultPerChannelNonNegative(t *testing.T) {
	models := []Model{ModelLastClick, ModelPositionBased, ModelTimeDecay, ModelBayesianMMM}
	windows := []Window{Window7, Window14, Window30}
	levels := []Level{LevelLow, LevelMedium, LevelHigh}

	for _, m := range models {
		for _, w := range windows {
			for _, sat := range levels {
				for _, noise := range levels {
					in, err := NewInput(validSpend(), m, w, sat, noise)
					if err != nil {
						t.Fatalf("unexpected input error: %v", err)
					}
					results := Simulate(in)
					if len(results) != len(Channels()) {
						t.Fatalf("expected %d results, got %d", len(Channels()), len(results))
					}
					for i, r := range results {
						if r.Channel != Channels()[i] {
							t.Fatalf("result %d out of channel order: %s", i, r.Channel)
						}
						if r.ROAS < 0 || r.CAC < 0 || r.AttributedConversions < 0 || r.IncrementalConversions < 0 {
							t.Fatalf("negative metric for %s: %+v", r.Channel, r)
						}
					}
				}
			}
		}
	}
}

func TestSimulateZeroSpendIsSafe(t *testing.T) {
	spend := map[Channel]float64{ChannelMeta: 0, ChannelGoogleSearch: 0, ChannelLinkedIn: 0}
	in, err := NewInput(spend, ModelTimeDecay, Window14, LevelMedium, LevelMedium)
	if err != nil {
		t.Fatalf("unexpected input error: %v", err)
	}
	for _, r := range Simulate(in) {
		if r.ROAS != 0 || r.CAC != 0 {
			t.Fatalf("expected zeroed metrics for zero spend, got %+v", r)
		}
	}
}

func TestCertaintyMatrix(t *testing.T) {
	models := []Model{ModelLastClick, ModelPositionBased, ModelTimeDecay, ModelBayesianMMM}
	windows := []Window{Window7, Window14, Window30}
	levels := []Level{LevelLow, LevelMedium, LevelHigh}

	for _, m := range models {
		for _, w := range windows {
			for _, noise := range levels {
				in, err := NewInput(validSpend(), m, w, LevelMedium, noise)
				if err != nil {
					t.Fatalf("unexpected input error: %v", err)
				}

				want := CertaintyMedium
				switch {
				case m == ModelBayesianMMM && w == Window30 && noise == LevelLow:
					want = CertaintyHigh
				case noise == LevelHigh || w == Window7:
					want = CertaintyLow
				}

				for _, r := range Simulate(in) {
					if r.Certainty != want {
						t.Fatalf("model=%s window=%d noise=%s: certainty %s, want %s", m, w, noise, r.Certainty, want)
					}
				}
			}
		}
	}
}

func TestScenarioBayesianMediumNoise(t *testing.T) {
	in, err := NewInput(validSpend(), ModelBayesianMMM, Window30, LevelMedium, LevelMedium)
	if err != nil {
		t.Fatalf("unexpected input error: %v", err)
	}
	if got := in.TotalSpend(); got != 270000 {
		t.Fatalf("total spend: got %v, want 270000", got)
	}
	for _, r := range Simulate(in) {
		if r.Certainty != CertaintyMedium {
			t.Fatalf("channel %s: certainty %s, want medium", r.Channel, r.Certainty)
		}
	}
}

func TestInputValidation(t *testing.T) {
	cases := []struct {
		name string
		in   Input
	}{
		{"bad model", Input{Spend: validSpend(), Model: "first_touch", Window: Window14, Saturation: LevelLow, Noise: LevelLow}},
		{"bad window", Input{Spend: validSpend(), Model: ModelTimeDecay, Window: 21, Saturation: LevelLow, Noise: LevelLow}},
		{"bad saturation", Input{Spend: validSpend(), Model: ModelTimeDecay, Window: Window14, Saturation: "extreme", Noise: LevelLow}},
		{"bad noise", Input{Spend: validSpend(), Model: ModelTimeDecay, Window: Window14, Saturation: LevelLow, Noise: "none"}},
		{"bad channel", Input{Spend: map[Channel]float64{"tiktok": 100}, Model: ModelTimeDecay, Window: Window14, Saturation: LevelLow, Noise: LevelLow}},
		{"negative spend", Input{Spend: map[Channel]float64{ChannelMeta: -5}, Model: ModelTimeDecay, Window: Window14, Saturation: LevelLow, Noise: LevelLow}},
	}
	for _, tc := range cases {
		err := tc.in.Validate()
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: error %v is not ErrInvalidInput", tc.name, err)
		}
	}

	if _, err := NewInput(validSpend(), ModelLastClick, Window7, LevelHigh, LevelHigh); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}
