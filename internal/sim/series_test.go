package sim

import (
	"math"
	"reflect"
	"testing"
)

func TestWeeklySeriesDeterministic(t *testing.T) {
	a := WeeklySeries(2.4, 180, Window30, LevelMedium, LevelMedium, ModelBayesianMMM, 270000, DefaultWeekCount)
	b := WeeklySeries(2.4, 180, Window30, LevelMedium, LevelMedium, ModelBayesianMMM, 270000, DefaultWeekCount)

	if len(a) != DefaultWeekCount {
		t.Fatalf("expected %d points, got %d", DefaultWeekCount, len(a))
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different series:\n%+v\n%+v", a, b)
	}
}

func TestWeeklySeriesShape(t *testing.T) {
	points := WeeklySeries(3.1, 95, Window7, LevelHigh, LevelHigh, ModelLastClick, 80000, DefaultWeekCount)

	for i, p := range points {
		if want := weekLabel(i + 1); p.Week != want {
			t.Fatalf("point %d: label %q, want %q", i, p.Week, want)
		}
		if p.ROAS < 0 {
			t.Fatalf("point %d: negative roas %v", i, p.ROAS)
		}
		if p.CAC < 1 {
			t.Fatalf("point %d: cac %v below floor", i, p.CAC)
		}
	}
}

func TestWeeklySeriesSeedSensitivity(t *testing.T) {
	// Changing total spend by a full seed unit must reshuffle the noise.
	a := WeeklySeries(2.4, 180, Window14, LevelMedium, LevelMedium, ModelTimeDecay, 100000, DefaultWeekCount)
	b := WeeklySeries(2.4, 180, Window14, LevelMedium, LevelMedium, ModelTimeDecay, 101000, DefaultWeekCount)
	if reflect.DeepEqual(a, b) {
		t.Fatal("different seeds produced identical series")
	}
}

func TestOptimizedSeriesUplift(t *testing.T) {
	base := WeeklySeries(2.0, 150, Window30, LevelMedium, LevelLow, ModelBayesianMMM, 270000, DefaultWeekCount)
	opt := OptimizedSeries(base, EfficiencyGain(ModelBayesianMMM))

	if len(opt) != len(base) {
		t.Fatalf("length mismatch: %d vs %d", len(opt), len(base))
	}
	for i := range opt {
		if opt[i].Week != base[i].Week {
			t.Fatalf("point %d: label changed from %q to %q", i, base[i].Week, opt[i].Week)
		}
		// uplift 1+0.18*0.65 ≈ 1.117 dominates the worst-case 0.8 ramp, so
		// optimized ROAS is never worse than ~0.89x and is better late on.
		if opt[i].ROAS <= 0 || opt[i].CAC <= 0 {
			t.Fatalf("point %d: non-positive optimized metrics %+v", i, opt[i])
		}
	}
	last := len(opt) - 1
	if opt[last].ROAS <= base[last].ROAS {
		t.Fatalf("final optimized roas %v not above baseline %v", opt[last].ROAS, base[last].ROAS)
	}
	if opt[last].CAC >= base[last].CAC {
		t.Fatalf("final optimized cac %v not below baseline %v", opt[last].CAC, base[last].CAC)
	}
}

func TestEfficiencyGainPerModel(t *testing.T) {
	cases := map[Model]float64{
		ModelBayesianMMM:   0.18,
		ModelTimeDecay:     0.14,
		ModelLastClick:     0.11,
		ModelPositionBased: 0.11,
	}
	for m, want := range cases {
		if got := EfficiencyGain(m); got != want {
			t.Fatalf("model %s: gain %v, want %v", m, got, want)
		}
	}
}

func TestChannelSeries(t *testing.T) {
	in, err := NewInput(validSpend(), ModelPositionBased, Window14, LevelMedium, LevelMedium)
	if err != nil {
		t.Fatalf("unexpected input error: %v", err)
	}
	results := Simulate(in)
	labels := []string{"W1", "W2", "W3", "W4"}

	rows := ChannelSeries(labels, results)
	if len(rows) != len(labels) {
		t.Fatalf("expected %d rows, got %d", len(labels), len(rows))
	}
	for i, row := range rows {
		if row.Week != labels[i] {
			t.Fatalf("row %d: label %q, want %q", i, row.Week, labels[i])
		}
		if len(row.ROAS) != len(Channels()) {
			t.Fatalf("row %d: expected %d channels, got %d", i, len(Channels()), len(row.ROAS))
		}
		for _, ch := range Channels() {
			if row.ROAS[ch] <= 0 {
				t.Fatalf("row %d channel %s: non-positive roas %v", i, ch, row.ROAS[ch])
			}
		}
	}
}

func TestChannelSeriesZeroBaselineFallsBack(t *testing.T) {
	results := []ChannelResult{{Channel: ChannelMeta, ROAS: 0}}
	rows := ChannelSeries([]string{"W1"}, results)

	// Baseline falls back to 1, so the first row carries pure variance*drift.
	want := 1 + (0-0.5)*0.01
	if got := rows[0].ROAS[ChannelMeta]; math.Abs(got-want) > 1e-12 {
		t.Fatalf("fallback baseline: got %v, want %v", got, want)
	}
}
