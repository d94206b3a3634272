package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks inputs with unknown enum members or bad spend values.
// Out-of-domain categoricals are a caller bug and are rejected up front rather
// than silently producing wrong numbers.
var ErrInvalidInput = errors.New("invalid simulation input")

type Channel string

const (
	ChannelMeta         Channel = "meta"
	ChannelGoogleSearch Channel = "google_search"
	ChannelLinkedIn     Channel = "linkedin"
)

// Channels returns the closed channel set in fixed display order.
func Channels() []Channel {
	return []Channel{ChannelMeta, ChannelGoogleSearch, ChannelLinkedIn}
}

func (c Channel) Valid() bool {
	switch c {
	case ChannelMeta, ChannelGoogleSearch, ChannelLinkedIn:
		return true
	}
	return false
}

type Model string

const (
	ModelLastClick     Model = "last_click"
	ModelPositionBased Model = "position_based"
	ModelTimeDecay     Model = "time_decay"
	ModelBayesianMMM   Model = "bayesian_mmm"
)

func (m Model) Valid() bool {
	switch m {
	case ModelLastClick, ModelPositionBased, ModelTimeDecay, ModelBayesianMMM:
		return true
	}
	return false
}

// Window is the conversion window in days.
type Window int

const (
	Window7  Window = 7
	Window14 Window = 14
	Window30 Window = 30
)

func (w Window) Valid() bool {
	switch w {
	case Window7, Window14, Window30:
		return true
	}
	return false
}

// Level grades saturation and noise assumptions.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

type Certainty string

const (
	CertaintyLow    Certainty = "low"
	CertaintyMedium Certainty = "medium"
	CertaintyHigh   Certainty = "high"
)

// Input is the full set of user-adjustable assumptions for one run.
// Construct with NewInput, or call Validate before handing it to Run.
type Input struct {
	Spend      map[Channel]float64 `json:"spend" yaml:"spend"`
	Model      Model               `json:"model" yaml:"model"`
	Window     Window              `json:"window" yaml:"window"`
	Saturation Level               `json:"saturation" yaml:"saturation"`
	Noise      Level               `json:"noise" yaml:"noise"`
}

func NewInput(spend map[Channel]float64, model Model, window Window, saturation, noise Level) (Input, error) {
	in := Input{Spend: spend, Model: model, Window: window, Saturation: saturation, Noise: noise}
	if err := in.Validate(); err != nil {
		return Input{}, err
	}
	return in, nil
}

func (in Input) Validate() error {
	if !in.Model.Valid() {
		return fmt.Errorf("%w: unknown model %q", ErrInvalidInput, in.Model)
	}
	if !in.Window.Valid() {
		return fmt.Errorf("%w: unknown window %d", ErrInvalidInput, in.Window)
	}
	if !in.Saturation.Valid() {
		return fmt.Errorf("%w: unknown saturation %q", ErrInvalidInput, in.Saturation)
	}
	if !in.Noise.Valid() {
		return fmt.Errorf("%w: unknown noise %q", ErrInvalidInput, in.Noise)
	}
	for ch, v := range in.Spend {
		if !ch.Valid() {
			return fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, ch)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: bad spend %v for channel %q", ErrInvalidInput, v, ch)
		}
	}
	return nil
}

func (in Input) TotalSpend() float64 {
	var t float64
	for _, ch := range Channels() {
		t += in.Spend[ch]
	}
	return t
}

// ChannelResult is the simulated performance of one channel.
type ChannelResult struct {
	Channel                Channel   `json:"channel"`
	ROAS                   float64   `json:"roas"`
	CAC                    float64   `json:"cac"`
	AttributedConversions  float64   `json:"attributed_conversions"`
	IncrementalConversions float64   `json:"incremental_conversions"`
	Certainty              Certainty `json:"certainty"`
}

// BudgetRow is one channel's before/after slice of the reallocation plan.
type BudgetRow struct {
	Channel Channel `json:"channel"`
	Before  float64 `json:"before"`
	After   float64 `json:"after"`
}

// WeeklyPoint is one synthetic week; labels carry no calendar meaning.
type WeeklyPoint struct {
	Week string  `json:"week"`
	ROAS float64 `json:"roas"`
	CAC  float64 `json:"cac"`
}

// ChannelWeekRow is one synthetic week with a ROAS value per channel.
type ChannelWeekRow struct {
	Week string              `json:"week"`
	ROAS map[Channel]float64 `json:"roas"`
}

// CohortRow describes how conversion credit accrues in one lag bucket.
type CohortRow struct {
	Bucket      string  `json:"bucket"`
	Cumulative  float64 `json:"cumulative"`
	Incremental float64 `json:"incremental"`
	Note        string  `json:"note"`
}

// Result bundles every derived output of one simulation run.
type Result struct {
	Channels    []ChannelResult  `json:"channels"`
	Budget      []BudgetRow      `json:"budget"`
	Weekly      []WeeklyPoint    `json:"weekly"`
	Optimized   []WeeklyPoint    `json:"optimized"`
	PerChannel  []ChannelWeekRow `json:"per_channel"`
	Cohort      []CohortRow      `json:"cohort"`
	TotalSpend  float64          `json:"total_spend"`
	BlendedROAS float64          `json:"blended_roas"`
	BlendedCAC  float64          `json:"blended_cac"`
}
