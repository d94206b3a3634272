package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mmmlab/whatif/internal/sim"
)

// Scenario is a named set of simulation assumptions, the canned starting
// points a visitor picks before nudging the sliders.
type Scenario struct {
	Name       string                  `yaml:"name" json:"name"`
	Spend      map[sim.Channel]float64 `yaml:"spend" json:"spend"`
	Model      sim.Model               `yaml:"model" json:"model"`
	Window     sim.Window              `yaml:"window" json:"window"`
	Saturation sim.Level               `yaml:"saturation" json:"saturation"`
	Noise      sim.Level               `yaml:"noise" json:"noise"`
}

// Input validates the scenario and returns it as a simulation input.
func (s Scenario) Input() (sim.Input, error) {
	in, err := sim.NewInput(s.Spend, s.Model, s.Window, s.Saturation, s.Noise)
	if err != nil {
		return sim.Input{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return in, nil
}

type file struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Parse decodes a YAML scenario document and validates every entry.
func Parse(data []byte) ([]Scenario, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("parse scenarios: no scenarios defined")
	}
	for _, s := range f.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("parse scenarios: scenario without a name")
		}
		if _, err := s.Input(); err != nil {
			return nil, err
		}
	}
	return f.Scenarios, nil
}

func LoadFile(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	return Parse(data)
}

// Presets are the built-in scenarios shipped with the simulator.
func Presets() []Scenario {
	return []Scenario{
		{
			Name: "baseline",
			Spend: map[sim.Channel]float64{
				sim.ChannelMeta:         120000,
				sim.ChannelGoogleSearch: 90000,
				sim.ChannelLinkedIn:     60000,
			},
			Model:      sim.ModelBayesianMMM,
			Window:     sim.Window30,
			Saturation: sim.LevelMedium,
			Noise:      sim.LevelMedium,
		},
		{
			Name: "brand-heavy",
			Spend: map[sim.Channel]float64{
				sim.ChannelMeta:         180000,
				sim.ChannelGoogleSearch: 40000,
				sim.ChannelLinkedIn:     80000,
			},
			Model:      sim.ModelPositionBased,
			Window:     sim.Window14,
			Saturation: sim.LevelHigh,
			Noise:      sim.LevelMedium,
		},
		{
			Name: "performance-max",
			Spend: map[sim.Channel]float64{
				sim.ChannelMeta:         60000,
				sim.ChannelGoogleSearch: 150000,
				sim.ChannelLinkedIn:     30000,
			},
			Model:      sim.ModelLastClick,
			Window:     sim.Window7,
			Saturation: sim.LevelLow,
			Noise:      sim.LevelHigh,
		},
	}
}

// PresetByName looks up a built-in scenario.
func PresetByName(name string) (Scenario, bool) {
	for _, s := range Presets() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
