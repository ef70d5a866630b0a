package config

import (
	_ "embed"
)

//go:embed defaults/kitchen.yaml
var defaultKitchenYAML []byte

// DefaultKitchenConfig returns the hardcoded kitchen configuration, used when
// even the embedded YAML cannot be parsed.
func DefaultKitchenConfig() KitchenConfig {
	return KitchenConfig{
		Cook: CookSettings{
			Speed:     6,
			Width:     0.8,
			Height:    0.8,
			Reach:     0.9,
			ProbeSize: 0.6,
			MaxStack:  5,
		},
		Stations: StationSettings{
			ChopUses:     5,
			CounterLimit: 5,
		},
		Round: RoundSettings{
			Seconds: 180,
		},
		Input: InputSettings{
			HoldInitialMS: 550, // longer than the usual OS key-repeat delay
			HoldRepeatMS:  120,
		},
		Layouts: []LayoutConfig{
			{
				ID:   "diner",
				Name: "Diner",
				Rows: []string{
					"##########",
					"#T.L..K.S#",
					"#........#",
					"#.1.CC.2.#",
					"#........#",
					"#M.B..K.X#",
					"##########",
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultKitchenYAML
}
