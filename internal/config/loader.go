package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const kitchenFile = "kitchen.yaml"

// LoadKitchen loads the kitchen configuration.
// Search order: customPath -> ~/.kitchen/configs/kitchen.yaml -> ./configs/kitchen.yaml -> embedded default
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped silently.
func LoadKitchen(customPath string) (KitchenConfig, error) {
	var cfg KitchenConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(kitchenFile); userCfgPath != "" {
		if c, ok := readKitchen(userCfgPath); ok {
			return c, c.Validate()
		}
	}

	// Try local configs directory
	if c, ok := readKitchen(filepath.Join("configs", kitchenFile)); ok {
		return c, c.Validate()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultKitchenYAML, &cfg); err != nil {
		return DefaultKitchenConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

func readKitchen(path string) (KitchenConfig, bool) {
	var cfg KitchenConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kitchen", "configs", filename)
}
