// Package config provides YAML-based configuration loading for the kitchen:
// cook constants, station tuning, terminal input timing and layouts.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrDuplicateLayout is returned by Validate when two layouts share an ID.
var ErrDuplicateLayout = errors.New("duplicate layout id")

// KitchenConfig contains all configuration for the kitchen game.
type KitchenConfig struct {
	Cook     CookSettings    `yaml:"cook"`
	Stations StationSettings `yaml:"stations"`
	Round    RoundSettings   `yaml:"round"`
	Input    InputSettings   `yaml:"input"`
	Layouts  []LayoutConfig  `yaml:"layouts"`
}

// CookSettings defines the per-cook constants. Lengths are in tiles.
type CookSettings struct {
	Speed     float64 `yaml:"speed"` // tiles per second
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Reach     float64 `yaml:"reach"` // cook center to probe center
	ProbeSize float64 `yaml:"probe_size"`
	MaxStack  int     `yaml:"max_stack"`
}

// StationSettings tunes the kitchen stations.
type StationSettings struct {
	ChopUses     int `yaml:"chop_uses"`     // Use actions per chopped item
	CounterLimit int `yaml:"counter_limit"` // items a counter can hold
}

// RoundSettings controls the length of a round.
type RoundSettings struct {
	Seconds int `yaml:"seconds"` // negative means untimed
}

// InputSettings controls held-key emulation on terminals that report no
// key releases.
type InputSettings struct {
	HoldInitialMS int `yaml:"hold_initial_ms"` // hold window after a fresh press
	HoldRepeatMS  int `yaml:"hold_repeat_ms"`  // hold window once auto-repeat is seen
}

// HoldInitial returns the initial hold window.
func (s InputSettings) HoldInitial() time.Duration {
	return time.Duration(s.HoldInitialMS) * time.Millisecond
}

// HoldRepeat returns the repeat hold window.
func (s InputSettings) HoldRepeat() time.Duration {
	return time.Duration(s.HoldRepeatMS) * time.Millisecond
}

// LayoutConfig is one kitchen map, one string per row.
type LayoutConfig struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`

	// Pantries maps extra tile letters to the ingredient they dispense,
	// e.g. {"P": "meat"}. The built-in letters need no entry.
	Pantries map[string]string `yaml:"pantries,omitempty"`
}

// Validate fills zero values from DefaultKitchenConfig and rejects layouts
// without an ID or with a repeated one.
func (c *KitchenConfig) Validate() error {
	def := DefaultKitchenConfig()

	fillF(&c.Cook.Speed, def.Cook.Speed)
	fillF(&c.Cook.Width, def.Cook.Width)
	fillF(&c.Cook.Height, def.Cook.Height)
	fillF(&c.Cook.Reach, def.Cook.Reach)
	fillF(&c.Cook.ProbeSize, def.Cook.ProbeSize)
	fill(&c.Cook.MaxStack, def.Cook.MaxStack)
	fill(&c.Stations.ChopUses, def.Stations.ChopUses)
	fill(&c.Stations.CounterLimit, def.Stations.CounterLimit)
	if c.Round.Seconds == 0 {
		c.Round.Seconds = def.Round.Seconds
	}
	fill(&c.Input.HoldInitialMS, def.Input.HoldInitialMS)
	fill(&c.Input.HoldRepeatMS, def.Input.HoldRepeatMS)
	if c.Input.HoldRepeatMS > c.Input.HoldInitialMS {
		c.Input.HoldRepeatMS = c.Input.HoldInitialMS
	}

	if len(c.Layouts) == 0 {
		c.Layouts = def.Layouts
	}
	seen := make(map[string]bool, len(c.Layouts))
	for i, l := range c.Layouts {
		if l.ID == "" {
			return fmt.Errorf("config: layout %d has no id", i)
		}
		if seen[l.ID] {
			return fmt.Errorf("config: %w: %q", ErrDuplicateLayout, l.ID)
		}
		seen[l.ID] = true
	}
	return nil
}

// Layout returns the layout with the given ID. An empty ID selects the first
// layout.
func (c KitchenConfig) Layout(id string) (LayoutConfig, bool) {
	if id == "" && len(c.Layouts) > 0 {
		return c.Layouts[0], true
	}
	for _, l := range c.Layouts {
		if l.ID == id {
			return l, true
		}
	}
	return LayoutConfig{}, false
}

func fill(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

func fillF(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}
