// Package cook is the player-character control core: it turns held keys into
// a stable facing and a velocity, and routes explicit actions to the one
// station in front of the cook.
//
// The package knows nothing about terminals, physics engines or station
// types. It talks to them through Body, Interactable and InteractableFinder.
package cook

import (
	"github.com/vovakirdan/tui-kitchen/internal/core"
	"github.com/vovakirdan/tui-kitchen/internal/food"
)

// Body is the physical body a cook moves. Position is the body's center.
type Body interface {
	SetVelocity(vx, vy float64)
	Position() (x, y float64)
}

// Interactable is anything a cook can address with an action: counters,
// pantries and other stations.
type Interactable interface {
	Rect() core.Box
	Interact(c *Cook, action core.Action)
}

// InteractableFinder lists the interactables whose rectangles overlap box,
// in a stable order.
type InteractableFinder interface {
	Overlapping(box core.Box) []Interactable
}

// Config holds the per-cook constants.
type Config struct {
	Speed     float64 // tiles per second
	Width     float64
	Height    float64
	ProbeSize float64
	Reach     float64 // distance from cook center to probe center
	MaxStack  int
}

// DefaultConfig returns the constants used when no configuration is loaded.
func DefaultConfig() Config {
	return Config{
		Speed:     6,
		Width:     0.8,
		Height:    0.8,
		ProbeSize: 0.6,
		Reach:     0.9,
		MaxStack:  5,
	}
}

// Cook is a player-controlled actor.
type Cook struct {
	cfg     Config
	body    Body
	probe   *Probe
	stack   *food.Stack
	history History
	facing  Facing

	x, y   float64
	vx, vy float64
}

// New creates a cook driving body. The cook starts facing down, holding
// nothing.
func New(body Body, cfg Config) *Cook {
	c := &Cook{
		cfg:    cfg,
		body:   body,
		probe:  NewProbe(cfg.ProbeSize, cfg.Reach),
		stack:  food.NewStack(cfg.MaxStack),
		facing: FacingDown,
	}
	c.Update()
	return c
}

// Control applies one tick of input: the held keys update the history, the
// facing is re-resolved and the body gets a fresh velocity.
func (c *Cook) Control(ctrl Controls) {
	c.history.Apply(ctrl)
	c.facing = Resolve(&c.history, c.facing)
	c.vx, c.vy = Velocity(ctrl, c.cfg.Speed)
	c.body.SetVelocity(c.vx, c.vy)
}

// Update reads the body position after the world has stepped and moves the
// probe in front of the cook.
func (c *Cook) Update() {
	c.x, c.y = c.body.Position()
	c.probe.UpdatePosition(c.x, c.y, c.facing)
}

// Interact dispatches an interaction to the station in front of the cook.
func (c *Cook) Interact(finder InteractableFinder, action core.Action) (Interactable, bool) {
	return c.probe.CheckCollisions(c, finder, action)
}

// Facing returns the current facing.
func (c *Cook) Facing() Facing {
	return c.facing
}

// Holding reports whether the cook carries anything.
func (c *Cook) Holding() bool {
	return c.stack.Size() > 0
}

// Stack returns the carried items. Stations move items on and off it.
func (c *Cook) Stack() *food.Stack {
	return c.stack
}

// Position returns the cook's center as of the last Update.
func (c *Cook) Position() (x, y float64) {
	return c.x, c.y
}

// Velocity returns the velocity set by the last Control.
func (c *Cook) Velocity() (vx, vy float64) {
	return c.vx, c.vy
}

// Bounds returns the cook's rectangle as of the last Update.
func (c *Cook) Bounds() core.Box {
	return core.BoxAt(c.x, c.y, c.cfg.Width, c.cfg.Height)
}

// ProbeBox returns the interaction probe's rectangle.
func (c *Cook) ProbeBox() core.Box {
	return c.probe.Box()
}

// Held returns the held directions, oldest first.
func (c *Cook) Held() []Facing {
	return c.history.Slice()
}
