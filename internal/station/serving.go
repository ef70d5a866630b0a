package station

import (
	"github.com/vovakirdan/tui-kitchen/internal/cook"
	"github.com/vovakirdan/tui-kitchen/internal/core"
	"github.com/vovakirdan/tui-kitchen/internal/food"
)

// Points awarded per served item.
const (
	pointsPrepared = 10
	pointsPatty    = 20
)

// Serving is the hatch where prepared items leave the kitchen.
type Serving struct {
	box    core.Box
	served int
	score  int
}

// NewServing creates a serving hatch.
func NewServing(box core.Box) *Serving {
	return &Serving{box: box}
}

// Rect returns the tile the serving hatch occupies.
func (s *Serving) Rect() core.Box { return s.box }

// Kind returns KindServing.
func (s *Serving) Kind() Kind { return KindServing }

// Contents returns nil: served food leaves the kitchen.
func (s *Serving) Contents() []food.ID { return nil }

// Served returns the number of items served.
func (s *Serving) Served() int { return s.served }

// Score returns the points earned at this hatch.
func (s *Serving) Score() int { return s.score }

// Interact serves the cook's top item if it is prepared.
func (s *Serving) Interact(c *cook.Cook, action core.Action) {
	if action != core.ActionPutDown {
		return
	}
	top, ok := c.Stack().Peek()
	if !ok || !top.Prepared() {
		return
	}
	c.Stack().Pop()
	s.served++
	if top == food.Patty {
		s.score += pointsPatty
	} else {
		s.score += pointsPrepared
	}
}
