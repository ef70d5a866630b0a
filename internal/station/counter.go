package station

import (
	"github.com/vovakirdan/tui-kitchen/internal/cook"
	"github.com/vovakirdan/tui-kitchen/internal/core"
	"github.com/vovakirdan/tui-kitchen/internal/food"
)

// Counter is a work surface that holds a small stack of items.
type Counter struct {
	box   core.Box
	items *food.Stack
}

// NewCounter creates an empty counter holding up to limit items.
func NewCounter(box core.Box, limit int) *Counter {
	return &Counter{box: box, items: food.NewStack(limit)}
}

// Rect returns the tile the counter occupies.
func (s *Counter) Rect() core.Box { return s.box }

// Kind returns KindCounter.
func (s *Counter) Kind() Kind { return KindCounter }

// Contents returns the stacked items, top first.
func (s *Counter) Contents() []food.ID {
	return s.items.Items()
}

// Interact moves the top item between the cook and the counter.
func (s *Counter) Interact(c *cook.Cook, action core.Action) {
	switch action {
	case core.ActionPutDown:
		transfer(c.Stack(), s.items)
	case core.ActionPickUp:
		transfer(s.items, c.Stack())
	}
}
