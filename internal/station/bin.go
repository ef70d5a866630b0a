package station

import (
	"github.com/vovakirdan/tui-kitchen/internal/cook"
	"github.com/vovakirdan/tui-kitchen/internal/core"
	"github.com/vovakirdan/tui-kitchen/internal/food"
)

// Bin throws away whatever is put into it.
type Bin struct {
	box       core.Box
	discarded int
}

// NewBin creates a bin.
func NewBin(box core.Box) *Bin {
	return &Bin{box: box}
}

// Rect returns the tile the bin occupies.
func (s *Bin) Rect() core.Box { return s.box }

// Kind returns KindBin.
func (s *Bin) Kind() Kind { return KindBin }

// Contents returns nil: a bin keeps nothing.
func (s *Bin) Contents() []food.ID { return nil }

// Discarded returns how many items went into the bin.
func (s *Bin) Discarded() int { return s.discarded }

// Interact throws away the cook's top item on PutDown.
func (s *Bin) Interact(c *cook.Cook, action core.Action) {
	if action != core.ActionPutDown {
		return
	}
	if _, ok := c.Stack().Pop(); ok {
		s.discarded++
	}
}
