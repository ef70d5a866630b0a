package station

import (
	"github.com/vovakirdan/tui-kitchen/internal/cook"
	"github.com/vovakirdan/tui-kitchen/internal/core"
	"github.com/vovakirdan/tui-kitchen/internal/food"
)

// Pantry dispenses an unlimited supply of one ingredient.
type Pantry struct {
	box  core.Box
	item food.ID
}

// NewPantry creates a pantry handing out item.
func NewPantry(box core.Box, item food.ID) *Pantry {
	return &Pantry{box: box, item: item}
}

// Rect returns the tile the pantry occupies.
func (s *Pantry) Rect() core.Box { return s.box }

// Kind returns KindPantry.
func (s *Pantry) Kind() Kind { return KindPantry }

// Item returns the ingredient the pantry dispenses.
func (s *Pantry) Item() food.ID { return s.item }

// Contents returns the dispensed item.
func (s *Pantry) Contents() []food.ID {
	return []food.ID{s.item}
}

// Interact gives the cook one ingredient on PickUp. PutDown returns a
// carried ingredient of the same kind.
func (s *Pantry) Interact(c *cook.Cook, action core.Action) {
	stack := c.Stack()
	switch action {
	case core.ActionPickUp:
		stack.Push(s.item)
	case core.ActionPutDown:
		if top, ok := stack.Peek(); ok && top == s.item {
			stack.Pop()
		}
	}
}
