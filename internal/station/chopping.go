package station

import (
	"github.com/vovakirdan/tui-kitchen/internal/cook"
	"github.com/vovakirdan/tui-kitchen/internal/core"
	"github.com/vovakirdan/tui-kitchen/internal/food"
)

// ChoppingBoard turns one raw ingredient into its chopped form after a
// number of Use actions.
type ChoppingBoard struct {
	box      core.Box
	uses     int
	progress int
	slot     *food.Stack
}

// NewChoppingBoard creates a board that needs uses Use actions per item.
// Values below one are treated as one.
func NewChoppingBoard(box core.Box, uses int) *ChoppingBoard {
	return &ChoppingBoard{
		box:  box,
		uses: max(uses, 1),
		slot: food.NewStack(1),
	}
}

// Rect returns the tile the chopping board occupies.
func (s *ChoppingBoard) Rect() core.Box { return s.box }

// Kind returns KindChoppingBoard.
func (s *ChoppingBoard) Kind() Kind { return KindChoppingBoard }

// Contents returns the item on the board, if any.
func (s *ChoppingBoard) Contents() []food.ID {
	return s.slot.Items()
}

// Progress returns how many uses the current item has received and how many
// it needs.
func (s *ChoppingBoard) Progress() (done, total int) {
	return s.progress, s.uses
}

// Interact accepts a choppable item on PutDown, chops on Use and hands the
// item back on PickUp.
func (s *ChoppingBoard) Interact(c *cook.Cook, action core.Action) {
	switch action {
	case core.ActionPutDown:
		top, ok := c.Stack().Peek()
		if !ok {
			return
		}
		if _, choppable := top.Chopped(); !choppable {
			return
		}
		if transfer(c.Stack(), s.slot) {
			s.progress = 0
		}
	case core.ActionUse:
		s.chop()
	case core.ActionPickUp:
		if transfer(s.slot, c.Stack()) {
			s.progress = 0
		}
	}
}

func (s *ChoppingBoard) chop() {
	item, ok := s.slot.Peek()
	if !ok {
		return
	}
	chopped, ok := item.Chopped()
	if !ok {
		return
	}
	s.progress++
	if s.progress >= s.uses {
		s.slot.Replace(chopped)
		s.progress = 0
	}
}
