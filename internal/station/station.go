// Package station implements the kitchen fixtures a cook can interact with.
// Each station occupies one rectangle, blocks movement and reacts to the
// PickUp, PutDown and Use actions dispatched by the cook's probe.
package station

import (
	"github.com/vovakirdan/tui-kitchen/internal/cook"
	"github.com/vovakirdan/tui-kitchen/internal/core"
	"github.com/vovakirdan/tui-kitchen/internal/food"
)

// Kind identifies a station type for rendering and logging.
type Kind int

const (
	KindCounter Kind = iota
	KindPantry
	KindBin
	KindChoppingBoard
	KindServing
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "Counter"
	case KindPantry:
		return "Pantry"
	case KindBin:
		return "Bin"
	case KindChoppingBoard:
		return "ChoppingBoard"
	case KindServing:
		return "Serving"
	default:
		return "Unknown"
	}
}

// Station is a cook.Interactable that can describe itself.
type Station interface {
	cook.Interactable
	Kind() Kind
	// Contents returns the items resting on the station, top first.
	Contents() []food.ID
}

// transfer moves the top item of from onto to.
// Nothing moves if from is empty or to is full.
func transfer(from, to *food.Stack) bool {
	if to.Full() {
		return false
	}
	id, ok := from.Pop()
	if !ok {
		return false
	}
	to.Push(id)
	return true
}

// TileBox returns the box covering the kitchen tile at (x, y).
func TileBox(x, y int) core.Box {
	return core.Box{X: float64(x), Y: float64(y), W: 1, H: 1}
}

var (
	_ Station = (*Counter)(nil)
	_ Station = (*Pantry)(nil)
	_ Station = (*Bin)(nil)
	_ Station = (*ChoppingBoard)(nil)
	_ Station = (*Serving)(nil)
)
