package cook

import "github.com/vovakirdan/tui-kitchen/internal/core"

// Controls is one tick of input for a single cook: four held direction keys
// and at most one edge-triggered interaction.
type Controls struct {
	Up, Down, Left, Right bool
	Action                core.Action
}

// interactionPriority orders interactions pressed in the same tick.
var interactionPriority = [...]core.Action{core.ActionPickUp, core.ActionPutDown, core.ActionUse}

// ControlsFromFrame samples a platform input frame.
func ControlsFromFrame(f core.InputFrame) Controls {
	ctrl := Controls{
		Up:    f.Holding(core.ActionUp),
		Down:  f.Holding(core.ActionDown),
		Left:  f.Holding(core.ActionLeft),
		Right: f.Holding(core.ActionRight),
	}
	for _, a := range interactionPriority {
		if f.Has(a) {
			ctrl.Action = a
			break
		}
	}
	return ctrl
}

// Holds reports whether the key for direction d is down.
func (c Controls) Holds(d Facing) bool {
	switch d {
	case FacingUp:
		return c.Up
	case FacingDown:
		return c.Down
	case FacingLeft:
		return c.Left
	case FacingRight:
		return c.Right
	default:
		return false
	}
}
