package cook

import "github.com/vovakirdan/tui-kitchen/internal/core"

// Facing is the cardinal direction a cook is oriented toward. It is
// independent of the cook's velocity.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
	FacingUp
	FacingDown
	FacingNone
)

// Cardinals lists the four real directions in key sampling order.
var Cardinals = [4]Facing{FacingRight, FacingLeft, FacingUp, FacingDown}

// String returns a human-readable name for the facing.
func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "Right"
	case FacingLeft:
		return "Left"
	case FacingUp:
		return "Up"
	case FacingDown:
		return "Down"
	default:
		return "None"
	}
}

// Cardinal reports whether f is one of the four real directions.
func (f Facing) Cardinal() bool {
	return f >= FacingRight && f <= FacingDown
}

// Opposite returns the direction pointing the other way.
// FacingNone and invalid values map to FacingNone.
func (f Facing) Opposite() Facing {
	switch f {
	case FacingUp:
		return FacingDown
	case FacingDown:
		return FacingUp
	case FacingRight:
		return FacingLeft
	case FacingLeft:
		return FacingRight
	default:
		return FacingNone
	}
}

// Rotate90C returns the direction a quarter turn clockwise.
// FacingNone and invalid values map to FacingNone.
func (f Facing) Rotate90C() Facing {
	switch f {
	case FacingUp:
		return FacingRight
	case FacingRight:
		return FacingDown
	case FacingDown:
		return FacingLeft
	case FacingLeft:
		return FacingUp
	default:
		return FacingNone
	}
}

// Unit returns the one-tile step in this direction. Y grows downward.
func (f Facing) Unit() core.Vec {
	switch f {
	case FacingUp:
		return core.Vec{Y: -1}
	case FacingDown:
		return core.Vec{Y: 1}
	case FacingLeft:
		return core.Vec{X: -1}
	case FacingRight:
		return core.Vec{X: 1}
	default:
		return core.Vec{}
	}
}
