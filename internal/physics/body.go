package physics

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-kitchen/internal/cook"
	"github.com/vovakirdan/tui-kitchen/internal/core"
)

// maxStep is the longest single displacement tested against the broadphase.
// resolv checks the destination cells only, so longer moves are split.
const maxStep = 0.25

// contactSlop absorbs rounding when a body rests flush against an obstacle.
const contactSlop = 1e-6

// Body is a kinematic box moved by its velocity and stopped by solids and
// other bodies. It implements cook.Body.
type Body struct {
	obj    *resolv.Object
	box    core.Box
	vx, vy float64
}

// NewBody adds a width×height body centered on (cx, cy).
func (w *World) NewBody(cx, cy, width, height float64) *Body {
	box := core.BoxAt(cx, cy, width, height)
	b := &Body{
		obj: newObject(box, tagBody),
		box: box,
	}
	b.obj.Data = b
	w.space.Add(b.obj)
	w.bodies = append(w.bodies, b)
	return b
}

// SetVelocity sets the velocity in tiles per second.
func (b *Body) SetVelocity(vx, vy float64) {
	b.vx, b.vy = vx, vy
}

// Velocity returns the current velocity.
func (b *Body) Velocity() (vx, vy float64) {
	return b.vx, b.vy
}

// Position returns the body's center.
func (b *Body) Position() (x, y float64) {
	c := b.box.Center()
	return c.X, c.Y
}

// Box returns the body's rectangle.
func (b *Body) Box() core.Box {
	return b.box
}

// move slides the body by (dx, dy), one axis at a time, stopping flush
// against the first obstacle on each axis.
func (b *Body) move(dx, dy float64) {
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) / maxStep))
	if steps == 0 {
		return
	}
	sx, sy := dx/float64(steps), dy/float64(steps)
	for range steps {
		if sx != 0 {
			b.box.X += b.limit(sx, 0)
		}
		if sy != 0 {
			b.box.Y += b.limit(0, sy)
		}
		b.sync()
	}
}

// sync copies the box into the resolv object.
func (b *Body) sync() {
	b.obj.Position.X = toSpace(b.box.X)
	b.obj.Position.Y = toSpace(b.box.Y)
	b.obj.Update()
}

// limit shortens a single-axis displacement so the body does not enter any
// obstacle it is not already overlapping.
func (b *Body) limit(dx, dy float64) float64 {
	collision := b.obj.Check(dx*unitsPerTile, dy*unitsPerTile, tagSolid, tagBody)
	if collision == nil {
		return dx + dy
	}

	current := inset(b.box, contactSlop)
	moved := current.Translate(dx, dy)
	for _, obj := range collision.Objects {
		other, ok := boxOf(obj)
		if !ok || obj == b.obj || current.Overlaps(other) || !moved.Overlaps(other) {
			continue
		}
		switch {
		case dx > 0:
			dx = math.Min(dx, other.X-b.box.Right())
		case dx < 0:
			dx = math.Max(dx, other.Right()-b.box.X)
		case dy > 0:
			dy = math.Min(dy, other.Y-b.box.Bottom())
		case dy < 0:
			dy = math.Max(dy, other.Bottom()-b.box.Y)
		}
	}
	return dx + dy
}

// inset shrinks a box by d on every side.
func inset(b core.Box, d float64) core.Box {
	return core.Box{X: b.X + d, Y: b.Y + d, W: b.W - 2*d, H: b.H - 2*d}
}

var _ cook.Body = (*Body)(nil)
