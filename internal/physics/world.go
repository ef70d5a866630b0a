// Package physics is the kitchen's engine layer: a resolv space holding
// walls, stations and cook bodies. It moves bodies each tick and answers
// "which stations overlap this box" queries for the cook package.
package physics

import (
	"github.com/solarlune/resolv"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-kitchen/internal/cook"
	"github.com/vovakirdan/tui-kitchen/internal/core"
)

// Object tags.
const (
	tagSolid   = "solid"
	tagStation = "station"
	tagBody    = "body"
	tagQuery   = "query"
)

// unitsPerTile scales world units (tiles) to resolv space units. resolv
// sizes its broadphase cells in whole units and treats one unit as the
// smallest step, so a tile spans several units.
const unitsPerTile = 16

// border is the ring of tiles around the world that holds the edge walls.
// resolv ignores objects outside its space, so the space is padded by it.
const border = 1

// toSpace converts a world coordinate to space units.
func toSpace(v float64) float64 {
	return (v + border) * unitsPerTile
}

// newObject creates a resolv object covering box, in space units.
func newObject(box core.Box, tags ...string) *resolv.Object {
	return resolv.NewObject(toSpace(box.X), toSpace(box.Y), box.W*unitsPerTile, box.H*unitsPerTile, tags...)
}

// World owns the collision space. One world unit is one kitchen tile.
type World struct {
	space *resolv.Space

	bodies        []*Body
	interactables []cook.Interactable
	registered    mapset.Set[cook.Interactable]
}

// NewWorld creates a world width×height tiles in size. The world edges are
// solid.
func NewWorld(width, height int) *World {
	w := &World{
		space: resolv.NewSpace(
			(width+2*border)*unitsPerTile,
			(height+2*border)*unitsPerTile,
			unitsPerTile, unitsPerTile,
		),
		registered: mapset.New[cook.Interactable](),
	}

	fw, fh := float64(width), float64(height)
	w.AddSolid(core.Box{X: -border, Y: -border, W: fw + 2*border, H: border})
	w.AddSolid(core.Box{X: -border, Y: fh, W: fw + 2*border, H: border})
	w.AddSolid(core.Box{X: -border, Y: 0, W: border, H: fh})
	w.AddSolid(core.Box{X: fw, Y: 0, W: border, H: fh})
	return w
}

// AddSolid adds an impassable rectangle, such as a wall tile.
func (w *World) AddSolid(box core.Box) {
	obj := newObject(box, tagSolid)
	obj.Data = box
	w.space.Add(obj)
}

// AddInteractable registers a station. Stations block movement and are
// returned by Overlapping in registration order. Registering the same
// station twice is a no-op and returns false.
func (w *World) AddInteractable(it cook.Interactable) bool {
	if it == nil || w.registered.Has(it) {
		return false
	}
	w.registered.Put(it)
	w.interactables = append(w.interactables, it)

	r := it.Rect()
	obj := newObject(r, tagSolid, tagStation)
	obj.Data = it
	w.space.Add(obj)
	return true
}

// Interactables returns every registered station in registration order.
func (w *World) Interactables() []cook.Interactable {
	out := make([]cook.Interactable, len(w.interactables))
	copy(out, w.interactables)
	return out
}

// Overlapping returns the stations whose rectangles overlap box, in
// registration order. It implements cook.InteractableFinder.
func (w *World) Overlapping(box core.Box) []cook.Interactable {
	q := newObject(box, tagQuery)
	w.space.Add(q)
	defer w.space.Remove(q)

	collision := q.Check(0, 0, tagStation)
	if collision == nil {
		return nil
	}

	near := mapset.New[cook.Interactable]()
	for _, obj := range collision.Objects {
		if it, ok := obj.Data.(cook.Interactable); ok {
			near.Put(it)
		}
	}

	var out []cook.Interactable
	for _, it := range w.interactables {
		if near.Has(it) && it.Rect().Overlaps(box) {
			out = append(out, it)
		}
	}
	return out
}

// Step advances every body by its velocity over dt seconds.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		b.move(b.vx*dt, b.vy*dt)
	}
}

// boxOf returns the rectangle an object stands for.
func boxOf(obj *resolv.Object) (core.Box, bool) {
	switch d := obj.Data.(type) {
	case core.Box:
		return d, true
	case *Body:
		return d.box, true
	case cook.Interactable:
		return d.Rect(), true
	default:
		return core.Box{}, false
	}
}

var _ cook.InteractableFinder = (*World)(nil)
