package cook

import (
	"sort"

	"github.com/vovakirdan/tui-kitchen/internal/core"
)

// Probe is the square region in front of a cook that decides which station
// an interaction reaches. Its position is derived from the cook every tick;
// it keeps no target between queries.
type Probe struct {
	size  float64
	reach float64
	box   core.Box
}

// NewProbe creates a probe of the given side length whose center sits reach
// tiles ahead of the cook.
func NewProbe(size, reach float64) *Probe {
	return &Probe{size: size, reach: reach}
}

// UpdatePosition recenters the probe in front of (x, y) along f.
// FacingNone leaves the probe centered on the cook.
func (p *Probe) UpdatePosition(x, y float64, f Facing) {
	center := core.Vec{X: x, Y: y}.Add(f.Unit().Scale(p.reach))
	p.box = core.BoxAt(center.X, center.Y, p.size, p.size)
}

// Box returns the probe's current rectangle.
func (p *Probe) Box() core.Box {
	return p.box
}

// CheckCollisions dispatches action to the single interactable the probe
// overlaps. With several overlaps the one whose center is nearest the probe
// center wins; equal distances keep the finder's order. Returns the target,
// or false when nothing overlaps or action is not an interaction.
func (p *Probe) CheckCollisions(c *Cook, finder InteractableFinder, action core.Action) (Interactable, bool) {
	if !action.IsInteraction() || finder == nil {
		return nil, false
	}

	target, ok := p.target(finder.Overlapping(p.box))
	if !ok {
		return nil, false
	}
	target.Interact(c, action)
	return target, true
}

// target picks the winner among overlapping candidates.
func (p *Probe) target(candidates []Interactable) (Interactable, bool) {
	hits := make([]Interactable, 0, len(candidates))
	for _, it := range candidates {
		if it != nil && it.Rect().Overlaps(p.box) {
			hits = append(hits, it)
		}
	}
	if len(hits) == 0 {
		return nil, false
	}

	center := p.box.Center()
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Rect().Center().DistSq(center) < hits[j].Rect().Center().DistSq(center)
	})
	return hits[0], true
}
