package cook

import "github.com/vovakirdan/tui-kitchen/internal/core"

// stubBody records velocities and reports a fixed position.
type stubBody struct {
	x, y   float64
	vx, vy float64
	sets   int
}

func (b *stubBody) SetVelocity(vx, vy float64) {
	b.vx, b.vy = vx, vy
	b.sets++
}

func (b *stubBody) Position() (float64, float64) {
	return b.x, b.y
}

// recordingStation counts interactions.
type recordingStation struct {
	name    string
	rect    core.Box
	calls   int
	actions []core.Action
	cook    *Cook
}

func (s *recordingStation) Rect() core.Box {
	return s.rect
}

func (s *recordingStation) Interact(c *Cook, action core.Action) {
	s.calls++
	s.actions = append(s.actions, action)
	s.cook = c
}

// listFinder returns every registered station, in order, whose rectangle
// overlaps the query box.
type listFinder struct {
	items []Interactable
}

func (f *listFinder) Overlapping(box core.Box) []Interactable {
	var out []Interactable
	for _, it := range f.items {
		if it.Rect().Overlaps(box) {
			out = append(out, it)
		}
	}
	return out
}

// tile returns a one-tile station rectangle at grid cell (x, y).
func tile(x, y float64) core.Box {
	return core.Box{X: x, Y: y, W: 1, H: 1}
}

// closeTo compares points with a tolerance for accumulated rounding.
func closeTo(a, b core.Vec) bool {
	const eps = 1e-9
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx < eps && dx > -eps && dy < eps && dy > -eps
}
