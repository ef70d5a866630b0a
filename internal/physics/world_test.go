package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-kitchen/internal/cook"
	"github.com/vovakirdan/tui-kitchen/internal/core"
)

const dt = 1.0 / 60.0

type crate struct {
	name string
	box  core.Box
}

func (c *crate) Rect() core.Box                   { return c.box }
func (c *crate) Interact(*cook.Cook, core.Action) {}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func run(w *World, ticks int) {
	for range ticks {
		w.Step(dt)
	}
}

func TestBodyMovesFreely(t *testing.T) {
	w := NewWorld(10, 10)
	b := w.NewBody(2, 2, 0.8, 0.8)
	b.SetVelocity(6, 0)

	run(w, 30)

	x, y := b.Position()
	if !near(x, 5) || !near(y, 2) {
		t.Errorf("Position() = (%v, %v), want (5, 2)", x, y)
	}
}

func TestBodyStopsAtObstacles(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(w *World)
		vx, vy    float64
		wantRight float64
		wantY     float64
	}{
		{
			name:      "wall",
			setup:     func(w *World) { w.AddSolid(core.Box{X: 5, Y: 0, W: 1, H: 10}) },
			vx:        6,
			wantRight: 5,
			wantY:     5,
		},
		{
			name: "station",
			setup: func(w *World) {
				w.AddInteractable(&crate{box: core.Box{X: 6, Y: 4, W: 1, H: 1}})
			},
			vx:        6,
			wantRight: 6,
			wantY:     5,
		},
		{
			name:      "another cook",
			setup:     func(w *World) { w.NewBody(7, 5, 0.8, 0.8) },
			vx:        6,
			wantRight: 6.6,
			wantY:     5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(10, 10)
			tt.setup(w)
			b := w.NewBody(2, 5, 0.8, 0.8)
			b.SetVelocity(tt.vx, tt.vy)

			run(w, 120)

			box := b.Box()
			if !near(box.Right(), tt.wantRight) {
				t.Errorf("Right() = %v, want %v", box.Right(), tt.wantRight)
			}
			if box.Right() > tt.wantRight+contactSlop {
				t.Errorf("body entered obstacle: Right() = %v", box.Right())
			}
			if _, y := b.Position(); !near(y, tt.wantY) {
				t.Errorf("y = %v, want %v", y, tt.wantY)
			}
		})
	}
}

func TestBodySlidesAlongWall(t *testing.T) {
	w := NewWorld(10, 10)
	w.AddSolid(core.Box{X: 5, Y: 0, W: 1, H: 10})
	b := w.NewBody(4, 2, 0.8, 0.8)

	// Push into the wall and down at the same time.
	b.SetVelocity(6, 3)
	run(w, 60)

	box := b.Box()
	if !near(box.Right(), 5) {
		t.Errorf("Right() = %v, want 5", box.Right())
	}
	if _, y := b.Position(); !near(y, 5) {
		t.Errorf("y = %v, want 5", y)
	}
}

func TestBodyDoesNotTunnel(t *testing.T) {
	w := NewWorld(20, 5)
	w.AddSolid(core.Box{X: 10, Y: 0, W: 0.5, H: 5})
	b := w.NewBody(2, 2, 0.8, 0.8)
	b.SetVelocity(600, 0)

	w.Step(dt)

	if box := b.Box(); !near(box.Right(), 10) {
		t.Errorf("Right() = %v, want 10", box.Right())
	}
}

func TestZeroVelocityKeepsPosition(t *testing.T) {
	w := NewWorld(10, 10)
	b := w.NewBody(3, 3, 0.8, 0.8)
	run(w, 10)

	x, y := b.Position()
	if !near(x, 3) || !near(y, 3) {
		t.Errorf("Position() = (%v, %v), want (3, 3)", x, y)
	}
	if vx, vy := b.Velocity(); vx != 0 || vy != 0 {
		t.Errorf("Velocity() = (%v, %v), want zero", vx, vy)
	}
}

func TestOverlappingKeepsRegistrationOrder(t *testing.T) {
	w := NewWorld(10, 10)
	a := &crate{name: "a", box: core.Box{X: 3, Y: 2, W: 1, H: 1}}
	b := &crate{name: "b", box: core.Box{X: 1, Y: 2, W: 1, H: 1}}
	c := &crate{name: "c", box: core.Box{X: 2, Y: 2, W: 1, H: 1}}
	far := &crate{name: "far", box: core.Box{X: 8, Y: 8, W: 1, H: 1}}
	for _, it := range []*crate{a, b, c, far} {
		w.AddInteractable(it)
	}

	tests := []struct {
		name string
		box  core.Box
		want []string
	}{
		{"spans three", core.Box{X: 1.5, Y: 2.2, W: 2, H: 0.5}, []string{"a", "b", "c"}},
		{"single", core.Box{X: 2.2, Y: 2.2, W: 0.5, H: 0.5}, []string{"c"}},
		{"touching edge only", core.Box{X: 4, Y: 2, W: 1, H: 1}, nil},
		{"empty floor", core.Box{X: 5, Y: 5, W: 1, H: 1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Overlapping(tt.box)
			if len(got) != len(tt.want) {
				t.Fatalf("Overlapping() returned %d stations, want %d", len(got), len(tt.want))
			}
			for i, it := range got {
				if name := it.(*crate).name; name != tt.want[i] {
					t.Errorf("Overlapping()[%d] = %s, want %s", i, name, tt.want[i])
				}
			}
		})
	}
}

func TestOverlappingDoesNotDisturbMovement(t *testing.T) {
	w := NewWorld(10, 10)
	w.AddInteractable(&crate{box: core.Box{X: 5, Y: 2, W: 1, H: 1}})
	b := w.NewBody(2, 2.5, 0.8, 0.8)

	for range 50 {
		w.Overlapping(core.Box{X: 3, Y: 2, W: 1, H: 1})
	}

	b.SetVelocity(6, 0)
	run(w, 60)
	if box := b.Box(); !near(box.Right(), 5) {
		t.Errorf("Right() = %v, want 5", box.Right())
	}
}

func TestAddInteractableRejectsDuplicates(t *testing.T) {
	w := NewWorld(10, 10)
	it := &crate{box: core.Box{X: 1, Y: 1, W: 1, H: 1}}

	if !w.AddInteractable(it) {
		t.Fatal("first AddInteractable() = false")
	}
	if w.AddInteractable(it) {
		t.Error("second AddInteractable() = true")
	}
	if w.AddInteractable(nil) {
		t.Error("AddInteractable(nil) = true")
	}
	if n := len(w.Interactables()); n != 1 {
		t.Errorf("len(Interactables()) = %d, want 1", n)
	}
	if got := w.Overlapping(core.Box{X: 1.2, Y: 1.2, W: 0.5, H: 0.5}); len(got) != 1 {
		t.Errorf("Overlapping() returned %d stations, want 1", len(got))
	}
}

func TestWorldEdgesAreSolid(t *testing.T) {
	tests := []struct {
		name   string
		vx, vy float64
		check  func(core.Box) bool
	}{
		{"left", -6, 0, func(b core.Box) bool { return near(b.X, 0) }},
		{"right", 6, 0, func(b core.Box) bool { return near(b.Right(), 4) }},
		{"top", 0, -6, func(b core.Box) bool { return near(b.Y, 0) }},
		{"bottom", 0, 6, func(b core.Box) bool { return near(b.Bottom(), 3) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(4, 3)
			b := w.NewBody(2, 1.5, 0.8, 0.8)
			b.SetVelocity(tt.vx, tt.vy)

			run(w, 120)

			if !tt.check(b.Box()) {
				t.Errorf("body left the world: %+v", b.Box())
			}
		})
	}
}
