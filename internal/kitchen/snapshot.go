package kitchen

import (
	"math"

	"github.com/vovakirdan/tui-kitchen/internal/station"
)

// CookSnapshot is the observable state of one cook.
type CookSnapshot struct {
	X, Y   float64
	Facing int
	Held   []int // held directions, oldest first
	Stack  []int // carried items, top first
}

// Snapshot contains the observable game state for determinism tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	State     string
	Score     int
	Served    int
	TicksLeft int
	Active    int

	Cooks []CookSnapshot

	// Station contents in layout order; each station is a count followed by
	// its items, top first.
	StationData []int
	// Chopping progress in layout order, one value per chopping board.
	ChopProgress []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      uint64(g.tick), //#nosec G115 -- tick count is always positive
		State:     g.state,
		Score:     g.score(),
		Served:    g.served(),
		TicksLeft: g.ticksLeft,
		Active:    g.active,
	}

	for _, c := range g.cooks {
		x, y := c.Position()
		cs := CookSnapshot{X: x, Y: y, Facing: int(c.Facing())}
		for _, f := range c.Held() {
			cs.Held = append(cs.Held, int(f))
		}
		for _, id := range c.Stack().Items() {
			cs.Stack = append(cs.Stack, int(id))
		}
		snap.Cooks = append(snap.Cooks, cs)
	}

	for _, s := range g.stations {
		items := s.Contents()
		snap.StationData = append(snap.StationData, len(items))
		for _, id := range items {
			snap.StationData = append(snap.StationData, int(id))
		}
		if board, ok := s.(*station.ChoppingBoard); ok {
			done, _ := board.Progress()
			snap.ChopProgress = append(snap.ChopProgress, done)
		}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(len(snap.State))
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Served)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TicksLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Active)    //#nosec G115 -- hash computation

	for _, c := range snap.Cooks {
		h = h*31 + math.Float64bits(c.X)
		h = h*31 + math.Float64bits(c.Y)
		h = h*31 + uint64(c.Facing) //#nosec G115 -- hash computation
		h = h*31 + uint64(len(c.Held))
		for _, v := range c.Held {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
		h = h*31 + uint64(len(c.Stack))
		for _, v := range c.Stack {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	for _, v := range snap.StationData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ChopProgress {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
