package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-kitchen/internal/core"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	frames []core.InputFrame
	resets int
	state  core.GameState
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) last() core.InputFrame    { return g.frames[len(g.frames)-1] }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

// layoutGame also supports resizing without a restart.
type layoutGame struct {
	fakeGame
	relayouts []core.RuntimeConfig
}

func (g *layoutGame) Relayout(cfg core.RuntimeConfig) { g.relayouts = append(g.relayouts, cfg) }

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel() (Model, *fakeGame, *fakeClock) {
	g := &fakeGame{}
	clock := &fakeClock{t: time.Unix(1000, 0)}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{
		HoldInitial: 500 * time.Millisecond,
		HoldRepeat:  100 * time.Millisecond,
	})
	m.now = clock.now
	return m, g, clock
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{runes("w"), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{runes("s"), core.ActionDown, false},
		{runes("a"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{runes("e"), core.ActionPickUp, false},
		{runes("f"), core.ActionPutDown, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionUse, false},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionSwap, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{runes("r"), core.ActionRestart, false},
		{runes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runes("?"), core.ActionNone, false},
		{runes("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestHoldTrackerWindows(t *testing.T) {
	t0 := time.Unix(0, 0)
	ms := time.Millisecond
	h := NewHoldTracker(500*ms, 100*ms)

	if !h.Press(core.ActionRight, t0) {
		t.Fatal("first press not fresh")
	}
	// Initial window bridges the auto-repeat delay.
	if got := h.Held(t0.Add(450 * ms)); len(got) != 1 {
		t.Fatalf("Held at 450ms = %v, want [Right]", got)
	}
	// The first auto-repeat arrives after the OS delay.
	h.Press(core.ActionRight, t0.Add(480*ms))
	if h.Press(core.ActionRight, t0.Add(510*ms)) {
		t.Error("auto-repeat reported as fresh")
	}
	// Once repeating, the short window applies.
	if got := h.Held(t0.Add(600 * ms)); len(got) != 1 {
		t.Errorf("Held at 600ms = %v, want [Right]", got)
	}
	if got := h.Held(t0.Add(620 * ms)); len(got) != 0 {
		t.Errorf("Held at 620ms = %v, want none", got)
	}
	// Expired keys start over as fresh presses.
	if !h.Press(core.ActionRight, t0.Add(700*ms)) {
		t.Error("press after expiry not fresh")
	}
}

func TestHoldTrackerInitialExpiry(t *testing.T) {
	t0 := time.Unix(0, 0)
	h := NewHoldTracker(0, 0)

	h.Press(core.ActionUp, t0)
	if got := h.Held(t0.Add(DefaultHoldInitial)); len(got) != 1 {
		t.Errorf("Held at window edge = %v, want [Up]", got)
	}
	if got := h.Held(t0.Add(DefaultHoldInitial + time.Millisecond)); len(got) != 0 {
		t.Errorf("Held after window = %v, want none", got)
	}
}

func TestHoldTrackerOrderAndRelease(t *testing.T) {
	t0 := time.Unix(0, 0)
	h := NewHoldTracker(time.Second, 100*time.Millisecond)

	h.Press(core.ActionRight, t0)
	h.Press(core.ActionUp, t0)
	h.Press(core.ActionLeft, t0)

	got := h.Held(t0)
	want := []core.Action{core.ActionUp, core.ActionLeft, core.ActionRight}
	if len(got) != len(want) {
		t.Fatalf("Held() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Held()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	h.Release(core.ActionUp)
	if got := h.Held(t0); len(got) != 2 {
		t.Errorf("Held() after Release = %v", got)
	}
	h.Reset()
	if got := h.Held(t0); len(got) != 0 {
		t.Errorf("Held() after Reset = %v", got)
	}
}

func TestHoldTrackerRepeatNeverExceedsInitial(t *testing.T) {
	h := NewHoldTracker(100*time.Millisecond, time.Second)
	if h.repeat != h.initial {
		t.Errorf("repeat = %v, want %v", h.repeat, h.initial)
	}
}

func TestModelHoldsDirectionAcrossTicks(t *testing.T) {
	m, g, clock := newTestModel()

	m = send(m, runes("d"))
	clock.advance(16 * time.Millisecond)
	m = send(m, TickMsg{})

	in := g.last()
	if !in.Holding(core.ActionRight) {
		t.Fatal("Right not held on first tick")
	}
	if in.Has(core.ActionRight) {
		t.Error("direction reported as an edge action")
	}

	clock.advance(400 * time.Millisecond)
	m = send(m, TickMsg{})
	if !g.last().Holding(core.ActionRight) {
		t.Error("Right released inside the initial window")
	}

	clock.advance(200 * time.Millisecond)
	send(m, TickMsg{})
	if g.last().Holding(core.ActionRight) {
		t.Error("Right still held after the window")
	}
}

func TestModelReversalDropsOppositeDirection(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		dropped  core.Action
		wantHeld core.Action
	}{
		{"right then left", "d", "a", core.ActionRight, core.ActionLeft},
		{"left then right", "a", "d", core.ActionLeft, core.ActionRight},
		{"up then down", "w", "s", core.ActionUp, core.ActionDown},
		{"down then up", "s", "w", core.ActionDown, core.ActionUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, g, clock := newTestModel()

			m = send(m, runes(tt.first))
			clock.advance(150 * time.Millisecond)
			m = send(m, runes(tt.second))
			clock.advance(16 * time.Millisecond)
			send(m, TickMsg{})

			in := g.last()
			if in.Holding(tt.dropped) {
				t.Errorf("%v still held after reversing", tt.dropped)
			}
			if !in.Holding(tt.wantHeld) {
				t.Errorf("%v not held", tt.wantHeld)
			}
		})
	}
}

func TestModelPerpendicularPressKeepsDirection(t *testing.T) {
	m, g, clock := newTestModel()

	m = send(m, runes("d"))
	clock.advance(50 * time.Millisecond)
	m = send(m, runes("w"))
	clock.advance(16 * time.Millisecond)
	send(m, TickMsg{})

	in := g.last()
	if !in.Holding(core.ActionRight) || !in.Holding(core.ActionUp) {
		t.Errorf("held = %v, want Right and Up", in.Held)
	}
}

func TestModelActionsAreEdgeTriggered(t *testing.T) {
	m, g, clock := newTestModel()

	m = send(m, runes("e"))
	m = send(m, TickMsg{})
	if !g.last().Has(core.ActionPickUp) {
		t.Fatal("PickUp missing on the press tick")
	}

	// Auto-repeat while the key is down.
	clock.advance(30 * time.Millisecond)
	m = send(m, runes("e"))
	m = send(m, TickMsg{})
	if g.last().Has(core.ActionPickUp) {
		t.Error("auto-repeat triggered PickUp again")
	}

	// A deliberate second tap.
	clock.advance(300 * time.Millisecond)
	m = send(m, runes("e"))
	send(m, TickMsg{})
	if !g.last().Has(core.ActionPickUp) {
		t.Error("second tap ignored")
	}
}

func TestModelHelpFreezesGame(t *testing.T) {
	m, g, _ := newTestModel()

	m = send(m, runes("?"))
	m = send(m, TickMsg{})
	if len(g.frames) != 0 {
		t.Errorf("game stepped %d times while help shown", len(g.frames))
	}
	if !strings.Contains(m.View(), "pick up") {
		t.Error("help screen missing bindings")
	}

	m = send(m, runes("?"))
	send(m, TickMsg{})
	if len(g.frames) != 1 {
		t.Errorf("game stepped %d times after help closed, want 1", len(g.frames))
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel()

	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command is not tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestModelResizeResetsGame(t *testing.T) {
	m, g, _ := newTestModel()

	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if g.resets != 0 {
		t.Errorf("same size caused %d resets", g.resets)
	}
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-footerHeight {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 30-footerHeight)
	}
}

func TestModelResizeAfterRoundOver(t *testing.T) {
	t.Run("relayout", func(t *testing.T) {
		g := &layoutGame{}
		m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, Options{})
		g.state.GameOver = true
		m = send(m, TickMsg{})

		send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

		if g.resets != 0 {
			t.Errorf("finished round was reset %d times", g.resets)
		}
		if len(g.relayouts) != 1 {
			t.Fatalf("relayouts = %d, want 1", len(g.relayouts))
		}
		if got := g.relayouts[0]; got.ScreenW != 100 || got.ScreenH != 30-footerHeight {
			t.Errorf("relayout size = %dx%d, want 100x%d", got.ScreenW, got.ScreenH, 30-footerHeight)
		}
	})

	t.Run("no relayout support", func(t *testing.T) {
		m, g, _ := newTestModel()
		g.state.GameOver = true
		m = send(m, TickMsg{})

		m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

		if g.resets != 0 {
			t.Errorf("finished round was reset %d times", g.resets)
		}
		if m.screen.Width() != 100 {
			t.Errorf("screen width = %d, want 100", m.screen.Width())
		}
	})
}

func TestViewShowsGameAndFooter(t *testing.T) {
	m, _, _ := newTestModel()

	view := m.View()
	if !strings.Contains(view, "fake") {
		t.Error("game output missing")
	}
	if !strings.Contains(view, "swap cook") {
		t.Error("help footer missing")
	}
}

func TestKeysTable(t *testing.T) {
	out := KeysTable(DefaultKeyMap())
	for _, want := range []string{"Keys", "pick up", "space", "tab"} {
		if !strings.Contains(out, want) {
			t.Errorf("KeysTable() missing %q", want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "hot", core.ColorRed)
	s.DrawText(4, 1, "pan")

	out := RenderScreen(s)
	if !strings.Contains(out, "hot") || !strings.Contains(out, "pan") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("RenderScreen() has %d newlines, want 1", n)
	}
}
