package kitchen

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kitchen/internal/config"
	"github.com/vovakirdan/tui-kitchen/internal/cook"
	"github.com/vovakirdan/tui-kitchen/internal/core"
	"github.com/vovakirdan/tui-kitchen/internal/physics"
	"github.com/vovakirdan/tui-kitchen/internal/registry"
	"github.com/vovakirdan/tui-kitchen/internal/station"
)

// Round states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover" // round timer ran out
)

// Mode selects how many cooks a round has.
type Mode int

const (
	ModeCoop Mode = iota // one cook per spawn, Swap switches between them
	ModeSolo             // only the first spawn gets a cook
)

// configPath stores the custom config path set via CLI
var configPath string

// layoutID stores the layout selected via CLI
var layoutID string

// logger receives swap and interaction events
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLayout selects the layout by ID. Empty selects the first configured
// layout.
func SetLayout(id string) {
	layoutID = id
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	logger = l
}

// Load reads the configuration and parses the requested layout.
func Load(customPath, id string) (config.KitchenConfig, *Layout, error) {
	cfg, err := config.LoadKitchen(customPath)
	if err != nil {
		return cfg, nil, err
	}
	lc, ok := cfg.Layout(id)
	if !ok {
		return cfg, nil, fmt.Errorf("kitchen: unknown layout %q", id)
	}
	layout, err := ParseLayoutConfig(lc)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, layout, nil
}

// Game implements the kitchen game logic.
type Game struct {
	mode Mode

	// preset bypasses config loading when set
	preset       *config.KitchenConfig
	presetLayout string

	// Kitchen
	cfg      config.KitchenConfig
	layout   *Layout
	world    *physics.World
	cooks    []*cook.Cook
	stations []station.Station
	hatches  []*station.Serving
	active   int

	// Round state
	state     string
	tick      int
	ticksLeft int // negative when untimed

	runtime core.RuntimeConfig
	log     *log.Logger

	// Layout (computed from screen size)
	originX, originY int
	minScreenW       int
	minScreenH       int
	screenTooSmall   bool
}

// New creates a co-op kitchen game.
func New() *Game {
	return &Game{mode: ModeCoop}
}

// NewSolo creates a single-cook kitchen game.
func NewSolo() *Game {
	return &Game{mode: ModeSolo}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(mode Mode, cfg config.KitchenConfig, layout string) *Game {
	return &Game{mode: mode, preset: &cfg, presetLayout: layout}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeSolo {
		return "kitchen_solo"
	}
	return "kitchen"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeSolo {
		return "Kitchen (Solo)"
	}
	return "Kitchen (Co-op)"
}

// Reset builds a fresh kitchen and starts a new round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger
	if g.log == nil {
		g.log = log.New(io.Discard)
	}

	g.cfg, g.layout = g.load()

	g.buildWorld()

	g.active = 0
	g.state = StatePlaying
	g.tick = 0
	g.ticksLeft = -1
	if g.cfg.Round.Seconds > 0 {
		g.ticksLeft = g.cfg.Round.Seconds * g.tickRate()
	}

	g.calculateLayout()

	g.log.Info("round started", "layout", g.layout.ID, "cooks", len(g.cooks), "stations", len(g.stations))
}

// load returns the configuration and layout for the next round, falling back
// to the built-in kitchen when either cannot be used.
func (g *Game) load() (config.KitchenConfig, *Layout) {
	var (
		cfg    config.KitchenConfig
		layout *Layout
		err    error
	)
	if g.preset != nil {
		cfg = *g.preset
		if err = cfg.Validate(); err == nil {
			lc, ok := cfg.Layout(g.presetLayout)
			if !ok {
				err = fmt.Errorf("kitchen: unknown layout %q", g.presetLayout)
			} else {
				layout, err = ParseLayoutConfig(lc)
			}
		}
	} else {
		cfg, layout, err = Load(configPath, layoutID)
	}
	if err == nil {
		return cfg, layout
	}

	g.log.Error("falling back to built-in kitchen", "error", err)
	cfg = config.DefaultKitchenConfig()
	lc, _ := cfg.Layout("")
	layout, err = ParseLayoutConfig(lc)
	if err != nil {
		panic(fmt.Sprintf("kitchen: built-in layout: %v", err))
	}
	return cfg, layout
}

// buildWorld creates the physics world, stations and cooks for the layout.
func (g *Game) buildWorld() {
	l := g.layout
	g.world = physics.NewWorld(l.Width, l.Height)

	for _, r := range l.Walls {
		g.world.AddSolid(core.Box{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)})
	}

	g.stations = g.stations[:0]
	g.hatches = g.hatches[:0]
	for _, f := range l.Fixtures {
		s := g.newStation(f)
		g.stations = append(g.stations, s)
		g.world.AddInteractable(s)
	}

	spawns := l.Spawns
	if g.mode == ModeSolo {
		spawns = spawns[:1]
	}
	cc := g.cookConfig()
	g.cooks = g.cooks[:0]
	for _, p := range spawns {
		body := g.world.NewBody(p.X, p.Y, cc.Width, cc.Height)
		g.cooks = append(g.cooks, cook.New(body, cc))
	}
}

func (g *Game) newStation(f Fixture) station.Station {
	box := station.TileBox(f.X, f.Y)
	switch f.Kind {
	case station.KindPantry:
		return station.NewPantry(box, f.Item)
	case station.KindBin:
		return station.NewBin(box)
	case station.KindChoppingBoard:
		return station.NewChoppingBoard(box, g.cfg.Stations.ChopUses)
	case station.KindServing:
		s := station.NewServing(box)
		g.hatches = append(g.hatches, s)
		return s
	default:
		return station.NewCounter(box, g.cfg.Stations.CounterLimit)
	}
}

func (g *Game) cookConfig() cook.Config {
	c := g.cfg.Cook
	return cook.Config{
		Speed:     c.Speed,
		Width:     c.Width,
		Height:    c.Height,
		ProbeSize: c.ProbeSize,
		Reach:     c.Reach,
		MaxStack:  c.MaxStack,
	}
}

func (g *Game) tickRate() int {
	if g.runtime.TickRate <= 0 {
		return 60
	}
	return g.runtime.TickRate
}

// Relayout adapts the kitchen to a new screen size while keeping the round,
// including a finished one, as it is.
func (g *Game) Relayout(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	g.calculateLayout()
}

// calculateLayout centers the kitchen on screen below the HUD.
func (g *Game) calculateLayout() {
	mapW := g.layout.Width * cellsPerTile
	mapH := g.layout.Height

	g.minScreenW = core.Max(mapW, 30)
	g.minScreenH = mapH + hudRows + 1
	g.screenTooSmall = g.runtime.ScreenW < g.minScreenW || g.runtime.ScreenH < g.minScreenH

	g.originX = (g.runtime.ScreenW - mapW) / 2
	g.originY = hudRows + (g.runtime.ScreenH-hudRows-1-mapH)/2
}

// Step advances the kitchen by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if in.Has(core.ActionSwap) {
		g.swap()
	}

	ctrl := cook.ControlsFromFrame(in)
	for i, c := range g.cooks {
		if i == g.active {
			c.Control(ctrl)
		} else {
			c.Control(cook.Controls{})
		}
	}

	g.world.Step(g.runtime.DeltaTime())

	for _, c := range g.cooks {
		c.Update()
	}

	if ctrl.Action.IsInteraction() {
		g.interact(ctrl.Action)
	}

	if g.ticksLeft > 0 {
		g.ticksLeft--
		if g.ticksLeft == 0 {
			g.state = StateGameOver
			g.log.Info("round over", "score", g.score(), "served", g.served())
		}
	}

	return core.StepResult{State: g.State()}
}

// swap hands control to the next cook.
func (g *Game) swap() {
	if len(g.cooks) < 2 {
		return
	}
	from := g.active
	g.active = (g.active + 1) % len(g.cooks)
	g.log.Debug("cook swap", "from", from+1, "to", g.active+1, "tick", g.tick)
}

// interact dispatches an action from the controlled cook.
func (g *Game) interact(action core.Action) {
	c := g.cooks[g.active]
	target, ok := c.Interact(g.world, action)
	if !ok {
		g.log.Debug("interaction missed", "cook", g.active+1, "action", action, "facing", c.Facing())
		return
	}
	kind := "unknown"
	if s, isStation := target.(station.Station); isStation {
		kind = s.Kind().String()
	}
	g.log.Debug("interaction", "cook", g.active+1, "action", action, "station", kind, "holding", c.Stack().Size())
}

func (g *Game) score() int {
	total := 0
	for _, h := range g.hatches {
		total += h.Score()
	}
	return total
}

func (g *Game) served() int {
	total := 0
	for _, h := range g.hatches {
		total += h.Served()
	}
	return total
}

// Cooks returns the cooks in spawn order.
func (g *Game) Cooks() []*cook.Cook {
	return g.cooks
}

// Active returns the index of the controlled cook.
func (g *Game) Active() int {
	return g.active
}

// Layout returns the layout of the current round.
func (g *Game) Layout() *Layout {
	return g.layout
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("kitchen", func() registry.Game {
		return New()
	})
	registry.Register("kitchen_solo", func() registry.Game {
		return NewSolo()
	})
}
