package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kitchen/internal/core"
	"github.com/vovakirdan/tui-kitchen/internal/registry"
)

// footerHeight is the number of rows below the game for the help line.
const footerHeight = 1

var helpTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).MarginBottom(1)

// Options tunes the platform.
type Options struct {
	HoldInitial time.Duration // zero uses DefaultHoldInitial
	HoldRepeat  time.Duration // zero uses DefaultHoldRepeat
	Logger      *log.Logger   // nil discards
}

// Model is the Bubble Tea model for running the kitchen.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	mapper     *KeyMapper
	help       help.Model
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	showHelp   bool
	quitting   bool
	log        *log.Logger
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size; the game gets it minus the footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	width, height := cfg.ScreenW, cfg.ScreenH
	cfg.ScreenH = max(height-footerHeight, 1)

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		help:       h,
		hold:       NewHoldTracker(opts.HoldInitial, opts.HoldRepeat),
		inputFrame: core.NewInputFrame(),
		width:      width,
		height:     height,
		log:        logger,
		now:        time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.log.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Direction keys are only recorded as
// held; they reach the game when the next tick samples the tracker.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.hold.Reset()
		return m, nil
	}

	action, _ := m.mapper.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}

	fresh := m.hold.Press(action, m.now())
	switch {
	case IsDirection(action) && fresh:
		// Terminals only repeat the last key, so the opposite one cannot
		// still be down; drop it instead of waiting for its window.
		m.hold.Release(oppositeDirection(action))
	case !IsDirection(action) && fresh:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// relayouter is implemented by games that can adapt to a new screen size
// without restarting.
type relayouter interface {
	Relayout(cfg core.RuntimeConfig)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.width && msg.Height == m.height {
		return m, nil
	}
	m.width, m.height = msg.Width, msg.Height

	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-footerHeight, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	// A running round restarts at the new size; a finished one keeps its
	// result and is only re-centered.
	switch r, ok := m.game.(relayouter); {
	case !m.gameState.GameOver:
		m.game.Reset(m.config)
	case ok:
		r.Relayout(m.config)
	}
	m.log.Debug("resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The help screen freezes the game.
	if m.showHelp {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	for _, a := range m.hold.Held(m.now()) {
		if IsDirection(a) {
			m.inputFrame.Hold(a)
		}
	}

	result := m.game.Step(m.inputFrame)
	if result.State.GameOver && !m.gameState.GameOver {
		m.log.Info("round over", "game", m.game.ID(), "score", result.State.Score)
	}
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".kitchen", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		body := helpTitleStyle.Render("Keys") + "\n" + m.help.View(m.keys)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}

	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
