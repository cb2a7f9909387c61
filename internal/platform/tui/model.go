package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Options configures a Model beyond the runtime config.
type Options struct {
	// Logger receives game events at debug level. Nil discards them.
	Logger *log.Logger

	// Renderer is the lipgloss renderer for this terminal. Nil means the
	// default renderer (local play).
	Renderer *lipgloss.Renderer

	// ShowHelp reserves the bottom line for the controls hint.
	ShowHelp bool
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	palette    *Palette
	logger     *log.Logger
	showHelp   bool
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	palette := NewPalette(opts.Renderer)

	m := Model{
		game:       game,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       newHelp(palette.Renderer()),
		palette:    palette,
		logger:     logger,
		showHelp:   opts.ShowHelp,
		inputFrame: core.NewInputFrame(),
	}
	w, h := m.gameArea(cfg.ScreenW, cfg.ScreenH)
	m.screen = core.NewScreen(w, h)
	m.config.ScreenW, m.config.ScreenH = w, h
	return m
}

// newHelp builds a help view whose styles come from the session renderer.
func newHelp(r *lipgloss.Renderer) help.Model {
	h := help.New()
	keyStyle := r.NewStyle().Foreground(lipgloss.Color("250"))
	descStyle := r.NewStyle().Foreground(lipgloss.Color("242"))
	sepStyle := r.NewStyle().Foreground(lipgloss.Color("238"))
	h.Styles = help.Styles{
		Ellipsis:       sepStyle,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
	return h
}

// gameArea returns the screen size left for the game after the help line.
func (m Model) gameArea(w, h int) (int, int) {
	if m.showHelp && h > 1 {
		h--
	}
	return w, h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)

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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events. The game keeps its state
// and only recomputes its layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := m.gameArea(msg.Width, msg.Height)
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)
	m.help.Width = msg.Width
	m.game.Resize(w, h)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.keys.SetGameOver(false)
		m.inputFrame.Clear()
		m.logger.Debug("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	if result.Locked {
		m.logger.Debug("piece locked", "cleared", result.Cleared)
	}
	if result.Cleared > 0 {
		m.logger.Debug("rows cleared", "rows", result.Cleared)
	}
	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("game over", "game", m.game.ID())
	}
	m.gameState = result.State
	m.keys.SetGameOver(m.gameState.GameOver)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := m.palette.RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// GameState returns the last state reported by the game.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
