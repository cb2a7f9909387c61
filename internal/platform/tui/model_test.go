package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// fakeGame records what the platform asks of it.
type fakeGame struct {
	resets  int
	w, h    int
	frames  []core.InputFrame
	state   core.GameState
	results []core.StepResult
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
	g.state = core.GameState{}
}

func (g *fakeGame) Resize(w, h int) { g.w, g.h = w, h }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, n := range in.Actions {
		frame.Actions[a] = n
	}
	g.frames = append(g.frames, frame)
	if len(g.results) > 0 {
		r := g.results[0]
		g.results = g.results[1:]
		g.state = r.State
		return r
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "board")
}

func (g *fakeGame) State() core.GameState { return g.state }

func newTestModel(t *testing.T, game *fakeGame, showHelp bool) Model {
	t.Helper()
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{
		Renderer: newTestRenderer(termenv.Ascii),
		ShowHelp: showHelp,
	})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelInit(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, true)

	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}
	// One line is reserved for help.
	if game.w != 80 || game.h != 23 {
		t.Errorf("game size = %dx%d, want 80x23", game.w, game.h)
	}
	if m.screen.Height() != 23 {
		t.Errorf("screen height = %d, want 23", m.screen.Height())
	}
}

func TestModelKeysReachGame(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, false)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}

	if len(game.frames) != 1 {
		t.Fatalf("steps = %d, want 1", len(game.frames))
	}
	in := game.frames[0]
	if !in.Has(core.ActionLeft) || !in.Has(core.ActionRotate) {
		t.Errorf("frame missing actions: %+v", in)
	}

	// Input is cleared between ticks.
	_, _ = update(t, m, TickMsg{})
	if len(game.frames[1].Actions) != 0 {
		t.Errorf("second frame should be empty, got %+v", game.frames[1])
	}
}

func TestModelKeepsRepeatedPresses(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, false)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	_, _ = update(t, m, TickMsg{})

	if got := game.frames[0].Count(core.ActionLeft); got != 2 {
		t.Errorf("Count(Left) = %d, want 2", got)
	}
}

func TestModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		runeKey('q'),
		{Type: tea.KeyEscape},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(msg.String(), func(t *testing.T) {
			m := newTestModel(t, &fakeGame{}, false)
			m, cmd := update(t, m, msg)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("expected tea.QuitMsg")
			}
			if m.View() != "" {
				t.Error("view should be empty after quit")
			}
		})
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &fakeGame{
		results: []core.StepResult{{State: core.GameState{GameOver: true}}},
	}
	m := newTestModel(t, game, false)

	// r rotates while playing, so it must not reset.
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})
	if !m.GameState().GameOver {
		t.Fatal("expected game over")
	}
	if game.resets != 1 {
		t.Fatalf("resets = %d, want 1", game.resets)
	}

	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if m.GameState().GameOver {
		t.Error("game over should clear after restart")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, true)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.resets != 1 {
		t.Errorf("resize reset the game (resets = %d)", game.resets)
	}
	if game.w != 100 || game.h != 39 {
		t.Errorf("game size = %dx%d, want 100x39", game.w, game.h)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, true)

	view := m.View()
	if !strings.HasPrefix(view, "board") {
		t.Errorf("view should start with the board, got %q", view[:min(len(view), 20)])
	}
	if !strings.Contains(view, "rotate") {
		t.Error("help line missing from view")
	}

	m = newTestModel(t, &fakeGame{}, false)
	if strings.Contains(m.View(), "rotate") {
		t.Error("help shown while disabled")
	}
}

func TestModelLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	game := &fakeGame{
		results: []core.StepResult{
			{Locked: true, Cleared: 2},
			{State: core.GameState{GameOver: true}},
		},
	}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{
		Logger:   logger,
		Renderer: newTestRenderer(termenv.Ascii),
	})
	m.Init()

	m, _ = update(t, m, TickMsg{})
	_, _ = update(t, m, TickMsg{})

	out := buf.String()
	for _, want := range []string{"piece locked", "rows cleared", "game over"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
