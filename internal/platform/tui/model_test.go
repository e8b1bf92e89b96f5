package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/box-jump/internal/config"
	"github.com/vovakirdan/box-jump/internal/core"
	"github.com/vovakirdan/box-jump/internal/games/boxjump"
)

func newTestModel() Model {
	cfg := config.DefaultBoxJumpConfig()
	cfg.Spawn.Weights = config.SpawnWeights{None: 1}
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewModel(boxjump.New(cfg), rt, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelJumpAndRelease(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, runeKey('w'))
	now := time.Now()
	m, cmd := update(t, m, TickMsg(now))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.game.Frame().Phase != boxjump.PhaseJumping {
		t.Fatal("jump key should start a jump on the next tick")
	}
	if !m.jump.Held() {
		t.Error("jump should be held right after the key")
	}
	if !m.inputFrame.Empty() {
		t.Error("input should be cleared after a tick")
	}

	m, _ = update(t, m, TickMsg(now.Add(time.Second)))
	if m.jump.Held() {
		t.Error("jump should be released once no repeat arrives")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.quitting {
		t.Error("model should be quitting")
	}
	if m.game.State().Running {
		t.Error("game should stop running")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, TickMsg(time.Now()))

	view := m.View()
	if !strings.Contains(view, "Score") {
		t.Error("view should show the score")
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should show the help footer")
	}
	if got := strings.Count(view, "\n"); got != 23 {
		t.Errorf("view has %d line breaks, expected 23", got)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	scr := core.NewScreen(5, 2)
	scr.DrawText(0, 0, "hi")

	out := RenderScreen(scr)
	if !strings.Contains(out, "hi") {
		t.Errorf("RenderScreen() = %q, expected it to contain the text", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should join rows with newlines, got %q", out)
	}
}
