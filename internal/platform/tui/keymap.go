package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/box-jump/internal/core"
)

// jumpHoldTimeout is how long after the last jump key event the jump counts
// as released. Terminals report key repeats but never key releases.
const jumpHoldTimeout = 150 * time.Millisecond

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Jump       key.Binding
	Pause      key.Binding
	Resume     key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump},
		{k.Pause, k.Resume},
		{k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/w", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Resume: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "resume"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Jump):
		return core.ActionJump, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Resume):
		return core.ActionResume, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// jumpTracker turns a stream of jump key presses and repeats into held and
// released states.
type jumpTracker struct {
	last time.Time // Latest jump key event, zero when released
}

// Press records a jump key event at t.
func (j *jumpTracker) Press(t time.Time) {
	j.last = t
}

// Held reports whether the jump key is considered down.
func (j *jumpTracker) Held() bool {
	return !j.last.IsZero()
}

// Expired reports whether the hold timed out at t, and if so marks the jump
// as released.
func (j *jumpTracker) Expired(t time.Time) bool {
	if j.last.IsZero() || t.Sub(j.last) < jumpHoldTimeout {
		return false
	}
	j.last = time.Time{}
	return true
}
