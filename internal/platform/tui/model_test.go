package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neonflap/internal/core"
	"github.com/vovakirdan/neonflap/internal/registry"
)

func testOptions() registry.Options {
	rt := core.DefaultConfig()
	rt.Seed = 1
	return registry.Options{Runtime: rt}.Normalize()
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(m Model) (Model, tea.Cmd) {
	next, cmd := m.Update(TickMsg{})
	return next.(Model), cmd
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestModelStartsOnTitleScreen(t *testing.T) {
	m := NewModel(testOptions()).Resize(60, 30)

	view := m.View()
	if !strings.Contains(view, "NEON FLAP") {
		t.Errorf("view missing title:\n%s", view)
	}
	if m.frame.screen.Width() != 60 || m.frame.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 60x29 (one row for help)", m.frame.screen.Width(), m.frame.screen.Height())
	}
	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}
}

func TestModelKeyQueuesUntilTick(t *testing.T) {
	m := NewModel(testOptions())

	m = press(m, spaceKey)
	if m.State().Phase != core.PhaseStart {
		t.Fatal("key press must not step the game before a tick")
	}
	if m.input.Len() != 1 {
		t.Fatalf("queued actions = %d, want 1", m.input.Len())
	}

	m, cmd := tick(m)
	if m.State().Phase != core.PhasePlaying {
		t.Errorf("phase = %v after tick, want playing", m.State().Phase)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if strings.Contains(m.View(), "Press SPACE") {
		t.Error("start prompt still shown while playing")
	}
}

func TestModelQuitEndsProgram(t *testing.T) {
	m := NewModel(testOptions())
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	m, cmd := tick(m)
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("finished run should return tea.Quit")
	}
	if !m.State().Finished {
		t.Error("run should be finished")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelIgnoresUnboundKeys(t *testing.T) {
	m := NewModel(testOptions())
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if m.input.Len() != 0 {
		t.Errorf("unbound key queued %d actions", m.input.Len())
	}
}

func TestFrontendRegistered(t *testing.T) {
	f, err := registry.Create("tui")
	if err != nil {
		t.Fatalf("Create(tui) error = %v", err)
	}
	if f.Title() == "" {
		t.Error("empty title")
	}
}
