package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neonflap/internal/core"
	"github.com/vovakirdan/neonflap/internal/games/flappy"
	"github.com/vovakirdan/neonflap/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game inside a Bubble Tea program.
type Frontend struct{}

// ID returns the registry identifier.
func (Frontend) ID() string { return "tui" }

// Title returns the display name.
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run plays one run in the alternate screen until it finishes or ctx is cancelled.
func (Frontend) Run(ctx context.Context, opts registry.Options) (core.GameState, error) {
	opts = opts.Normalize()
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		model.loop.Quit()
		return model.State(), ctxErr
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return model.State(), fmt.Errorf("tui: %w", err)
	}
	return model.State(), nil
}

// frame holds the latest drawn screen. It is shared by every copy of the
// value-typed Model, so the loop can render into it.
type frame struct {
	renderer *flappy.ScreenRenderer
	screen   *core.Screen
	snap     flappy.Snapshot
}

// Render implements flappy.Renderer.
func (f *frame) Render(snap flappy.Snapshot) {
	f.snap = snap
	f.renderer.Draw(snap, f.screen)
}

// Model is the Bubble Tea model for one run.
type Model struct {
	loop     *flappy.Loop
	input    *core.InputQueue
	frame    *frame
	palette  core.Palette
	styles   *lipgloss.Renderer
	keys     KeyMap
	help     help.Model
	interval time.Duration
	quitting bool
}

// NewModel creates a model around a freshly reset game.
// The screen starts at 80x24 until the first WindowSizeMsg.
func NewModel(opts registry.Options) Model {
	opts = opts.Normalize()

	game := flappy.New()
	game.Reset(opts.Runtime)

	fr := &frame{
		renderer: flappy.NewScreenRenderer(opts.Palette),
		screen:   core.NewScreen(80, 23),
	}
	input := &core.InputQueue{}

	m := Model{
		loop:     flappy.NewLoop(game, input, fr, opts.LoopOptions()...),
		input:    input,
		frame:    fr,
		palette:  opts.Palette,
		styles:   lipgloss.DefaultRenderer(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		interval: opts.Runtime.TickInterval(),
	}
	fr.Render(game.Snapshot())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
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

// handleKey queues the mapped action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	m.input.Push(m.keys.MapKey(msg))
	return m, nil
}

// handleResize keeps one row free for the help line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	m.frame.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.frame.Render(m.frame.snap)
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.loop.Tick() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.interval)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".neonflap", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("neonflap_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.frame.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreenWith(m.styles, m.frame.screen, m.palette.Background) + "\n" + m.help.View(m.keys)
}

// WithRenderer returns a copy of the model drawing through r.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	if r != nil {
		m.styles = r
	}
	return m
}

// Resize sets the terminal size before the first WindowSizeMsg arrives.
func (m Model) Resize(width, height int) Model {
	next, _ := m.handleResize(tea.WindowSizeMsg{Width: width, Height: height})
	return next.(Model)
}

// State returns the game state of the run.
func (m Model) State() core.GameState {
	return m.loop.Game().State()
}

// Loop returns the loop driving the run.
func (m Model) Loop() *flappy.Loop {
	return m.loop
}
