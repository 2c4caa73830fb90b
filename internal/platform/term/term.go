// Package term is a direct terminal frontend built on tcell. A reader
// goroutine feeds terminal events into a channel; the tick loop owns the game.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/neonflap/internal/core"
	"github.com/vovakirdan/neonflap/internal/games/flappy"
	"github.com/vovakirdan/neonflap/internal/registry"
)

func init() {
	registry.Register("term", func() registry.Frontend { return Frontend{} })
}

// Frontend draws to the terminal through tcell.
type Frontend struct{}

// ID returns the registry identifier.
func (Frontend) ID() string { return "term" }

// Title returns the display name.
func (Frontend) Title() string { return "Terminal (tcell)" }

// Run initializes the terminal and plays one run on it.
func (Frontend) Run(ctx context.Context, opts registry.Options) (core.GameState, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return core.GameState{}, fmt.Errorf("term: new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return core.GameState{}, fmt.Errorf("term: init screen: %w", err)
	}
	defer s.Fini()
	s.HideCursor()
	s.Clear()

	return Play(ctx, s, opts)
}

// MapKey translates a tcell key event to a game action.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionActivate
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w', 'W':
			return core.ActionActivate
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// Play runs one game on an initialized screen until it finishes or ctx is
// cancelled. The caller owns the screen and must Fini it.
func Play(ctx context.Context, s tcell.Screen, opts registry.Options) (core.GameState, error) {
	opts = opts.Normalize()

	game := flappy.New()
	game.Reset(opts.Runtime)

	input := &core.InputQueue{}
	lp := flappy.NewLoop(game, input, NewRenderer(s, opts.Palette), opts.LoopOptions()...)

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(opts.Runtime.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			lp.Quit()
			return game.State(), ctx.Err()
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				input.Push(MapKey(e))
			}
		case <-ticker.C:
			if !lp.Tick() {
				return game.State(), nil
			}
		}
	}
}

// Renderer blits flappy snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	cells  *core.Screen
	draw   *flappy.ScreenRenderer
	bg     tcell.Color
	styles map[core.Color]tcell.Style
}

// NewRenderer creates a renderer for s using the palette's colors.
func NewRenderer(s tcell.Screen, p core.Palette) *Renderer {
	return &Renderer{
		screen: s,
		cells:  core.NewScreen(0, 0),
		draw:   flappy.NewScreenRenderer(p),
		bg:     toTcell(p.Background),
		styles: make(map[core.Color]tcell.Style),
	}
}

// toTcell converts a core color; the terminal default maps to ColorReset.
func toTcell(c core.Color) tcell.Color {
	if c.ANSI() < 0 {
		return tcell.ColorReset
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (r *Renderer) style(c core.Color) tcell.Style {
	st, ok := r.styles[c]
	if !ok {
		st = tcell.StyleDefault.Foreground(toTcell(c)).Background(r.bg)
		r.styles[c] = st
	}
	return st
}

// Render implements flappy.Renderer.
func (r *Renderer) Render(snap flappy.Snapshot) {
	w, h := r.screen.Size()
	r.cells.Resize(w, h)
	r.draw.Draw(snap, r.cells)

	for y := range h {
		for x := range w {
			cell := r.cells.GetCell(x, y)
			r.screen.SetContent(x, y, cell.Rune, nil, r.style(cell.Color))
		}
	}
	r.screen.Show()
}
