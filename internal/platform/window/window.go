// Package window is a desktop frontend built on ebiten. Ebiten's update loop
// is the tick clock: one Update is one simulation tick.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/neonflap/internal/core"
	"github.com/vovakirdan/neonflap/internal/games/flappy"
	"github.com/vovakirdan/neonflap/internal/registry"
)

func init() {
	registry.Register("window", func() registry.Frontend { return Frontend{} })
}

var (
	activateKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	quitKeys     = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
)

// Frontend opens a desktop window sized to the world.
type Frontend struct{}

// ID returns the registry identifier.
func (Frontend) ID() string { return "window" }

// Title returns the display name.
func (Frontend) Title() string { return "Desktop window (ebiten)" }

// Run opens the window and plays one run. It must be called from the main goroutine.
func (Frontend) Run(ctx context.Context, opts registry.Options) (core.GameState, error) {
	opts = opts.Normalize()

	game := flappy.New()
	game.Reset(opts.Runtime)

	w := &windowGame{
		ctx:     ctx,
		palette: opts.Palette,
		trail:   flappy.NewScreenRenderer(opts.Palette),
		snap:    game.Snapshot(),
	}
	w.loop = flappy.NewLoop(game, w, w, opts.LoopOptions()...)

	ebiten.SetWindowSize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(opts.Runtime.TickRate)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return game.State(), fmt.Errorf("window: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return game.State(), err
	}
	return game.State(), nil
}

// windowGame adapts a flappy.Loop to ebiten.Game. It is also the loop's
// input source and renderer.
type windowGame struct {
	ctx     context.Context
	loop    *flappy.Loop
	palette core.Palette
	trail   *flappy.ScreenRenderer
	snap    flappy.Snapshot
}

// Poll implements flappy.InputSource.
func (w *windowGame) Poll() core.InputFrame {
	var in core.InputFrame
	for _, k := range quitKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Set(core.ActionQuit)
		}
	}
	for _, k := range activateKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Set(core.ActionActivate)
			break
		}
	}
	return in
}

// Render implements flappy.Renderer. Drawing happens in Draw.
func (w *windowGame) Render(snap flappy.Snapshot) {
	w.snap = snap
	w.trail.Observe(snap)
}

// Update runs one tick.
func (w *windowGame) Update() error {
	if w.ctx.Err() != nil || ebiten.IsWindowBeingClosed() {
		w.loop.Quit()
		return ebiten.Termination
	}
	if !w.loop.Tick() {
		return ebiten.Termination
	}
	return nil
}

// Layout keeps the world size fixed; ebiten scales it to the window.
func (w *windowGame) Layout(_, _ int) (int, int) {
	return w.snap.ScreenW, w.snap.ScreenH
}

func rgba(c core.Color, alpha uint8) color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

// Draw renders the latest snapshot.
func (w *windowGame) Draw(screen *ebiten.Image) {
	snap := w.snap
	p := w.palette
	screen.Fill(rgba(p.Background, 255))

	switch snap.Phase {
	case core.PhaseStart:
		w.drawStars(screen)
		drawCentered(screen, snap.ScreenW, snap.ScreenH/3, flappy.TitleText)
		drawCentered(screen, snap.ScreenW, snap.ScreenH/2, flappy.PromptText)
		return
	case core.PhaseGameOver:
		drawCentered(screen, snap.ScreenW, snap.ScreenH/3, "GAME OVER")
		drawCentered(screen, snap.ScreenW, snap.ScreenH/2, fmt.Sprintf("Final Score: %d", snap.Score))
		return
	}

	w.drawStars(screen)

	for _, o := range snap.Obstacles {
		for _, r := range []core.Rect{o.Top, o.Bottom} {
			// Glow layers
			for i := 3; i >= 1; i-- {
				pad := float32(i * 4)
				vector.DrawFilledRect(screen, float32(r.X)-pad, float32(r.Y)-pad,
					float32(r.W)+2*pad, float32(r.H)+2*pad, rgba(p.Obstacle, uint8(20*(4-i))), false)
			}
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(p.Obstacle, 255), false)
		}
	}

	trail := w.trail.Trail()
	for i, tp := range trail {
		alpha := uint8(255 * (i + 1) / (len(trail) + 1))
		vector.DrawFilledCircle(screen, float32(tp.X), float32(tp.Y), float32(snap.Actor.Radius+5), rgba(p.Trail, alpha/3), true)
	}

	a := snap.Actor
	vector.DrawFilledCircle(screen, float32(a.X), float32(a.Y), float32(a.Radius), rgba(p.Actor, 255), true)
	vector.DrawFilledCircle(screen, float32(a.X+flappy.EyeOffsetX), float32(a.Y+flappy.EyeOffsetY), 5, rgba(p.Eye, 255), true)

	hearts := ""
	for range snap.Lives {
		hearts += "<3 "
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, "Lives: "+hearts, 10, 30)
}

func (w *windowGame) drawStars(screen *ebiten.Image) {
	for _, st := range w.snap.Stars {
		vector.DrawFilledCircle(screen, float32(st.X), float32(st.Y), float32(st.Size), rgba(w.palette.Star, 255), true)
	}
}

// drawCentered prints text centered on x using the debug font (6x16 per glyph).
func drawCentered(screen *ebiten.Image, width, y int, text string) {
	const glyphW = 6
	ebitenutil.DebugPrintAt(screen, text, (width-len(text)*glyphW)/2, y)
}
