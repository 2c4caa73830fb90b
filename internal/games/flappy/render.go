package flappy

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neonflap/internal/core"
)

// Visual characters for cell rendering
const (
	WallChar   = '█'
	ActorChar  = '█'
	EyeChar    = '●'
	TrailChar  = '·'
	HeartChar  = '♥'
	TitleText  = "NEON FLAP"
	PromptText = "Press SPACE to Start"
)

// TrailLength is the number of past actor positions drawn behind it.
const TrailLength = 15

// Eye offset from the actor center, in world units.
const (
	EyeOffsetX = 7.0
	EyeOffsetY = -5.0
)

var starGlyphs = [...]rune{'.', '+', '*'}

// TrailPoint is a remembered actor center in world units.
type TrailPoint struct {
	X, Y float64
}

// ScreenRenderer draws snapshots into a cell buffer, scaling world units to
// the buffer size. It keeps the actor trail between frames, so one renderer
// belongs to one run.
type ScreenRenderer struct {
	palette  core.Palette
	trail    []TrailPoint
	lastTick int
}

// NewScreenRenderer creates a renderer using the given palette.
func NewScreenRenderer(p core.Palette) *ScreenRenderer {
	return &ScreenRenderer{
		palette:  p,
		trail:    make([]TrailPoint, 0, TrailLength),
		lastTick: -1,
	}
}

// Palette returns the renderer's palette.
func (r *ScreenRenderer) Palette() core.Palette {
	return r.palette
}

// Trail returns the remembered actor positions, oldest first.
func (r *ScreenRenderer) Trail() []TrailPoint {
	out := make([]TrailPoint, len(r.trail))
	copy(out, r.trail)
	return out
}

// Observe records the actor position for the trail. Draw calls it; frontends
// that draw on their own (the window) call it directly.
func (r *ScreenRenderer) Observe(snap Snapshot) {
	switch snap.Phase {
	case core.PhaseStart:
		r.trail = r.trail[:0]
		r.lastTick = -1
	case core.PhasePlaying:
		if snap.Tick == r.lastTick {
			return
		}
		r.lastTick = snap.Tick
		r.trail = append(r.trail, TrailPoint{snap.Actor.X, snap.Actor.Y})
		if len(r.trail) > TrailLength {
			r.trail = r.trail[len(r.trail)-TrailLength:]
		}
	}
}

// Draw renders the snapshot into scr.
func (r *ScreenRenderer) Draw(snap Snapshot, scr *core.Screen) {
	r.Observe(snap)
	scr.Clear()

	w, h := scr.Width(), scr.Height()
	if w == 0 || h == 0 || snap.ScreenW <= 0 || snap.ScreenH <= 0 {
		return
	}
	sx := float64(w) / float64(snap.ScreenW)
	sy := float64(h) / float64(snap.ScreenH)
	col := func(x float64) int { return int(x * sx) }
	row := func(y float64) int { return int(y * sy) }

	switch snap.Phase {
	case core.PhaseStart:
		r.drawStars(snap, scr, col, row)
		scr.DrawTextCentered(h/3, TitleText, r.palette.Title)
		scr.DrawTextCentered(h/2, PromptText, r.palette.Score)
		return
	case core.PhaseGameOver:
		scr.DrawTextCentered(h/3, "GAME OVER", r.palette.Title)
		scr.DrawTextCentered(h/2, fmt.Sprintf("Final Score: %d", snap.Score), r.palette.Score)
		return
	}

	r.drawStars(snap, scr, col, row)

	for _, o := range snap.Obstacles {
		x0 := col(o.X)
		x1 := max(col(o.X+WallWidth), x0+1)
		scr.FillRect(x0, 0, x1, row(float64(o.GapStart)), WallChar, r.palette.Obstacle)
		scr.FillRect(x0, row(float64(o.GapEnd)), x1, h, WallChar, r.palette.Obstacle)
	}

	for _, p := range r.trail {
		scr.SetCell(col(p.X), row(p.Y), TrailChar, r.palette.Trail)
	}

	a := snap.Actor
	x0, y0 := col(a.X-a.Radius), row(a.Y-a.Radius)
	x1 := max(col(a.X+a.Radius), x0+1)
	y1 := max(row(a.Y+a.Radius), y0+1)
	scr.FillRect(x0, y0, x1, y1, ActorChar, r.palette.Actor)
	scr.SetCell(col(a.X+EyeOffsetX), row(a.Y+EyeOffsetY), EyeChar, r.palette.Eye)

	scr.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), r.palette.Score)
	scr.DrawText(1, 1, "Lives: "+strings.Repeat(string(HeartChar), snap.Lives), r.palette.Lives)
}

func (r *ScreenRenderer) drawStars(snap Snapshot, scr *core.Screen, col, row func(float64) int) {
	for _, st := range snap.Stars {
		glyph := starGlyphs[core.Clamp(st.Size, 1, len(starGlyphs))-1]
		scr.SetCell(col(st.X), row(st.Y), glyph, r.palette.Star)
	}
}
