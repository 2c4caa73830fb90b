package flappy

import "github.com/vovakirdan/neonflap/internal/core"

// ActorView is the read-only actor state handed to renderers.
type ActorView struct {
	X      float64
	Y      float64
	Vel    float64
	Radius float64
}

// ObstacleView is the read-only geometry of one obstacle.
type ObstacleView struct {
	X        float64
	GapStart int
	GapEnd   int
	Top      core.Rect
	Bottom   core.Rect
	Passed   bool
}

// Snapshot is the per-tick view of a run given to a Renderer.
// Slices are copies; renderers may keep them.
type Snapshot struct {
	Phase    core.Phase
	Cause    core.Cause
	Tick     int
	Score    int
	Lives    int
	Finished bool

	ScreenW int
	ScreenH int

	Actor     ActorView
	Obstacles []ObstacleView
	Stars     []Star
}

// Snapshot returns a copy of the current run state.
func (g *Game) Snapshot() Snapshot {
	h := float64(g.cfg.ScreenH)

	obstacles := make([]ObstacleView, 0, g.stream.Len())
	for _, o := range g.stream.Obstacles() {
		obstacles = append(obstacles, ObstacleView{
			X:        o.X,
			GapStart: o.GapStart,
			GapEnd:   o.GapEnd(),
			Top:      o.TopRect(),
			Bottom:   o.BottomRect(h),
			Passed:   o.Passed,
		})
	}

	stars := make([]Star, len(g.stars.Stars()))
	copy(stars, g.stars.Stars())

	return Snapshot{
		Phase:    g.phase,
		Cause:    g.cause,
		Tick:     g.tickCount,
		Score:    g.score,
		Lives:    g.lives,
		Finished: g.finished,

		ScreenW: g.cfg.ScreenW,
		ScreenH: g.cfg.ScreenH,

		Actor: ActorView{
			X:      g.actor.X,
			Y:      g.actor.Y,
			Vel:    g.actor.Vel,
			Radius: g.actor.Radius,
		},
		Obstacles: obstacles,
		Stars:     stars,
	}
}
