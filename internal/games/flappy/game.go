package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/neonflap/internal/core"
)

// Run bookkeeping constants.
const (
	StartingLives = 3

	// AckGraceTicks is how long the game-over screen ignores Activate, so a
	// player still hammering the flap key does not dismiss it unseen.
	AckGraceTicks = 30
)

// Game implements the Neon Flap run: a Start -> Playing -> GameOver state
// machine driving the actor, the obstacle stream and the starfield.
type Game struct {
	cfg core.RuntimeConfig
	rng *rand.Rand

	actor  *Actor
	stream *ObstacleStream
	stars  *Starfield

	phase      core.Phase
	cause      core.Cause
	score      int
	lives      int
	tickCount  int // Playing ticks, gates spawning
	overTicks  int // Ticks spent in GameOver
	delayTicks int
	finished   bool

	events []core.Event
}

// New creates a new game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Neon Flap"
}

// Reset initializes a fresh run waiting on the start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	def := core.DefaultConfig()
	if cfg.ScreenW <= 0 {
		cfg.ScreenW = def.ScreenW
	}
	if cfg.ScreenH <= 0 {
		cfg.ScreenH = def.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.Stars < 0 {
		cfg.Stars = 0
	}
	g.cfg = cfg

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- game randomness, not security

	g.actor = NewActor(cfg.ScreenH)
	g.stream = NewObstacleStream(g.rng, cfg.ScreenW, cfg.ScreenH)
	g.stars = NewStarfield(g.rng, cfg.Stars, cfg.ScreenW, cfg.ScreenH)

	g.phase = core.PhaseStart
	g.cause = core.CauseNone
	g.score = 0
	g.lives = StartingLives
	g.tickCount = 0
	g.overTicks = 0
	g.delayTicks = cfg.DelayTicks()
	g.finished = false
	g.events = nil
}

// Config returns the runtime configuration the run was reset with.
func (g *Game) Config() core.RuntimeConfig {
	return g.cfg
}

// Step advances the run by one tick, consuming every action in the frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = make([]core.Event, 0, 4)

	switch g.phase {
	case core.PhaseStart:
		g.stepStart(in)
	case core.PhasePlaying:
		g.stepPlaying(in)
	case core.PhaseGameOver:
		g.stepGameOver(in)
	}

	return core.StepResult{
		State:  g.State(),
		Events: g.events,
	}
}

// stepStart waits for Activate. The activating press does not flap.
func (g *Game) stepStart(in core.InputFrame) {
	for _, a := range in.Actions {
		switch a {
		case core.ActionQuit:
			g.endRun(core.CauseQuit)
			g.finished = true
			return
		case core.ActionActivate:
			if g.phase == core.PhaseStart {
				g.phase = core.PhasePlaying
				g.emit(core.EventStart, core.CauseNone)
			}
		}
	}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	flapped := false
	for _, a := range in.Actions {
		switch a {
		case core.ActionQuit:
			// Hard stop: nothing left to acknowledge.
			g.endRun(core.CauseQuit)
			g.finished = true
			return
		case core.ActionActivate:
			g.actor.Flap()
			flapped = true
		}
	}
	if flapped {
		g.emit(core.EventFlap, core.CauseNone)
	}

	g.tickCount++

	clamped := g.actor.Update()
	g.stars.Update()

	res := g.stream.Update(g.tickCount, g.actor)
	if res.Spawned {
		g.emit(core.EventSpawn, core.CauseNone)
	}
	for range res.Collisions {
		g.loseLife(core.CauseCollision)
	}

	if clamped {
		g.loseLife(core.CauseBoundary)
		g.actor.Reset()
	}

	for range res.Passed {
		g.score++
		g.emit(core.EventScore, core.CauseNone)
	}

	if g.lives == 0 {
		g.endRun(g.cause)
	}
}

func (g *Game) stepGameOver(in core.InputFrame) {
	g.overTicks++

	for _, a := range in.Actions {
		switch a {
		case core.ActionQuit:
			g.finished = true
		case core.ActionActivate:
			if g.overTicks > AckGraceTicks {
				g.finished = true
			}
		}
	}

	if g.overTicks >= g.delayTicks {
		g.finished = true
	}
}

// loseLife takes one life, never going below zero.
func (g *Game) loseLife(cause core.Cause) {
	if g.lives == 0 {
		return
	}
	g.lives--
	g.cause = cause
	g.emit(core.EventLifeLost, cause)
}

// endRun moves to the terminal GameOver phase.
func (g *Game) endRun(cause core.Cause) {
	g.phase = core.PhaseGameOver
	g.cause = cause
	g.emit(core.EventGameOver, cause)
}

func (g *Game) emit(kind core.EventKind, cause core.Cause) {
	g.events = append(g.events, core.Event{
		Kind:  kind,
		Tick:  g.tickCount,
		Cause: cause,
		Score: g.score,
		Lives: g.lives,
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase,
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.phase == core.PhaseGameOver,
		Finished: g.finished,
	}
}

// Cause returns why the last life was lost, or why the run ended.
func (g *Game) Cause() core.Cause {
	return g.cause
}
