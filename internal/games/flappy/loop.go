package flappy

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/neonflap/internal/core"
)

// InputSource delivers the actions pending since the previous tick.
type InputSource interface {
	Poll() core.InputFrame
}

// Renderer receives one snapshot per tick.
type Renderer interface {
	Render(Snapshot)
}

// EventSink consumes simulation events (audio cues, logging).
type EventSink interface {
	Handle(core.Event)
}

// EventSinkFunc adapts a function to an EventSink.
type EventSinkFunc func(core.Event)

// Handle calls f(ev).
func (f EventSinkFunc) Handle(ev core.Event) {
	f(ev)
}

// RendererFunc adapts a function to a Renderer.
type RendererFunc func(Snapshot)

// Render calls f(snap).
func (f RendererFunc) Render(snap Snapshot) {
	f(snap)
}

type noInput struct{}

func (noInput) Poll() core.InputFrame { return core.InputFrame{} }

// Loop wires a Game to its input source, renderer and event sinks.
// One Tick is poll -> step -> events -> render.
type Loop struct {
	game     *Game
	input    InputSource
	renderer Renderer
	sinks    []EventSink
	logger   *log.Logger
	runID    string
	last     core.StepResult
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLogger sets the logger for run lifecycle messages.
func WithLogger(l *log.Logger) LoopOption {
	return func(lp *Loop) {
		if l != nil {
			lp.logger = l
		}
	}
}

// WithEventSink adds a sink that receives every event.
func WithEventSink(s EventSink) LoopOption {
	return func(lp *Loop) {
		if s != nil {
			lp.sinks = append(lp.sinks, s)
		}
	}
}

// WithRunID overrides the generated run identifier used in log lines.
func WithRunID(id string) LoopOption {
	return func(lp *Loop) {
		if id != "" {
			lp.runID = id
		}
	}
}

// NewLoop creates a loop for a game that has already been Reset.
// A nil input polls nothing; a nil renderer draws nothing.
func NewLoop(game *Game, input InputSource, renderer Renderer, opts ...LoopOption) *Loop {
	if input == nil {
		input = noInput{}
	}
	if renderer == nil {
		renderer = RendererFunc(func(Snapshot) {})
	}
	lp := &Loop{
		game:     game,
		input:    input,
		renderer: renderer,
		logger:   log.New(io.Discard),
		runID:    uuid.NewString(),
	}
	for _, opt := range opts {
		opt(lp)
	}
	lp.logger = lp.logger.With("run", lp.runID)
	return lp
}

// RunID returns the identifier attached to this loop's log lines.
func (l *Loop) RunID() string {
	return l.runID
}

// Game returns the game driven by the loop.
func (l *Loop) Game() *Game {
	return l.game
}

// Last returns the result of the most recent tick.
func (l *Loop) Last() core.StepResult {
	return l.last
}

// Tick runs one iteration and reports whether the run continues.
func (l *Loop) Tick() bool {
	l.step(l.input.Poll())
	l.renderer.Render(l.game.Snapshot())
	return !l.last.State.Finished
}

// Quit delivers a quit signal outside the input source, e.g. on window close
// or context cancellation.
func (l *Loop) Quit() {
	if l.game.State().Finished {
		return
	}
	l.step(core.NewInputFrame(core.ActionQuit))
	l.renderer.Render(l.game.Snapshot())
}

func (l *Loop) step(in core.InputFrame) {
	l.last = l.game.Step(in)
	for _, ev := range l.last.Events {
		l.logEvent(ev)
		for _, s := range l.sinks {
			s.Handle(ev)
		}
	}
}

func (l *Loop) logEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventStart:
		cfg := l.game.Config()
		l.logger.Info("run started", "width", cfg.ScreenW, "height", cfg.ScreenH, "tps", cfg.TickRate)
	case core.EventLifeLost:
		l.logger.Info("life lost", "cause", ev.Cause, "lives", ev.Lives, "tick", ev.Tick)
	case core.EventGameOver:
		l.logger.Info("game over", "cause", ev.Cause, "score", ev.Score, "tick", ev.Tick)
	default:
		l.logger.Debug(ev.Kind.String(), "tick", ev.Tick, "score", ev.Score)
	}
}

// Run drives ticks at the configured rate until the run finishes or ctx is
// cancelled. Cancellation is treated as a quit and returned as ctx.Err().
func (l *Loop) Run(ctx context.Context) (core.GameState, error) {
	l.renderer.Render(l.game.Snapshot())

	ticker := time.NewTicker(l.game.Config().TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.Quit()
			return l.game.State(), ctx.Err()
		case <-ticker.C:
			if !l.Tick() {
				return l.game.State(), nil
			}
		}
	}
}
