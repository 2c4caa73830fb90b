// Package audio plays short synthesized tones for game events.
// Audio is optional: when the speaker cannot be opened the game runs silently.
package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/neonflap/internal/core"
)

// SampleRate used for synthesis and the speaker.
const SampleRate = beep.SampleRate(44100)

// Cue is a sound played for an event.
type Cue int

const (
	CueNone Cue = iota
	CueFlap
	CueScore
	CueHit
	CueGameOver
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueScore:
		return "score"
	case CueHit:
		return "hit"
	case CueGameOver:
		return "gameover"
	default:
		return "none"
	}
}

// Tone is one note of a cue.
type Tone struct {
	Freq     float64 // Hz
	Duration time.Duration
}

var cueTones = map[Cue][]Tone{
	CueFlap:     {{660, 50 * time.Millisecond}},
	CueScore:    {{880, 70 * time.Millisecond}, {1320, 90 * time.Millisecond}},
	CueHit:      {{180, 180 * time.Millisecond}},
	CueGameOver: {{440, 150 * time.Millisecond}, {330, 150 * time.Millisecond}, {220, 300 * time.Millisecond}},
}

// Tones returns the notes of a cue.
func Tones(c Cue) []Tone {
	return cueTones[c]
}

// CueFor picks the cue for an event. Quitting is silent.
func CueFor(ev core.Event) Cue {
	switch ev.Kind {
	case core.EventFlap:
		return CueFlap
	case core.EventScore:
		return CueScore
	case core.EventLifeLost:
		return CueHit
	case core.EventGameOver:
		if ev.Cause == core.CauseQuit {
			return CueNone
		}
		return CueGameOver
	}
	return CueNone
}

// Synthesize builds the streamer for a cue at the given volume (0..1).
func Synthesize(sr beep.SampleRate, c Cue, volume float64) (beep.Streamer, error) {
	tones := Tones(c)
	if len(tones) == 0 {
		return nil, fmt.Errorf("audio: no tones for cue %s", c)
	}

	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sr, t.Freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %vHz: %w", t.Freq, err)
		}
		parts = append(parts, beep.Take(sr.N(t.Duration), sine))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(math.Max(volume, 1e-6)),
		Silent:   volume <= 0,
	}, nil
}

// Player is a flappy.EventSink that plays cues through the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player. Nothing is audible until Init succeeds.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
		logger: logger,
	}
}

// Init opens the speaker. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Handle plays the cue for ev, if any.
func (p *Player) Handle(ev core.Event) {
	cue := CueFor(ev)
	if cue == CueNone {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	s, err := Synthesize(SampleRate, cue, p.volume)
	if err != nil {
		p.logger.Warn("cue synthesis failed", "cue", cue, "error", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
