package core

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventStart    EventKind = iota // Start -> Playing
	EventFlap                      // Actor received an impulse
	EventSpawn                     // Obstacle entered the stream
	EventScore                     // Obstacle passed
	EventLifeLost                  // Collision or boundary violation
	EventGameOver                  // Playing -> GameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventFlap:
		return "flap"
	case EventSpawn:
		return "spawn"
	case EventScore:
		return "score"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause explains why a life was lost or a run ended.
type Cause int

const (
	CauseNone      Cause = iota
	CauseCollision       // Actor overlapped a wall
	CauseBoundary        // Actor clamped against the top or bottom edge
	CauseQuit            // External quit signal
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseCollision:
		return "collision"
	case CauseBoundary:
		return "boundary"
	case CauseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation for audio and logging listeners.
type Event struct {
	Kind  EventKind
	Tick  int   // Playing tick on which it happened
	Cause Cause // For EventLifeLost and EventGameOver
	Score int   // Score after the event
	Lives int   // Lives after the event
}
