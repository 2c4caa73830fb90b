package flappy

import "github.com/vovakirdan/neonflap/internal/core"

// Actor physics, in world units per tick. Fixed by design, not configurable.
const (
	Gravity     = 0.5   // Downward acceleration per tick
	Lift        = -10.0 // Velocity set by a flap (negative = up)
	ActorRadius = 20.0  // Half the side of the actor's bounding square
	ActorX      = 100.0 // Fixed horizontal position
)

// Actor is the player-controlled falling entity.
type Actor struct {
	X      float64
	Y      float64
	Vel    float64
	Radius float64

	screenH float64
}

// NewActor creates an actor centered vertically on a screen of the given height.
func NewActor(screenH int) *Actor {
	a := &Actor{
		X:       ActorX,
		Radius:  ActorRadius,
		screenH: float64(screenH),
	}
	a.Reset()
	return a
}

// Reset moves the actor back to the vertical center with no velocity.
func (a *Actor) Reset() {
	a.X = ActorX
	a.Y = float64(int(a.screenH) / 2)
	a.Vel = 0
}

// UpperBound is the smallest allowed y.
func (a *Actor) UpperBound() float64 {
	return a.Radius
}

// LowerBound is the largest allowed y.
func (a *Actor) LowerBound() float64 {
	return a.screenH - a.Radius
}

// Update applies gravity and moves the actor one tick.
// It returns true when the actor reached a screen boundary and was clamped to it.
// Losing a life for that is the caller's business.
func (a *Actor) Update() bool {
	a.Vel += Gravity
	a.Y += a.Vel

	clamped := false
	if a.Y >= a.LowerBound() {
		a.Y = a.LowerBound()
		a.Vel = 0
		clamped = true
	}
	if a.Y <= a.UpperBound() {
		a.Y = a.UpperBound()
		a.Vel = 0
		clamped = true
	}
	return clamped
}

// Flap replaces the current velocity with the lift impulse. Flaps do not stack.
func (a *Actor) Flap() {
	a.Vel = Lift
}

// Rect returns the actor's bounding square.
func (a *Actor) Rect() core.Rect {
	return core.SquareAround(a.X, a.Y, a.Radius)
}
