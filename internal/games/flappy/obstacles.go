package flappy

import (
	"math/rand"

	"github.com/vovakirdan/neonflap/internal/core"
)

// Obstacle geometry and stream cadence.
const (
	GapHeight     = 180  // Height of the passable gap
	WallWidth     = 80.0 // Width of both walls
	ObstacleSpeed = 5.0  // Leftward movement per tick
	SpawnEvery    = 90   // Playing ticks between spawns
	SpawnOffset   = 50   // Distance past the right edge where obstacles appear
	GapMinStart   = 100  // Smallest gap start
	GapMaxReserve = 300  // Gap start is at most screenH - GapMaxReserve
)

// Obstacle is a pair of walls with a vertical gap between them.
type Obstacle struct {
	X        float64 // Left edge
	GapStart int     // Y where the gap begins (bottom of the top wall)
	Passed   bool    // Whether the actor has been credited for this obstacle
}

// GapEnd returns the y where the bottom wall begins.
func (o Obstacle) GapEnd() int {
	return o.GapStart + GapHeight
}

// TopRect returns the collision rectangle for the top wall.
func (o Obstacle) TopRect() core.Rect {
	return core.NewRect(o.X, 0, WallWidth, float64(o.GapStart))
}

// BottomRect returns the collision rectangle for the bottom wall.
func (o Obstacle) BottomRect(screenH float64) core.Rect {
	bottomY := float64(o.GapEnd())
	return core.NewRect(o.X, bottomY, WallWidth, screenH-bottomY)
}

// Update moves the obstacle left by one tick.
func (o *Obstacle) Update() {
	o.X -= ObstacleSpeed
}

// CollidesWith reports whether the actor's bounding box overlaps either wall.
func (o Obstacle) CollidesWith(actor core.Rect, screenH float64) bool {
	return actor.Intersects(o.TopRect()) || actor.Intersects(o.BottomRect(screenH))
}

// CheckPass marks the obstacle passed the first time its left edge falls
// strictly below actorX. It returns true only on that tick.
func (o *Obstacle) CheckPass(actorX float64) bool {
	if o.Passed || o.X >= actorX {
		return false
	}
	o.Passed = true
	return true
}

// OffScreen reports whether the right edge has scrolled past the left screen edge.
func (o Obstacle) OffScreen() bool {
	return o.X+WallWidth < 0
}

// StreamResult summarizes what happened to the stream during one tick.
type StreamResult struct {
	Spawned    bool // A new obstacle entered this tick
	Collisions int  // Obstacles removed because they hit the actor
	Passed     int  // Obstacles credited this tick
	Removed    int  // Obstacles removed after leaving the screen
}

// ObstacleStream handles spawning, movement, collision and removal of obstacles.
type ObstacleStream struct {
	obstacles []Obstacle
	rng       *rand.Rand
	screenW   float64
	screenH   float64
}

// NewObstacleStream creates an empty stream drawing gap offsets from rng.
func NewObstacleStream(rng *rand.Rand, screenW, screenH int) *ObstacleStream {
	return &ObstacleStream{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		screenW:   float64(screenW),
		screenH:   float64(screenH),
	}
}

// Reset removes all obstacles.
func (s *ObstacleStream) Reset() {
	s.obstacles = s.obstacles[:0]
}

// ShouldSpawn reports whether an obstacle is created on the given Playing tick.
func ShouldSpawn(tick int) bool {
	return tick > 0 && tick%SpawnEvery == 0
}

// Spawn appends a new obstacle just past the right edge.
func (s *ObstacleStream) Spawn() Obstacle {
	minStart := GapMinStart
	maxStart := int(s.screenH) - GapMaxReserve
	if maxStart < minStart {
		maxStart = minStart // Edge case for very small screens
	}

	o := Obstacle{
		X:        s.screenW + SpawnOffset,
		GapStart: minStart + s.rng.Intn(maxStart-minStart+1),
	}
	s.obstacles = append(s.obstacles, o)
	return o
}

// Update runs one tick of the stream against the actor: spawn on cadence,
// advance every obstacle, then drop those that hit the actor or left the
// screen. Removals are compacted after each obstacle is examined, so none is
// skipped or visited twice. An obstacle that collides is never credited as
// passed on the same tick.
func (s *ObstacleStream) Update(tick int, actor *Actor) StreamResult {
	var res StreamResult

	if ShouldSpawn(tick) {
		s.Spawn()
		res.Spawned = true
	}

	actorRect := actor.Rect()
	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Update()

		if o.CollidesWith(actorRect, s.screenH) {
			res.Collisions++
			continue
		}
		if o.CheckPass(actor.X) {
			res.Passed++
		}
		if o.OffScreen() {
			res.Removed++
			continue
		}
		live = append(live, o)
	}
	s.obstacles = live

	return res
}

// Obstacles returns the live obstacles in spawn order.
// The slice is owned by the stream and must not be modified.
func (s *ObstacleStream) Obstacles() []Obstacle {
	return s.obstacles
}

// Len returns the number of live obstacles.
func (s *ObstacleStream) Len() int {
	return len(s.obstacles)
}
