package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/neonflap/internal/core"
)

func TestObstacleCollidesWith(t *testing.T) {
	const screenH = 700.0
	// Walls span x in [100, 180]; gap spans y in [200, 380].
	o := Obstacle{X: 100, GapStart: 200}

	tests := []struct {
		name   string
		cx, cy float64
		want   bool
	}{
		{"fully inside gap", 140, 290, false},
		{"overlaps top wall by 1", 140, 219, true},
		{"touches top wall edge", 140, 220, false},
		{"touches bottom wall edge", 140, 360, false},
		{"overlaps bottom wall by 1", 140, 361, true},
		{"touches left side of top wall", 80, 100, false},
		{"overlaps left side of top wall by 1", 81, 100, true},
		{"touches right side of bottom wall", 200, 500, false},
		{"fractional overlap", 140, 219.5, true},
		{"far left of walls", 20, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := core.SquareAround(tt.cx, tt.cy, ActorRadius)
			if got := o.CollidesWith(actor, screenH); got != tt.want {
				t.Errorf("CollidesWith(%+v) = %v, want %v", actor, got, tt.want)
			}
		})
	}
}

func TestObstacleWallRects(t *testing.T) {
	o := Obstacle{X: 300, GapStart: 150}

	top := o.TopRect()
	if top != core.NewRect(300, 0, WallWidth, 150) {
		t.Errorf("TopRect() = %+v", top)
	}
	bottom := o.BottomRect(700)
	if bottom != core.NewRect(300, 330, WallWidth, 370) {
		t.Errorf("BottomRect() = %+v", bottom)
	}
}

func TestObstacleCheckPassOnce(t *testing.T) {
	o := Obstacle{X: 110, GapStart: 200}
	passes := 0

	for range 10 {
		o.Update()
		if o.CheckPass(ActorX) {
			passes++
			if o.X >= ActorX {
				t.Errorf("credited at X=%v, must be strictly below %v", o.X, ActorX)
			}
		}
	}

	if passes != 1 {
		t.Errorf("passes = %d, want 1", passes)
	}
	if !o.Passed {
		t.Error("Passed flag not set")
	}
}

func TestObstacleCheckPassStrict(t *testing.T) {
	o := Obstacle{X: ActorX}
	if o.CheckPass(ActorX) {
		t.Error("X == actor x must not count as passed")
	}
}

func TestObstacleOffScreen(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{0, false},
		{-WallWidth, false}, // right edge exactly at 0
		{-WallWidth - 0.5, true},
		{-WallWidth - 1, true},
	}

	for _, tt := range tests {
		o := Obstacle{X: tt.x}
		if got := o.OffScreen(); got != tt.want {
			t.Errorf("OffScreen() at X=%v = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestShouldSpawn(t *testing.T) {
	tests := []struct {
		tick int
		want bool
	}{
		{0, false},
		{1, false},
		{89, false},
		{90, true},
		{91, false},
		{180, true},
		{270, true},
		{271, false},
	}

	for _, tt := range tests {
		if got := ShouldSpawn(tt.tick); got != tt.want {
			t.Errorf("ShouldSpawn(%d) = %v, want %v", tt.tick, got, tt.want)
		}
	}
}

func TestStreamSpawnGapRange(t *testing.T) {
	tests := []struct {
		name     string
		screenH  int
		min, max int
	}{
		{"reference screen", 700, 100, 400},
		{"tall screen", 1000, 100, 700},
		{"screen too short for range", 350, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewObstacleStream(rand.New(rand.NewSource(7)), 500, tt.screenH)
			for range 500 {
				o := s.Spawn()
				if o.GapStart < tt.min || o.GapStart > tt.max {
					t.Fatalf("GapStart = %d, want in [%d, %d]", o.GapStart, tt.min, tt.max)
				}
				if o.X != 500+SpawnOffset {
					t.Fatalf("spawn X = %v, want %v", o.X, 500+SpawnOffset)
				}
			}
		})
	}
}

// farActor sits right of every obstacle, so nothing collides or passes.
func farActor() *Actor {
	a := NewActor(700)
	a.X = 10000
	return a
}

func TestStreamSpawnCadence(t *testing.T) {
	s := NewObstacleStream(rand.New(rand.NewSource(1)), 500, 700)
	actor := farActor()

	var spawnTicks []int
	for tick := 1; tick <= 400; tick++ {
		res := s.Update(tick, actor)
		if res.Spawned {
			spawnTicks = append(spawnTicks, tick)
		}
		if tick == 90 {
			if s.Len() != 1 {
				t.Fatalf("after tick 90: %d obstacles, want 1", s.Len())
			}
			// Spawned obstacles advance on the tick they appear.
			if x := s.Obstacles()[0].X; x != 500+SpawnOffset-ObstacleSpeed {
				t.Errorf("first obstacle X = %v, want %v", x, 500+SpawnOffset-ObstacleSpeed)
			}
		}
	}

	want := []int{90, 180, 270, 360}
	if len(spawnTicks) != len(want) {
		t.Fatalf("spawn ticks = %v, want %v", spawnTicks, want)
	}
	for i := range want {
		if spawnTicks[i] != want[i] {
			t.Errorf("spawn ticks = %v, want %v", spawnTicks, want)
			break
		}
	}
}

func TestStreamCollisionBeatsPass(t *testing.T) {
	s := NewObstacleStream(rand.New(rand.NewSource(1)), 500, 700)
	actor := NewActor(700) // (100, 350)

	// After moving to X=97 the obstacle is past the actor and its top wall
	// (0..400) overlaps the actor.
	s.obstacles = append(s.obstacles, Obstacle{X: 102, GapStart: 400})

	res := s.Update(1, actor)
	if res.Collisions != 1 {
		t.Errorf("Collisions = %d, want 1", res.Collisions)
	}
	if res.Passed != 0 {
		t.Errorf("Passed = %d, want 0 (collision takes precedence)", res.Passed)
	}
	if s.Len() != 0 {
		t.Errorf("colliding obstacle not removed, %d left", s.Len())
	}
}

func TestStreamRemovalDoesNotSkip(t *testing.T) {
	s := NewObstacleStream(rand.New(rand.NewSource(1)), 500, 700)
	actor := NewActor(700)

	s.obstacles = append(s.obstacles,
		Obstacle{X: -84, GapStart: 260, Passed: true}, // leaves the screen
		Obstacle{X: 102, GapStart: 400},               // collides
		Obstacle{X: -83, GapStart: 260, Passed: true}, // leaves the screen
		Obstacle{X: 400, GapStart: 260},               // stays
	)

	res := s.Update(1, actor)
	if res.Removed != 2 || res.Collisions != 1 || res.Passed != 0 {
		t.Errorf("result = %+v, want 2 removed, 1 collision, 0 passed", res)
	}
	if s.Len() != 1 {
		t.Fatalf("%d obstacles left, want 1", s.Len())
	}
	if got := s.Obstacles()[0].X; got != 395 {
		t.Errorf("survivor X = %v, want 395", got)
	}
}

func TestStreamOpenGapScoredOnceThenRemoved(t *testing.T) {
	s := NewObstacleStream(rand.New(rand.NewSource(1)), 500, 700)
	actor := NewActor(700) // occupies y in [330, 370]

	// Gap [260, 440] covers the actor's whole vertical extent.
	s.obstacles = append(s.obstacles, Obstacle{X: 500 + SpawnOffset, GapStart: 260})

	passed, removed := 0, 0
	for tick := 1; s.Len() > 0; tick++ {
		if tick > 1000 {
			t.Fatal("obstacle never removed")
		}
		res := s.Update(1, actor) // tick 1 never spawns
		if res.Collisions != 0 {
			t.Fatalf("tick %d: unexpected collision", tick)
		}
		passed += res.Passed
		removed += res.Removed
	}

	if passed != 1 {
		t.Errorf("passed = %d, want 1", passed)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
}
