package flappy

import "math/rand"

// Star is a background decoration. Stars take no part in collisions or scoring.
type Star struct {
	X     float64
	Y     float64
	Size  int // 1..3
	Speed float64
}

// Starfield scrolls stars left and respawns them at the right edge.
type Starfield struct {
	stars   []Star
	rng     *rand.Rand
	screenW int
	screenH int
}

// NewStarfield scatters n stars over the screen.
func NewStarfield(rng *rand.Rand, n, screenW, screenH int) *Starfield {
	f := &Starfield{
		stars:   make([]Star, 0, n),
		rng:     rng,
		screenW: screenW,
		screenH: screenH,
	}
	for range n {
		st := Star{
			X: float64(rng.Intn(screenW + 1)),
			Y: float64(rng.Intn(screenH + 1)),
		}
		f.resize(&st)
		f.stars = append(f.stars, st)
	}
	return f
}

// resize picks a new size; speed follows size so near stars move faster.
func (f *Starfield) resize(st *Star) {
	st.Size = 1 + f.rng.Intn(3)
	st.Speed = float64(st.Size) / 2
}

// Update scrolls every star by one tick.
func (f *Starfield) Update() {
	for i := range f.stars {
		st := &f.stars[i]
		st.X -= st.Speed
		if st.X < 0 {
			st.X = float64(f.screenW)
			st.Y = float64(f.rng.Intn(f.screenH + 1))
			f.resize(st)
		}
	}
}

// Stars returns the current stars. The slice must not be modified.
func (f *Starfield) Stars() []Star {
	return f.stars
}
