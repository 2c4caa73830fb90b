package flappy

import (
	"math/rand"
	"testing"
)

func TestActorStaysInBounds(t *testing.T) {
	const screenH = 700
	rng := rand.New(rand.NewSource(42))

	for trial := range 500 {
		a := NewActor(screenH)
		a.Y = a.UpperBound() + rng.Float64()*(a.LowerBound()-a.UpperBound())
		a.Vel = rng.Float64()*80 - 40

		for tick := range 300 {
			if rng.Intn(10) == 0 {
				a.Flap()
			}
			a.Update()
			if a.Y < a.UpperBound() || a.Y > a.LowerBound() {
				t.Fatalf("trial %d tick %d: y=%v outside [%v, %v]", trial, tick, a.Y, a.UpperBound(), a.LowerBound())
			}
		}
	}
}

func TestActorFlapOverwritesVelocity(t *testing.T) {
	tests := []struct {
		name string
		vel  float64
	}{
		{"falling fast", 25},
		{"at rest", 0},
		{"already rising", -4},
		{"rising faster than lift", -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewActor(700)
			a.Vel = tt.vel
			a.Flap()
			if a.Vel != Lift {
				t.Errorf("Vel = %v after flap, want %v", a.Vel, Lift)
			}
			a.Flap()
			if a.Vel != Lift {
				t.Errorf("Vel = %v after second flap, want %v (flaps must not stack)", a.Vel, Lift)
			}
		})
	}
}

func TestActorFreeFallClosedForm(t *testing.T) {
	a := NewActor(700)
	y0 := a.Y
	if y0 != 350 {
		t.Fatalf("start y = %v, want 350", y0)
	}

	for n := 1; ; n++ {
		clamped := a.Update()
		wantY := y0 + Gravity*float64(n*(n+1))/2

		if wantY >= a.LowerBound() {
			if !clamped {
				t.Fatalf("tick %d: expected clamp at y=%v", n, wantY)
			}
			if a.Y != a.LowerBound() || a.Vel != 0 {
				t.Errorf("tick %d: clamped to y=%v vel=%v, want y=%v vel=0", n, a.Y, a.Vel, a.LowerBound())
			}
			if n != 36 {
				t.Errorf("clamp on tick %d, want 36", n)
			}
			return
		}

		if clamped {
			t.Fatalf("tick %d: unexpected clamp at y=%v", n, a.Y)
		}
		if want := Gravity * float64(n); a.Vel != want {
			t.Errorf("tick %d: vel = %v, want %v", n, a.Vel, want)
		}
		if a.Y != wantY {
			t.Errorf("tick %d: y = %v, want %v", n, a.Y, wantY)
		}
	}
}

func TestActorClampsAtTop(t *testing.T) {
	a := NewActor(700)
	a.Y = 25
	a.Flap()

	if !a.Update() {
		t.Fatal("expected clamp against the top edge")
	}
	if a.Y != a.UpperBound() || a.Vel != 0 {
		t.Errorf("y=%v vel=%v, want y=%v vel=0", a.Y, a.Vel, a.UpperBound())
	}
}

func TestActorResetAndRect(t *testing.T) {
	a := NewActor(701)
	a.Y, a.Vel = 90, 7
	a.Reset()

	if a.X != ActorX || a.Y != 350 || a.Vel != 0 {
		t.Errorf("after reset: (%v, %v) vel %v, want (%v, 350) vel 0", a.X, a.Y, a.Vel, ActorX)
	}

	r := a.Rect()
	if r.X != 80 || r.Y != 330 || r.W != 40 || r.H != 40 {
		t.Errorf("Rect() = %+v, want {80 330 40 40}", r)
	}
}
