package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/neonflap/internal/core"
)

type stubFrontend struct {
	id string
}

func (s stubFrontend) ID() string    { return s.id }
func (s stubFrontend) Title() string { return "Stub " + s.id }
func (s stubFrontend) Run(context.Context, Options) (core.GameState, error) {
	return core.GameState{}, nil
}

func TestRegisterListCreate(t *testing.T) {
	Register("zz-stub", func() Frontend { return stubFrontend{"zz-stub"} })
	Register("aa-stub", func() Frontend { return stubFrontend{"aa-stub"} })

	if !Exists("zz-stub") || !Exists("aa-stub") {
		t.Fatal("registered frontends not found")
	}

	list := List()
	idx := map[string]int{}
	for i, info := range list {
		idx[info.ID] = i
	}
	if idx["aa-stub"] >= idx["zz-stub"] {
		t.Errorf("List() not sorted by ID: %+v", list)
	}
	if list[idx["aa-stub"]].Title != "Stub aa-stub" {
		t.Errorf("title = %q", list[idx["aa-stub"]].Title)
	}

	f, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if f.ID() != "zz-stub" {
		t.Errorf("created %q", f.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-frontend")
	if !errors.Is(err, ErrUnknownFrontend) {
		t.Errorf("Create() error = %v, want ErrUnknownFrontend", err)
	}
	if Exists("no-such-frontend") {
		t.Error("Exists() = true for unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Frontend { return stubFrontend{"dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("dup-stub", func() Frontend { return stubFrontend{"dup-stub"} })
}

func TestOptionsNormalize(t *testing.T) {
	o := Options{Runtime: core.RuntimeConfig{Seed: 5}}.Normalize()

	if o.Logger == nil {
		t.Error("Logger is nil after Normalize")
	}
	want := core.DefaultConfig()
	want.Seed = 5
	if o.Runtime != want {
		t.Errorf("Runtime = %+v, want %+v", o.Runtime, want)
	}

	custom := core.RuntimeConfig{ScreenW: 600, ScreenH: 800, TickRate: 30}
	if got := (Options{Runtime: custom}).Normalize().Runtime; got != custom {
		t.Errorf("complete runtime replaced: %+v", got)
	}
}

func TestLoopOptions(t *testing.T) {
	o := Options{}.Normalize()
	o.Sinks = append(o.Sinks, nil, nil)
	if n := len(o.LoopOptions()); n != 4 {
		t.Errorf("LoopOptions() returned %d options, want 4", n)
	}
}
