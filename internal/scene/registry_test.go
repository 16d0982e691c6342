package scene

import (
	"errors"
	"testing"

	"github.com/san-kum/gravtrail/internal/physics"
)

func defaultParams() Params {
	return Params{Width: 1920, Height: 1080, Count: 10, Mass: 10, Rebound: 0.5, G: 9.8, Seed: 1}
}

func TestBuild_Single(t *testing.T) {
	bodies, err := NewRegistry().Build("single", defaultParams())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(bodies) != 1 {
		t.Fatalf("expected 1 body, got %d", len(bodies))
	}
	b := bodies[0]
	if b.Pos.X != 960 || b.Pos.Y != 540 {
		t.Errorf("expected center, got %v", b.Pos)
	}
	if b.Vel.X != 0.1 || b.Vel.Y != 0.1 {
		t.Errorf("expected (0.1, 0.1) velocity, got %v", b.Vel)
	}
	if b.Color != physics.Palette[0] {
		t.Errorf("expected first palette color, got %v", b.Color)
	}
}

func TestBuild_Binary(t *testing.T) {
	bodies, err := NewRegistry().Build("binary", defaultParams())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(bodies))
	}
	if bodies[0].Mass != 10 || bodies[1].Mass != 20 {
		t.Errorf("unexpected masses %v, %v", bodies[0].Mass, bodies[1].Mass)
	}
	if d := bodies[1].Pos.X - bodies[0].Pos.X; d != 100 {
		t.Errorf("expected separation 100, got %v", d)
	}

	p := defaultParams()
	p.Count = 1
	bodies, _ = NewRegistry().Build("binary", p)
	if len(bodies) != 1 {
		t.Errorf("binary should respect a count of 1, got %d", len(bodies))
	}
}

func TestBuild_BoundedAndInside(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"ring", "noise"} {
		for _, count := range []int{1, 3, 10} {
			p := defaultParams()
			p.Count = count
			bodies, err := reg.Build(name, p)
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			if len(bodies) != count {
				t.Errorf("%s: expected %d bodies, got %d", name, count, len(bodies))
			}
			for _, b := range bodies {
				if b.Pos.X < 0 || b.Pos.X > p.Width || b.Pos.Y < 0 || b.Pos.Y > p.Height {
					t.Errorf("%s: body outside screen at %v", name, b.Pos)
				}
				if b.Mass <= 0 {
					t.Errorf("%s: non-positive mass %v", name, b.Mass)
				}
			}
		}
	}
}

func TestBuild_NoiseIsDeterministic(t *testing.T) {
	reg := NewRegistry()
	a, _ := reg.Build("noise", defaultParams())
	b, _ := reg.Build("noise", defaultParams())
	for i := range a {
		if a[i].Pos != b[i].Pos || a[i].Vel != b[i].Vel || a[i].Mass != b[i].Mass {
			t.Fatalf("body %d differs between identical seeds", i)
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Build("spiral", defaultParams()); !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("expected ErrUnknownLayout, got %v", err)
	}

	p := defaultParams()
	p.Mass = 0
	if _, err := reg.Build("single", p); !errors.Is(err, physics.ErrNonPositiveMass) {
		t.Errorf("expected ErrNonPositiveMass, got %v", err)
	}
}

func TestRegistry_List(t *testing.T) {
	reg := NewRegistry()
	reg.Register("custom", single)
	if !reg.Has("custom") || reg.Has("nope") {
		t.Error("Has disagrees with Register")
	}
	names := reg.ListLayouts()
	if len(names) != 5 || names[0] != "binary" {
		t.Errorf("unexpected layouts %v", names)
	}
}
