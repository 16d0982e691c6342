// Package scene builds the initial set of bodies for a run.
package scene

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aquilax/go-perlin"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/gravtrail/internal/physics"
)

var ErrUnknownLayout = errors.New("scene: unknown layout")

// Params carries everything a layout needs to place bodies.
type Params struct {
	Width   float64
	Height  float64
	Count   int
	Mass    float64
	Rebound float64
	G       float64
	Seed    int64
}

// Layout places bodies for a run.
type Layout func(p Params) ([]*physics.Body, error)

type Registry struct {
	layouts map[string]Layout
}

func NewRegistry() *Registry {
	r := &Registry{layouts: make(map[string]Layout)}

	r.layouts["single"] = single
	r.layouts["binary"] = binary
	r.layouts["ring"] = ring
	r.layouts["noise"] = noise

	return r
}

func (r *Registry) Register(name string, l Layout) {
	r.layouts[name] = l
}

func (r *Registry) Build(name string, p Params) ([]*physics.Body, error) {
	fn, ok := r.layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownLayout, name, r.ListLayouts())
	}
	return fn(p)
}

func (r *Registry) Has(name string) bool {
	_, ok := r.layouts[name]
	return ok
}

func (r *Registry) ListLayouts() []string {
	names := make([]string, 0, len(r.layouts))
	for name := range r.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func center(p Params) r2.Vec {
	return r2.Vec{X: p.Width / 2, Y: p.Height / 2}
}

// single seeds one body at the center drifting slowly to the lower right.
func single(p Params) ([]*physics.Body, error) {
	b, err := physics.NewBody(center(p), r2.Vec{X: 0.1, Y: 0.1}, p.Mass, p.Rebound, physics.PaletteColor(0))
	if err != nil {
		return nil, err
	}
	return []*physics.Body{b}, nil
}

// binary seeds two bodies at rest, 100 units apart, the second twice as
// heavy as the first.
func binary(p Params) ([]*physics.Body, error) {
	c := center(p)
	a, err := physics.NewBody(r2.Vec{X: c.X - 50, Y: c.Y}, r2.Vec{}, p.Mass, p.Rebound, physics.PaletteColor(0))
	if err != nil {
		return nil, err
	}
	b, err := physics.NewBody(r2.Vec{X: c.X + 50, Y: c.Y}, r2.Vec{}, 2*p.Mass, p.Rebound, physics.PaletteColor(1))
	if err != nil {
		return nil, err
	}
	if p.Count < 2 {
		return []*physics.Body{a}, nil
	}
	return []*physics.Body{a, b}, nil
}

// ring places Count bodies evenly on a circle with a tangential push.
func ring(p Params) ([]*physics.Body, error) {
	n := max(p.Count, 1)
	c := center(p)
	radius := math.Min(p.Width, p.Height) / 4
	speed := 0.5 * math.Sqrt(math.Abs(p.G)*p.Mass*float64(n-1)/radius)

	bodies := make([]*physics.Body, 0, n)
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		dir := r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
		pos := r2.Add(c, r2.Scale(radius, dir))
		vel := r2.Scale(speed, r2.Vec{X: -dir.Y, Y: dir.X})
		b, err := physics.NewBody(pos, vel, p.Mass, p.Rebound, physics.PaletteColor(i))
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

// noise scatters Count bodies using a seeded Perlin field, so the same
// seed always produces the same scene.
func noise(p Params) ([]*physics.Body, error) {
	n := max(p.Count, 1)
	field := perlin.NewPerlin(2, 2, 3, p.Seed)

	bodies := make([]*physics.Body, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i)*0.731 + 0.17
		nx := field.Noise2D(t, 0.29)
		ny := field.Noise2D(0.53, t)
		pos := r2.Vec{
			X: clamp(p.Width/2+nx*p.Width, 0, p.Width),
			Y: clamp(p.Height/2+ny*p.Height, 0, p.Height),
		}
		vel := r2.Vec{X: field.Noise2D(t, 1.7), Y: field.Noise2D(1.7, t)}
		mass := p.Mass * (1 + math.Abs(field.Noise2D(t, t)))
		b, err := physics.NewBody(pos, vel, mass, p.Rebound, physics.PaletteColor(i))
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
