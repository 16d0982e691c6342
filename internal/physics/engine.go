package physics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// DefaultCutoff is the separation below which pairwise force is zero.
	DefaultCutoff = 40.0

	// minDistance keeps the force finite for coincident bodies.
	minDistance = 1.0
)

// Engine advances a set of bodies by one unit time step per call.
type Engine struct {
	G      float64
	Width  float64
	Height float64
	Cutoff float64
}

func NewEngine(g, width, height float64) (*Engine, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidBounds, width, height)
	}
	return &Engine{
		G:      g,
		Width:  width,
		Height: height,
		Cutoff: DefaultCutoff,
	}, nil
}

// Bounce reports which axes were reflected during a boundary check.
type Bounce struct {
	X, Y bool
}

func (b Bounce) Any() bool { return b.X || b.Y }

// PairForce returns the force exerted on b by o.
func (e *Engine) PairForce(b, o *Body) r2.Vec {
	d := r2.Sub(o.Pos, b.Pos)
	dist := math.Max(minDistance, r2.Norm(d))
	if dist < e.Cutoff {
		return r2.Vec{}
	}
	f := e.G * b.Mass * o.Mass / (dist * dist)
	angle := math.Atan2(d.Y, d.X)
	return r2.Vec{X: f * math.Cos(angle), Y: f * math.Sin(angle)}
}

// NetForce sums the pairwise forces on bodies[i] from every other body.
func (e *Engine) NetForce(bodies []*Body, i int) r2.Vec {
	var net r2.Vec
	for j, o := range bodies {
		if j == i {
			continue
		}
		net = r2.Add(net, e.PairForce(bodies[i], o))
	}
	return net
}

// Step updates every body in order. Each body sees the already-updated
// positions of the bodies before it. The returned slice reports boundary
// reflections per body.
func (e *Engine) Step(bodies []*Body) []Bounce {
	bounces := make([]Bounce, len(bodies))
	for i, b := range bodies {
		f := e.NetForce(bodies, i)
		b.Vel = r2.Add(b.Vel, r2.Scale(1/b.Mass, f))
		b.Pos = r2.Add(b.Pos, b.Vel)
		bounces[i] = CheckBoundaries(b, e.Width, e.Height)
		b.record()
	}
	return bounces
}

// CheckBoundaries clamps b into [0,width]x[0,height] and reflects the
// velocity component of every violated axis, scaled by the rebound factor.
func CheckBoundaries(b *Body, width, height float64) Bounce {
	var out Bounce
	if b.Pos.X < 0 {
		b.Pos.X = 0
		b.Vel.X *= -b.Rebound
		out.X = true
	} else if b.Pos.X > width {
		b.Pos.X = width
		b.Vel.X *= -b.Rebound
		out.X = true
	}
	if b.Pos.Y < 0 {
		b.Pos.Y = 0
		b.Vel.Y *= -b.Rebound
		out.Y = true
	} else if b.Pos.Y > height {
		b.Pos.Y = height
		b.Vel.Y *= -b.Rebound
		out.Y = true
	}
	return out
}

// Energy returns kinetic plus gravitational potential energy. Pairs inside
// the cutoff contribute no potential, matching the force model.
func (e *Engine) Energy(bodies []*Body) float64 {
	ke, pe := 0.0, 0.0
	for i, b := range bodies {
		ke += 0.5 * b.Mass * r2.Norm2(b.Vel)
		for j := i + 1; j < len(bodies); j++ {
			r := math.Max(minDistance, r2.Norm(r2.Sub(bodies[j].Pos, b.Pos)))
			if r < e.Cutoff {
				continue
			}
			pe -= e.G * b.Mass * bodies[j].Mass / r
		}
	}
	return ke + pe
}

// Momentum returns total linear momentum.
func Momentum(bodies []*Body) r2.Vec {
	var p r2.Vec
	for _, b := range bodies {
		p = r2.Add(p, r2.Scale(b.Mass, b.Vel))
	}
	return p
}

// CenterOfMass returns the mass-weighted mean position.
func CenterOfMass(bodies []*Body) r2.Vec {
	var c r2.Vec
	total := 0.0
	for _, b := range bodies {
		c = r2.Add(c, r2.Scale(b.Mass, b.Pos))
		total += b.Mass
	}
	if total == 0 {
		return c
	}
	return r2.Scale(1/total, c)
}
