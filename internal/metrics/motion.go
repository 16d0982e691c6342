package metrics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/gravtrail/internal/physics"
	"github.com/san-kum/gravtrail/internal/sim"
)

// Momentum reports the magnitude of total linear momentum.
type Momentum struct {
	current float64
}

func NewMomentum() *Momentum { return &Momentum{} }

func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) Observe(f sim.Frame) {
	m.current = r2.Norm(physics.Momentum(f.Bodies))
}

func (m *Momentum) Value() float64 { return m.current }
func (m *Momentum) Reset()         { m.current = 0 }

// Bounces counts boundary reflections, one per axis hit.
type Bounces struct {
	count int
}

func NewBounces() *Bounces { return &Bounces{} }

func (b *Bounces) Name() string { return "bounces" }

func (b *Bounces) Observe(f sim.Frame) {
	for _, bn := range f.Bounces {
		if bn.X {
			b.count++
		}
		if bn.Y {
			b.count++
		}
	}
}

func (b *Bounces) Value() float64 { return float64(b.count) }
func (b *Bounces) Reset()         { b.count = 0 }

// Defaults returns the metrics every host attaches.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewEnergy(),
		NewEnergyDrift(),
		NewMomentum(),
		NewBounces(),
	}
}
