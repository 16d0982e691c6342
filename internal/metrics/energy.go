package metrics

import (
	"math"

	"github.com/san-kum/gravtrail/internal/sim"
)

// historyCapacity bounds the series kept for plotting.
const historyCapacity = 600

// Energy tracks total mechanical energy per frame.
type Energy struct {
	name    string
	current float64
	history []float64
}

func NewEnergy() *Energy {
	return &Energy{name: "energy", history: make([]float64, 0, historyCapacity)}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(f sim.Frame) {
	e.current = f.Engine.Energy(f.Bodies)
	e.history = append(e.history, e.current)
	if len(e.history) > historyCapacity {
		e.history = e.history[1:]
	}
}

func (e *Energy) Value() float64 { return e.current }

// History returns the most recent energy samples, oldest first.
func (e *Energy) History() []float64 { return e.history }

func (e *Energy) Reset() {
	e.current = 0
	e.history = e.history[:0]
}

// EnergyDrift is the largest relative deviation from the first observed
// energy. Boundary bounces with rebound < 1 drain energy, so this grows
// over a run.
type EnergyDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(f sim.Frame) {
	energy := f.Engine.Energy(f.Bodies)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++
	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
