package sim

import (
	"errors"

	"github.com/san-kum/gravtrail/internal/physics"
)

// ErrSave marks a failure to persist traces at shutdown.
var ErrSave = errors.New("sim: saving traces failed")

// Frame describes the state right after one physics step. Bodies are the
// live bodies and must not be retained past the callback.
type Frame struct {
	Index   int
	Bodies  []*physics.Body
	Bounces []physics.Bounce
	Engine  *physics.Engine
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f Frame)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(f Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

type Config struct {
	// Frames caps the run length; 0 runs until the context is done.
	Frames int
	// FPS paces the loop; 0 runs unpaced.
	FPS int
}

func DefaultConfig() Config {
	return Config{Frames: 600, FPS: 0}
}

type Result struct {
	Frames      int
	Metrics     map[string]float64
	Interrupted bool
	SaveErr     error
}
