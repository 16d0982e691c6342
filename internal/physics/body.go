package physics

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/gravtrail/internal/trace"
)

// Palette is the fixed set of body colors, assigned by index.
var Palette = []color.RGBA{
	{217, 237, 146, 255},
	{93, 115, 126, 255},
	{30, 96, 145, 255},
	{62, 63, 63, 255},
	{143, 45, 86, 255},
	{116, 0, 184, 255},
	{56, 4, 14, 255},
}

// GhostColor is used for traces loaded from a previous run. It is
// translucent, so it is kept non-premultiplied.
var GhostColor = color.NRGBA{255, 0, 0, 100}

// PaletteColor returns the palette entry for body index i.
func PaletteColor(i int) color.RGBA {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// Body is a point mass living in screen coordinates.
type Body struct {
	Pos     r2.Vec
	Vel     r2.Vec
	Mass    float64
	Rebound float64
	Color   color.RGBA
	Trace   *trace.Ring
}

// NewBody returns a body with an empty trace of the default capacity.
func NewBody(pos, vel r2.Vec, mass, rebound float64, c color.RGBA) (*Body, error) {
	if !(mass > 0) {
		return nil, fmt.Errorf("%w: %v", ErrNonPositiveMass, mass)
	}
	return &Body{
		Pos:     pos,
		Vel:     vel,
		Mass:    mass,
		Rebound: rebound,
		Color:   c,
		Trace:   trace.NewRing(trace.DefaultCapacity),
	}, nil
}

// Radius is the visual radius derived from mass.
func (b *Body) Radius() float64 {
	return 2 * math.Sqrt(b.Mass)
}

// PixelRadius is Radius truncated to whole pixels, as drawn by the hosts.
func (b *Body) PixelRadius() int {
	return int(b.Radius())
}

func (b *Body) record() {
	b.Trace.Push(trace.Point{b.Pos.X, b.Pos.Y})
}

// Traces freezes the trace of every body, in body order.
func Traces(bodies []*Body) trace.Snapshot {
	rings := make([]*trace.Ring, len(bodies))
	for i, b := range bodies {
		rings[i] = b.Trace
	}
	return trace.Freeze(rings)
}
