// Package render turns simulator state into a backend-neutral draw list.
package render

import (
	"image/color"

	"github.com/san-kum/gravtrail/internal/physics"
	"github.com/san-kum/gravtrail/internal/trace"
)

// TraceRadius is the radius of a single trace dot in pixels.
const TraceRadius = 1

// Circle is a filled circle in screen pixels. Color is not premultiplied.
type Circle struct {
	X, Y float32
	R    float32
	C    color.NRGBA
}

// Options selects which layers are drawn.
type Options struct {
	Ghosts bool
}

func opaque(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// DrawList returns circles in painting order: ghost traces, live traces,
// then bodies.
func DrawList(bodies []*physics.Body, ghosts trace.Snapshot, opts Options) []Circle {
	n := len(bodies)
	for _, b := range bodies {
		n += b.Trace.Len()
	}
	if opts.Ghosts {
		n += ghosts.Points()
	}
	out := make([]Circle, 0, n)

	if opts.Ghosts {
		for _, tr := range ghosts {
			for _, p := range tr {
				out = append(out, dot(p, physics.GhostColor))
			}
		}
	}
	for _, b := range bodies {
		c := opaque(b.Color)
		b.Trace.Each(func(_ int, p trace.Point) {
			out = append(out, dot(p, c))
		})
	}
	for _, b := range bodies {
		out = append(out, Circle{
			X: float32(int(b.Pos.X)),
			Y: float32(int(b.Pos.Y)),
			R: float32(b.PixelRadius()),
			C: opaque(b.Color),
		})
	}
	return out
}

func dot(p trace.Point, c color.NRGBA) Circle {
	return Circle{X: float32(int(p.X())), Y: float32(int(p.Y())), R: TraceRadius, C: c}
}
