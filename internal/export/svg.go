// Package export renders persisted traces to static formats.
package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/gravtrail/internal/physics"
	"github.com/san-kum/gravtrail/internal/trace"
)

// Options controls SVG output.
type Options struct {
	Width, Height int
	// Fit rescales the traces to fill the viewport instead of drawing them
	// in screen coordinates.
	Fit         bool
	StrokeWidth float64
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

type transform struct {
	minX, minY     float64
	scaleX, scaleY float64
}

func (t transform) apply(p trace.Point) (float64, float64) {
	return (p.X() - t.minX) * t.scaleX, (p.Y() - t.minY) * t.scaleY
}

func fitTransform(snap trace.Snapshot, width, height int) transform {
	minX, minY, maxX, maxY, ok := snap.Bounds()
	if !ok {
		return transform{scaleX: 1, scaleY: 1}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1

	return transform{
		minX:   minX,
		minY:   minY,
		scaleX: float64(width) / (maxX - minX),
		scaleY: float64(height) / (maxY - minY),
	}
}

// SnapshotToSVG draws one path per non-empty trace, colored by the body
// palette. Single-point traces become a dot.
func SnapshotToSVG(snap trace.Snapshot, opts Options) string {
	width, height := opts.Width, opts.Height
	stroke := opts.StrokeWidth
	if stroke <= 0 {
		stroke = 1.5
	}

	t := transform{scaleX: 1, scaleY: 1}
	if opts.Fit {
		t = fitTransform(snap, width, height)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#000000"/>
`, width, height, width, height))

	for i, tr := range snap {
		if len(tr) == 0 {
			continue
		}
		col := hex(physics.PaletteColor(i))
		if len(tr) == 1 {
			x, y := t.apply(tr[0])
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, x, y, stroke, col))
			continue
		}

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.1f" d="M`, col, stroke))
		for j, p := range tr {
			x, y := t.apply(p)
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// WriteSVG writes SnapshotToSVG output to w.
func WriteSVG(w io.Writer, snap trace.Snapshot, opts Options) error {
	if _, err := io.WriteString(w, SnapshotToSVG(snap, opts)); err != nil {
		return fmt.Errorf("export: write svg: %w", err)
	}
	return nil
}
