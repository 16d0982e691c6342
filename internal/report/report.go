// Package report writes a JSON summary of a headless run.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/gravtrail/internal/physics"
	"github.com/san-kum/gravtrail/internal/sim"
)

type BodyState struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	VX   float64 `json:"vx"`
	VY   float64 `json:"vy"`
	Mass float64 `json:"mass"`
	// Trace is the number of points currently held in the body's trace.
	Trace int `json:"trace"`
}

type Report struct {
	Layout      string             `json:"layout"`
	G           float64            `json:"g"`
	Width       float64            `json:"width"`
	Height      float64            `json:"height"`
	Frames      int                `json:"frames"`
	Interrupted bool               `json:"interrupted"`
	TraceFile   string             `json:"trace_file"`
	Metrics     map[string]float64 `json:"metrics"`
	Bodies      []BodyState        `json:"bodies"`
}

// New captures the final state of a run.
func New(layout, traceFile string, engine *physics.Engine, bodies []*physics.Body, result *sim.Result) Report {
	r := Report{
		Layout:      layout,
		G:           engine.G,
		Width:       engine.Width,
		Height:      engine.Height,
		Frames:      result.Frames,
		Interrupted: result.Interrupted,
		TraceFile:   traceFile,
		Metrics:     result.Metrics,
		Bodies:      make([]BodyState, len(bodies)),
	}
	for i, b := range bodies {
		r.Bodies[i] = BodyState{
			X:     b.Pos.X,
			Y:     b.Pos.Y,
			VX:    b.Vel.X,
			VY:    b.Vel.Y,
			Mass:  b.Mass,
			Trace: b.Trace.Len(),
		}
	}
	return r
}

func Encode(w io.Writer, r Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}
	return nil
}

// Write encodes r to path, or to stdout when path is "-".
func Write(path string, r Report) error {
	if path == "-" {
		return Encode(os.Stdout, r)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer file.Close()

	return Encode(file, r)
}
