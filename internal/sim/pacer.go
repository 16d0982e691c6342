package sim

import (
	"context"
	"time"
)

// Pacer caps the loop rate. It is a soft limit: a slow frame is never
// made up for by a shorter wait.
type Pacer struct {
	interval time.Duration
	last     time.Time
}

// NewPacer returns a pacer for fps frames per second. A non-positive fps
// yields a pacer that never waits.
func NewPacer(fps int) *Pacer {
	p := &Pacer{}
	if fps > 0 {
		p.interval = time.Second / time.Duration(fps)
	}
	return p
}

func (p *Pacer) Interval() time.Duration { return p.interval }

// Wait blocks until the next frame is due or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.interval == 0 {
		return ctx.Err()
	}
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
		return ctx.Err()
	}
	due := p.last.Add(p.interval)
	if wait := due.Sub(now); wait > 0 {
		t := time.NewTimer(wait)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		p.last = due
		return nil
	}
	p.last = now
	return ctx.Err()
}
