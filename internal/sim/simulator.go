package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/gravtrail/internal/logging"
	"github.com/san-kum/gravtrail/internal/physics"
	"github.com/san-kum/gravtrail/internal/trace"
)

// Simulator owns the bodies for a run, the ghost traces loaded from the
// previous run, and the store they are persisted to. It is not safe for
// concurrent use; hosts drive it from a single loop.
type Simulator struct {
	engine    *physics.Engine
	bodies    []*physics.Body
	store     *trace.Store
	ghosts    trace.Snapshot
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
	frame     int
	closed    bool
}

func New(engine *physics.Engine, bodies []*physics.Body, store *trace.Store, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Simulator{
		engine:    engine,
		bodies:    bodies,
		store:     store,
		ghosts:    trace.Snapshot{},
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    logger,
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Engine() *physics.Engine { return s.engine }
func (s *Simulator) Bodies() []*physics.Body { return s.bodies }
func (s *Simulator) Ghosts() trace.Snapshot  { return s.ghosts }
func (s *Simulator) Frame() int              { return s.frame }
func (s *Simulator) Metrics() []Metric       { return s.metrics }

// LoadGhosts reads the previous run's traces. Failures are logged and leave
// the ghost layer empty.
func (s *Simulator) LoadGhosts() trace.Snapshot {
	if s.store == nil {
		return s.ghosts
	}
	snap, err := s.store.Load()
	if err != nil {
		s.logger.Warn("could not load previous traces, starting without ghosts",
			"path", s.store.Path(), "err", err)
	}
	s.ghosts = snap
	s.logger.Debug("loaded ghost traces", "path", s.store.Path(),
		"traces", len(snap), "points", snap.Points())
	return s.ghosts
}

// Step advances every body once and notifies metrics and observers.
func (s *Simulator) Step() Frame {
	bounces := s.engine.Step(s.bodies)
	s.frame++
	f := Frame{
		Index:   s.frame,
		Bodies:  s.bodies,
		Bounces: bounces,
		Engine:  s.engine,
	}
	for _, m := range s.metrics {
		m.Observe(f)
	}
	for _, o := range s.observers {
		o.OnFrame(f)
	}
	return f
}

// Shutdown freezes the live traces and writes them to the store. It runs at
// most once; later calls return nil.
func (s *Simulator) Shutdown() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.store == nil {
		return nil
	}
	snap := physics.Traces(s.bodies)
	if err := s.store.Save(snap); err != nil {
		s.logger.Error("saving traces failed, history will be lost", "path", s.store.Path(), "err", err)
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	s.logger.Info("saved traces", "path", s.store.Path(), "bodies", len(snap), "points", snap.Points())
	return nil
}

// Run drives the headless loop: poll ctx, step, pace. Cancellation is only
// observed between frames. Traces are persisted when the loop ends, whether
// it finished or was interrupted.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{Metrics: make(map[string]float64)}
	pacer := NewPacer(cfg.FPS)

	for cfg.Frames == 0 || result.Frames < cfg.Frames {
		select {
		case <-ctx.Done():
			result.Interrupted = true
		default:
		}
		if result.Interrupted {
			break
		}

		f := s.Step()
		result.Frames++
		s.logger.Log(ctx, logging.LevelTrace, "frame", "index", f.Index, "bodies", len(f.Bodies))

		if err := pacer.Wait(ctx); err != nil {
			result.Interrupted = true
		}
	}

	if result.Interrupted {
		s.logger.Info("shutdown requested, finishing", "frames", result.Frames)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	result.SaveErr = s.Shutdown()
	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", cfg.Frames)
	}
	if cfg.FPS < 0 {
		return fmt.Errorf("fps must not be negative, got %d", cfg.FPS)
	}
	return nil
}
