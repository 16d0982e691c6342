package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/gravtrail/internal/render"
	"github.com/san-kum/gravtrail/internal/sim"
)

// Game adapts a simulator to ebiten's update/draw loop.
type Game struct {
	sim        *sim.Simulator
	opts       Options
	paused     bool
	showGhosts bool
	saveErr    error
	closed     bool
}

func NewGame(s *sim.Simulator, opts Options) *Game {
	return &Game{sim: s, opts: opts, showGhosts: true}
}

func (g *Game) close() error {
	if !g.closed {
		g.closed = true
		g.saveErr = g.sim.Shutdown()
	}
	return ebiten.Termination
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || g.opts.done() || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return g.close()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGhosts = !g.showGhosts
	}
	if !g.paused || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.Step()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, c := range render.DrawList(g.sim.Bodies(), g.sim.Ghosts(), render.Options{Ghosts: g.showGhosts}) {
		vector.DrawFilledCircle(screen, c.X, c.Y, c.R, c.C, true)
	}
	if g.opts.HUD {
		status := "RUNNING"
		if g.paused {
			status = "PAUSED"
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %d  bodies %d  %s  TPS %.0f\n[SPACE] pause  [N] step  [G] ghosts  [Q] quit",
			g.sim.Frame(), len(g.sim.Bodies()), status, ebiten.ActualTPS()))
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// RunEbiten is the ebiten counterpart of RunRaylib.
func RunEbiten(s *sim.Simulator, opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.title())
	ebiten.SetTPS(opts.FPS)
	ebiten.SetWindowClosingHandled(true)

	s.LoadGhosts()
	g := NewGame(s, opts)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	opts.logger().Info("window closed", "frames", s.Frame())
	if !g.closed {
		return s.Shutdown()
	}
	return g.saveErr
}
