// Package gui hosts the simulation in a desktop window, with raylib or ebiten.
package gui

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/gravtrail/internal/render"
	"github.com/san-kum/gravtrail/internal/sim"
)

var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

// Options configures a window session.
type Options struct {
	Width, Height int
	FPS           int
	Title         string
	HUD           bool
	Logger        *slog.Logger
	// Done closes the window at the next frame boundary.
	Done <-chan struct{}
}

func (o Options) done() bool {
	select {
	case <-o.Done:
		return true
	default:
		return false
	}
}

func (o Options) title() string {
	if o.Title == "" {
		return "gravtrail"
	}
	return o.Title
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// App drives a simulator inside a raylib window.
type App struct {
	Sim        *sim.Simulator
	Opts       Options
	Running    bool
	ShowGhosts bool
	quit       bool
}

func NewApp(s *sim.Simulator, opts Options) *App {
	return &App{Sim: s, Opts: opts, Running: true, ShowGhosts: true}
}

// RunRaylib opens a window, runs until it is closed and then persists the
// traces. It blocks on the calling goroutine, which must be the main one.
func RunRaylib(s *sim.Simulator, opts Options) error {
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.title())
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))

	s.LoadGhosts()
	app := NewApp(s, opts)
	app.RunLoop()

	opts.logger().Info("window closed", "frames", s.Frame())
	return s.Shutdown()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit && !a.Opts.done() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.ShowGhosts = !a.ShowGhosts
	}
	if a.Running || rl.IsKeyPressed(rl.KeyN) {
		a.Sim.Step()
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	list := render.DrawList(a.Sim.Bodies(), a.Sim.Ghosts(), render.Options{Ghosts: a.ShowGhosts})
	for _, c := range list {
		rl.DrawCircle(int32(c.X), int32(c.Y), c.R, rl.NewColor(c.C.R, c.C.G, c.C.B, c.C.A))
	}
	if a.Opts.HUD {
		a.DrawHUD()
	}

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	status := "RUNNING"
	col := ColText
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	rl.DrawText(fmt.Sprintf("frame %d  bodies %d  %s", a.Sim.Frame(), len(a.Sim.Bodies()), status), 20, 20, 16, col)
	rl.DrawText("[SPACE] PAUSE  [N] STEP  [G] GHOSTS  [Q] QUIT", 20, int32(a.Opts.Height-30), 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), int32(a.Opts.Width-90), 20, 14, ColTextDim)
}
