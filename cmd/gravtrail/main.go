package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravtrail/internal/config"
	"github.com/san-kum/gravtrail/internal/export"
	"github.com/san-kum/gravtrail/internal/gui"
	"github.com/san-kum/gravtrail/internal/report"
	"github.com/san-kum/gravtrail/internal/scene"
	"github.com/san-kum/gravtrail/internal/sim"
	"github.com/san-kum/gravtrail/internal/trace"
	"github.com/san-kum/gravtrail/internal/viz"
)

var (
	configFile string
	preset     string
	logLevel   string
	traceFile  string

	flags      runFlags
	frames     int
	reportPath string

	outFile string
	fit     bool
)

// runFlags mirrors the startup options. Only flags the user actually set
// override the file and preset values.
type runFlags struct {
	width, height int
	maxBodies     int
	rebound       float64
	mass          float64
	g             float64
	fps           int
	layout        string
	backend       string
	seed          int64
}

// main registers the commands and flags and runs the root command. With no
// subcommand it opens the simulation window.
func main() {
	rootCmd := newRootCmd()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	notifySignals(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()
	defer signal.Stop(sigCh)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gravtrail",
		Short:         "gravitational n-body sandbox with persistent trails",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runWindow,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&traceFile, "traces", "", "trace file path")

	addSimFlags(rootCmd)

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "run the simulation in a desktop window",
		RunE:  runWindow,
	}
	addSimFlags(windowCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation in the terminal",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and print metrics",
		RunE:  runHeadless,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&frames, "frames", sim.DefaultConfig().Frames, "number of frames (0 runs until interrupted)")
	runCmd.Flags().StringVar(&reportPath, "report", "", "write a json report to this path (- for stdout)")

	tracesCmd := &cobra.Command{
		Use:   "traces",
		Short: "summarize the trace file",
		RunE:  showTraces,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "render the trace file as svg",
		RunE:  exportSVG,
	}
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "traces.svg", "output file")
	exportCmd.Flags().BoolVar(&fit, "fit", false, "scale traces to fill the image")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets and layouts",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(windowCmd, liveCmd, runCmd, tracesCmd, exportCmd, presetsCmd)
	return rootCmd
}

func addSimFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&flags.width, "width", config.DefaultWidth, "world width in pixels")
	f.IntVar(&flags.height, "height", config.DefaultHeight, "world height in pixels")
	f.IntVar(&flags.maxBodies, "max-bodies", config.DefaultMaxBodies, "number of bodies to place")
	f.Float64Var(&flags.rebound, "rebound", config.DefaultRebound, "velocity kept after a wall bounce")
	f.Float64Var(&flags.mass, "mass", config.DefaultMass, "body mass")
	f.Float64Var(&flags.g, "g", config.DefaultG, "gravitational constant")
	f.IntVar(&flags.fps, "fps", config.DefaultFPS, "target frames per second")
	f.StringVar(&flags.layout, "layout", config.DefaultLayout, "initial layout")
	f.StringVar(&flags.backend, "backend", config.DefaultBackend, "window backend (raylib, ebiten)")
	f.Int64Var(&flags.seed, "seed", config.DefaultSeed, "random seed for generated layouts")
}

func runWindow(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}

	opts := gui.Options{
		Width:  env.cfg.Width,
		Height: env.cfg.Height,
		FPS:    env.cfg.FPS,
		HUD:    true,
		Logger: env.logger,
		Done:   cmd.Context().Done(),
	}

	switch env.cfg.Backend {
	case "ebiten":
		err = gui.RunEbiten(env.sim, opts)
	default:
		err = gui.RunRaylib(env.sim, opts)
	}
	return persistOK(err)
}

func runLive(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	env.sim.LoadGhosts()

	m := viz.NewModel(env.sim, env.energy, env.cfg.FPS)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && cmd.Context().Err() == nil {
		return errors.Join(err, persistOK(env.sim.Shutdown()))
	}

	// The model persists on quit; this covers an interrupt.
	return persistOK(env.sim.Shutdown())
}

func runHeadless(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	env.sim.LoadGhosts()

	// Headless runs are unpaced.
	res, err := env.sim.Run(cmd.Context(), sim.Config{Frames: frames})
	if err != nil {
		return err
	}

	fmt.Printf("layout: %s\n", env.cfg.Layout)
	fmt.Printf("bodies: %d\n", len(env.sim.Bodies()))
	fmt.Printf("frames: %d", res.Frames)
	if res.Interrupted {
		fmt.Print(" (interrupted)")
	}
	fmt.Print("\n\n")

	names := make([]string, 0, len(res.Metrics))
	for name := range res.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.4f\n", name, res.Metrics[name])
	}
	w.Flush()

	if h := env.energy.History(); len(h) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(h,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("total energy")))
	}

	if reportPath != "" {
		r := report.New(env.cfg.Layout, env.cfg.TraceFile, env.sim.Engine(), env.sim.Bodies(), res)
		if err := report.Write(reportPath, r); err != nil {
			return err
		}
	}

	return persistOK(res.SaveErr)
}

func showTraces(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	snap, err := trace.NewStore(cfg.TraceFile).Load()
	if err != nil {
		return err
	}
	if len(snap) == 0 {
		fmt.Printf("no traces in %s\n", cfg.TraceFile)
		return nil
	}

	fmt.Printf("file: %s\n", cfg.TraceFile)
	fmt.Printf("traces: %d\n", len(snap))
	fmt.Printf("points: %d\n", snap.Points())
	if minX, minY, maxX, maxY, ok := snap.Bounds(); ok {
		fmt.Printf("bounds: (%.1f, %.1f) - (%.1f, %.1f)\n", minX, minY, maxX, maxY)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tPOINTS\tFIRST\tLAST")
	for i, tr := range snap {
		if len(tr) == 0 {
			fmt.Fprintf(w, "%d\t0\t-\t-\n", i)
			continue
		}
		first, last := tr[0], tr[len(tr)-1]
		fmt.Fprintf(w, "%d\t%d\t%.1f,%.1f\t%.1f,%.1f\n", i, len(tr), first.X(), first.Y(), last.X(), last.Y())
	}
	w.Flush()

	// Longest trace, y against x; asciigraph plots against the index so
	// this shows the vertical motion over time.
	longest := 0
	for i, tr := range snap {
		if len(tr) > len(snap[longest]) {
			longest = i
		}
	}
	if tr := snap[longest]; len(tr) > 1 {
		ys := make([]float64, len(tr))
		for i, p := range tr {
			ys[i] = p.Y()
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(ys,
			asciigraph.Height(8),
			asciigraph.Caption(fmt.Sprintf("body %d y over time", longest))))
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	snap, err := trace.NewStore(cfg.TraceFile).Load()
	if err != nil {
		return err
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WriteSVG(f, snap, export.Options{Width: cfg.Width, Height: cfg.Height, Fit: fit}); err != nil {
		return err
	}
	fmt.Printf("wrote %d traces to %s\n", len(snap), outFile)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	fmt.Println("presets:")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Printf("  %-10s layout=%s bodies=%d mass=%g g=%g rebound=%g\n",
			name, p.Layout, p.MaxBodies, p.Mass, p.G, p.Rebound)
	}
	fmt.Println()
	fmt.Printf("layouts: %s\n", strings.Join(scene.NewRegistry().ListLayouts(), ", "))
	return nil
}

// persistOK reports host errors. Save failures were already logged by the
// simulator and do not fail the command.
func persistOK(err error) error {
	if errors.Is(err, sim.ErrSave) {
		return nil
	}
	return err
}
