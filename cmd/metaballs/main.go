package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/metaballs/internal/compute"
	"github.com/san-kum/metaballs/internal/config"
	"github.com/san-kum/metaballs/internal/gui"
	"github.com/san-kum/metaballs/internal/logx"
	"github.com/san-kum/metaballs/internal/metrics"
	"github.com/san-kum/metaballs/internal/sim"
	"github.com/san-kum/metaballs/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	preset     string
	verbose    bool
	debug      bool
	quiet      bool

	mode        string
	count       int
	threshold   float32
	seed        int64
	width       int
	height      int
	shaderDir   string
	timeUniform bool

	ticks   int
	workers int
	outFile string
)

// main registers the commands and opens the window when no subcommand is
// given. It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "metaballs",
		Short:        "metaball and charge field visualizer",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.SetDefaultLogger(os.Stderr, logx.LevelFromFlags(debug, verbose, quiet))
		},
		RunE: runWindow,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", config.DefaultPreset, "preset: "+strings.Join(config.ListPresets(), ", "))
	pf.BoolVarP(&verbose, "verbose", "v", false, "log info messages")
	pf.BoolVar(&debug, "vv", false, "log debug messages")
	pf.BoolVarP(&quiet, "quiet", "q", false, "log errors only")

	pf.StringVar(&mode, "mode", "2d", "initial render mode (2d or 3d)")
	pf.IntVar(&count, "count", 0, "number of entities")
	pf.Float32Var(&threshold, "threshold", config.DefaultThreshold, "isosurface threshold")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = clock)")
	pf.IntVar(&width, "width", config.DefaultWidth, "window width")
	pf.IntVar(&height, "height", config.DefaultHeight, "window height")
	pf.StringVar(&shaderDir, "shaders", "", "load shaders from this directory instead of the embedded set")
	pf.BoolVar(&timeUniform, "time", false, "animate the 3D shader with the frame counter")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "open the visualizer window",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal preview of the field",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().IntVar(&workers, "workers", 0, "field sampler goroutines (0 = one per CPU)")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "step the simulation headless and report metrics",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&ticks, "ticks", 600, "number of ticks")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  printConfig,
	}
	configCmd.Flags().StringVarP(&outFile, "output", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(runCmd, tuiCmd, traceCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file and the flags the user actually
// set, in that order of precedence from lowest to highest.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("mode") {
		o.Mode = &mode
	}
	if flags.Changed("count") {
		o.Count = &count
	}
	if flags.Changed("threshold") {
		o.Threshold = &threshold
	}
	if flags.Changed("seed") {
		o.Seed = &seed
	}
	if flags.Changed("width") {
		o.Width = &width
	}
	if flags.Changed("height") {
		o.Height = &height
	}
	if flags.Changed("shaders") {
		o.ShaderDir = &shaderDir
	}
	if flags.Changed("time") {
		o.TimeUniform = &timeUniform
	}

	cfg, err := config.Resolve(preset, configFile, o)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration", "preset", cfg.Preset, "mode", cfg.Mode, "count", cfg.Count, "threshold", cfg.Threshold)
	return cfg, nil
}

func newEngine(cmd *cobra.Command) (*config.Config, *sim.Engine, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	engine, err := sim.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, engine, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, engine, err := newEngine(cmd)
	if err != nil {
		return err
	}

	app, err := gui.NewApp(cfg, engine)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(context.Background())
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, engine, err := newEngine(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("workers") {
		compute.SetBackend(compute.NewCPUBackendWorkers(workers))
	}

	title := cfg.Preset
	if title == "" {
		title = cfg.Window.Title
	}
	p := tea.NewProgram(viz.NewModel(engine, title), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	_, engine, err := newEngine(cmd)
	if err != nil {
		return err
	}

	ms := metrics.All()
	for _, m := range ms {
		engine.AddMetric(m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := engine.Run(ctx, ticks)
	if err != nil && result == nil {
		return err
	}

	fmt.Printf("seed %d, %d entities, %d ticks\n\n", engine.Seed, engine.Store.Active(), result.Ticks)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, m := range ms {
		fmt.Fprintf(w, "%s\t%.4f\n", m.Name(), result.Metrics[m.Name()])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(result.Energy) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(result.Energy, asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("Kinetic energy")))
	}
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODE\tCOUNT\tTHRESHOLD\tTIME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%d\t%g\t%v\n", name, p.Mode, p.Count, p.Threshold, p.TimeUniform)
	}
	return w.Flush()
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if outFile != "" {
		if err := config.Save(outFile, cfg); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
