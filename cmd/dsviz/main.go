package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/san-kum/dsviz/internal/bst"
	"github.com/san-kum/dsviz/internal/config"
	"github.com/san-kum/dsviz/internal/export"
	"github.com/san-kum/dsviz/internal/gui"
	"github.com/san-kum/dsviz/internal/logging"
	"github.com/san-kum/dsviz/internal/scenario"
	"github.com/san-kum/dsviz/internal/storage"
	"github.com/san-kum/dsviz/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	theme      string
	verbose    bool
	// Frame rate for the window
	frameRate int
	// Fixed step for headless runs
	dt      float64
	noSave  bool
	runAll  bool
	outFile string
	svgFile string
)

// main registers the commands and flags, opens the window when no
// subcommand is given, and exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "dsviz",
		Short:        "animated binary search tree for teaching demos",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "display preset (see presets)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme,
		"terminal color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine activity")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the tree in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "open the tree in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	runCmd := &cobra.Command{
		Use:   "run [scenario|preset]",
		Short: "play a scenario headlessly and save the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().BoolVar(&runAll, "all", false, "run every preset concurrently")
	runCmd.Flags().Float64Var(&dt, "dt", scenario.DefaultDt, "frame step")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run activity",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgFile, "svg", "", "also write the timeline as SVG")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [scenario|preset]",
		Short: "play a scenario and write its final frame as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().Float64Var(&dt, "dt", scenario.DefaultDt, "frame step")
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario and display presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("scenarios:")
			for _, name := range scenario.ListPresets() {
				fmt.Printf("  %-12s %s\n", name, scenario.Presets[name].Description)
			}
			fmt.Println("display:")
			for _, name := range config.ListPresets() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, listCmd, plotCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the preset, then the config file, then flags that
// were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return nil, errors.Wrapf(config.ErrUnknownPreset, "%s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("fps") {
		cfg.Screen.FPS = frameRate
	}
	return cfg, cfg.Validate()
}

func logger() logging.Logger {
	if verbose {
		return logging.DefaultLogger{}
	}
	return logging.Discard
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tree := bst.New(cfg.EngineParams(), bst.WithLogger(logger()))
	gui.Run(tree, cfg.Screen.FPS, logger())
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tree := bst.New(cfg.EngineParams())
	_, err = tea.NewProgram(viz.NewModel(tree, cfg.Theme), tea.WithAltScreen()).Run()
	return err
}

func playScenario(cmd *cobra.Command, name string) (*config.Config, *scenario.Scenario, *scenario.Result, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	sc, err := scenario.Resolve(name)
	if err != nil {
		return nil, nil, nil, err
	}
	if cmd.Flags().Changed("dt") {
		sc.Dt = dt
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := scenario.Run(ctx, sc, cfg.EngineParams(), logger())
	if err != nil {
		return nil, nil, nil, errors.Wrapf(err, "running %s", sc.Name)
	}
	return cfg, sc, res, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	if runAll {
		return runPresets(cmd)
	}
	if len(args) != 1 {
		return errors.New("run needs a scenario file or preset name, or --all")
	}
	cfg, sc, res, err := playScenario(cmd, args[0])
	if err != nil {
		return err
	}
	printResult(sc, res)
	return saveRun(cfg, sc, res)
}

func runPresets(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scs := scenario.AllPresets()
	if cmd.Flags().Changed("dt") {
		for _, sc := range scs {
			sc.Dt = dt
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := scenario.RunAll(ctx, scs, cfg.EngineParams(), logger())
	if err != nil {
		return err
	}
	for i, res := range results {
		printResult(scs[i], res)
		if err := saveRun(cfg, scs[i], res); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

func printResult(sc *scenario.Scenario, res *scenario.Result) {
	fmt.Printf("scenario: %s\n", sc.Name)
	fmt.Printf("frames: %d (%.2fs)\n", len(res.Frames), res.Metrics["duration"])
	fmt.Printf("in-order: %v\n", res.InOrder)
	for _, e := range res.Events {
		switch e.Kind {
		case bst.EventFound, bst.EventNotFound, bst.EventSuperseded:
			fmt.Printf("  %6.2fs %s %s %d\n", e.Time, e.Kind, e.Op, e.Value)
		}
	}
}

func saveRun(cfg *config.Config, sc *scenario.Scenario, res *scenario.Result) error {
	if noSave {
		return nil
	}
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(sc, cfg.EngineParams(), res)
	if err != nil {
		logger().Errorf("saving %s: %v", sc.Name, err)
		return err
	}
	fmt.Printf("saved: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	runs, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Scenario", "Time", "Frames", "Dt", "Nodes", "Found", "Missed"})
	for _, run := range runs {
		table.Append([]string{
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d", run.Frames),
			fmt.Sprintf("%.4fs", run.Dt),
			fmt.Sprintf("%d", len(run.InOrder)),
			fmt.Sprintf("%.0f", run.Metrics["found"]),
			fmt.Sprintf("%.0f", run.Metrics["not-found"]),
		})
	}
	table.Render()
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return errors.New("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("frames: %d\n\n", len(frames))

	moving := make([]float64, len(frames))
	dist := make([]float64, len(frames))
	for i, f := range frames {
		moving[i] = float64(f.Animating)
		dist[i] = f.MeanDistance
	}
	fmt.Println(asciigraph.Plot(moving, asciigraph.Height(8), asciigraph.Width(70), asciigraph.Caption("moving nodes")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(dist, asciigraph.Height(8), asciigraph.Width(70), asciigraph.Caption("mean distance to target")))

	if svgFile != "" {
		svg := export.TimelineToSVG(frames, 800, 200, "#00ff88")
		if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
			return errors.Wrapf(err, "writing %s", svgFile)
		}
		fmt.Printf("\nwrote %s\n", svgFile)
	}
	return nil
}

func output() (*os.File, func() error, error) {
	if outFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "creating %s", outFile)
	}
	return f, f.Close, nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	w, closeFn, err := output()
	if err != nil {
		return err
	}
	if err := storage.New(cfg.DataDir).ExportJSON(args[0], w); err != nil {
		_ = closeFn()
		return err
	}
	return closeFn()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, _, res, err := playScenario(cmd, args[0])
	if err != nil {
		return err
	}
	w, closeFn, err := output()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, export.TreeToSVG(res.Tree, cfg.Screen.Width, cfg.Screen.Height)); err != nil {
		_ = closeFn()
		return err
	}
	return closeFn()
}
