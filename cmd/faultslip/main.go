package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/faultslip/internal/config"
	"github.com/san-kum/faultslip/internal/friction"
	"github.com/san-kum/faultslip/internal/storage"
	"github.com/san-kum/faultslip/internal/sweep"
	"github.com/san-kum/faultslip/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	aFlag   float64
	bFlag   float64
	muRef   float64
	vRef    float64
	k1      float64
	mu0     float64
	dc      float64
	damping bool

	tStart   float64
	tFinal   float64
	numSteps int
	seed     int64

	dcLow   float64
	dcHigh  float64
	dcCount int

	parallel bool
	noPlot   bool
	noisy    bool
	svgPath  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "faultslip",
		Short: "rate-and-state fault slip data generator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".faultslip", "data directory")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run a family of simulations over a Dc grid",
		RunE:  runSweep,
	}
	addModelFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&dcLow, "dc-low", config.DefaultDcLow, "lowest critical slip distance (um)")
	sweepCmd.Flags().Float64Var(&dcHigh, "dc-high", config.DefaultDcHigh, "largest critical slip distance (um)")
	sweepCmd.Flags().IntVar(&dcCount, "dc-count", config.DefaultDcCount, "number of Dc values")
	sweepCmd.Flags().BoolVar(&parallel, "parallel", false, "evaluate Dc values concurrently")
	sweepCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip terminal plots")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a single simulation",
		RunE:  runSingle,
	}
	addModelFlags(runCmd)
	runCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip terminal plot")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().BoolVar(&noisy, "noisy", false, "plot the noise-perturbed series")
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "write the plot as SVG to this path instead")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "play back a simulation in the terminal",
		RunE:  runLive,
	}
	addModelFlags(liveCmd)

	rootCmd.AddCommand(sweepCmd, runCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&aFlag, "a", friction.DefaultA, "direct-effect constant")
	cmd.Flags().Float64Var(&bFlag, "b", friction.DefaultB, "evolution-effect constant")
	cmd.Flags().Float64Var(&muRef, "mu-ref", friction.DefaultMuRef, "reference friction coefficient")
	cmd.Flags().Float64Var(&vRef, "v-ref", friction.DefaultVRef, "reference slip velocity")
	cmd.Flags().Float64Var(&k1, "k1", friction.DefaultK1, "radiation-damping coefficient")
	cmd.Flags().Float64Var(&mu0, "mu0", config.DefaultMuTZero, "initial friction coefficient (mu_t_zero)")
	cmd.Flags().Float64Var(&dc, "dc", 10.0, "critical slip distance (um)")
	cmd.Flags().BoolVar(&damping, "damping", true, "apply radiation damping")
	cmd.Flags().Float64Var(&tStart, "t-start", friction.DefaultTStart, "simulation start time (sec)")
	cmd.Flags().Float64Var(&tFinal, "t-final", friction.DefaultTFinal, "simulation end time (sec)")
	cmd.Flags().IntVar(&numSteps, "steps", friction.DefaultNumSteps, "number of time samples")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "noise seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig resolves preset, config file, and flags, in increasing
// precedence, the same way flags override config in dynsim-style CLIs.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("a") {
		cfg.A = aFlag
	}
	if flags.Changed("b") {
		cfg.B = bFlag
	}
	if flags.Changed("mu-ref") {
		cfg.MuRef = muRef
	}
	if flags.Changed("v-ref") {
		cfg.VRef = vRef
	}
	if flags.Changed("k1") {
		cfg.K1 = k1
	}
	if flags.Changed("mu0") {
		cfg.MuTZero = mu0
	}
	if flags.Changed("dc") || cfg.Dc == 0 {
		cfg.Dc = dc
	}
	if flags.Changed("damping") {
		cfg.RadiationDamping = damping
	}
	if flags.Changed("t-start") {
		cfg.TStart = tStart
	}
	if flags.Changed("t-final") {
		cfg.TFinal = tFinal
	}
	if flags.Changed("steps") {
		cfg.NumSteps = numSteps
	}
	if cfg.Seed == 0 || flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("dc-low") {
		cfg.Sweep.DcLow = dcLow
	}
	if flags.Changed("dc-high") {
		cfg.Sweep.DcHigh = dcHigh
	}
	if flags.Changed("dc-count") {
		cfg.Sweep.Count = dcCount
	}
	if cfg.Sweep.Count == 0 {
		cfg.Sweep = config.SweepConfig{DcLow: config.DefaultDcLow, DcHigh: config.DefaultDcHigh, Count: config.DefaultDcCount}
	}
	return cfg, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	dcs := sweep.DcRange(cfg.Sweep.DcLow, cfg.Sweep.DcHigh, cfg.Sweep.Count)
	sw := sweep.New(cfg.Params(), cfg.Seed)

	fmt.Printf("sweeping %d Dc values from %g to %g um...\n", len(dcs), cfg.Sweep.DcLow, cfg.Sweep.DcHigh)
	start := time.Now()

	var runs []sweep.Run
	if parallel {
		runs, err = sw.RunParallel(context.Background(), dcs)
	} else {
		runs, err = sw.Run(context.Background(), dcs)
	}
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	for _, r := range runs {
		runID, err := st.Save(r.Dc, r.Seed, cfg.Params().WithDc(r.Dc), r.Series)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
		if !noPlot {
			fmt.Println(viz.PlotAcceleration(r.Series, r.Dc))
			fmt.Println()
		}
	}
	return nil
}

func runSingle(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	params := cfg.Params()
	series, err := params.Evaluate(friction.GaussianNoise(rand.New(rand.NewSource(cfg.Seed))))
	if err != nil {
		return err
	}

	runID, err := st.Save(params.Dc, cfg.Seed, params, series)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", series.Len())
	if !noPlot {
		fmt.Println(viz.PlotAcceleration(series, params.Dc))
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDC\tTIME\tSTEPS\tDAMPING\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%g\t%s\t%d\t%t\t%d\n",
			run.ID,
			run.Dc,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Params.NumSteps,
			run.Params.RadiationDamping,
			run.Seed,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if series.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	if svgPath != "" {
		if err := viz.SaveSVG(svgPath, series, meta.Dc); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
		return nil
	}

	if noisy {
		fmt.Println(viz.PlotNoisy(series, meta.Dc))
	} else {
		fmt.Println(viz.PlotAcceleration(series, meta.Dc))
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, series)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta, series)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	params := cfg.Params()
	series, err := params.Evaluate(friction.GaussianNoise(rand.New(rand.NewSource(cfg.Seed))))
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(series, params.Dc))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
