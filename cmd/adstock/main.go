package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantmix/adstock/internal/adstock"
	"github.com/quantmix/adstock/internal/config"
	"github.com/quantmix/adstock/internal/storage"
	"github.com/quantmix/adstock/internal/tui"
	"github.com/quantmix/adstock/internal/viz"
)

var (
	dataDir string
	lMax    int
	raw     bool
	mode    string

	alpha float64
	theta float64
	lam   float64
	kShp  float64

	amount float64
	draws  int
	seed   uint64

	inputFile  string
	column     int
	configFile string
	channel    string
	preset     string
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "adstock",
		Short: "marketing-mix adstock transformations",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".adstock", "data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list transformations",
		RunE:  listTransforms,
	}

	curveCmd := &cobra.Command{
		Use:   "curve [transform]",
		Short: "plot a decay curve",
		Args:  cobra.ExactArgs(1),
		RunE:  plotCurve,
	}
	addKernelFlags(curveCmd)
	curveCmd.Flags().Float64Var(&amount, "amount", 1.0, "exposure amount")

	sampleCmd := &cobra.Command{
		Use:   "sample [transform]",
		Short: "sample decay curves from the priors",
		Args:  cobra.ExactArgs(1),
		RunE:  sampleCurves,
	}
	sampleCmd.Flags().IntVar(&lMax, "lmax", adstock.DefaultLMax, "max carryover periods")
	sampleCmd.Flags().BoolVar(&raw, "raw", false, "skip kernel normalization")
	sampleCmd.Flags().StringVar(&mode, "mode", "after", "convolution mode (after/before/overlap)")
	sampleCmd.Flags().IntVar(&draws, "draws", 9, "number of prior draws")
	sampleCmd.Flags().Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "random seed")

	applyCmd := &cobra.Command{
		Use:   "apply [transform]",
		Short: "adstock a spend series from CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  applySeries,
	}
	addKernelFlags(applyCmd)
	applyCmd.Flags().StringVar(&inputFile, "input", "", "spend series CSV (required)")
	applyCmd.Flags().IntVar(&column, "column", 0, "spend column index")
	applyCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	applyCmd.Flags().StringVar(&channel, "channel", "", "channel name from config")
	applyCmd.MarkFlagRequired("input")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output path (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets [family]",
		Short: "list channel presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive curve explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(listCmd, curveCmd, sampleCmd, applyCmd, runsCmd, plotCmd, exportJSONCmd, presetsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addKernelFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&lMax, "lmax", adstock.DefaultLMax, "max carryover periods")
	cmd.Flags().BoolVar(&raw, "raw", false, "skip kernel normalization")
	cmd.Flags().StringVar(&mode, "mode", "after", "convolution mode (after/before/overlap)")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.5, "retention rate (geometric/delayed)")
	cmd.Flags().Float64Var(&theta, "theta", 1.0, "peak delay in periods (delayed)")
	cmd.Flags().Float64Var(&lam, "lam", 2.0, "weibull scale")
	cmd.Flags().Float64Var(&kShp, "k", 1.5, "weibull shape")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func options() adstock.Options {
	return adstock.Options{
		LMax:      lMax,
		Normalize: !raw,
		Mode:      adstock.ConvMode(mode),
	}
}

// kernelParams narrows the flag values down to the parameters the
// transformation actually has.
func kernelParams(tr adstock.Transformation) adstock.Params {
	all := adstock.Params{"alpha": alpha, "theta": theta, "lam": lam, "k": kShp}
	p := make(adstock.Params)
	for _, name := range tr.ParamNames() {
		p[name] = all[name]
	}
	return p
}

func listTransforms(cmd *cobra.Command, args []string) error {
	reg := adstock.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPARAM\tDEFAULT PRIOR")

	for _, name := range reg.List() {
		tr, err := reg.Get(name, adstock.DefaultOptions())
		if err != nil {
			return err
		}
		priors := tr.Priors()
		for _, param := range tr.ParamNames() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, param, priors[param])
		}
	}

	return w.Flush()
}

func resolveTransform(name string) (adstock.Transformation, adstock.Params, error) {
	reg := adstock.NewRegistry()

	if preset != "" {
		ch := config.GetPreset(name, preset)
		if ch == nil {
			return nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		tr, err := ch.Transform(reg)
		if err != nil {
			return nil, nil, err
		}
		return tr, ch.ParamValues(), nil
	}

	tr, err := reg.Get(name, options())
	if err != nil {
		return nil, nil, err
	}
	return tr, kernelParams(tr), nil
}

func plotCurve(cmd *cobra.Command, args []string) error {
	tr, params, err := resolveTransform(args[0])
	if err != nil {
		return err
	}

	w, err := tr.Weights(params)
	if err != nil {
		return err
	}

	curve, err := adstock.Curve(tr, params, amount)
	if err != nil {
		return err
	}

	caption := viz.KernelCaption(tr.Name(), adstock.HalfLife(w), adstock.MeanLag(w))
	fmt.Println(viz.CurvePlot(curve, caption))

	fmt.Printf("\nparams: %v\n", params)
	return nil
}

func sampleCurves(cmd *cobra.Command, args []string) error {
	reg := adstock.NewRegistry()
	tr, err := reg.Get(args[0], options())
	if err != nil {
		return err
	}

	params, curves, err := adstock.SampleCurves(tr, draws, seed)
	if err != nil {
		return err
	}

	fmt.Println(viz.CurvesPlot(curves, fmt.Sprintf("%s: %d draws from the priors", tr.Name(), draws)))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DRAW\tPARAMS\tHALF-LIFE\tMEAN LAG\tCURVE")
	for i, curve := range curves {
		fmt.Fprintf(w, "%d\t%v\t%d\t%.2f\t%s\n",
			i,
			params[i],
			adstock.HalfLife(curve),
			adstock.MeanLag(curve),
			viz.Sparkline(curve, 16),
		)
	}
	return w.Flush()
}

func applySeries(cmd *cobra.Command, args []string) error {
	var (
		tr     adstock.Transformation
		params adstock.Params
		chName string
		err    error
	)

	switch {
	case channel != "":
		if configFile == "" {
			return fmt.Errorf("--channel requires --config")
		}
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		ch, err := cfg.Find(channel)
		if err != nil {
			return err
		}
		tr, err = ch.Transform(adstock.NewRegistry())
		if err != nil {
			return err
		}
		params = ch.ParamValues()
		chName = ch.Name
	case len(args) == 1:
		tr, params, err = resolveTransform(args[0])
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("need a transform argument or --channel")
	}

	spend, err := readSpendCSV(inputFile, column)
	if err != nil {
		return err
	}

	adstocked, err := tr.Apply(spend, params)
	if err != nil {
		return err
	}

	w, err := tr.Weights(params)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(storage.RunMetadata{
		Channel:   chName,
		Transform: tr.Name(),
		LMax:      tr.MaxLag(),
		Mode:      string(tr.Mode()),
		Params:    params,
		Summary: map[string]float64{
			"half_life": float64(adstock.HalfLife(w)),
			"mean_lag":  adstock.MeanLag(w),
		},
	}, spend, adstocked)
	if err != nil {
		return err
	}

	fmt.Println(viz.SeriesPlot(spend, adstocked))
	fmt.Printf("\nsaved run: %s\n", runID)
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
	fmt.Fprintln(w, "ID\tCHANNEL\tTRANSFORM\tTIME\tL_MAX\tMODE\tPARAMS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%v\n",
			run.ID,
			run.Channel,
			run.Transform,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.LMax,
			run.Mode,
			run.Params,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}

	spend, adstocked, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %s %v\n\n", meta.ID, meta.Transform, meta.Params)
	fmt.Println(viz.SeriesPlot(spend, adstocked))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}

	spend, adstocked, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	if outFile == "" {
		return storage.ExportJSONStdout(meta, spend, adstocked)
	}
	if err := storage.ExportJSON(outFile, meta, spend, adstocked); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outFile)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	families := config.ListFamilies()
	if len(args) == 1 {
		families = []string{args[0]}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FAMILY\tPRESET\tADSTOCK\tL_MAX\tPARAMS")

	found := false
	for _, family := range families {
		for _, name := range config.ListPresets(family) {
			ch := config.GetPreset(family, name)
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%v\n", family, name, ch.Adstock, ch.LMax, ch.Params)
			found = true
		}
	}
	if !found && len(args) == 1 {
		fmt.Printf("no presets for family: %s\n", args[0])
		return nil
	}

	return w.Flush()
}

func readSpendCSV(path string, col int) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	spend := make([]float64, 0, len(records))
	for i, record := range records {
		if col >= len(record) {
			continue
		}
		v, err := strconv.ParseFloat(record[col], 64)
		if err != nil {
			// header row
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("bad value at row %d: %q", i, record[col])
		}
		spend = append(spend, v)
	}

	if len(spend) == 0 {
		return nil, fmt.Errorf("no spend values in %s", path)
	}
	return spend, nil
}
