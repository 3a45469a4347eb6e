package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/kuramoto/internal/config"
	"github.com/san-kum/kuramoto/internal/dataset"
	"github.com/san-kum/kuramoto/internal/kuramoto"
	"github.com/san-kum/kuramoto/internal/render"
	"github.com/san-kum/kuramoto/internal/viz"
)

var (
	verbose bool

	log = zap.NewNop()
)

// main executes the root command, exiting with status 1 on error.
func main() {
	err := newRootCmd().Execute()
	_ = log.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd registers the commands and flags of the kuramoto CLI. Flag
// values are read back from each command's own flag set.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kuramoto",
		Short:         "animate kuramoto oscillator phases on the unit circle",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			log = l
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")

	renderCmd := &cobra.Command{
		Use:   "render [phases]",
		Short: "render an animation to gif or html",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	addRenderFlags(renderCmd)
	renderCmd.Flags().StringP("out", "o", "", "output file (.gif, .html)")
	renderCmd.Flags().String("html", "", "also write an embeddable html snippet here")

	previewCmd := &cobra.Command{
		Use:   "preview [phases]",
		Short: "play the animation in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	addRenderFlags(previewCmd)
	previewCmd.Flags().StringP("out", "o", "kuramoto.gif", "export path for the g key")
	previewCmd.Flags().String("theme", "", "color theme")

	statsCmd := &cobra.Command{
		Use:   "stats [phases]",
		Short: "plot the order parameter over time",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().String("freqs", "", "natural frequencies file (.csv, .json)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list render presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tINTERVAL\tSTEPS\tAVERAGE\tSIZE\tDPI")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dms\t%d\t%v\t%.1fin\t%d\n",
					name, p.IntervalMs, p.StepsPerFrame, p.ShowAverage, p.Canvas.SizeInches, p.Canvas.DPI)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage render config files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	})

	rootCmd.AddCommand(renderCmd, previewCmd, statsCmd, presetsCmd, configCmd)
	return rootCmd
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().String("freqs", "", "natural frequencies file (.csv, .json)")
	cmd.Flags().Bool("average", false, "show the mean-field position")
	cmd.Flags().Int("interval", config.DefaultIntervalMs, "delay between frames in ms")
	cmd.Flags().Int("steps", config.DefaultStepsPerFrame, "timesteps per frame")
	cmd.Flags().String("config", "", "config file path (yaml)")
	cmd.Flags().String("preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order of precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	cfg := config.DefaultConfig()

	if preset, _ := flags.GetString("preset"); preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		log.Debug("applied preset", zap.String("preset", preset))
	}

	if configFile, _ := flags.GetString("config"); configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		log.Debug("loaded config", zap.String("path", configFile))
	}

	if flags.Changed("freqs") {
		cfg.Frequencies, _ = flags.GetString("freqs")
	}
	if flags.Changed("average") {
		cfg.ShowAverage, _ = flags.GetBool("average")
	}
	if flags.Changed("interval") {
		cfg.IntervalMs, _ = flags.GetInt("interval")
	}
	if flags.Changed("steps") {
		cfg.StepsPerFrame, _ = flags.GetInt("steps")
	}
	if flags.Lookup("out") != nil && (flags.Changed("out") || cfg.Output == "") {
		cfg.Output, _ = flags.GetString("out")
	}
	if flags.Changed("theme") {
		cfg.Preview.Theme, _ = flags.GetString("theme")
	}

	return cfg, cfg.Validate()
}

func loadEnsemble(path, freqPath string) (*kuramoto.Ensemble, error) {
	data, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}

	freqs := data.NaturalFrequencies
	if freqPath != "" {
		freqs, err = dataset.LoadFrequencies(freqPath)
		if err != nil {
			return nil, err
		}
	}

	ens, err := kuramoto.New(data.Phases, freqs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("loaded phases",
		zap.String("path", path),
		zap.Int("oscillators", ens.Oscillators()),
		zap.Int("steps", ens.Steps()),
		zap.Bool("frequencies", ens.HasFrequencies()),
	)
	return ens, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	htmlOut, _ := cmd.Flags().GetString("html")
	if cfg.Output == "" && htmlOut == "" {
		return fmt.Errorf("nothing to write: pass --out or --html")
	}

	ens, err := loadEnsemble(args[0], cfg.Frequencies)
	if err != nil {
		return err
	}

	start := time.Now()
	anim, err := render.Render(ens, cfg.RenderOptions())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	log.Info("rendered animation",
		zap.Int("frames", anim.FrameCount()),
		zap.Duration("elapsed", elapsed),
		zap.String("output", cfg.Output),
	)

	if htmlOut != "" {
		if err := anim.SaveSnippet(htmlOut); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rendered %d frames in %v\n", anim.FrameCount(), elapsed.Round(time.Millisecond))
	if cfg.Output != "" {
		fmt.Fprintf(out, "output: %s\n", cfg.Output)
	}
	if htmlOut != "" {
		fmt.Fprintf(out, "html: %s\n", htmlOut)
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ens, err := loadEnsemble(args[0], cfg.Frequencies)
	if err != nil {
		return err
	}

	opts := cfg.RenderOptions()
	exportPath := opts.Output
	opts.Output = ""
	return viz.RunPreview(ens, opts, viz.GetTheme(cfg.Preview.Theme), exportPath)
}

func runStats(cmd *cobra.Command, args []string) error {
	freqFile, _ := cmd.Flags().GetString("freqs")
	ens, err := loadEnsemble(args[0], freqFile)
	if err != nil {
		return err
	}

	r, _ := ens.Positions().OrderParameter()
	mean, lo, hi := 0.0, r[0], r[0]
	for _, v := range r {
		mean += v
		lo = min(lo, v)
		hi = max(hi, v)
	}
	mean /= float64(len(r))

	fmt.Printf("oscillators: %d\n", ens.Oscillators())
	fmt.Printf("steps: %d\n", ens.Steps())
	if wlo, whi, ok := ens.FrequencyRange(); ok {
		fmt.Printf("natural frequencies: [%.4f, %.4f]\n", wlo, whi)
	}
	fmt.Printf("order parameter: mean %.4f  min %.4f  max %.4f  final %.4f\n\n", mean, lo, hi, r[len(r)-1])

	fmt.Println(asciigraph.Plot(r,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Caption("order parameter r vs timestep"),
	))
	return nil
}
