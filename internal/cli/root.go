// Package cli wires the squarepack commands together.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/piwi3910/SquarePack/internal/generator"
	"github.com/piwi3910/SquarePack/internal/importer"
	"github.com/piwi3910/SquarePack/internal/logger"
	"github.com/piwi3910/SquarePack/internal/model"
	"github.com/piwi3910/SquarePack/internal/project"
	"github.com/spf13/cobra"
)

// ErrPlacementFailed is returned by pack when no trial placed every
// rectangle. The failure line has already been printed.
var ErrPlacementFailed = errors.New("unable to place all rectangles")

// app carries state shared by every command.
type app struct {
	configPath   string
	profilesPath string
	profile      string
	logLevel     string
	logFormat    string

	config model.AppConfig
	log    *slog.Logger
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "squarepack",
		Short: "Pack rectangles into the smallest box inside a square",
		Long: `squarepack places rectangles into a square space using recursive
guillotine splitting and randomized search, and reports the smallest
bounding box found.

Examples:
  squarepack pack
  squarepack pack -n 30 --space auto --pdf layout.pdf
  squarepack pack --input rects.csv --policy area --workers 4
  squarepack compare --input rects.xlsx
  squarepack generate -n 50 -o rects.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", project.DefaultConfigPath(), "Config file")
	pf.StringVar(&a.profilesPath, "profiles", project.DefaultProfilesPath(), "Settings profiles file")
	pf.StringVarP(&a.profile, "profile", "p", "", "Named settings profile to start from")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(
		newPackCommand(a),
		newCompareCommand(a),
		newGenerateCommand(a),
		newProfileCommand(a),
	)
	return root
}

// setup loads the config file and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := project.LoadAppConfig(a.configPath)
	if err != nil {
		return err
	}
	a.config = cfg

	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	format := cfg.LogFormat
	if a.logFormat != "" {
		format = a.logFormat
	}
	a.log = logger.NewFormat(format, level, cmd.ErrOrStderr())
	logger.SetDefault(a.log)
	return nil
}

// settingsFlags are the optimizer flags shared by pack, compare and
// profile save. Only flags the user set override the resolved settings.
type settingsFlags struct {
	space     string
	trials    int
	margin    int
	seed      int64
	policy    string
	algorithm string
	workers   int
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.space, "space", "s", "", `Side of the square space, or "auto" to search from the lower bound`)
	fs.IntVarP(&f.trials, "trials", "t", 0, "Number of shuffled trials")
	fs.IntVarP(&f.margin, "margin", "m", 0, "Empty band on every side of a rectangle")
	fs.Int64Var(&f.seed, "seed", 0, "Random seed, 0 for time based")
	fs.StringVar(&f.policy, "policy", "", "Improvement policy: conjunctive or area")
	fs.StringVar(&f.algorithm, "algorithm", "", "Search algorithm: shuffle or genetic")
	fs.IntVarP(&f.workers, "workers", "w", 0, "Trials evaluated concurrently")
}

// resolveSettings layers defaults, config, profile and flags. auto reports
// whether --space auto was requested.
func (a *app) resolveSettings(cmd *cobra.Command, f *settingsFlags) (s model.Settings, auto bool, err error) {
	s = model.DefaultSettings()
	a.config.ApplyToSettings(&s)

	if a.profile != "" {
		profiles, err := project.LoadProfiles(a.profilesPath)
		if err != nil {
			return s, false, err
		}
		p, err := project.FindProfile(profiles, a.profile)
		if err != nil {
			return s, false, err
		}
		s = p.Settings
	}

	fs := cmd.Flags()
	if fs.Changed("space") {
		if strings.EqualFold(f.space, "auto") {
			auto = true
		} else {
			n, err := strconv.Atoi(f.space)
			if err != nil {
				return s, false, fmt.Errorf("invalid --space %q: want an integer or \"auto\"", f.space)
			}
			s.SpaceSize = n
		}
	}
	if fs.Changed("trials") {
		s.Trials = f.trials
	}
	if fs.Changed("margin") {
		s.Margin = f.margin
	}
	if fs.Changed("seed") {
		s.Seed = f.seed
	}
	if fs.Changed("policy") {
		s.Policy = model.Policy(strings.ToLower(f.policy))
	}
	if fs.Changed("algorithm") {
		s.Algorithm = model.Algorithm(strings.ToLower(f.algorithm))
	}
	if fs.Changed("workers") {
		s.Workers = f.workers
	}
	return s, auto, nil
}

// inputFlags select where rectangles come from: a file, or the generator.
type inputFlags struct {
	input   string
	count   int
	minSide int
	maxSide int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.input, "input", "i", "", "Read rectangles from a CSV, Excel, DXF or saved run (.json) file")
	f.registerGenerator(cmd)
}

func (f *inputFlags) registerGenerator(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&f.count, "count", "n", 0, "Number of rectangles to generate (default from config)")
	fs.IntVar(&f.minSide, "min", 0, "Smallest generated side (default from config)")
	fs.IntVar(&f.maxSide, "max", 0, "Largest generated side (default from config)")
}

// generate draws rectangles using the flag values, falling back to config.
func (a *app) generate(cmd *cobra.Command, f *inputFlags, seed int64) ([]model.Rectangle, error) {
	fs := cmd.Flags()
	count, minSide, maxSide := a.config.DefaultCount, a.config.MinSide, a.config.MaxSide
	if fs.Changed("count") {
		count = f.count
	}
	if fs.Changed("min") {
		minSide = f.minSide
	}
	if fs.Changed("max") {
		maxSide = f.maxSide
	}

	g, err := generator.New(seed).WithRange(minSide, maxSide)
	if err != nil {
		return nil, err
	}
	return g.Generate(count)
}

// loadRectangles reads the input file, or generates rectangles when no
// input was given.
func (a *app) loadRectangles(cmd *cobra.Command, f *inputFlags, seed int64) ([]model.Rectangle, error) {
	if f.input == "" {
		return a.generate(cmd, f, seed)
	}

	if strings.EqualFold(filepath.Ext(f.input), ".json") {
		run, err := project.LoadRun(f.input)
		if err != nil {
			return nil, err
		}
		return model.CloneRectangles(run.Rectangles), nil
	}

	res := importer.ImportFile(f.input)
	for _, w := range res.Warnings {
		a.log.Warn("import", "file", f.input, "detail", w)
	}
	for _, e := range res.Errors {
		a.log.Error("import", "file", f.input, "detail", e)
	}
	if len(res.Rectangles) == 0 {
		if len(res.Errors) > 0 {
			return nil, fmt.Errorf("import %s: %s", f.input, res.Errors[0])
		}
		return nil, fmt.Errorf("import %s: no rectangles found", f.input)
	}
	a.log.Info("imported rectangles", "file", f.input, "count", len(res.Rectangles))
	return res.Rectangles, nil
}
