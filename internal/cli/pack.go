package cli

import (
	"fmt"
	"io"

	"github.com/piwi3910/SquarePack/internal/engine"
	"github.com/piwi3910/SquarePack/internal/export"
	"github.com/piwi3910/SquarePack/internal/model"
	"github.com/piwi3910/SquarePack/internal/project"
	"github.com/spf13/cobra"
)

// recentRunsLimit caps AppConfig.RecentRuns.
const recentRunsLimit = 10

type packOptions struct {
	settings settingsFlags
	input    inputFlags

	pdfPath    string
	labelsPath string
	dxfPath    string
	xlsxPath   string
	savePath   string
	name       string
	list       bool
}

func newPackCommand(a *app) *cobra.Command {
	opts := &packOptions{}
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack rectangles and report the smallest bounding box",
		Long: `Pack generated or imported rectangles into a square space.

Examples:
  squarepack pack -n 5 --seed 42
  squarepack pack --input rects.csv --space auto --pdf layout.pdf
  squarepack pack --algorithm genetic --xlsx result.xlsx --save run.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPack(cmd, opts)
		},
	}

	opts.settings.register(cmd)
	opts.input.register(cmd)

	fs := cmd.Flags()
	fs.StringVar(&opts.pdfPath, "pdf", "", "Write the layout and summary to a PDF file")
	fs.StringVar(&opts.labelsPath, "labels", "", "Write QR-coded labels to a PDF file")
	fs.StringVar(&opts.dxfPath, "dxf", "", "Write the layout to a DXF drawing")
	fs.StringVar(&opts.xlsxPath, "xlsx", "", "Write placements and summary to an Excel workbook")
	fs.StringVar(&opts.savePath, "save", "", "Save input, settings and result to a run file")
	fs.StringVar(&opts.name, "name", "", "Run name stored with --save")
	fs.BoolVarP(&opts.list, "list", "l", false, "Print every placed rectangle")
	return cmd
}

func (a *app) runPack(cmd *cobra.Command, opts *packOptions) error {
	settings, auto, err := a.resolveSettings(cmd, &opts.settings)
	if err != nil {
		return err
	}
	rects, err := a.loadRectangles(cmd, &opts.input, settings.Seed)
	if err != nil {
		return err
	}
	for _, r := range rects {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("rectangle %s: %w", r.Label, err)
		}
	}

	if auto {
		// Any positive side passes validation; the real side is searched.
		settings.SpaceSize = 1
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	opt := engine.New(settings).WithLogger(a.log)
	var result model.Result
	if auto {
		result = opt.OptimizeSmallestSpace(rects)
		settings.SpaceSize = result.SpaceSize
	} else {
		result = opt.Optimize(rects)
	}

	w := cmd.OutOrStdout()
	report(w, result)
	if opts.list && result.Success {
		listRectangles(w, result.Rectangles)
	}

	if opts.savePath != "" {
		if err := a.saveRun(opts, rects, settings, result); err != nil {
			return err
		}
	}

	if !result.Success {
		return ErrPlacementFailed
	}
	return writeExports(opts, result, settings)
}

// report prints the outcome line.
func report(w io.Writer, result model.Result) {
	if result.Success {
		fmt.Fprintf(w, "Placement successful. Minimal area: %dx%d\n", result.Width, result.Height)
		return
	}
	fmt.Fprintln(w, "Error: Unable to place all rectangles within the given space.")
}

func listRectangles(w io.Writer, rects []model.Rectangle) {
	for _, r := range rects {
		fmt.Fprintf(w, "  %-8s %3dx%-3d at %-10s Rotated: %t\n", r.Label, r.Width, r.Height, r.Placement, r.Rotated)
	}
}

func writeExports(opts *packOptions, result model.Result, settings model.Settings) error {
	if opts.pdfPath != "" {
		if err := export.ExportPDF(opts.pdfPath, result, settings); err != nil {
			return err
		}
	}
	if opts.labelsPath != "" {
		if err := export.ExportLabels(opts.labelsPath, result); err != nil {
			return err
		}
	}
	if opts.dxfPath != "" {
		if err := export.ExportDXF(opts.dxfPath, result); err != nil {
			return err
		}
	}
	if opts.xlsxPath != "" {
		if err := export.ExportExcel(opts.xlsxPath, result, settings); err != nil {
			return err
		}
	}
	return nil
}

// saveRun writes the run file and records it in the config's recent runs.
func (a *app) saveRun(opts *packOptions, rects []model.Rectangle, settings model.Settings, result model.Result) error {
	run := model.NewRun(opts.name, rects, settings)
	run.Result = &result
	if err := project.SaveRun(opts.savePath, run); err != nil {
		return err
	}
	a.log.Info("run saved", "path", opts.savePath, "id", run.ID)

	a.config.AddRecentRun(opts.savePath, recentRunsLimit)
	if err := project.SaveAppConfig(a.configPath, a.config); err != nil {
		return fmt.Errorf("update recent runs: %w", err)
	}
	return nil
}
