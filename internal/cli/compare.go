package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/piwi3910/SquarePack/internal/engine"
	"github.com/spf13/cobra"
)

type compareOptions struct {
	settings settingsFlags
	input    inputFlags
}

func newCompareCommand(a *app) *cobra.Command {
	opts := &compareOptions{}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run the same rectangles under alternative settings",
		Long: `Run the current settings next to the other improvement policy, the
other search algorithm, no margin and five times the trials.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCompare(cmd, opts)
		},
	}
	opts.settings.register(cmd)
	opts.input.register(cmd)
	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, opts *compareOptions) error {
	settings, auto, err := a.resolveSettings(cmd, &opts.settings)
	if err != nil {
		return err
	}
	rects, err := a.loadRectangles(cmd, &opts.input, settings.Seed)
	if err != nil {
		return err
	}
	if auto {
		settings.SpaceSize = 1
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	if auto {
		settings.SpaceSize = engine.New(settings).WithLogger(a.log).OptimizeSmallestSpace(rects).SpaceSize
	}

	results := engine.CompareScenarios(engine.BuildDefaultScenarios(settings), rects, a.log)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tSUCCESS\tBOX\tAREA\tEFFICIENCY\tSUCCESSFUL TRIALS")
	for _, r := range results {
		box := "-"
		if r.Result.Success {
			box = fmt.Sprintf("%dx%d", r.Result.Width, r.Result.Height)
		}
		fmt.Fprintf(tw, "%s\t%t\t%s\t%d\t%.1f%%\t%d/%d\n",
			r.Scenario.Name, r.Result.Success, box, r.Area, r.Efficiency, r.Result.SuccessfulTrials, r.Result.Trials)
	}
	return tw.Flush()
}
