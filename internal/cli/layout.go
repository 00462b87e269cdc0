package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttcal/pkg/calendar"
	"github.com/matzehuels/ganttcal/pkg/pipeline"
	"github.com/matzehuels/ganttcal/pkg/render/sink"
)

// layoutCommand creates the layout command for inspecting computed plans.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags   headerFlags
		noCache bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "layout [config]",
		Short: "Compute a calendar header plan and print it",
		Long: `Compute a calendar header plan and print it.

The plan lists every top-row group (separator line and label anchor) and every
bottom-row unit label in draw order. Use --json for the same document that
'render -f json' writes.

Results are cached locally for faster subsequent runs.`,
		Example: `  ganttcal layout --start 2024-01-29 --end 2024-02-04
  ganttcal layout --start 2023-06-01 --end 2024-05-31 --mode month --direction rtl --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd, args)
			if err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), opts, noCache, asJSON)
		},
	}

	flags.registerLayout(cmd)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plan as JSON")

	return cmd
}

// runLayout seeds ticks, computes the plan and writes it to w.
func (c *CLI) runLayout(ctx context.Context, w io.Writer, opts pipeline.Options, noCache, asJSON bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	ticks, err := runner.Seed(ctx, opts)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	plan, hit, err := runner.ComputeLayoutWithCacheInfo(ctx, ticks, opts)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	if asJSON {
		data, err := sink.RenderJSON(plan, sink.WithJSONLocale(opts.Locale), sink.WithJSONRange(opts.Start, opts.End))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%s header · %d ticks · width %g", plan.Mode, plan.TickCount, plan.Width)))
	fmt.Fprintln(w, planTable(plan))
	printStats(string(plan.Mode), plan.TickCount, len(plan.Groups), hit)
	if plan.Direction == calendar.RTL {
		printDetail("coordinates mirrored for right-to-left reading")
	}
	return nil
}

// planTable renders groups and units as a bordered table.
func planTable(p calendar.Plan) string {
	rows := make([][]string, 0, len(p.Groups)+len(p.Units))
	for _, g := range p.Groups {
		rows = append(rows, []string{"group", g.Text, g.Anchor.String(), fmt.Sprintf("%s–%s", g.LineStart, g.LineEnd)})
	}
	for _, u := range p.Units {
		rows = append(rows, []string{"unit", u.Text, calendar.Point{X: u.X, Y: u.Y}.String(), ""})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	groupCount := len(p.Groups)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Row", "Text", "Anchor", "Separator").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col == 2 || col == 3:
				return base.Foreground(colorCyan)
			case row < groupCount:
				return base.Foreground(colorWhite).Bold(true)
			default:
				return base.Foreground(colorGray)
			}
		})
	return t.Render()
}
