package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttcal/pkg/pipeline"
)

// renderCommand creates the render command for writing header artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags   headerFlags
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "render [config]",
		Short: "Render a calendar header to SVG, JSON, PDF or PNG",
		Long: `Render a calendar header to one or more files.

Options are read from an optional TOML, YAML or JSON config file. Flags set on
the command line override values from the file. Ticks are seeded from
--start/--end at the granularity of --mode, or given explicitly with --ticks.

PDF and PNG output require rsvg-convert on the PATH.`,
		Example: `  ganttcal render --start 2024-01-29 --end 2024-03-01 --mode week
  ganttcal render header.toml -f svg,png -o build/header`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd, args)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, configName(args), noCache)
		},
	}

	flags.registerLayout(cmd)
	flags.registerRender(cmd)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, input string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)

	var spinner *Spinner
	if needsConverter(opts.Formats) {
		spinner = newSpinnerWithContext(ctx, "Converting header...")
		spinner.Start()
	}
	result, err := runner.Execute(ctx, opts)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Conversion failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := basePath(opts.Output, input)
	single := len(result.Artifacts) == 1 && opts.Output != ""

	formats := make([]string, 0, len(result.Artifacts))
	for f := range result.Artifacts {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	var paths []string
	for _, format := range formats {
		path := base + "." + format
		if single {
			path = opts.Output
		} else if path == input {
			path = base + "_header." + format
		}
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		paths = append(paths, path)
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(paths)))

	printSuccess("Header rendered")
	for _, p := range paths {
		printFile(p)
	}
	printStats(string(result.Plan.Mode), result.Stats.TickCount, result.Stats.GroupCount,
		result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	printNextStep("Preview in the terminal", fmt.Sprintf("%s preview --mode %s", appName, result.Plan.Mode))
	return nil
}

// needsConverter reports whether any format is produced by rsvg-convert.
func needsConverter(formats []string) bool {
	return slices.Contains(formats, pipeline.FormatPDF) || slices.Contains(formats, pipeline.FormatPNG)
}

// configName returns the config path argument, if any.
func configName(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// basePath derives the base output path (without extension).
// An explicit output wins, with any known format extension stripped.
// Otherwise the config file name is used, and "header" without one.
func basePath(output, input string) string {
	if output != "" {
		ext := filepath.Ext(output)
		if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	if input != "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	return "header"
}

// writeArtifact writes data to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}
