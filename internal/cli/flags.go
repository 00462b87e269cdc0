package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttcal/pkg/pipeline"
)

// headerFlags binds pipeline options to command-line flags. Flags the user
// sets explicitly override values loaded from a config file.
type headerFlags struct {
	opts    pipeline.Options
	ticks   string
	formats string
}

// override copies one flag's value from src into dst.
type override func(dst, src *headerFlags)

var layoutOverrides = map[string]override{
	"start":         func(d, s *headerFlags) { d.opts.Start = s.opts.Start },
	"end":           func(d, s *headerFlags) { d.opts.End = s.opts.End },
	"ticks":         func(d, s *headerFlags) { d.opts.Ticks = splitList(s.ticks) },
	"mode":          func(d, s *headerFlags) { d.opts.Mode = s.opts.Mode },
	"column-width":  func(d, s *headerFlags) { d.opts.ColumnWidth = s.opts.ColumnWidth },
	"header-height": func(d, s *headerFlags) { d.opts.HeaderHeight = s.opts.HeaderHeight },
	"direction":     func(d, s *headerFlags) { d.opts.Direction = s.opts.Direction },
	"locale":        func(d, s *headerFlags) { d.opts.Locale = s.opts.Locale },
	"formatter":     func(d, s *headerFlags) { d.opts.Formatter = s.opts.Formatter },
	"month-variant": func(d, s *headerFlags) { d.opts.MonthVariant = s.opts.MonthVariant },
	"week-variant":  func(d, s *headerFlags) { d.opts.WeekVariant = s.opts.WeekVariant },
	"week-boundary": func(d, s *headerFlags) { d.opts.WeekBoundary = s.opts.WeekBoundary },
}

var renderOverrides = map[string]override{
	"format":      func(d, s *headerFlags) { d.opts.Formats = pipeline.ParseFormats(s.formats) },
	"output":      func(d, s *headerFlags) { d.opts.Output = s.opts.Output },
	"style":       func(d, s *headerFlags) { d.opts.Style = s.opts.Style },
	"background":  func(d, s *headerFlags) { d.opts.Colors.Background = s.opts.Colors.Background },
	"separator":   func(d, s *headerFlags) { d.opts.Colors.Separator = s.opts.Colors.Separator },
	"top-text":    func(d, s *headerFlags) { d.opts.Colors.TopText = s.opts.Colors.TopText },
	"bottom-text": func(d, s *headerFlags) { d.opts.Colors.BottomText = s.opts.Colors.BottomText },
	"font-family": func(d, s *headerFlags) { d.opts.FontFamily = s.opts.FontFamily },
	"font-size":   func(d, s *headerFlags) { d.opts.FontSize = s.opts.FontSize },
	"scale":       func(d, s *headerFlags) { d.opts.Scale = s.opts.Scale },
}

// registerLayout adds the flags that shape the computed plan.
func (f *headerFlags) registerLayout(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.opts.Start, "start", "", "first date of the timeline (YYYY-MM-DD)")
	fs.StringVar(&f.opts.End, "end", "", "last date of the timeline (YYYY-MM-DD)")
	fs.StringVar(&f.ticks, "ticks", "", "explicit comma-separated tick dates instead of --start/--end")
	fs.StringVarP(&f.opts.Mode, "mode", "m", string(pipeline.DefaultMode), "view mode: year, month, week, day")
	fs.Float64Var(&f.opts.ColumnWidth, "column-width", pipeline.DefaultColumnWidth, "width of one tick column")
	fs.Float64Var(&f.opts.HeaderHeight, "header-height", pipeline.DefaultHeaderHeight, "header height")
	fs.StringVar(&f.opts.Direction, "direction", "ltr", "text direction: ltr, rtl")
	fs.StringVar(&f.opts.Locale, "locale", "en", "locale for month and weekday names")
	fs.StringVar(&f.opts.Formatter, "formatter", "native", "date name formatter: native, monday")
	fs.StringVar(&f.opts.MonthVariant, "month-variant", "", "month mode variant: single (default), dual")
	fs.StringVar(&f.opts.WeekVariant, "week-variant", "", "week mode units: numbers (default), days")
	fs.StringVar(&f.opts.WeekBoundary, "week-boundary", "", "week mode group boundary: daywrap (default), month")
}

// registerRender adds the flags that control artifact output.
func (f *headerFlags) registerRender(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	fs.StringVarP(&f.opts.Output, "output", "o", "", "output file (single format) or base path (multiple)")
	fs.StringVar(&f.opts.Style, "style", pipeline.DefaultStyle, "visual style: simple, dark")
	fs.StringVar(&f.opts.Colors.Background, "background", "", "header background color")
	fs.StringVar(&f.opts.Colors.Separator, "separator", "", "separator line color")
	fs.StringVar(&f.opts.Colors.TopText, "top-text", "", "group label color")
	fs.StringVar(&f.opts.Colors.BottomText, "bottom-text", "", "unit label color")
	fs.StringVar(&f.opts.FontFamily, "font-family", "", "font family")
	fs.Float64Var(&f.opts.FontSize, "font-size", 0, "font size in pixels")
	fs.Float64Var(&f.opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")
}

// resolve loads the optional config file in args and applies every flag
// the user set on top of it.
func (f *headerFlags) resolve(cmd *cobra.Command, args []string) (pipeline.Options, error) {
	var base headerFlags
	if len(args) > 0 {
		opts, err := pipeline.LoadConfig(args[0])
		if err != nil {
			return pipeline.Options{}, err
		}
		base.opts = opts
	}
	for _, table := range []map[string]override{layoutOverrides, renderOverrides} {
		for name, apply := range table {
			if cmd.Flags().Changed(name) {
				apply(&base, f)
			}
		}
	}

	// A tick source given on the command line replaces the config's.
	fs := cmd.Flags()
	byTicks := fs.Changed("ticks")
	byRange := fs.Changed("start") || fs.Changed("end")
	switch {
	case byTicks && !byRange:
		base.opts.Start, base.opts.End = "", ""
	case byRange && !byTicks:
		base.opts.Ticks = nil
	}
	return base.opts, nil
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
