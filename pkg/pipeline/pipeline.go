// Package pipeline provides the seed → layout → render pipeline for ganttcal.
//
// This package implements the complete pipeline used by the CLI commands and
// the HTTP server. By centralizing this logic, every entry point applies the
// same defaults, validation and caching.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Seed: Build the tick sequence from a date range, or parse explicit ticks
//  2. Layout: Compute the header plan with the calendar engine
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Start:   "2024-01-29",
//	    End:     "2024-03-01",
//	    Mode:    "week",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	ticks, err := opts.ResolveTicks()
//	plan, err := runner.ComputeLayout(ctx, ticks, opts)
//	artifacts, err := runner.Render(ctx, plan, opts)
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ganttcal/pkg/cache"
	"github.com/matzehuels/ganttcal/pkg/calendar"
	"github.com/matzehuels/ganttcal/pkg/dates"
	"github.com/matzehuels/ganttcal/pkg/errors"
	"github.com/matzehuels/ganttcal/pkg/render/styles"
	"github.com/matzehuels/ganttcal/pkg/timeline"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultColumnWidth is the width of one tick column in pixels.
	DefaultColumnWidth = 60.0

	// DefaultHeaderHeight is the full header height in pixels.
	DefaultHeaderHeight = 50.0

	// DefaultMode is the default view granularity.
	DefaultMode = calendar.ModeDay

	// DefaultStyle is the default visual style.
	DefaultStyle = "simple"

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the header pipeline.
// It is read from config files (TOML, YAML, JSON) and API requests.
type Options struct {
	// Seed options
	Start string   `json:"start,omitempty" toml:"start" yaml:"start,omitempty"`
	End   string   `json:"end,omitempty" toml:"end" yaml:"end,omitempty"`
	Ticks []string `json:"ticks,omitempty" toml:"ticks" yaml:"ticks,omitempty"`

	// Layout options
	Mode         string  `json:"mode,omitempty" toml:"mode" yaml:"mode,omitempty"`
	ColumnWidth  float64 `json:"column_width,omitempty" toml:"column_width" yaml:"column_width,omitempty"`
	HeaderHeight float64 `json:"header_height,omitempty" toml:"header_height" yaml:"header_height,omitempty"`
	Direction    string  `json:"direction,omitempty" toml:"direction" yaml:"direction,omitempty"`
	Locale       string  `json:"locale,omitempty" toml:"locale" yaml:"locale,omitempty"`
	Formatter    string  `json:"formatter,omitempty" toml:"formatter" yaml:"formatter,omitempty"`
	MonthVariant string  `json:"month_variant,omitempty" toml:"month_variant" yaml:"month_variant,omitempty"`
	WeekVariant  string  `json:"week_variant,omitempty" toml:"week_variant" yaml:"week_variant,omitempty"`
	WeekBoundary string  `json:"week_boundary,omitempty" toml:"week_boundary" yaml:"week_boundary,omitempty"`

	// Render options
	Formats    []string      `json:"formats,omitempty" toml:"formats" yaml:"formats,omitempty"`
	Style      string        `json:"style,omitempty" toml:"style" yaml:"style,omitempty"`
	Colors     styles.Colors `json:"colors,omitempty" toml:"colors" yaml:"colors,omitempty"`
	FontFamily string        `json:"font_family,omitempty" toml:"font_family" yaml:"font_family,omitempty"`
	FontSize   float64       `json:"font_size,omitempty" toml:"font_size" yaml:"font_size,omitempty"`
	Scale      float64       `json:"scale,omitempty" toml:"scale" yaml:"scale,omitempty"`

	// Output is the base path for written artifacts (CLI only).
	Output string `json:"-" toml:"output" yaml:"output,omitempty"`

	// Runtime options (not serialized)
	Refresh bool        `json:"-" toml:"-" yaml:"-"`
	Logger  *log.Logger `json:"-" toml:"-" yaml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Ticks is the resolved tick sequence.
	Ticks []time.Time

	// Plan is the computed header layout.
	Plan calendar.Plan

	// PlanHash is the content hash of the plan.
	PlanHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TickCount  int
	GroupCount int
	UnitCount  int
	SeedTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the plan came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is registered.
func ValidateStyle(style string) error {
	if style == "" {
		return errors.New(errors.ErrCodeInvalidStyle, "style cannot be empty")
	}
	_, err := styles.Lookup(style)
	return err
}

// ValidateTicks checks that ticks are strictly increasing. The engine
// assumes this and does not re-check it.
func ValidateTicks(ticks []time.Time) error {
	return timeline.Validate(ticks)
}

// ParseFormats splits a comma-separated format list.
func ParseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSeed(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForSeed checks that a tick source is present.
func (o *Options) ValidateForSeed() error {
	if len(o.Ticks) > 0 {
		if o.Start != "" || o.End != "" {
			return errors.New(errors.ErrCodeInvalidInput, "ticks cannot be combined with start/end")
		}
		return nil
	}
	if o.Start == "" || o.End == "" {
		return errors.New(errors.ErrCodeInvalidInput, "start and end dates (or an explicit tick list) are required")
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Mode == "" {
		o.Mode = string(DefaultMode)
	}
	if o.ColumnWidth == 0 {
		o.ColumnWidth = DefaultColumnWidth
	}
	if o.HeaderHeight == 0 {
		o.HeaderHeight = DefaultHeaderHeight
	}
	if o.Direction == "" {
		o.Direction = string(calendar.LTR)
	}
	if o.Locale == "" {
		o.Locale = dates.DefaultLocale
	}
	if o.Formatter == "" {
		o.Formatter = dates.FormatterNative
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if _, err := calendar.ParseViewMode(o.Mode); err != nil {
		return err
	}
	if err := o.Config().Validate(); err != nil {
		return err
	}
	o.Formatter = strings.ToLower(strings.TrimSpace(o.Formatter))
	if !dates.ValidFormatters[o.Formatter] {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid formatter: %q (must be native or monday)", o.Formatter)
	}
	_, err := o.engineOptions()
	return err
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if err := o.Colors.Validate(); err != nil {
		return err
	}
	if err := errors.ValidateFontFamily(o.FontFamily); err != nil {
		return err
	}
	if o.FontSize < 0 {
		return errors.New(errors.ErrCodeInvalidStyle, "font size cannot be negative")
	}
	return errors.ValidatePositive("scale", o.Scale)
}

// ViewMode returns the parsed mode. Call after validation.
func (o *Options) ViewMode() calendar.ViewMode {
	return calendar.ViewMode(strings.ToLower(strings.TrimSpace(o.Mode)))
}

// Config returns the engine configuration.
func (o *Options) Config() calendar.Config {
	return calendar.Config{
		ColumnWidth:  o.ColumnWidth,
		HeaderHeight: o.HeaderHeight,
		Direction:    calendar.Direction(strings.ToLower(o.Direction)),
		Locale:       o.Locale,
	}
}

// Engine builds a layout engine for these options.
func (o *Options) Engine() (*calendar.Engine, error) {
	engineOpts, err := o.engineOptions()
	if err != nil {
		return nil, err
	}
	return calendar.New(engineOpts...), nil
}

func (o *Options) engineOptions() ([]calendar.Option, error) {
	month, err := calendar.ParseMonthVariant(o.MonthVariant)
	if err != nil {
		return nil, err
	}
	week, err := calendar.ParseWeekVariant(o.WeekVariant)
	if err != nil {
		return nil, err
	}
	boundary, err := calendar.ParseWeekBoundary(o.WeekBoundary)
	if err != nil {
		return nil, err
	}
	return []calendar.Option{
		calendar.WithFormatter(dates.NewFormatter(o.Formatter)),
		calendar.WithMonthVariant(month),
		calendar.WithWeekVariant(week),
		calendar.WithWeekBoundary(boundary),
	}, nil
}

// ResolveTicks returns the explicit ticks, or seeds them from Start/End.
func (o *Options) ResolveTicks() ([]time.Time, error) {
	if err := o.ValidateForSeed(); err != nil {
		return nil, err
	}
	if len(o.Ticks) > 0 {
		ticks, err := timeline.Parse(o.Ticks)
		if err != nil {
			return nil, err
		}
		return ticks, ValidateTicks(ticks)
	}
	start, err := errors.ParseDate(o.Start)
	if err != nil {
		return nil, err
	}
	end, err := errors.ParseDate(o.End)
	if err != nil {
		return nil, err
	}
	mode := o.ViewMode()
	if mode == "" {
		mode = DefaultMode
	}
	return timeline.Seed(start, end, mode)
}

// Font returns the configured font, falling back to the default.
func (o *Options) Font() styles.Font {
	f := styles.DefaultFont
	if o.FontFamily != "" {
		f.Family = o.FontFamily
	}
	if o.FontSize > 0 {
		f.Size = o.FontSize
	}
	return f
}

// PlanKeyOpts returns cache key options for layout computation.
func (o *Options) PlanKeyOpts(ticks []time.Time) cache.PlanKeyOpts {
	keys := make([]string, len(ticks))
	for i, t := range ticks {
		keys[i] = t.Format(errors.DateLayout)
	}
	return cache.PlanKeyOpts{
		Ticks:        keys,
		Mode:         string(o.ViewMode()),
		ColumnWidth:  o.ColumnWidth,
		HeaderHeight: o.HeaderHeight,
		Direction:    strings.ToLower(o.Direction),
		Locale:       o.Locale,
		Formatter:    o.Formatter,
		MonthVariant: o.MonthVariant,
		WeekVariant:  o.WeekVariant,
		WeekBoundary: o.WeekBoundary,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	f := o.Font()
	return cache.ArtifactKeyOpts{
		Format:     format,
		Style:      strings.ToLower(o.Style),
		FontFamily: f.Family,
		FontSize:   f.Size,
		Colors:     fmt.Sprintf("%s|%s|%s|%s", o.Colors.Background, o.Colors.Separator, o.Colors.TopText, o.Colors.BottomText),
		Scale:      o.Scale,
	}
}
