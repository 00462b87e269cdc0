package calendar

import (
	"fmt"
	"time"

	"github.com/matzehuels/ganttcal/pkg/dates"
	"github.com/matzehuels/ganttcal/pkg/errors"
)

// Vertical placement, as fractions of the header height.
const (
	topRowRatio     = 0.5 // the top row is the upper half
	topTextRatio    = 0.9 // top text baseline, fraction of the top row
	bottomTextRatio = 0.8 // bottom text baseline
)

// MonthVariant selects how ModeMonth uses the top row.
type MonthVariant int

const (
	// MonthSingleRow emits no group labels; the header is one row of units.
	MonthSingleRow MonthVariant = iota
	// MonthDualRow emits one full-height group per column carrying the year.
	MonthDualRow
)

// WeekVariant selects the unit labels of ModeWeek.
type WeekVariant int

const (
	// WeekNumbers emits one "W<n>" unit per column.
	WeekNumbers WeekVariant = iota
	// WeekDays emits seven day-of-month units per column.
	WeekDays
)

// WeekBoundary selects where ModeWeek starts a new group.
type WeekBoundary int

const (
	// BoundaryDayWrap starts a group at the first column, at a week that
	// begins on the 1st, and at a week whose last day-of-month is smaller
	// than its first (the week runs into the next month). Crossing weeks get
	// a compound "MonA – MonB, YYYY" label.
	BoundaryDayWrap WeekBoundary = iota
	// BoundaryMonthChange starts a group wherever a column's month differs
	// from the previous column's month.
	BoundaryMonthChange
)

// Engine computes header layouts. It is immutable after construction and
// safe for concurrent use.
type Engine struct {
	formatter dates.Formatter
	month     MonthVariant
	week      WeekVariant
	boundary  WeekBoundary
}

// Option configures an [Engine].
type Option func(*Engine)

// WithFormatter sets the date formatter. Defaults to [dates.Native].
func WithFormatter(f dates.Formatter) Option {
	return func(e *Engine) {
		if f != nil {
			e.formatter = f
		}
	}
}

// WithMonthVariant selects single- or dual-row month headers.
func WithMonthVariant(v MonthVariant) Option { return func(e *Engine) { e.month = v } }

// WithWeekVariant selects week-number or day-of-month week units.
func WithWeekVariant(v WeekVariant) Option { return func(e *Engine) { e.week = v } }

// WithWeekBoundary selects the week-mode group boundary rule.
func WithWeekBoundary(b WeekBoundary) Option { return func(e *Engine) { e.boundary = b } }

// New returns an engine with the given options applied.
func New(opts ...Option) *Engine {
	e := &Engine{formatter: dates.Native{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// Compute lays out ticks with the default engine.
// See [Engine.Compute].
func Compute(ticks []time.Time, mode ViewMode, cfg Config) (Plan, error) {
	return defaultEngine.Compute(ticks, mode, cfg)
}

// Compute returns the header layout of ticks in the given mode.
//
// ticks must be strictly increasing, one per column; the engine does not
// re-check this. An empty tick slice yields an empty plan. Errors are
// returned only for an invalid mode or config.
func (e *Engine) Compute(ticks []time.Time, mode ViewMode, cfg Config) (Plan, error) {
	if err := cfg.Validate(); err != nil {
		return Plan{}, err
	}
	if !mode.Valid() {
		return Plan{}, errors.New(errors.ErrCodeInvalidViewMode, "invalid view mode: %q", mode)
	}

	dir := cfg.Direction
	if dir == "" {
		dir = LTR
	}
	n := len(ticks)
	p := Plan{
		Mode:         mode,
		Direction:    dir,
		ColumnWidth:  cfg.ColumnWidth,
		HeaderHeight: cfg.HeaderHeight,
		TickCount:    n,
		Width:        cfg.ColumnWidth * float64(n),
		Groups:       []GroupLabel{},
		Units:        make([]UnitLabel, 0, n),
	}
	if n == 0 {
		return p, nil
	}

	g := geometry{
		cw:     cfg.ColumnWidth,
		h:      cfg.HeaderHeight,
		width:  p.Width,
		rtl:    dir == RTL,
		locale: cfg.Locale,
	}
	switch mode {
	case ModeYear:
		e.layoutYear(&p, ticks, g)
	case ModeMonth:
		e.layoutMonth(&p, ticks, g)
	case ModeWeek:
		e.layoutWeek(&p, ticks, g)
	case ModeDay:
		e.layoutDay(&p, ticks, g)
	}
	return p, nil
}

// geometry carries the per-call constants shared by the mode layouts.
type geometry struct {
	cw, h, width float64
	rtl          bool
	locale       string
}

func (g geometry) top() float64         { return g.h * topRowRatio }
func (g geometry) topTextY() float64    { return g.top() * topTextRatio }
func (g geometry) bottomTextY() float64 { return g.h * bottomTextRatio }

// x mirrors a left-to-right coordinate under RTL.
func (g geometry) x(v float64) float64 {
	if g.rtl {
		return g.width - v
	}
	return v
}

// edge is the left edge of column i in left-to-right coordinates.
func (g geometry) edge(i int) float64 { return g.cw * float64(i) }

// center is the mirrored center of column i.
func (g geometry) center(i int) float64 { return g.x(g.edge(i) + g.cw*0.5) }

// monthYear formats "Jan, 2024".
func (e *Engine) monthYear(t time.Time, locale string) string {
	return fmt.Sprintf("%s, %d", e.formatter.MonthName(t, locale), t.Year())
}
