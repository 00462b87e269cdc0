package calendar

import (
	"fmt"
	"strings"

	"github.com/matzehuels/ganttcal/pkg/errors"
)

// ViewMode selects the granularity of the header.
type ViewMode string

const (
	ModeYear  ViewMode = "year"
	ModeMonth ViewMode = "month"
	ModeWeek  ViewMode = "week"
	ModeDay   ViewMode = "day"
)

// ViewModes lists every mode in coarse-to-fine order.
var ViewModes = []ViewMode{ModeYear, ModeMonth, ModeWeek, ModeDay}

// ParseViewMode parses a case-insensitive mode name.
func ParseViewMode(s string) (ViewMode, error) {
	m := ViewMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", errors.New(errors.ErrCodeInvalidViewMode, "invalid view mode: %q (must be one of: year, month, week, day)", s)
	}
	return m, nil
}

// Valid reports whether m is one of the four known modes.
func (m ViewMode) Valid() bool {
	switch m {
	case ModeYear, ModeMonth, ModeWeek, ModeDay:
		return true
	}
	return false
}

func (m ViewMode) String() string { return string(m) }

// Direction is the horizontal reading direction of the chart.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Config holds the per-call geometry and locale.
type Config struct {
	ColumnWidth  float64   `json:"column_width"`
	HeaderHeight float64   `json:"header_height"`
	Direction    Direction `json:"direction,omitempty"`
	Locale       string    `json:"locale,omitempty"`
}

// Validate rejects configurations that make every coordinate meaningless.
// Locale problems are not errors; they fall back to the default locale.
func (c Config) Validate() error {
	if err := errors.ValidatePositive("column width", c.ColumnWidth); err != nil {
		return err
	}
	if err := errors.ValidatePositive("header height", c.HeaderHeight); err != nil {
		return err
	}
	switch c.Direction {
	case "", LTR, RTL:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidConfig, "invalid direction: %q (must be ltr or rtl)", c.Direction)
}

// IsRTL reports whether the chart reads right to left.
func (c Config) IsRTL() bool { return c.Direction == RTL }

// Point is a position in header coordinates (origin top-left, y down).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// GroupLabel is one top-row segment: a separator line and its text.
type GroupLabel struct {
	Text      string `json:"text"`
	LineStart Point  `json:"line_start"`
	LineEnd   Point  `json:"line_end"`
	Anchor    Point  `json:"anchor"`
}

// UnitLabel is one bottom-row text.
type UnitLabel struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Plan is the complete header layout for one render pass.
// Groups and Units are in draw order.
type Plan struct {
	Mode         ViewMode     `json:"mode"`
	Direction    Direction    `json:"direction"`
	ColumnWidth  float64      `json:"column_width"`
	HeaderHeight float64      `json:"header_height"`
	TickCount    int          `json:"tick_count"`
	Width        float64      `json:"width"`
	Groups       []GroupLabel `json:"groups"`
	Units        []UnitLabel  `json:"units"`
}
