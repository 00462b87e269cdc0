package calendar

import (
	"math"
	"testing"
	"time"

	"github.com/matzehuels/ganttcal/pkg/dates"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// series returns n ticks starting at start, each step apart (years, months, days).
func series(start time.Time, n, years, months, days int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(years*i, months*i, days*i)
	}
	return out
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func assertPoint(t *testing.T, what string, got, want Point) {
	t.Helper()
	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

func assertGroup(t *testing.T, got, want GroupLabel) {
	t.Helper()
	if got.Text != want.Text {
		t.Errorf("group text = %q, want %q", got.Text, want.Text)
	}
	assertPoint(t, want.Text+" line start", got.LineStart, want.LineStart)
	assertPoint(t, want.Text+" line end", got.LineEnd, want.LineEnd)
	assertPoint(t, want.Text+" anchor", got.Anchor, want.Anchor)
}

func assertUnit(t *testing.T, got, want UnitLabel) {
	t.Helper()
	if got.Text != want.Text || !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) {
		t.Errorf("unit = %+v, want %+v", got, want)
	}
}

func mustCompute(t *testing.T, e *Engine, ticks []time.Time, mode ViewMode, cfg Config) Plan {
	t.Helper()
	p, err := e.Compute(ticks, mode, cfg)
	if err != nil {
		t.Fatalf("Compute(%s) error: %v", mode, err)
	}
	return p
}

// fixedFormatter returns recognisable names so tests can tell the engine
// used the injected formatter.
type fixedFormatter struct{}

func (fixedFormatter) MonthName(t time.Time, _ string) string { return "M" + t.Format("01") }
func (fixedFormatter) WeekdayName(t time.Time, _ string, _ dates.WeekdayStyle) string {
	return "D" + t.Format("Mon")
}
func (fixedFormatter) WeekNumber(time.Time) int { return 99 }
