package calendar

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/ganttcal/pkg/errors"
)

var baseCfg = Config{ColumnWidth: 100, HeaderHeight: 50}

func TestComputeEmpty(t *testing.T) {
	for _, mode := range ViewModes {
		t.Run(string(mode), func(t *testing.T) {
			p := mustCompute(t, New(), nil, mode, baseCfg)
			if len(p.Groups) != 0 || len(p.Units) != 0 {
				t.Errorf("got %d groups, %d units, want none", len(p.Groups), len(p.Units))
			}
			if p.Groups == nil {
				t.Error("Groups is nil, want empty slice")
			}
			if p.Width != 0 || p.TickCount != 0 {
				t.Errorf("Width = %v, TickCount = %d", p.Width, p.TickCount)
			}
		})
	}
}

func TestComputeErrors(t *testing.T) {
	ticks := series(date(2024, 1, 1), 3, 0, 1, 0)
	tests := []struct {
		name string
		mode ViewMode
		cfg  Config
		code errors.Code
	}{
		{"zero column width", ModeMonth, Config{ColumnWidth: 0, HeaderHeight: 50}, errors.ErrCodeInvalidConfig},
		{"negative height", ModeMonth, Config{ColumnWidth: 10, HeaderHeight: -1}, errors.ErrCodeInvalidConfig},
		{"bad direction", ModeMonth, Config{ColumnWidth: 10, HeaderHeight: 50, Direction: "up"}, errors.ErrCodeInvalidConfig},
		{"unknown mode", ViewMode("hour"), baseCfg, errors.ErrCodeInvalidViewMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(ticks, tt.mode, tt.cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestParseViewMode(t *testing.T) {
	for _, s := range []string{"year", "Month", " WEEK ", "day"} {
		if _, err := ParseViewMode(s); err != nil {
			t.Errorf("ParseViewMode(%q) error: %v", s, err)
		}
	}
	if _, err := ParseViewMode("quarter"); !errors.Is(err, errors.ErrCodeInvalidViewMode) {
		t.Errorf("ParseViewMode(quarter) = %v, want INVALID_VIEW_MODE", err)
	}
}

func TestComputePlanMetadata(t *testing.T) {
	ticks := series(date(2024, 1, 1), 4, 0, 1, 0)
	p := mustCompute(t, New(), ticks, ModeMonth, baseCfg)
	if p.Mode != ModeMonth || p.Direction != LTR || p.TickCount != 4 || p.Width != 400 {
		t.Errorf("metadata = %+v", p)
	}
}

func TestYearMode(t *testing.T) {
	ticks := series(date(2021, 1, 1), 5, 1, 0, 0)
	p := mustCompute(t, New(), ticks, ModeYear, baseCfg)

	if len(p.Units) != 5 {
		t.Fatalf("units = %d, want 5", len(p.Units))
	}
	for i, u := range p.Units {
		want := UnitLabel{Text: ticks[i].Format("2006"), X: 100*float64(i) + 50, Y: 40}
		assertUnit(t, u, want)
	}

	if len(p.Groups) != 5 {
		t.Fatalf("groups = %d, want one per distinct year", len(p.Groups))
	}
	assertGroup(t, p.Groups[0], GroupLabel{
		Text:      "2021",
		LineStart: Point{0, 0},
		LineEnd:   Point{0, 50},
		Anchor:    Point{float64(6+0-2021) * 100, 22.5},
	})
	assertGroup(t, p.Groups[1], GroupLabel{
		Text:      "2022",
		LineStart: Point{100, 0},
		LineEnd:   Point{100, 50},
		Anchor:    Point{float64(6+1-2022) * 100, 22.5},
	})
}

func TestYearModeDistinctYears(t *testing.T) {
	// Nov 2022 .. Feb 2023: two distinct years, the second starting at column 2.
	ticks := series(date(2022, 11, 1), 4, 0, 1, 0)
	p := mustCompute(t, New(), ticks, ModeYear, baseCfg)
	if len(p.Groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(p.Groups))
	}
	if p.Groups[0].LineStart.X != 0 || p.Groups[1].LineStart.X != 200 {
		t.Errorf("separators at %v and %v, want 0 and 200", p.Groups[0].LineStart.X, p.Groups[1].LineStart.X)
	}
	if p.Groups[1].Text != "2023" {
		t.Errorf("second group = %q, want 2023", p.Groups[1].Text)
	}
}

func TestYearModeRTL(t *testing.T) {
	ticks := series(date(2021, 1, 1), 5, 1, 0, 0)
	cfg := baseCfg
	cfg.Direction = RTL
	p := mustCompute(t, New(), ticks, ModeYear, cfg)

	assertGroup(t, p.Groups[0], GroupLabel{
		Text:      "2021",
		LineStart: Point{500, 0},
		LineEnd:   Point{500, 50},
		Anchor:    Point{float64(6+0+2021+1) * 100, 22.5},
	})
	assertUnit(t, p.Units[0], UnitLabel{Text: "2021", X: 450, Y: 40})
	assertUnit(t, p.Units[4], UnitLabel{Text: "2025", X: 50, Y: 40})
}

func TestMonthMode(t *testing.T) {
	ticks := series(date(2023, 1, 1), 12, 0, 1, 0)
	p := mustCompute(t, New(), ticks, ModeMonth, baseCfg)

	if len(p.Groups) != 0 {
		t.Errorf("single-row month emitted %d groups", len(p.Groups))
	}
	want := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	if len(p.Units) != len(want) {
		t.Fatalf("units = %d, want %d", len(p.Units), len(want))
	}
	for i, m := range want {
		assertUnit(t, p.Units[i], UnitLabel{Text: m + ", 2023", X: 100*float64(i) + 50, Y: 40})
	}
}

func TestMonthModeDualRow(t *testing.T) {
	ticks := series(date(2023, 11, 1), 3, 0, 1, 0)
	p := mustCompute(t, New(WithMonthVariant(MonthDualRow)), ticks, ModeMonth, baseCfg)

	if len(p.Groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(p.Groups))
	}
	assertGroup(t, p.Groups[2], GroupLabel{
		Text:      "2024",
		LineStart: Point{200, 0},
		LineEnd:   Point{200, 50},
		Anchor:    Point{250, 22.5},
	})
}

func TestMonthModeLocale(t *testing.T) {
	ticks := []time.Time{date(2024, 2, 1)}
	cfg := baseCfg
	cfg.Locale = "fr-FR"
	p := mustCompute(t, New(), ticks, ModeMonth, cfg)
	if p.Units[0].Text != "févr., 2024" {
		t.Errorf("unit = %q, want %q", p.Units[0].Text, "févr., 2024")
	}
}

func TestDayModeMonthBoundary(t *testing.T) {
	ticks := series(date(2024, 1, 29), 7, 0, 0, 1)
	cfg := Config{ColumnWidth: 60, HeaderHeight: 50}
	p := mustCompute(t, New(), ticks, ModeDay, cfg)

	wantUnits := []string{"Mon, 29", "Tue, 30", "Wed, 31", "Thu, 1", "Fri, 2", "Sat, 3", "Sun, 4"}
	for i, text := range wantUnits {
		assertUnit(t, p.Units[i], UnitLabel{Text: text, X: 60*float64(i) + 30, Y: 40})
	}

	if len(p.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(p.Groups))
	}
	assertGroup(t, p.Groups[0], GroupLabel{
		Text:      "Jan, 2024",
		LineStart: Point{180, 0},
		LineEnd:   Point{180, 25},
		Anchor:    Point{180 - 31*60*0.5, 22.5},
	})
}

func TestDayModeLeapFebruary(t *testing.T) {
	ticks := series(date(2024, 2, 27), 5, 0, 0, 1)
	cfg := Config{ColumnWidth: 60, HeaderHeight: 50}
	p := mustCompute(t, New(), ticks, ModeDay, cfg)

	if p.Units[2].Text != "Thu, 29" {
		t.Errorf("unit[2] = %q, want Thu, 29", p.Units[2].Text)
	}
	if len(p.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(p.Groups))
	}
	assertPoint(t, "anchor", p.Groups[0].Anchor, Point{180 - 29*60*0.5, 22.5})
}

func TestDayModeRTL(t *testing.T) {
	ticks := series(date(2024, 1, 29), 7, 0, 0, 1)
	cfg := Config{ColumnWidth: 60, HeaderHeight: 50, Direction: RTL}
	p := mustCompute(t, New(), ticks, ModeDay, cfg)

	assertUnit(t, p.Units[0], UnitLabel{Text: "Mon, 29", X: 390, Y: 40})
	assertGroup(t, p.Groups[0], GroupLabel{
		Text:      "Jan, 2024",
		LineStart: Point{240, 0},
		LineEnd:   Point{240, 25},
		Anchor:    Point{420 - (180 - 31*60*0.5), 22.5},
	})
}

func TestSingleTick(t *testing.T) {
	tick := []time.Time{date(2024, 3, 4)}
	wantGroups := map[ViewMode]int{ModeYear: 1, ModeMonth: 0, ModeWeek: 0, ModeDay: 0}
	for _, mode := range ViewModes {
		t.Run(string(mode), func(t *testing.T) {
			p := mustCompute(t, New(), tick, mode, baseCfg)
			if len(p.Groups) != wantGroups[mode] {
				t.Errorf("groups = %d, want %d", len(p.Groups), wantGroups[mode])
			}
			if len(p.Units) != 1 {
				t.Errorf("units = %d, want 1", len(p.Units))
			}
		})
	}
}

func TestRTLMirrorsSeparators(t *testing.T) {
	cases := map[ViewMode][]time.Time{
		ModeYear: series(date(2022, 11, 1), 6, 0, 1, 0),
		ModeWeek: series(date(2024, 1, 1), 9, 0, 0, 7),
		ModeDay:  series(date(2024, 1, 25), 12, 0, 0, 1),
	}
	for mode, ticks := range cases {
		t.Run(string(mode), func(t *testing.T) {
			ltr := mustCompute(t, New(), ticks, mode, baseCfg)
			cfg := baseCfg
			cfg.Direction = RTL
			rtl := mustCompute(t, New(), ticks, mode, cfg)

			if len(ltr.Groups) != len(rtl.Groups) {
				t.Fatalf("group count differs: %d vs %d", len(ltr.Groups), len(rtl.Groups))
			}
			for i := range ltr.Groups {
				if ltr.Groups[i].Text != rtl.Groups[i].Text {
					t.Errorf("group %d text %q vs %q", i, ltr.Groups[i].Text, rtl.Groups[i].Text)
				}
				want := ltr.Width - ltr.Groups[i].LineStart.X
				if !almostEqual(rtl.Groups[i].LineStart.X, want) {
					t.Errorf("group %d separator at %v, want %v", i, rtl.Groups[i].LineStart.X, want)
				}
			}
		})
	}
}

func TestComputeIdempotent(t *testing.T) {
	ticks := series(date(2023, 12, 4), 10, 0, 0, 7)
	for _, mode := range ViewModes {
		a := mustCompute(t, New(), ticks, mode, baseCfg)
		b := mustCompute(t, New(), ticks, mode, baseCfg)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: two computations differ", mode)
		}
	}
}

func TestWithFormatter(t *testing.T) {
	e := New(WithFormatter(fixedFormatter{}))
	p := mustCompute(t, e, []time.Time{date(2024, 5, 6)}, ModeWeek, baseCfg)
	if p.Units[0].Text != "W99" {
		t.Errorf("week unit = %q, want W99", p.Units[0].Text)
	}
	p = mustCompute(t, e, []time.Time{date(2024, 5, 6)}, ModeMonth, baseCfg)
	if p.Units[0].Text != "M05, 2024" {
		t.Errorf("month unit = %q, want M05, 2024", p.Units[0].Text)
	}
	p = mustCompute(t, e, []time.Time{date(2024, 5, 6)}, ModeDay, baseCfg)
	if p.Units[0].Text != "DMon, 6" {
		t.Errorf("day unit = %q, want DMon, 6", p.Units[0].Text)
	}

	// A nil formatter keeps the default.
	p = mustCompute(t, New(WithFormatter(nil)), []time.Time{date(2024, 5, 6)}, ModeMonth, baseCfg)
	if p.Units[0].Text != "May, 2024" {
		t.Errorf("month unit = %q, want May, 2024", p.Units[0].Text)
	}
}

func TestComputeConcurrent(t *testing.T) {
	ticks := series(date(2024, 1, 1), 30, 0, 0, 1)
	want := mustCompute(t, New(), ticks, ModeDay, baseCfg)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Compute(ticks, ModeDay, baseCfg)
			if err != nil || !reflect.DeepEqual(got, want) {
				t.Errorf("concurrent Compute differs (err=%v)", err)
			}
		}()
	}
	wg.Wait()
}
