package calendar

import "testing"

func TestWeekModeDayWrap(t *testing.T) {
	// Mondays Jan 1 .. Feb 12 2024. Jan 29 runs into February.
	ticks := series(date(2024, 1, 1), 7, 0, 0, 7)
	p := mustCompute(t, New(), ticks, ModeWeek, baseCfg)

	if len(p.Groups) != 2 {
		t.Fatalf("groups = %d, want 2: %+v", len(p.Groups), p.Groups)
	}
	assertGroup(t, p.Groups[0], GroupLabel{
		Text:      "Jan – Feb, 2024",
		LineStart: Point{700, 0},
		LineEnd:   Point{700, 25},
		Anchor:    Point{550, 22.5},
	})
	assertGroup(t, p.Groups[1], GroupLabel{
		Text:      "Jan, 2024",
		LineStart: Point{400, 0},
		LineEnd:   Point{400, 25},
		Anchor:    Point{200, 22.5},
	})

	// Units are emitted from the last column to the first.
	if len(p.Units) != 7 {
		t.Fatalf("units = %d, want 7", len(p.Units))
	}
	assertUnit(t, p.Units[0], UnitLabel{Text: "W7", X: 600, Y: 40})
	assertUnit(t, p.Units[6], UnitLabel{Text: "W1", X: 0, Y: 40})
}

func TestWeekModeMonthChange(t *testing.T) {
	ticks := series(date(2024, 1, 1), 7, 0, 0, 7)
	p := mustCompute(t, New(WithWeekBoundary(BoundaryMonthChange)), ticks, ModeWeek, baseCfg)

	if len(p.Groups) != 2 {
		t.Fatalf("groups = %d, want 2: %+v", len(p.Groups), p.Groups)
	}
	assertGroup(t, p.Groups[0], GroupLabel{
		Text:      "Feb, 2024",
		LineStart: Point{700, 0},
		LineEnd:   Point{700, 25},
		Anchor:    Point{600, 22.5},
	})
	assertGroup(t, p.Groups[1], GroupLabel{
		Text:      "Jan, 2024",
		LineStart: Point{500, 0},
		LineEnd:   Point{500, 25},
		Anchor:    Point{250, 22.5},
	})
}

func TestWeekModeYearRollover(t *testing.T) {
	ticks := series(date(2024, 12, 16), 4, 0, 0, 7)
	p := mustCompute(t, New(), ticks, ModeWeek, baseCfg)

	if len(p.Groups) != 2 {
		t.Fatalf("groups = %d, want 2: %+v", len(p.Groups), p.Groups)
	}
	assertGroup(t, p.Groups[0], GroupLabel{
		Text:      "Dec, 2024 – Jan, 2025",
		LineStart: Point{400, 0},
		LineEnd:   Point{400, 25},
		Anchor:    Point{300, 22.5},
	})
	assertGroup(t, p.Groups[1], GroupLabel{
		Text:      "Dec, 2024",
		LineStart: Point{200, 0},
		LineEnd:   Point{200, 25},
		Anchor:    Point{100, 22.5},
	})
	// Dec 30 2024 belongs to ISO week 1 of 2025.
	if p.Units[1].Text != "W1" {
		t.Errorf("unit for Dec 30 = %q, want W1", p.Units[1].Text)
	}
}

func TestWeekModeLastColumnBoundarySuppressed(t *testing.T) {
	// Jan 29 is a boundary but also the last column: no group for it.
	ticks := series(date(2024, 1, 22), 2, 0, 0, 7)
	p := mustCompute(t, New(), ticks, ModeWeek, baseCfg)

	if len(p.Groups) != 1 {
		t.Fatalf("groups = %d, want 1: %+v", len(p.Groups), p.Groups)
	}
	assertGroup(t, p.Groups[0], GroupLabel{
		Text:      "Jan, 2024",
		LineStart: Point{100, 0},
		LineEnd:   Point{100, 25},
		Anchor:    Point{50, 22.5},
	})
}

func TestWeekModeRTL(t *testing.T) {
	ticks := series(date(2024, 1, 1), 7, 0, 0, 7)
	cfg := baseCfg
	cfg.Direction = RTL
	p := mustCompute(t, New(), ticks, ModeWeek, cfg)

	assertPoint(t, "first separator", p.Groups[0].LineStart, Point{0, 0})
	assertPoint(t, "first anchor", p.Groups[0].Anchor, Point{150, 22.5})
	assertPoint(t, "second separator", p.Groups[1].LineStart, Point{300, 0})
	assertPoint(t, "second anchor", p.Groups[1].Anchor, Point{500, 22.5})

	// Week numbers keep their historical one-column RTL offset.
	assertUnit(t, p.Units[6], UnitLabel{Text: "W1", X: 100, Y: 40})
}

func TestWeekModeDays(t *testing.T) {
	ticks := series(date(2024, 1, 29), 1, 0, 0, 7)
	cfg := Config{ColumnWidth: 70, HeaderHeight: 50}
	p := mustCompute(t, New(WithWeekVariant(WeekDays)), ticks, ModeWeek, cfg)

	want := []string{"29", "30", "31", "1", "2", "3", "4"}
	if len(p.Units) != len(want) {
		t.Fatalf("units = %d, want %d", len(p.Units), len(want))
	}
	for i, text := range want {
		assertUnit(t, p.Units[i], UnitLabel{Text: text, X: 10*float64(i) + 5, Y: 40})
	}
}

func TestWeekModeStartsOnFirst(t *testing.T) {
	// A week beginning on the 1st opens a group even mid-series.
	ticks := series(date(2024, 3, 25), 3, 0, 0, 7) // Mar 25, Apr 1, Apr 8
	p := mustCompute(t, New(), ticks, ModeWeek, baseCfg)

	if len(p.Groups) != 2 {
		t.Fatalf("groups = %d, want 2: %+v", len(p.Groups), p.Groups)
	}
	if p.Groups[0].Text != "Apr, 2024" {
		t.Errorf("group[0] = %q, want Apr, 2024", p.Groups[0].Text)
	}
	assertPoint(t, "apr separator", p.Groups[0].LineStart, Point{300, 0})
	if p.Groups[1].Text != "Mar, 2024" {
		t.Errorf("group[1] = %q, want Mar, 2024", p.Groups[1].Text)
	}
	assertPoint(t, "mar separator", p.Groups[1].LineStart, Point{100, 0})
}
