package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/matzehuels/ganttcal/pkg/dates"
)

// layoutWeek walks the ticks from last to first so that weeksCount holds
// the width, in columns, of the segment that starts at the current tick.
func (e *Engine) layoutWeek(p *Plan, ticks []time.Time, g geometry) {
	n := len(ticks)
	weeksCount := 1
	for i := n - 1; i >= 0; i-- {
		t := ticks[i]
		e.weekUnits(p, t, i, g)

		text, boundary := e.weekGroup(ticks, i, g.locale)
		if boundary {
			if i != n-1 {
				line := g.x(g.edge(i) + float64(weeksCount)*g.cw)
				p.Groups = append(p.Groups, GroupLabel{
					Text:      text,
					LineStart: Point{line, 0},
					LineEnd:   Point{line, g.top()},
					Anchor:    Point{g.x(g.edge(i) + g.cw*float64(weeksCount)*0.5), g.topTextY()},
				})
			}
			weeksCount = 0
		}
		weeksCount++
	}
}

func (e *Engine) weekUnits(p *Plan, t time.Time, i int, g geometry) {
	if e.week == WeekDays {
		sub := g.cw / 7
		for d := 0; d < 7; d++ {
			day := t.AddDate(0, 0, d)
			p.Units = append(p.Units, UnitLabel{
				Text: strconv.Itoa(day.Day()),
				X:    g.x(g.edge(i) + sub*(float64(d)+0.5)),
				Y:    g.bottomTextY(),
			})
		}
		return
	}

	rtlOffset := 0
	if g.rtl {
		rtlOffset = 1
	}
	p.Units = append(p.Units, UnitLabel{
		Text: fmt.Sprintf("W%d", e.formatter.WeekNumber(t)),
		X:    g.cw * float64(i+rtlOffset),
		Y:    g.bottomTextY(),
	})
}

// weekGroup reports whether a group starts at ticks[i] and its text.
func (e *Engine) weekGroup(ticks []time.Time, i int, locale string) (string, bool) {
	start := ticks[i]

	if e.boundary == BoundaryMonthChange {
		if i == 0 || !dates.SameMonth(start, ticks[i-1]) {
			return e.monthYear(start, locale), true
		}
		return "", false
	}

	end := start.AddDate(0, 0, 6)
	crosses := end.Day() < start.Day()
	if i != 0 && !crosses && start.Day() != 1 {
		return "", false
	}
	if !crosses {
		return e.monthYear(start, locale), true
	}
	return e.crossingLabel(start, end, locale), true
}

// crossingLabel names a week that runs from one month into the next:
// "Jan – Feb, 2024", or "Dec, 2023 – Jan, 2024" across a year change.
func (e *Engine) crossingLabel(start, end time.Time, locale string) string {
	from := e.formatter.MonthName(start, locale)
	to := e.formatter.MonthName(end, locale)
	if start.Year() == end.Year() {
		return fmt.Sprintf("%s – %s, %d", from, to, end.Year())
	}
	return fmt.Sprintf("%s, %d – %s, %d", from, start.Year(), to, end.Year())
}
