package calendar

import (
	"fmt"
	"time"

	"github.com/matzehuels/ganttcal/pkg/dates"
)

// layoutDay looks ahead: a group closes at tick i when tick i+1 is in
// another month, and its text is centered over the month that just ended
// using that month's full length.
func (e *Engine) layoutDay(p *Plan, ticks []time.Time, g geometry) {
	n := len(ticks)
	for i, t := range ticks {
		weekday := e.formatter.WeekdayName(t, g.locale, dates.WeekdayShort)
		p.Units = append(p.Units, UnitLabel{
			Text: fmt.Sprintf("%s, %d", weekday, t.Day()),
			X:    g.center(i),
			Y:    g.bottomTextY(),
		})

		if i+1 == n || dates.SameMonth(t, ticks[i+1]) {
			continue
		}
		next := g.edge(i + 1)
		days := dates.DaysInMonth(t.Month(), t.Year())
		p.Groups = append(p.Groups, GroupLabel{
			Text:      e.monthYear(t, g.locale),
			LineStart: Point{g.x(next), 0},
			LineEnd:   Point{g.x(next), g.top()},
			Anchor:    Point{g.x(next - float64(days)*g.cw*0.5), g.topTextY()},
		})
	}
}
