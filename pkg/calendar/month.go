package calendar

import (
	"strconv"
	"time"
)

func (e *Engine) layoutMonth(p *Plan, ticks []time.Time, g geometry) {
	for i, t := range ticks {
		p.Units = append(p.Units, UnitLabel{
			Text: e.monthYear(t, g.locale),
			X:    g.center(i),
			Y:    g.bottomTextY(),
		})
		if e.month != MonthDualRow {
			continue
		}
		line := g.x(g.edge(i))
		p.Groups = append(p.Groups, GroupLabel{
			Text:      strconv.Itoa(t.Year()),
			LineStart: Point{line, 0},
			LineEnd:   Point{line, g.h},
			Anchor:    Point{g.center(i), g.topTextY()},
		})
	}
}
