package calendar

import (
	"strconv"
	"time"
)

func (e *Engine) layoutYear(p *Plan, ticks []time.Time, g geometry) {
	for i, t := range ticks {
		year := t.Year()
		text := strconv.Itoa(year)
		p.Units = append(p.Units, UnitLabel{Text: text, X: g.center(i), Y: g.bottomTextY()})

		if i > 0 && year == ticks[i-1].Year() {
			continue
		}
		line := g.x(g.edge(i))
		p.Groups = append(p.Groups, GroupLabel{
			Text:      text,
			LineStart: Point{line, 0},
			LineEnd:   Point{line, g.h},
			Anchor:    Point{yearTextX(i, year, g), g.topTextY()},
		})
	}
}

// yearTextX is the historical Year-mode group text position. The offsets
// are not calendar-derived; existing charts depend on them.
func yearTextX(i, year int, g geometry) float64 {
	if g.rtl {
		return float64(6+i+year+1) * g.cw
	}
	return float64(6+i-year) * g.cw
}
