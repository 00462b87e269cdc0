package header

import "github.com/matzehuels/ganttcal/pkg/calendar"

// CacheKey identifies a drawn header for the memo gate.
type CacheKey struct {
	ColumnWidth float64
	Mode        calendar.ViewMode
	TickCount   int
}

// KeyOf returns the memo key of p.
func KeyOf(p calendar.Plan) CacheKey {
	return CacheKey{ColumnWidth: p.ColumnWidth, Mode: p.Mode, TickCount: p.TickCount}
}

// Adapter draws plans onto a canvas, skipping redraws whose key matches
// the previous draw.
type Adapter struct {
	last  CacheKey
	valid bool
	draws int
}

// Render draws p onto c unless it would repeat the previous draw.
// It reports whether anything was drawn.
func (a *Adapter) Render(c Canvas, p calendar.Plan) bool {
	key := KeyOf(p)
	if a.valid && key == a.last {
		return false
	}
	Draw(c, p)
	a.last = key
	a.valid = true
	a.draws++
	return true
}

// Invalidate forces the next Render to draw.
func (a *Adapter) Invalidate() { a.valid = false }

// Draws returns how many times the adapter has drawn.
func (a *Adapter) Draws() int { return a.draws }
