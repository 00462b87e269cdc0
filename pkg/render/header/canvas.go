package header

import "github.com/matzehuels/ganttcal/pkg/calendar"

// TextRole tells the canvas which header row a text belongs to.
type TextRole int

const (
	// RoleTop is a group label in the top row.
	RoleTop TextRole = iota
	// RoleBottom is a unit label in the bottom row.
	RoleBottom
)

func (r TextRole) String() string {
	if r == RoleTop {
		return "top"
	}
	return "bottom"
}

// Canvas receives drawing primitives in header coordinates.
// Text is anchored at its horizontal middle.
type Canvas interface {
	Rect(x, y, w, h float64)
	Line(x1, y1, x2, y2 float64)
	Text(x, y float64, text string, role TextRole)
}

// Draw paints p onto c.
func Draw(c Canvas, p calendar.Plan) {
	c.Rect(0, 0, p.Width, p.HeaderHeight)
	for _, u := range p.Units {
		c.Text(u.X, u.Y, u.Text, RoleBottom)
	}
	for _, g := range p.Groups {
		c.Line(g.LineStart.X, g.LineStart.Y, g.LineEnd.X, g.LineEnd.Y)
		c.Text(g.Anchor.X, g.Anchor.Y, g.Text, RoleTop)
	}
}
