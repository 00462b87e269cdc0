package header

import "fmt"

// OpKind names a recorded drawing primitive.
type OpKind string

const (
	OpRect OpKind = "rect"
	OpLine OpKind = "line"
	OpText OpKind = "text"
)

// Op is one recorded primitive. Unused fields are zero.
type Op struct {
	Kind       OpKind
	X, Y, W, H float64
	X2, Y2     float64
	Text       string
	Role       TextRole
}

func (o Op) String() string {
	switch o.Kind {
	case OpRect:
		return fmt.Sprintf("rect(%g,%g,%g,%g)", o.X, o.Y, o.W, o.H)
	case OpLine:
		return fmt.Sprintf("line(%g,%g,%g,%g)", o.X, o.Y, o.X2, o.Y2)
	}
	return fmt.Sprintf("text(%g,%g,%q,%s)", o.X, o.Y, o.Text, o.Role)
}

// Recorder is a Canvas that keeps every primitive it receives.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2})
}

func (r *Recorder) Text(x, y float64, text string, role TextRole) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Text: text, Role: role})
}

// Reset drops the recorded primitives.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
