package sink

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/ganttcal/pkg/render/header"
)

const (
	rowTop = iota
	rowBottom
	rowRule
	textRows
)

// TextCanvas rasterizes header primitives onto a fixed-width rune grid of
// three rows: group labels, unit labels and a bottom rule. Texts are
// centered on their anchor and clipped at the edges.
type TextCanvas struct {
	cols   int
	width  float64
	height float64
	rows   [textRows][]rune
}

// NewTextCanvas returns a canvas cols runes wide that maps header
// coordinates 0..width onto it. height is the header height, used to decide
// which rows a separator crosses.
func NewTextCanvas(cols int, width, height float64) *TextCanvas {
	c := &TextCanvas{cols: max(cols, 0), width: width, height: height}
	c.Clear()
	return c
}

// Clear blanks the grid.
func (c *TextCanvas) Clear() {
	for i := range c.rows {
		c.rows[i] = []rune(strings.Repeat(" ", c.cols))
	}
}

func (c *TextCanvas) col(x float64) int {
	if c.width <= 0 {
		return 0
	}
	return int(math.Floor(x * float64(c.cols) / c.width))
}

func (c *TextCanvas) set(row, col int, r rune) {
	if col >= 0 && col < c.cols {
		c.rows[row][col] = r
	}
}

func (c *TextCanvas) Rect(x, _, w, _ float64) {
	for i := c.col(x); i < c.col(x+w); i++ {
		c.set(rowRule, i, '─')
	}
}

func (c *TextCanvas) Line(x1, y1, _, y2 float64) {
	col := c.col(x1)
	mid := c.height * 0.5
	if min(y1, y2) < mid {
		c.set(rowTop, col, '│')
	}
	if max(y1, y2) > mid {
		c.set(rowBottom, col, '│')
	}
}

func (c *TextCanvas) Text(x, _ float64, text string, role header.TextRole) {
	row := rowBottom
	if role == header.RoleTop {
		row = rowTop
	}
	start := c.col(x) - utf8.RuneCountInString(text)/2
	for i, r := range []rune(text) {
		c.set(row, start+i, r)
	}
}

// Row returns one grid row with trailing spaces removed.
func (c *TextCanvas) Row(i int) string {
	return strings.TrimRight(string(c.rows[i]), " ")
}

// String returns the grid as newline-separated rows.
func (c *TextCanvas) String() string {
	lines := make([]string, textRows)
	for i := range lines {
		lines[i] = c.Row(i)
	}
	return strings.Join(lines, "\n")
}
