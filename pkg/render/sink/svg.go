package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/ganttcal/pkg/calendar"
	"github.com/matzehuels/ganttcal/pkg/render/header"
	"github.com/matzehuels/ganttcal/pkg/render/styles"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
	font  styles.Font
}

// WithStyle sets the palette used for the background, separators and text.
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithFont overrides the default font. Empty fields keep the default.
func WithFont(f styles.Font) SVGOption {
	return func(r *svgRenderer) {
		if f.Family != "" {
			r.font.Family = f.Family
		}
		if f.Size > 0 {
			r.font.Size = f.Size
		}
	}
}

// RenderSVG renders the plan as a standalone SVG document.
func RenderSVG(p calendar.Plan, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		p.Width, p.HeaderHeight, p.Width, p.HeaderHeight)

	r.style.RenderDefs(&buf, r.font)
	fmt.Fprintf(&buf, `  <g class="calendar" font-size="%.4g" font-family="%s">`+"\n",
		r.font.Size, styles.EscapeXML(r.font.Family))
	header.Draw(&svgCanvas{buf: &buf, style: r.style}, p)
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple, font: styles.DefaultFont}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// svgCanvas forwards header primitives to a style.
type svgCanvas struct {
	buf   *bytes.Buffer
	style styles.Style
}

func (c *svgCanvas) Rect(x, y, w, h float64) { c.style.RenderBackground(c.buf, x, y, w, h) }

func (c *svgCanvas) Line(x1, y1, x2, y2 float64) { c.style.RenderLine(c.buf, x1, y1, x2, y2) }

func (c *svgCanvas) Text(x, y float64, text string, role header.TextRole) {
	c.style.RenderText(c.buf, x, y, text, role)
}
