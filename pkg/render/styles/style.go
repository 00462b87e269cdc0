// Package styles defines the visual appearance of SVG calendar headers.
package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/matzehuels/ganttcal/pkg/errors"
	"github.com/matzehuels/ganttcal/pkg/render/header"
)

// Style controls how header primitives are written as SVG.
type Style interface {
	// Name is the identifier used in config files and flags.
	Name() string
	// RenderDefs writes the <style> block for the header.
	RenderDefs(buf *bytes.Buffer, f Font)
	// RenderBackground writes the header background rectangle.
	RenderBackground(buf *bytes.Buffer, x, y, w, h float64)
	// RenderLine writes a group separator.
	RenderLine(buf *bytes.Buffer, x1, y1, x2, y2 float64)
	// RenderText writes a label in the given row.
	RenderText(buf *bytes.Buffer, x, y float64, text string, role header.TextRole)
}

// Font is the typeface applied to the whole header.
type Font struct {
	Family string  `json:"family" toml:"family" yaml:"family"`
	Size   float64 `json:"size" toml:"size" yaml:"size"`
}

// DefaultFont is the system UI stack at 14px.
var DefaultFont = Font{
	Family: "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, 'Fira Sans', 'Droid Sans', 'Helvetica Neue'",
	Size:   14,
}

// Validate checks the family and size before they reach an SVG attribute.
func (f Font) Validate() error {
	if err := errors.ValidateFontFamily(f.Family); err != nil {
		return err
	}
	return errors.ValidatePositive("font size", f.Size)
}

// Palette is a flat-color [Style].
type Palette struct {
	ID         string
	Background string
	Border     string
	Separator  string
	TopText    string
	BottomText string
}

// Simple is the light default palette.
var Simple = Palette{
	ID:         "simple",
	Background: "#ffffff",
	Border:     "#e0e0e0",
	Separator:  "#e6e4e4",
	TopText:    "#555555",
	BottomText: "#333333",
}

// Dark suits dark page backgrounds.
var Dark = Palette{
	ID:         "dark",
	Background: "#1e1e24",
	Border:     "#3a3a44",
	Separator:  "#4a4a55",
	TopText:    "#c8c8d0",
	BottomText: "#e8e8ee",
}

var registry = map[string]Palette{
	Simple.ID: Simple,
	Dark.ID:   Dark,
}

// Lookup returns the style registered under name. An empty name selects
// [Simple].
func Lookup(name string) (Style, error) {
	p, err := LookupPalette(name)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// LookupPalette is [Lookup] for callers that want to adjust colors.
func LookupPalette(name string) (Palette, error) {
	if name == "" {
		return Simple, nil
	}
	p, ok := registry[strings.ToLower(name)]
	if !ok {
		return Palette{}, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Colors overrides individual palette colors. Empty fields keep the
// palette's value.
type Colors struct {
	Background string `json:"background,omitempty" toml:"background" yaml:"background,omitempty"`
	Separator  string `json:"separator,omitempty" toml:"separator" yaml:"separator,omitempty"`
	TopText    string `json:"top_text,omitempty" toml:"top_text" yaml:"top_text,omitempty"`
	BottomText string `json:"bottom_text,omitempty" toml:"bottom_text" yaml:"bottom_text,omitempty"`
}

// Validate checks every non-empty color.
func (c Colors) Validate() error {
	for _, v := range []string{c.Background, c.Separator, c.TopText, c.BottomText} {
		if err := errors.ValidateColor(v); err != nil {
			return err
		}
	}
	return nil
}

// With returns a copy of p with the non-empty colors of c applied.
func (p Palette) With(c Colors) Palette {
	if c.Background != "" {
		p.Background = c.Background
	}
	if c.Separator != "" {
		p.Separator = c.Separator
	}
	if c.TopText != "" {
		p.TopText = c.TopText
	}
	if c.BottomText != "" {
		p.BottomText = c.BottomText
	}
	return p
}

// Names lists the registered style names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (p Palette) Name() string { return p.ID }

func (p Palette) RenderDefs(buf *bytes.Buffer, f Font) {
	fmt.Fprintf(buf, "  <style>\n")
	fmt.Fprintf(buf, "    .calendarHeader { fill: %s; stroke: %s; stroke-width: 1.4; }\n", p.Background, p.Border)
	fmt.Fprintf(buf, "    .calendarTopTick { stroke: %s; }\n", p.Separator)
	fmt.Fprintf(buf, "    .calendarTopText { text-anchor: middle; fill: %s; user-select: none; }\n", p.TopText)
	fmt.Fprintf(buf, "    .calendarBottomText { text-anchor: middle; fill: %s; font-size: %.4gpx; user-select: none; }\n", p.BottomText, f.Size*12/14)
	fmt.Fprintf(buf, "  </style>\n")
}

func (p Palette) RenderBackground(buf *bytes.Buffer, x, y, w, h float64) {
	fmt.Fprintf(buf, `    <rect class="calendarHeader" x="%.2f" y="%.2f" width="%.2f" height="%.2f"/>`+"\n", x, y, w, h)
}

func (p Palette) RenderLine(buf *bytes.Buffer, x1, y1, x2, y2 float64) {
	fmt.Fprintf(buf, `    <line class="calendarTopTick" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", x1, y1, x2, y2)
}

func (p Palette) RenderText(buf *bytes.Buffer, x, y float64, text string, role header.TextRole) {
	class := "calendarBottomText"
	if role == header.RoleTop {
		class = "calendarTopText"
	}
	fmt.Fprintf(buf, `    <text class="%s" x="%.2f" y="%.2f">%s</text>`+"\n", class, x, y, EscapeXML(text))
}

// EscapeXML escapes text for use in SVG character data and attributes.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
