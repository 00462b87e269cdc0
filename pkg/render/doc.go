// Package render turns header layout plans into pictures.
//
// # Overview
//
// The layout engine in [calendar] produces a [calendar.Plan]: positioned
// group and unit labels. Rendering happens in three layers:
//
//   - [header]: replays a plan as drawing primitives on a Canvas, with a
//     coarse memo gate for interactive redraws
//   - [styles]: colors and fonts used by the SVG canvas
//   - [sink]: output formats (SVG, JSON, PDF, PNG, terminal text)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(plan)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// Without rsvg-convert both return an UNSUPPORTED error; [Available] checks
// up front.
//
// [calendar]: github.com/matzehuels/ganttcal/pkg/calendar
// [calendar.Plan]: github.com/matzehuels/ganttcal/pkg/calendar.Plan
// [header]: github.com/matzehuels/ganttcal/pkg/render/header
// [styles]: github.com/matzehuels/ganttcal/pkg/render/styles
// [sink]: github.com/matzehuels/ganttcal/pkg/render/sink
package render
