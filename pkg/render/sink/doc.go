// Package sink provides output format renderers for calendar headers.
//
// # Overview
//
// A "sink" transforms a computed [calendar.Plan] into a final output format:
//
//   - SVG: a standalone header image
//   - JSON: the plan itself, for external tools and caching
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster image output (requires rsvg-convert)
//   - Text: a fixed-width grid for terminals
//
// # SVG Output
//
// [RenderSVG] replays the plan through [header.Draw] onto an SVG canvas:
//
//	svg := sink.RenderSVG(plan,
//	    sink.WithStyle(styles.Dark),
//	    sink.WithFont(styles.Font{Family: "Inter", Size: 13}),
//	)
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] first generate SVG, then convert via
// [render.ToPDF] and [render.ToPNG]. Without librsvg they fail with an
// UNSUPPORTED error.
//
// # Text Output
//
// [TextCanvas] implements [header.Canvas] over a rune grid. The terminal
// preview draws into it through a [header.Adapter].
//
// [calendar.Plan]: github.com/matzehuels/ganttcal/pkg/calendar.Plan
// [header.Draw]: github.com/matzehuels/ganttcal/pkg/render/header.Draw
// [header.Canvas]: github.com/matzehuels/ganttcal/pkg/render/header.Canvas
// [header.Adapter]: github.com/matzehuels/ganttcal/pkg/render/header.Adapter
// [render.ToPDF]: github.com/matzehuels/ganttcal/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/ganttcal/pkg/render.ToPNG
package sink
