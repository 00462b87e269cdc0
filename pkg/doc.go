// Package pkg provides the core libraries for ganttcal, a Gantt chart calendar
// header layout engine.
//
// # Overview
//
// A Gantt chart's timeline has one column per tick (a date). Above the
// columns sits a two-row header: a top row of spanning group labels (years,
// months, month pairs) and a bottom row of per-column unit labels ("Mon, 29",
// "Jan, 2024", ISO week numbers). ganttcal computes where every label and
// separator goes and renders the result.
//
// # Architecture
//
// The typical data flow:
//
//	start/end range or explicit ticks
//	         ↓
//	    [timeline] package (align + step ticks)
//	         ↓
//	    [calendar] package (header layout plan)
//	         ↓
//	    [render/header] package (draw primitives, memo gate)
//	         ↓
//	    SVG/JSON/PDF/PNG/text output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/ganttcal/pkg/calendar"
//	    "github.com/matzehuels/ganttcal/pkg/render/sink"
//	    "github.com/matzehuels/ganttcal/pkg/timeline"
//	)
//
//	ticks, _ := timeline.Seed(start, end, calendar.ModeDay)
//	plan, _ := calendar.Compute(ticks, calendar.ModeDay, calendar.Config{
//	    ColumnWidth:  65,
//	    HeaderHeight: 50,
//	})
//	svg := sink.RenderSVG(plan)
//
// # Main Packages
//
// [calendar] - The layout engine. Turns ticks, a view mode and a config into
// a [calendar.Plan] of positioned group and unit labels.
//
// [dates] - Calendar arithmetic (ISO weeks, days in month, leap years) and the
// pluggable localized date formatters (native and goodsign/monday).
//
// [timeline] - Tick generation: aligning dates to a view mode and stepping
// through a range.
//
// [render] - SVG to PDF/PNG conversion, plus:
//
//   - [render/header]: replays a plan onto a Canvas with a memoized redraw gate
//   - [render/sink]: output formats (SVG, JSON, PDF, PNG, terminal text)
//   - [render/styles]: header color and font themes
//
// [pipeline] - Options, config files (TOML, YAML, JSON) and the cached
// seed → layout → render runner used by the CLI and the HTTP server.
//
// [cache] - Plan and artifact caches: null, file (XDG) and Redis backends,
// with scoped keys.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/calendar/...  # Specific package
//	go test -run Example        # Examples only
//
// [calendar]: https://pkg.go.dev/github.com/matzehuels/ganttcal/pkg/calendar
// [calendar.Plan]: https://pkg.go.dev/github.com/matzehuels/ganttcal/pkg/calendar#Plan
// [dates]: https://pkg.go.dev/github.com/matzehuels/ganttcal/pkg/dates
// [timeline]: https://pkg.go.dev/github.com/matzehuels/ganttcal/pkg/timeline
// [render]: https://pkg.go.dev/github.com/matzehuels/ganttcal/pkg/render
// [render/header]: https://pkg.go.dev/github.com/matzehuels/ganttcal/pkg/render/header
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/ganttcal/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/ganttcal/pkg/render/styles
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/ganttcal/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/ganttcal/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/ganttcal/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/ganttcal/pkg/observability
package pkg
