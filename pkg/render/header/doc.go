// Package header draws a [calendar.Plan] onto a [Canvas].
//
// A Canvas is anything that can draw a rectangle, a line and a piece of
// text: the SVG writer in the sink package, the terminal grid used by the
// preview, or the [Recorder] used in tests. [Draw] always paints the same
// sequence: the background rectangle, every unit label, then each group's
// separator line followed by its text.
//
// # Memo gate
//
// Interactive hosts redraw on every event. [Adapter] skips the redraw when
// the plan's [CacheKey] (column width, mode and tick count) equals the one
// it drew last. The key is coarse on purpose: a relabel, a scroll that
// keeps the tick count, or a locale or direction change produces an equal
// key and is not redrawn. Call [Adapter.Invalidate] after such changes.
//
// An Adapter belongs to one chart and is not safe for concurrent use.
//
// [calendar.Plan]: github.com/matzehuels/ganttcal/pkg/calendar.Plan
package header
