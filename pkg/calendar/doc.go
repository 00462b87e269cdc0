// Package calendar computes the layout of a Gantt chart's calendar header.
//
// # Overview
//
// The header has two rows. The top row holds group labels: spanning segments
// such as a year or a month, each with a separator line and a text anchor.
// The bottom row holds unit labels: one text per column (or seven per column
// for the day-enumerating week variant).
//
// [Engine.Compute] turns an ordered sequence of ticks (one date per column),
// a [ViewMode] and a [Config] into a [Plan]. The computation is a single pass
// over the ticks, allocates its own output and keeps no state between calls,
// so one engine can serve any number of goroutines.
//
//	plan, err := calendar.Compute(ticks, calendar.ModeDay, calendar.Config{
//	    ColumnWidth:  65,
//	    HeaderHeight: 50,
//	    Locale:       "en",
//	})
//
// # View modes
//
//   - [ModeYear]: one unit per year; a group starts at every year change.
//   - [ModeMonth]: one "Jan, 2024" unit per month; no groups unless
//     [MonthDualRow] is selected.
//   - [ModeWeek]: ISO week units, walked from the last tick to the first;
//     groups span runs of weeks and name the month (or month pair).
//   - [ModeDay]: "Mon, 29" units; a group closes whenever the next tick is in
//     another month and is centered over the month it closes.
//
// # Direction
//
// Under [RTL] separator lines and centered anchors are mirrored across the
// header (x → Width − x). The Year group text and Week number positions keep
// their historical direction-specific formulas so existing charts render
// unchanged.
package calendar
