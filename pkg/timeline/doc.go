// Package timeline produces the tick sequences the header engine lays out.
//
// A tick is one column of the chart. [Seed] builds the ticks covering a
// start/end range at a view granularity, padded by one period on each side
// so the first and last columns are never clipped. [Parse] reads an explicit
// list of dates instead.
//
// Ticks are aligned to the start of their period: Jan 1 for years, the 1st
// for months, Monday for weeks and midnight UTC for days.
package timeline
