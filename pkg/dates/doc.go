// Package dates provides the calendar arithmetic and locale-aware naming used
// by the header layout engine.
//
// # Arithmetic
//
// [DaysInMonth], [IsLeapYear] and [ISOWeekNumber] are pure functions over the
// proleptic Gregorian calendar. Out-of-range months are normalized the way
// [time.Date] normalizes them, so a malformed tick never aborts a layout.
//
// # Names
//
// A [Formatter] supplies short month names, weekday names and week numbers.
// Two implementations exist:
//
//   - [Native]: built-in abbreviation tables for a handful of languages
//   - [Monday]: backed by github.com/goodsign/monday and its locale set
//
// Both resolve the locale tag with golang.org/x/text/language and fall back
// to [DefaultLocale] when the tag is malformed or unsupported:
//
//	f := dates.NewFormatter(dates.FormatterNative)
//	f.MonthName(t, "fr-CA")   // "janv."
//	f.MonthName(t, "xx-??")   // "Jan"
package dates
