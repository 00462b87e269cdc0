package dates

import "time"

// IsLeapYear reports whether year has 366 days: divisible by 4, except
// centuries not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year.
// Months outside 1..12 roll into the neighbouring years, so DaysInMonth(13, 2023)
// is the length of January 2024.
func DaysInMonth(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ISOWeekNumber returns the ISO-8601 week of t (1..53). Weeks start on
// Monday and week 1 holds the year's first Thursday, so early January can
// belong to the previous year's last week.
func ISOWeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekStart returns midnight of the Monday that starts t's ISO week.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t).AddDate(0, 0, -offset)
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
