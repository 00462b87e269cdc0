package dates

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// WeekdayStyle selects the width of a weekday name.
type WeekdayStyle int

const (
	WeekdayShort  WeekdayStyle = iota // "Mon"
	WeekdayLong                       // "Monday"
	WeekdayNarrow                     // "M"
)

// Formatter names dates for a locale. Implementations must be safe for
// concurrent use and must never fail: unknown locales fall back to
// [DefaultLocale].
type Formatter interface {
	// MonthName returns the abbreviated month name of t.
	MonthName(t time.Time, locale string) string
	// WeekdayName returns the weekday name of t in the given style.
	WeekdayName(t time.Time, locale string, style WeekdayStyle) string
	// WeekNumber returns the ISO-8601 week number of t.
	WeekNumber(t time.Time) int
}

// LocaleResolver is implemented by formatters that can report which of
// their locales a tag resolves to.
type LocaleResolver interface {
	ResolveLocale(tag string) string
}

// EffectiveLocale returns the locale f uses for tag. Formatters that do not
// implement [LocaleResolver] are assumed to use the [Native] resolution.
func EffectiveLocale(f Formatter, tag string) string {
	if r, ok := f.(LocaleResolver); ok {
		return r.ResolveLocale(tag)
	}
	return ResolveLocale(tag)
}

// Formatter names accepted by [NewFormatter].
const (
	FormatterNative = "native"
	FormatterMonday = "monday"
)

// ValidFormatters is the set of names accepted by [NewFormatter].
var ValidFormatters = map[string]bool{
	FormatterNative: true,
	FormatterMonday: true,
}

// NewFormatter returns the formatter registered under name.
// Unknown or empty names return [Native].
func NewFormatter(name string) Formatter {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatterMonday:
		return Monday{}
	default:
		return Native{}
	}
}

// narrow returns the upper-cased first rune of name.
func narrow(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
