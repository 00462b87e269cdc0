package dates

import (
	"strings"
	"sync"
	"time"

	"github.com/goodsign/monday"
)

// Monday is a [Formatter] backed by github.com/goodsign/monday, which knows
// far more locales than [Native]. The zero value is ready to use.
type Monday struct{}

var (
	mondayOnce    sync.Once
	mondayLocales map[string]monday.Locale // "fr_FR" → locale
	mondayByBase  map[string]monday.Locale // "fr" → first listed fr_* locale
)

func loadMondayLocales() {
	mondayLocales = make(map[string]monday.Locale)
	mondayByBase = make(map[string]monday.Locale)
	for _, loc := range monday.ListLocales() {
		key := string(loc)
		mondayLocales[strings.ToLower(key)] = loc
		base, _, _ := strings.Cut(key, "_")
		base = strings.ToLower(base)
		if _, ok := mondayByBase[base]; !ok {
			mondayByBase[base] = loc
		}
	}
}

// mondayLocale finds the monday locale closest to tag: exact language and
// region first, then any region of the language, then en_US.
func mondayLocale(tag string) monday.Locale {
	mondayOnce.Do(loadMondayLocales)

	t, ok := parseTag(tag)
	if !ok {
		return monday.LocaleEnUS
	}
	base, _ := t.Base()
	region, _ := t.Region()
	if loc, ok := mondayLocales[strings.ToLower(base.String()+"_"+region.String())]; ok {
		return loc
	}
	if loc, ok := mondayByBase[strings.ToLower(base.String())]; ok {
		return loc
	}
	return monday.LocaleEnUS
}

// MonthName returns the abbreviated month name of t.
func (Monday) MonthName(t time.Time, locale string) string {
	return monday.Format(t, "Jan", mondayLocale(locale))
}

// WeekdayName returns the weekday name of t.
func (Monday) WeekdayName(t time.Time, locale string, style WeekdayStyle) string {
	loc := mondayLocale(locale)
	switch style {
	case WeekdayLong:
		return monday.Format(t, "Monday", loc)
	case WeekdayNarrow:
		return narrow(monday.Format(t, "Monday", loc))
	default:
		return monday.Format(t, "Mon", loc)
	}
}

// WeekNumber returns the ISO-8601 week number of t.
func (Monday) WeekNumber(t time.Time) int { return ISOWeekNumber(t) }

// ResolveLocale returns the monday locale used for tag, e.g. "ja_JP".
func (Monday) ResolveLocale(tag string) string { return string(mondayLocale(tag)) }

var _ Formatter = Monday{}
