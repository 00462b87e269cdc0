package dates

import "time"

// names holds CLDR abbreviated month names and weekday names for one
// language. Weekdays are indexed by time.Weekday (Sunday first).
type names struct {
	months       [12]string
	weekdays     [7]string
	weekdaysLong [7]string
}

var nativeNames = map[string]names{
	"en": {
		months:       [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		weekdays:     [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		weekdaysLong: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	},
	"fr": {
		months:       [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		weekdays:     [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		weekdaysLong: [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	},
	"de": {
		months:       [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		weekdays:     [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
		weekdaysLong: [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	},
	"es": {
		months:       [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		weekdays:     [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		weekdaysLong: [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	},
	"it": {
		months:       [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
		weekdays:     [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
		weekdaysLong: [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
	},
	"pt": {
		months:       [12]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."},
		weekdays:     [7]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."},
		weekdaysLong: [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
	},
	"nl": {
		months:       [12]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"},
		weekdays:     [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
		weekdaysLong: [7]string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"},
	},
}

// Native is a [Formatter] backed by built-in name tables.
// The zero value is ready to use.
type Native struct{}

func (Native) table(locale string) names {
	return nativeNames[ResolveLocale(locale)]
}

// MonthName returns the abbreviated month name of t.
func (n Native) MonthName(t time.Time, locale string) string {
	return n.table(locale).months[t.Month()-1]
}

// WeekdayName returns the weekday name of t.
func (n Native) WeekdayName(t time.Time, locale string, style WeekdayStyle) string {
	tbl := n.table(locale)
	switch style {
	case WeekdayLong:
		return tbl.weekdaysLong[t.Weekday()]
	case WeekdayNarrow:
		return narrow(tbl.weekdaysLong[t.Weekday()])
	default:
		return tbl.weekdays[t.Weekday()]
	}
}

// WeekNumber returns the ISO-8601 week number of t.
func (Native) WeekNumber(t time.Time) int { return ISOWeekNumber(t) }

// ResolveLocale returns the base language of the name table used for tag.
func (Native) ResolveLocale(tag string) string { return ResolveLocale(tag) }

var _ Formatter = Native{}
