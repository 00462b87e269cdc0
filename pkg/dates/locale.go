package dates

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used whenever a locale tag cannot be parsed or matched.
const DefaultLocale = "en"

// nativeTags lists the languages [Native] carries tables for.
// The first entry is the matcher's fallback.
var nativeTags = []language.Tag{
	language.English,
	language.French,
	language.German,
	language.Spanish,
	language.Italian,
	language.Portuguese,
	language.Dutch,
}

var nativeMatcher = language.NewMatcher(nativeTags)

// parseTag parses a BCP 47 tag, also accepting POSIX-style underscores
// ("fr_CA"). ok is false for empty or malformed tags.
func parseTag(tag string) (language.Tag, bool) {
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "_", "-"))
	if tag == "" {
		return language.Und, false
	}
	t, err := language.Parse(tag)
	if err != nil {
		return language.Und, false
	}
	return t, true
}

// ResolveLocale maps an arbitrary locale tag to the base language of the
// closest supported [Native] table ("fr-CA" → "fr"). Malformed and
// unsupported tags resolve to [DefaultLocale].
func ResolveLocale(tag string) string {
	t, ok := parseTag(tag)
	if !ok {
		return DefaultLocale
	}
	_, idx, conf := nativeMatcher.Match(t)
	if conf == language.No {
		return DefaultLocale
	}
	base, _ := nativeTags[idx].Base()
	return base.String()
}

// SupportedLocales returns the base languages with native name tables.
func SupportedLocales() []string {
	out := make([]string, len(nativeTags))
	for i, t := range nativeTags {
		base, _ := t.Base()
		out[i] = base.String()
	}
	return out
}
