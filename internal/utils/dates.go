package utils

import (
	"strings"
	"time"
)

// DisplayDateFormat is the Swiss date format used for rendering and for
// free-text matching against dates.
const DisplayDateFormat = "02.01.2006"

var lenientDateLayouts = []string{
	"2.1.2006", // dot format, accepts 1.1.2025 and 01.01.2025
	"2.1.06",   // two-digit year, interpreted as 20xx
	"2006-01-02",
}

// ParseDateLenient parses user-typed dates. A slash separator is normalized
// to a dot first, then the dot format, the two-digit-year dot format and ISO
// are tried in order. Returns false for unparseable input; callers keep the
// previously held value in that case instead of clearing it.
func ParseDateLenient(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}
	s = strings.ReplaceAll(s, "/", ".")

	for _, layout := range lenientDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			// Two-digit years always mean 20xx. time.Parse maps 69
			// through 99 to 19xx, so shift those forward.
			if layout == "2.1.06" && t.Year() < 2000 {
				t = t.AddDate(100, 0, 0)
			}
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a date in the display format; zero dates render empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DisplayDateFormat)
}
