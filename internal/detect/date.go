package detect

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// outputLayout is the canonical stamp date representation.
const outputLayout = "02/01/2006"

// dateLayouts are tried in order; the first calendar-valid parse wins.
// Two-digit years are deliberately not handled here: they go through the
// regex path so the fixed "20"+yy expansion applies.
var dateLayouts = []string{
	"02.01.2006",
	"2.1.2006",
	"02-01-2006",
	"2-1-2006",
	"02/01/2006",
	"2/1/2006",
	"02 January 2006",
	"2 January 2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"2006-01-02",
	"2006.01.02",
}

// reDateTriplet extracts a loose (day, month-or-name, year) grouping.
var reDateTriplet = regexp.MustCompile(`(\d{1,2})\s*[./\s-]\s*([A-Za-z]{3,9}|\d{1,2})\s*[./\s-]\s*(\d{2,4})`)

var monthNames = map[string]int{
	"JAN": 1, "JANUARY": 1,
	"FEB": 2, "FEBRUARY": 2,
	"MAR": 3, "MARCH": 3,
	"APR": 4, "APRIL": 4,
	"MAY": 5,
	"JUN": 6, "JUNE": 6,
	"JUL": 7, "JULY": 7,
	"AUG": 8, "AUGUST": 8,
	"SEP": 9, "SEPT": 9, "SEPTEMBER": 9,
	"OCT": 10, "OCTOBER": 10,
	"NOV": 11, "NOVEMBER": 11,
	"DEC": 12, "DECEMBER": 12,
}

// FormatDate parses a raw stamp date and reformats it as DD/MM/YYYY. Returns
// "" when nothing parses; callers keep the owning record either way. Two-digit
// years are expanded by prefixing "20" unconditionally.
func FormatDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(outputLayout)
		}
	}

	m := reDateTriplet.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return ""
	}
	month, ok := resolveMonth(m[2])
	if !ok {
		return ""
	}
	year := m[3]
	if len(year) == 2 {
		year = "20" + year
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return ""
	}

	// Round-trip through time.Parse to reject impossible calendar dates.
	t, err := time.Parse("2-1-2006", fmt.Sprintf("%d-%d-%d", day, month, y))
	if err != nil {
		return ""
	}
	return t.Format(outputLayout)
}

func resolveMonth(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, false
		}
		return n, true
	}
	n, ok := monthNames[strings.ToUpper(s)]
	return n, ok
}
