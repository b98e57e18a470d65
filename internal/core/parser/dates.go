package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date token shapes tried in order. The numeric patterns are mutually
// exclusive by token shape, so the first match wins without further
// disambiguation.
var (
	dayMonthYear4 = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)
	dayMonthYear2 = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{2})$`)
	yearMonthDay  = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	dayMonYear    = regexp.MustCompile(`^(\d{1,2})[-/]([A-Za-z]{3})[-/](\d{2,4})$`)
)

// Layouts for the generic fallback when no known token shape matches.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02 Jan 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// ParseDate normalizes a heterogeneous date token into a calendar date.
// Two-digit years are interpreted as 2000+YY. Tokens like "27-Dec-24",
// common in bank SMS bodies, are also accepted.
func ParseDate(token string) (time.Time, error) {
	token = strings.TrimSpace(token)

	if m := dayMonthYear4.FindStringSubmatch(token); m != nil {
		return makeDate(atoi(m[3]), atoi(m[2]), atoi(m[1]))
	}
	if m := dayMonthYear2.FindStringSubmatch(token); m != nil {
		return makeDate(2000+atoi(m[3]), atoi(m[2]), atoi(m[1]))
	}
	if m := yearMonthDay.FindStringSubmatch(token); m != nil {
		return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := dayMonYear.FindStringSubmatch(token); m != nil {
		month, err := time.Parse("Jan", strings.ToUpper(m[2][:1])+strings.ToLower(m[2][1:]))
		if err != nil {
			return time.Time{}, fmt.Errorf("unrecognized month token %q", m[2])
		}
		year := atoi(m[3])
		if year < 100 {
			year += 2000
		}
		return makeDate(year, int(month.Month()), atoi(m[1]))
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date token %q", token)
}

// makeDate rejects impossible calendar dates (e.g. 31-02) instead of letting
// time.Date normalize them into the next month.
func makeDate(year, month, day int) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid calendar date %02d-%02d-%04d", day, month, year)
	}
	return t, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
