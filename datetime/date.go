package datetime

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/eventcap/model"
)

var monthTable = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

// MonthNumber resolves a month name or abbreviation, ignoring case and a
// trailing period. Unlisted words that start with a three-letter
// abbreviation resolve to that month, so "Janvier" is January.
func MonthNumber(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSuffix(name, "."))
	if m, ok := monthTable[name]; ok {
		return m, true
	}
	if len(name) > 3 {
		if m, ok := monthTable[name[:3]]; ok {
			return m, true
		}
	}
	return 0, false
}

var (
	isoDate        = regexp.MustCompile(`(\d{4})[-/](\d{1,2})[-/](\d{1,2})`)
	numericDate    = regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})`)
	dayMonthDate   = regexp.MustCompile(`(?i)(\d{1,2})(?:st|nd|rd|th)?\s+([a-z]+)\.?(?:,?\s+(\d{4}))?`)
	monthDayDate   = regexp.MustCompile(`(?i)([a-z]+)\.?\s*(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?`)
	bareOrdinalDay = regexp.MustCompile(`(?i)^(\d{1,2})(?:st|nd|rd|th)$`)
)

// ParseDate converts a date phrase into calendar components. Forms are
// tried in order: ISO (2024-12-31), numeric month/day/year (12/31/2024,
// 12-31-24), day then month name (21st January 2025), month name then day
// (Dec 31, 2024), and a bare ordinal (21st).
//
// A missing year defaults to now's year; a bare ordinal also takes now's
// month. A two digit year is in the 2000s. Phrases that name an impossible
// date, such as February 30, return nil.
func ParseDate(phrase string, now time.Time) *model.DateComponents {
	phrase = strings.TrimSpace(phrase)

	if m := isoDate.FindStringSubmatch(phrase); m != nil {
		return validDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}

	if m := numericDate.FindStringSubmatch(phrase); m != nil {
		year := atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
		return validDate(year, atoi(m[1]), atoi(m[2]))
	}

	for _, m := range dayMonthDate.FindAllStringSubmatch(phrase, -1) {
		if month, ok := MonthNumber(m[2]); ok {
			return validDate(yearOr(m[3], now), month, atoi(m[1]))
		}
	}

	for _, m := range monthDayDate.FindAllStringSubmatch(phrase, -1) {
		if month, ok := MonthNumber(m[1]); ok {
			return validDate(yearOr(m[3], now), month, atoi(m[2]))
		}
	}

	if m := bareOrdinalDay.FindStringSubmatch(phrase); m != nil {
		return validDate(now.Year(), int(now.Month()), atoi(m[1]))
	}

	return nil
}

// validDate returns the components if they name a real calendar date
func validDate(year, month, day int) *model.DateComponents {
	if month < 1 || month > 12 || day < 1 {
		return nil
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return nil
	}
	return &model.DateComponents{Year: year, Month: month, Day: day}
}

func yearOr(s string, now time.Time) int {
	if s == "" {
		return now.Year()
	}
	return atoi(s)
}

// atoi converts a regexp digit group; groups are all-digit and short
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
