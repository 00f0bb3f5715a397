package extract

import (
	"regexp"
	"strings"
)

// Pattern is one entry of an ordered pattern table.
type Pattern struct {
	// Name identifies the pattern in tests and debug output
	Name string

	// Regexp is the compiled pattern
	Regexp *regexp.Regexp

	// leadingBoundary requires a word boundary before the match. It stands
	// in for a leading \b on patterns that are searched from an offset,
	// where \b would see the offset as the start of the text.
	leadingBoundary bool

	// reject vetoes a match when it matches the text at the match start.
	// The search then resumes one byte later, like a negative lookahead.
	reject *regexp.Regexp
}

// Find returns the trimmed leftmost match of the pattern in text
func (p Pattern) Find(text string) (string, bool) {
	if p.reject == nil && !p.leadingBoundary {
		m := p.Regexp.FindString(text)
		if m == "" {
			return "", false
		}
		return strings.TrimSpace(m), true
	}

	for off := 0; off < len(text); {
		loc := p.Regexp.FindStringIndex(text[off:])
		if loc == nil {
			return "", false
		}
		start, end := off+loc[0], off+loc[1]
		if p.leadingBoundary && start > 0 && isWordByte(text[start-1]) {
			off = start + 1
			continue
		}
		if p.reject != nil && p.reject.MatchString(text[start:]) {
			off = start + 1
			continue
		}
		return strings.TrimSpace(text[start:end]), true
	}
	return "", false
}

// Matches returns true if the pattern matches anywhere in text
func (p Pattern) Matches(text string) bool {
	_, ok := p.Find(text)
	return ok
}

const (
	// monthNames matches full and abbreviated month names
	monthNames = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|June?|July?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

	// monthPrefix matches a three-letter month abbreviation and any letters after it
	monthPrefix = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*`

	weekdayNames = `(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)`

	ordinal = `\d{1,2}(?:st|nd|rd|th)`
)

// DatePatterns lists the date patterns in priority order. The first pattern
// that matches anywhere in the text wins, even when a later pattern would
// match earlier in the text or match a more complete date.
var DatePatterns = []Pattern{
	{Name: "ordinal-month", Regexp: regexp.MustCompile(`(?i)\b` + ordinal + ` ` + monthNames + `\b`)},
	{Name: "month-day-year", Regexp: regexp.MustCompile(`(?i)\b` + monthNames + `\.?\s*\d{1,2}(?:,?\s*\d{4})?`)},
	{Name: "numeric", Regexp: regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)},
	{Name: "iso", Regexp: regexp.MustCompile(`\b\d{4}[/-]\d{1,2}[/-]\d{1,2}\b`)},
	{Name: "weekday-month-day", Regexp: regexp.MustCompile(`(?i)\b` + weekdayNames + `,? ` + monthPrefix + ` \d{1,2}\b`)},
	{Name: "ordinal", Regexp: regexp.MustCompile(`(?i)\b` + ordinal + `\b`)},
	{Name: "month-ordinal", Regexp: regexp.MustCompile(`(?i)\b` + monthPrefix + ` ` + ordinal + `\b`)},
	{Name: "ordinal-month-prefix", Regexp: regexp.MustCompile(`(?i)\b` + ordinal + ` ` + monthPrefix + `\b`)},
}

// TimePatterns lists the time patterns in priority order: a range first,
// then a single time with a mandatory AM/PM designator. Twenty-four hour
// times such as "14:30" are not recognized.
var TimePatterns = []Pattern{
	{Name: "range", Regexp: regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*(?:AM|PM)?\s*(?:-|to)\s*\d{1,2}:\d{2}\s*(?:AM|PM)?\b`)},
	{Name: "single", Regexp: regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*(?:AM|PM)\b`)},
}

// LocationKeywords are scanned in order; the text after the first keyword
// found introduces the location.
var LocationKeywords = []string{"at ", "venue:", "location:", "@", "address:"}

// VenuePatterns are tried, in order, when no location keyword is present:
// virtual venues, then street addresses. An address never starts at a
// clock time such as "9 AM".
var VenuePatterns = []Pattern{
	{Name: "virtual", Regexp: regexp.MustCompile(`(?i)\b(?:online|virtual|zoom|google meet|teams|discord|webinar|livestream)\b`)},
	{
		Name:            "street-address",
		Regexp:          regexp.MustCompile(`(?i)\d+\s+[a-z0-9]+(?:\s+[a-z0-9]+)*\s+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr)\b`),
		leadingBoundary: true,
		reject:          regexp.MustCompile(`(?i)^\d+\s*(?:AM|PM)\b`),
	},
}

// findFirst returns the first pattern's match in priority order
func findFirst(patterns []Pattern, text string) *string {
	for _, p := range patterns {
		if m, ok := p.Find(text); ok {
			return &m
		}
	}
	return nil
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// asciiLower lowercases ASCII letters only, so byte offsets in the result
// are valid offsets into s.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
