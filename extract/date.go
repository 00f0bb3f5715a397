package extract

// Date returns the first date phrase found in text, trying DatePatterns in
// priority order, or nil if no pattern matches.
func Date(text string) *string {
	return findFirst(DatePatterns, text)
}

// HasDate returns true if any date pattern matches text
func HasDate(text string) bool {
	for _, p := range DatePatterns {
		if p.Matches(text) {
			return true
		}
	}
	return false
}
