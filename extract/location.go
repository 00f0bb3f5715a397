package extract

import (
	"strings"

	"github.com/tsawler/eventcap/model"
)

// Location finds the event location in two phases.
//
// First, LocationKeywords are tried in order against the full text. For
// the first keyword present, the first line containing it is located and
// the trimmed text after the keyword on that line is returned. A keyword
// with nothing after it on its line falls through to the next keyword.
//
// Otherwise VenuePatterns are tried against the full text.
func Location(text string, lines []string) *string {
	lowerText := asciiLower(text)

	for _, keyword := range LocationKeywords {
		if !strings.Contains(lowerText, keyword) {
			continue
		}
		for _, line := range lines {
			idx := strings.Index(asciiLower(line), keyword)
			if idx == -1 {
				continue
			}
			location := strings.TrimSpace(line[idx+len(keyword):])
			if location != "" {
				return &location
			}
			break
		}
	}

	return findFirst(VenuePatterns, text)
}

// ContainingBlocks returns the indices of every block whose text contains
// substr, ignoring case.
func ContainingBlocks(blocks []model.TextBlock, substr string) []int {
	needle := strings.ToLower(substr)
	var indices []int
	for i, b := range blocks {
		if strings.Contains(strings.ToLower(b.Text), needle) {
			indices = append(indices, i)
		}
	}
	return indices
}
