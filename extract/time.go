package extract

import "github.com/tsawler/eventcap/model"

// Time returns the first time phrase found in text: a time range if one is
// present, otherwise a single AM/PM time, or nil.
func Time(text string) *string {
	return findFirst(TimePatterns, text)
}

// HasTime returns true if any time pattern matches text
func HasTime(text string) bool {
	for _, p := range TimePatterns {
		if p.Matches(text) {
			return true
		}
	}
	return false
}

// HasDateOrTime returns true if text matches any date or time pattern
func HasDateOrTime(text string) bool {
	return HasDate(text) || HasTime(text)
}

// TimeInBlocks returns the time phrase of the first block, in block order,
// whose text contains one.
func TimeInBlocks(blocks []model.TextBlock) *string {
	for _, b := range blocks {
		if t := Time(b.Text); t != nil {
			return t
		}
	}
	return nil
}

// TimeBlocks returns the indices of every block whose text contains a time
// phrase.
func TimeBlocks(blocks []model.TextBlock) []int {
	var indices []int
	for i, b := range blocks {
		if HasTime(b.Text) {
			indices = append(indices, i)
		}
	}
	return indices
}
