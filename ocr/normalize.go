package ocr

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText folds compatibility characters that OCR engines emit
// (ligatures such as "ﬁ", full-width digits and colons, non-breaking
// spaces) to their plain forms, collapses runs of spaces within each line
// and drops blank lines.
func NormalizeText(s string) string {
	s = norm.NFKC.String(s)

	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
