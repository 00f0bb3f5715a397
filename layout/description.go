package layout

import (
	"strings"

	"github.com/tsawler/eventcap/model"
)

// DescriptionAssembler builds an event description from the blocks left
// over once the title, date, time and location blocks are claimed.
type DescriptionAssembler struct {
	paragraphs *ParagraphDetector
}

// NewDescriptionAssembler creates an assembler with the default paragraph gap
func NewDescriptionAssembler() *DescriptionAssembler {
	return &DescriptionAssembler{
		paragraphs: NewParagraphDetector(),
	}
}

// NewDescriptionAssemblerWithConfig creates an assembler with a custom
// paragraph configuration
func NewDescriptionAssemblerWithConfig(config ParagraphConfig) *DescriptionAssembler {
	return &DescriptionAssembler{
		paragraphs: NewParagraphDetectorWithConfig(config),
	}
}

// Assemble joins the unexcluded blocks' texts with spaces within a
// paragraph and newlines between paragraphs. It returns nil when nothing
// but whitespace remains.
func (a *DescriptionAssembler) Assemble(blocks []model.TextBlock, exclude map[int]bool) *string {
	paragraphs := a.paragraphs.Detect(blocks, exclude)

	texts := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		texts[i] = p.Text()
	}

	description := strings.TrimSpace(strings.Join(texts, "\n"))
	if description == "" {
		return nil
	}
	return &description
}

// Exclusions collects block indices into a set
func Exclusions(groups ...[]int) map[int]bool {
	set := make(map[int]bool)
	for _, g := range groups {
		for _, idx := range g {
			set[idx] = true
		}
	}
	return set
}
