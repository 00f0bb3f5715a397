package layout

import (
	"strings"

	"github.com/tsawler/eventcap/model"
)

// Paragraph is a run of vertically adjacent blocks
type Paragraph struct {
	// Blocks are the member blocks in reading order
	Blocks []model.TextBlock

	// Indices are the members' positions in the input slice
	Indices []int
}

// Text returns the trimmed block texts joined with single spaces
func (p Paragraph) Text() string {
	texts := make([]string, len(p.Blocks))
	for i, b := range p.Blocks {
		texts[i] = strings.TrimSpace(b.Text)
	}
	return strings.Join(texts, " ")
}

// BlockCount returns the number of blocks in the paragraph
func (p Paragraph) BlockCount() int {
	return len(p.Blocks)
}

// ParagraphConfig holds configuration for paragraph grouping
type ParagraphConfig struct {
	// Gap is the vertical distance below the previous block's bottom edge
	// beyond which a block starts a new paragraph
	// Default: 20
	Gap int
}

// DefaultParagraphConfig returns sensible default configuration
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{
		Gap: 20,
	}
}

// ParagraphDetector groups blocks into paragraphs by vertical proximity
type ParagraphDetector struct {
	config ParagraphConfig
}

// NewParagraphDetector creates a new paragraph detector with default configuration
func NewParagraphDetector() *ParagraphDetector {
	return &ParagraphDetector{
		config: DefaultParagraphConfig(),
	}
}

// NewParagraphDetectorWithConfig creates a paragraph detector with custom configuration
func NewParagraphDetectorWithConfig(config ParagraphConfig) *ParagraphDetector {
	return &ParagraphDetector{
		config: config,
	}
}

// Detect walks the blocks in reading order, skipping excluded indices,
// and starts a new paragraph whenever a block's top is more than Gap
// below the bottom of the block before it. exclude may be nil.
func (d *ParagraphDetector) Detect(blocks []model.TextBlock, exclude map[int]bool) []Paragraph {
	var paragraphs []Paragraph
	var current Paragraph
	lastBottom := 0

	for _, idx := range ReadingOrder(blocks) {
		if exclude[idx] {
			continue
		}
		block := blocks[idx]

		if current.BlockCount() > 0 && block.Top() > lastBottom+d.config.Gap {
			paragraphs = append(paragraphs, current)
			current = Paragraph{}
		}

		current.Blocks = append(current.Blocks, block)
		current.Indices = append(current.Indices, idx)
		lastBottom = block.Bottom()
	}

	if current.BlockCount() > 0 {
		paragraphs = append(paragraphs, current)
	}

	return paragraphs
}
