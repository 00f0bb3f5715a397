package model

import (
	"fmt"
	"strings"
)

// Line is a single recognized text line inside a block.
type Line struct {
	Text        string `json:"text" yaml:"text"`
	BoundingBox *BBox  `json:"boundingBox,omitempty" yaml:"boundingBox,omitempty"`
}

// TextBlock is a geometrically grouped unit of recognized text, as produced
// by an OCR pass. BoundingBox is nil when the recognizer reported no
// geometry; the accessors below then report zero for every edge.
//
// Blocks carry no identity of their own: within a single extraction pass a
// block is identified by its index in the input slice.
type TextBlock struct {
	Text        string `json:"text" yaml:"text"`
	BoundingBox *BBox  `json:"boundingBox,omitempty" yaml:"boundingBox,omitempty"`
	Lines       []Line `json:"lines,omitempty" yaml:"lines,omitempty"`
}

// HasGeometry returns true if the block has a bounding box
func (b TextBlock) HasGeometry() bool {
	return b.BoundingBox != nil
}

// Left returns the left edge, or 0 without geometry
func (b TextBlock) Left() int {
	if b.BoundingBox == nil {
		return 0
	}
	return b.BoundingBox.Left
}

// Top returns the top edge, or 0 without geometry
func (b TextBlock) Top() int {
	if b.BoundingBox == nil {
		return 0
	}
	return b.BoundingBox.Top
}

// Right returns the right edge, or 0 without geometry
func (b TextBlock) Right() int {
	if b.BoundingBox == nil {
		return 0
	}
	return b.BoundingBox.Right
}

// Bottom returns the bottom edge, or 0 without geometry
func (b TextBlock) Bottom() int {
	if b.BoundingBox == nil {
		return 0
	}
	return b.BoundingBox.Bottom
}

// Height returns the bounding box height, or 0 without geometry
func (b TextBlock) Height() int {
	if b.BoundingBox == nil {
		return 0
	}
	return b.BoundingBox.Height()
}

// Validate checks the block's geometry and the geometry of its lines
func (b TextBlock) Validate() error {
	if b.BoundingBox != nil {
		if err := b.BoundingBox.Validate(); err != nil {
			return err
		}
	}
	for i, line := range b.Lines {
		if line.BoundingBox == nil {
			continue
		}
		if err := line.BoundingBox.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}
	return nil
}

// JoinText returns the text of all blocks joined with newlines, in block
// order.
func JoinText(blocks []TextBlock) string {
	texts := make([]string, len(blocks))
	for i, b := range blocks {
		texts[i] = b.Text
	}
	return strings.Join(texts, "\n")
}

// LineTexts returns the text of every non-blank line of every block, in
// block order. A block without lines contributes its text split at
// newlines.
func LineTexts(blocks []TextBlock) []string {
	var lines []string
	for _, b := range blocks {
		if len(b.Lines) == 0 {
			for _, l := range strings.Split(b.Text, "\n") {
				if strings.TrimSpace(l) != "" {
					lines = append(lines, l)
				}
			}
			continue
		}
		for _, l := range b.Lines {
			if strings.TrimSpace(l.Text) == "" {
				continue
			}
			lines = append(lines, l.Text)
		}
	}
	return lines
}
