package ocr

import (
	"sort"
	"strings"

	"github.com/dhconnelly/rtreego"

	"github.com/tsawler/eventcap/model"
)

const (
	dimensions  = 2
	minChildren = 2
	maxChildren = 8
)

// Region is a recognized piece of text with its box, as reported by an
// OCR engine at one iterator level (block, line, word).
type Region struct {
	Text string
	Box  model.BBox
}

// indexedBlock wraps a block region for R-tree indexing
type indexedBlock struct {
	index int
	box   model.BBox
	rect  *rtreego.Rect
}

func (b *indexedBlock) Bounds() *rtreego.Rect {
	return b.rect
}

// AssembleBlocks attaches each line region to the block region that
// contains the line's center, producing text blocks with lines. When
// several blocks contain the center the smallest one wins. Lines outside
// every block become single-line blocks of their own, after the others.
//
// A block's text is its own recognized text when present, otherwise its
// lines joined with newlines. All text is passed through NormalizeText,
// and regions left without text are dropped.
func AssembleBlocks(blocks, lines []Region) []model.TextBlock {
	tree := rtreego.NewTree(dimensions, minChildren, maxChildren)
	for i, b := range blocks {
		tree.Insert(&indexedBlock{index: i, box: b.Box, rect: boxRect(b.Box)})
	}

	assigned := make([][]model.Line, len(blocks))
	var orphans []model.TextBlock

	for _, l := range lines {
		text := NormalizeText(l.Text)
		if text == "" {
			continue
		}
		box := l.Box
		line := model.Line{Text: text, BoundingBox: &box}

		owner := -1
		center := rtreego.Point{box.CenterX(), box.CenterY()}
		for _, hit := range tree.SearchIntersect(center.ToRect(0.5)) {
			ib := hit.(*indexedBlock)
			if !ib.box.Contains(box.Center()) {
				continue
			}
			if owner == -1 || smaller(ib, blocks, owner) {
				owner = ib.index
			}
		}

		if owner == -1 {
			orphans = append(orphans, model.TextBlock{Text: text, BoundingBox: &box, Lines: []model.Line{line}})
			continue
		}
		assigned[owner] = append(assigned[owner], line)
	}

	var result []model.TextBlock
	for i, b := range blocks {
		blockLines := assigned[i]
		sort.SliceStable(blockLines, func(a, c int) bool {
			return blockLines[a].BoundingBox.Top < blockLines[c].BoundingBox.Top
		})

		text := NormalizeText(b.Text)
		if text == "" {
			texts := make([]string, len(blockLines))
			for j, l := range blockLines {
				texts[j] = l.Text
			}
			text = strings.Join(texts, "\n")
		}
		if text == "" {
			continue
		}

		box := b.Box
		result = append(result, model.TextBlock{Text: text, BoundingBox: &box, Lines: blockLines})
	}

	return append(result, orphans...)
}

// smaller reports whether candidate is a better owner than the current
// one: smaller area first, lower index on ties.
func smaller(candidate *indexedBlock, blocks []Region, current int) bool {
	ca, cur := candidate.box.Area(), blocks[current].Box.Area()
	if ca != cur {
		return ca < cur
	}
	return candidate.index < current
}

// boxRect converts a box to an R-tree rectangle. Degenerate boxes get a
// minimal extent because the tree rejects zero-length sides.
func boxRect(b model.BBox) *rtreego.Rect {
	w, h := float64(b.Width()), float64(b.Height())
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	rect, err := rtreego.NewRect(rtreego.Point{float64(b.Left), float64(b.Top)}, []float64{w, h})
	if err != nil {
		return rtreego.Point{float64(b.Left), float64(b.Top)}.ToRect(0.5)
	}
	return rect
}
