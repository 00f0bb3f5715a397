package layout

import (
	"sort"

	"github.com/tsawler/eventcap/model"
)

// ReadingOrder returns block indices sorted top to bottom, then left to
// right. Blocks without geometry sort as if at the origin. Blocks with the
// same position keep their input order.
func ReadingOrder(blocks []model.TextBlock) []int {
	order := make([]int, len(blocks))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := blocks[order[i]], blocks[order[j]]
		if a.Top() != b.Top() {
			return a.Top() < b.Top()
		}
		return a.Left() < b.Left()
	})

	return order
}

// ReorderForReading returns a copy of blocks in reading order
func ReorderForReading(blocks []model.TextBlock) []model.TextBlock {
	result := make([]model.TextBlock, 0, len(blocks))
	for _, idx := range ReadingOrder(blocks) {
		result = append(result, blocks[idx])
	}
	return result
}
