// Package layout provides the geometric heuristics of event extraction:
// picking a title block and assembling a description from what is left.
//
// All detectors work on [model.TextBlock] values in image coordinates,
// with the origin at the top-left corner and Y growing downwards.
//
// # Title Detection
//
// The [TitleDetector] ranks blocks by height, keeps the three tallest that
// carry more than three characters, and scores each one:
//
//	detector := layout.NewTitleDetector()
//	if title, ok := detector.Detect(blocks); ok {
//	    fmt.Println(blocks[title.Index].Text, title.Score)
//	}
//
// A score is a [TitleFeatures] vector weighted by a [TitleWeights] table.
// The defaults come from the Weight constants and can be replaced as a
// whole:
//
//	config := layout.DefaultTitleConfig()
//	config.Weights.AllCaps = 1
//	detector := layout.NewTitleDetectorWithConfig(config)
//
// When two candidates score the same, the taller one wins, and between
// equally tall blocks the one that came first in the input.
//
// # Description Assembly
//
// The [DescriptionAssembler] walks the unclaimed blocks in reading order
// (top to bottom, then left to right) and groups them into paragraphs:
//
//	exclude := layout.Exclusions([]int{title.Index}, dateBlocks, timeBlocks)
//	description := layout.NewDescriptionAssembler().Assemble(blocks, exclude)
//
// A block whose top lies more than 20 units below the previous block's
// bottom starts a new paragraph. Blocks are joined with spaces and
// paragraphs with newlines.
package layout
