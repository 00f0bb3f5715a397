package layout

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/eventcap/extract"
	"github.com/tsawler/eventcap/model"
)

// Title score weights. Positive weights are bonuses, negative weights are
// penalties. The proportional weights (center, vertical, height) are the
// maximum contribution, reached by a perfectly centered, topmost or tallest
// block.
const (
	WeightAllCaps          = 3.0
	WeightCentered         = 2.0
	WeightVertical         = 1.5
	WeightIdealLength      = 1.0
	WeightAcceptableLength = 0.5
	WeightHeight           = 1.0
	WeightSingleWord       = 0.2
	WeightIdealWordCount   = 0.5
	WeightLongWordCount    = 0.3
	WeightSentence         = -1.0
	WeightDateOrTime       = -2.0
	WeightTopBand          = 0.5
	WeightWide             = 0.5
	WeightTitleCase        = 0.5
	WeightDigitHeavy       = -1.0
)

// TitleWeights is the weight table applied to a TitleFeatures vector
type TitleWeights struct {
	AllCaps          float64
	Centered         float64
	Vertical         float64
	IdealLength      float64
	AcceptableLength float64
	Height           float64
	SingleWord       float64
	IdealWordCount   float64
	LongWordCount    float64
	Sentence         float64
	DateOrTime       float64
	TopBand          float64
	Wide             float64
	TitleCase        float64
	DigitHeavy       float64
}

// DefaultTitleWeights returns the weight table built from the Weight constants
func DefaultTitleWeights() TitleWeights {
	return TitleWeights{
		AllCaps:          WeightAllCaps,
		Centered:         WeightCentered,
		Vertical:         WeightVertical,
		IdealLength:      WeightIdealLength,
		AcceptableLength: WeightAcceptableLength,
		Height:           WeightHeight,
		SingleWord:       WeightSingleWord,
		IdealWordCount:   WeightIdealWordCount,
		LongWordCount:    WeightLongWordCount,
		Sentence:         WeightSentence,
		DateOrTime:       WeightDateOrTime,
		TopBand:          WeightTopBand,
		Wide:             WeightWide,
		TitleCase:        WeightTitleCase,
		DigitHeavy:       WeightDigitHeavy,
	}
}

// TitleFeatures is the feature vector of one title candidate
type TitleFeatures struct {
	// AllCaps is set when every letter is upper case
	AllCaps bool

	// Centeredness is 1 for a block centered on the image, falling to 0 at
	// the image edge
	Centeredness float64

	// Elevation is 1 for a block at the top of the image, falling to 0 at
	// the bottom
	Elevation float64

	// Length is the text length in characters
	Length int

	// RelativeHeight is the block height over the tallest block's height
	RelativeHeight float64

	// WordCount is the number of whitespace separated words
	WordCount int

	// SentenceLike is set when the text ends with a period or has more
	// than one
	SentenceLike bool

	// HasDateOrTime is set when the text matches a date or time pattern
	HasDateOrTime bool

	// InTopBand is set when the block starts near the topmost block
	InTopBand bool

	// Wide is set when the block is much wider than tall
	Wide bool

	// TitleCase is set when at least half the words are capitalized
	TitleCase bool

	// DigitHeavy is set when digits outnumber half the letters
	DigitHeavy bool
}

// Score sums the weighted contributions of the features
func (f TitleFeatures) Score(w TitleWeights) float64 {
	score := 0.0

	if f.AllCaps {
		score += w.AllCaps
	}
	score += f.Centeredness * w.Centered
	score += f.Elevation * w.Vertical

	switch {
	case f.Length < 5:
	case f.Length >= 10 && f.Length <= 40:
		score += w.IdealLength
	case f.Length <= 60:
		score += w.AcceptableLength
	}

	score += f.RelativeHeight * w.Height

	switch {
	case f.WordCount == 1:
		score += w.SingleWord
	case f.WordCount >= 2 && f.WordCount <= 8:
		score += w.IdealWordCount
	case f.WordCount >= 9 && f.WordCount <= 12:
		score += w.LongWordCount
	}

	if f.SentenceLike {
		score += w.Sentence
	}
	if f.HasDateOrTime {
		score += w.DateOrTime
	}
	if f.InTopBand {
		score += w.TopBand
	}
	if f.Wide {
		score += w.Wide
	}
	if f.TitleCase {
		score += w.TitleCase
	}
	if f.DigitHeavy {
		score += w.DigitHeavy
	}

	return score
}

// TitleConfig holds configuration for title detection
type TitleConfig struct {
	// CandidateCount is how many of the tallest blocks are considered
	// Default: 3
	CandidateCount int

	// MinTextLength excludes candidates whose text is not longer than this
	// Default: 3
	MinTextLength int

	// TopBandTolerance is how far below the topmost block a candidate may
	// start and still earn the top band bonus
	// Default: 50
	TopBandTolerance int

	// WideAspectRatio is the width/height ratio above which a block is wide
	// Default: 2
	WideAspectRatio float64

	// DigitRatioLimit is the digit/letter ratio above which text is digit heavy
	// Default: 0.5
	DigitRatioLimit float64

	// Weights is the score weight table
	Weights TitleWeights
}

// DefaultTitleConfig returns sensible default configuration
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		CandidateCount:   3,
		MinTextLength:    3,
		TopBandTolerance: 50,
		WideAspectRatio:  2,
		DigitRatioLimit:  0.5,
		Weights:          DefaultTitleWeights(),
	}
}

// TitleCandidate is a scored title candidate
type TitleCandidate struct {
	// Index is the block's position in the input slice
	Index int

	// Text is the block text
	Text string

	// Features is the extracted feature vector
	Features TitleFeatures

	// Score is the weighted feature sum
	Score float64
}

// TitleDetector picks the block most likely to be an event title
type TitleDetector struct {
	config TitleConfig
}

// NewTitleDetector creates a new title detector with default configuration
func NewTitleDetector() *TitleDetector {
	return &TitleDetector{
		config: DefaultTitleConfig(),
	}
}

// NewTitleDetectorWithConfig creates a title detector with custom configuration
func NewTitleDetectorWithConfig(config TitleConfig) *TitleDetector {
	return &TitleDetector{
		config: config,
	}
}

// Config returns the detector's configuration
func (d *TitleDetector) Config() TitleConfig {
	return d.config
}

// Detect returns the highest scoring candidate. Ties go to the candidate
// ranked first by height, so the result depends on block order when
// heights are equal. The second return value is false when no block
// qualifies.
func (d *TitleDetector) Detect(blocks []model.TextBlock) (TitleCandidate, bool) {
	candidates := d.Candidates(blocks)
	if len(candidates) == 0 {
		return TitleCandidate{}, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best, true
}

// Candidates ranks the blocks by height, keeps the tallest CandidateCount,
// drops those with too little text, and scores the rest. Candidates are
// returned in height order.
func (d *TitleDetector) Candidates(blocks []model.TextBlock) []TitleCandidate {
	if len(blocks) == 0 {
		return nil
	}

	ranked := rankByHeight(blocks)
	page := newPageMetrics(blocks, ranked[0])

	n := d.config.CandidateCount
	if n > len(ranked) {
		n = len(ranked)
	}

	var candidates []TitleCandidate
	for _, idx := range ranked[:n] {
		block := blocks[idx]
		if utf8.RuneCountInString(block.Text) <= d.config.MinTextLength {
			continue
		}
		features := d.extractFeatures(block, page)
		candidates = append(candidates, TitleCandidate{
			Index:    idx,
			Text:     block.Text,
			Features: features,
			Score:    features.Score(d.config.Weights),
		})
	}
	return candidates
}

// pageMetrics holds the page-wide values the features are measured against
type pageMetrics struct {
	width     int
	height    int
	maxHeight int
	topMost   int
}

// newPageMetrics measures the page. The image extents are inferred from the
// furthest block edges; tallest is the index of the tallest block.
func newPageMetrics(blocks []model.TextBlock, tallest int) pageMetrics {
	m := pageMetrics{
		maxHeight: 1,
		topMost:   math.MaxInt,
	}
	for _, b := range blocks {
		if b.Right() > m.width {
			m.width = b.Right()
		}
		if b.Bottom() > m.height {
			m.height = b.Bottom()
		}
		top := math.MaxInt
		if b.HasGeometry() {
			top = b.Top()
		}
		if top < m.topMost {
			m.topMost = top
		}
	}
	if blocks[tallest].HasGeometry() {
		m.maxHeight = blocks[tallest].Height()
	}
	return m
}

// extractFeatures computes the feature vector of a block against the
// page it was recognized on.
func (d *TitleDetector) extractFeatures(block model.TextBlock, page pageMetrics) TitleFeatures {
	text := block.Text
	words := splitWords(text)

	f := TitleFeatures{
		AllCaps:       isAllCaps(text),
		Length:        utf8.RuneCountInString(text),
		WordCount:     len(words),
		SentenceLike:  strings.HasSuffix(text, ".") || strings.Count(text, ".") > 1,
		HasDateOrTime: extract.HasDateOrTime(text),
		TitleCase:     isTitleCase(words),
		DigitHeavy:    isDigitHeavy(text, d.config.DigitRatioLimit),
	}

	bbox := block.BoundingBox
	if bbox == nil {
		return f
	}

	if page.width > 0 {
		centerX := float64(page.width) / 2
		f.Centeredness = 1 - clamp01(math.Abs(bbox.CenterX()-centerX)/centerX)
	}
	if page.height > 0 {
		f.Elevation = 1 - clamp01(float64(bbox.Top)/float64(page.height))
	}
	if page.maxHeight > 0 {
		f.RelativeHeight = clamp01(float64(bbox.Height()) / float64(page.maxHeight))
	}
	f.InTopBand = bbox.Top <= page.topMost+d.config.TopBandTolerance
	f.Wide = float64(bbox.Width())/float64(bbox.Height()) > d.config.WideAspectRatio

	return f
}

// rankByHeight returns block indices ordered by height, tallest first.
// Blocks of equal height keep their input order.
func rankByHeight(blocks []model.TextBlock) []int {
	order := make([]int, len(blocks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return blocks[order[i]].Height() > blocks[order[j]].Height()
	})
	return order
}

var whitespace = regexp.MustCompile(`\s+`)

// splitWords splits on whitespace runs. Leading or trailing whitespace
// yields an empty word, which counts toward the word total.
func splitWords(text string) []string {
	return whitespace.Split(text, -1)
}

// isAllCaps checks that no letter in text is lower case
func isAllCaps(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// isTitleCase checks that at least half of the words start upper case and
// continue with a lower case letter. A single word is never title case.
func isTitleCase(words []string) bool {
	if len(words) <= 1 {
		return false
	}
	count := 0
	for _, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		if size == 0 || !unicode.IsUpper(first) {
			continue
		}
		if strings.IndexFunc(w[size:], unicode.IsLower) >= 0 {
			count++
		}
	}
	return count >= len(words)/2
}

func isDigitHeavy(text string, limit float64) bool {
	digits, letters := 0, 0
	for _, r := range text {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLetter(r):
			letters++
		}
	}
	if letters == 0 {
		return false
	}
	return float64(digits)/float64(letters) > limit
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
