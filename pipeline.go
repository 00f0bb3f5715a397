package eventcap

import (
	"github.com/tsawler/eventcap/datetime"
	"github.com/tsawler/eventcap/extract"
	"github.com/tsawler/eventcap/layout"
	"github.com/tsawler/eventcap/model"
)

// parseBlocks runs one extraction pass over blocks. The title, date, time
// and location are found independently; every block that supplied one of
// them is then left out of the description.
func parseBlocks(blocks []model.TextBlock, opts ExtractOptions) model.RawEventData {
	text := model.JoinText(blocks)
	lines := model.LineTexts(blocks)

	ev := model.RawEventData{RawText: &text}
	var claimed [][]int

	if title, ok := layout.NewTitleDetectorWithConfig(opts.title).Detect(blocks); ok {
		ev.Title = model.StringPtr(title.Text)
		claimed = append(claimed, []int{title.Index})
	}

	ev.Date = extract.Date(text)
	if ev.Date != nil {
		claimed = append(claimed, extract.ContainingBlocks(blocks, *ev.Date))
	}

	ev.Time = extract.TimeInBlocks(blocks)
	claimed = append(claimed, extract.TimeBlocks(blocks))

	ev.Location = extract.Location(text, lines)
	if ev.Location != nil {
		claimed = append(claimed, extract.ContainingBlocks(blocks, *ev.Location))
	}

	assembler := layout.NewDescriptionAssemblerWithConfig(layout.ParagraphConfig{Gap: opts.paragraphGap})
	ev.Description = assembler.Assemble(blocks, layout.Exclusions(claimed...))

	opts.loggerOrDefault().Debug("parsed event",
		"blocks", len(blocks),
		"title", model.Deref(ev.Title),
		"date", model.Deref(ev.Date),
		"time", model.Deref(ev.Time),
		"location", model.Deref(ev.Location),
		"description", model.Deref(ev.Description),
	)
	return ev
}

func newNormalizer(opts ExtractOptions) *datetime.Normalizer {
	return datetime.NewNormalizerWithConfig(datetime.NormalizerConfig{
		Location: opts.location,
		Now:      opts.now,
		Logger:   opts.logger,
	})
}
