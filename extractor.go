package eventcap

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tsawler/eventcap/input"
	"github.com/tsawler/eventcap/layout"
	"github.com/tsawler/eventcap/model"
)

// Result pairs the raw fields of an event with their normalized datetime.
// DateTime is nil when no date could be resolved.
type Result struct {
	Event    model.RawEventData        `json:"event" yaml:"event"`
	DateTime *model.StructuredDateTime `json:"dateTime,omitempty" yaml:"dateTime,omitempty"`
}

// Extractor provides a fluent interface for extracting an event from a
// poster. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source, either a file or blocks supplied by the caller
	filename   string
	blocks     []model.TextBlock
	haveBlocks bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:   e.filename,
		blocks:     e.blocks,
		haveBlocks: e.haveBlocks,
		options:    e.options.clone(),
		err:        e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithLogger sets the logger that receives debug output. The default is
// slog.Default().
func (e *Extractor) WithLogger(logger *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = logger
	return newExt
}

// WithContext sets the context used while loading the poster.
func (e *Extractor) WithContext(ctx context.Context) *Extractor {
	newExt := e.clone()
	if ctx == nil {
		newExt.err = errors.New("nil context")
		return newExt
	}
	newExt.options.ctx = ctx
	return newExt
}

// InLocation sets the timezone dates and times are read in. The default is
// time.Local.
//
// Example:
//
//	nyc, _ := time.LoadLocation("America/New_York")
//	dt, _, err := eventcap.Open("poster.json").InLocation(nyc).DateTime()
func (e *Extractor) InLocation(loc *time.Location) *Extractor {
	newExt := e.clone()
	if loc == nil {
		newExt.err = errors.New("nil location")
		return newExt
	}
	newExt.options.location = loc
	return newExt
}

// WithClock sets the function supplying the current time, which fills in
// missing years and months. The default is time.Now.
func (e *Extractor) WithClock(now func() time.Time) *Extractor {
	newExt := e.clone()
	if now == nil {
		newExt.err = errors.New("nil clock")
		return newExt
	}
	newExt.options.now = now
	return newExt
}

// WithTitleConfig replaces the title detection configuration.
func (e *Extractor) WithTitleConfig(config layout.TitleConfig) *Extractor {
	newExt := e.clone()
	newExt.options.title = config
	return newExt
}

// WithTitleCandidates sets how many of the tallest blocks are considered
// as the title.
func (e *Extractor) WithTitleCandidates(n int) *Extractor {
	newExt := e.clone()
	if n < 1 {
		newExt.err = errors.New("title candidates must be at least 1")
		return newExt
	}
	newExt.options.title.CandidateCount = n
	return newExt
}

// WithParagraphGap sets the vertical gap, in pixels, that separates
// description paragraphs.
func (e *Extractor) WithParagraphGap(gap int) *Extractor {
	newExt := e.clone()
	if gap < 0 {
		newExt.err = errors.New("paragraph gap cannot be negative")
		return newExt
	}
	newExt.options.paragraphGap = gap
	return newExt
}

// WithOCRLanguage sets the Tesseract language used for image posters.
func (e *Extractor) WithOCRLanguage(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.ocrLanguage = lang
	return newExt
}

// WithMinImageWidth sets the width below which image posters are upscaled
// before recognition. Zero uses the recognizer's default.
func (e *Extractor) WithMinImageWidth(width int) *Extractor {
	newExt := e.clone()
	if width < 0 {
		newExt.err = errors.New("minimum image width cannot be negative")
		return newExt
	}
	newExt.options.minImageWidth = width
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Blocks returns the poster's text blocks, loading the file if the
// Extractor was created with Open.
func (e *Extractor) Blocks() ([]model.TextBlock, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.haveBlocks {
		return e.blocks, nil
	}
	if e.filename == "" {
		return nil, errors.New("no filename specified")
	}
	return input.Load(e.options.ctx, e.filename, input.Options{
		OCRLanguage: e.options.ocrLanguage,
		MinWidth:    e.options.minImageWidth,
		Logger:      e.options.logger,
	})
}

// Event extracts the raw event fields.
//
// Warnings report fields that could not be found; missing fields are
// expected on real posters and are not errors.
func (e *Extractor) Event() (model.RawEventData, []Warning, error) {
	result, warnings, err := e.Result()
	if err != nil {
		return model.RawEventData{}, nil, err
	}
	return result.Event, warnings, nil
}

// DateTime extracts the event and returns its normalized datetime, or nil
// when no date could be resolved.
func (e *Extractor) DateTime() (*model.StructuredDateTime, []Warning, error) {
	result, warnings, err := e.Result()
	if err != nil {
		return nil, nil, err
	}
	return result.DateTime, warnings, nil
}

// Result extracts the event and normalizes its date and time.
//
// Example:
//
//	result, warnings, err := eventcap.Open("poster.json").Result()
func (e *Extractor) Result() (*Result, []Warning, error) {
	blocks, err := e.Blocks()
	if err != nil {
		return nil, nil, err
	}

	ev := parseBlocks(blocks, e.options)
	dt := newNormalizer(e.options).Normalize(ev.Date, ev.Time)

	return &Result{Event: ev, DateTime: dt}, collectWarnings(blocks, ev, dt), nil
}
