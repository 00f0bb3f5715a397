// Package eventcap provides a fluent API for extracting calendar events
// from the text blocks of a photographed or scanned event poster.
//
// Basic usage:
//
//	result, warnings, err := eventcap.Open("poster.json").Result()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", eventcap.FormatWarnings(warnings))
//	}
//	fmt.Println(model.Deref(result.Event.Title))
//
// With options:
//
//	dt, _, err := eventcap.Open("poster.png").
//	    InLocation(nyc).
//	    WithOCRLanguage("eng").
//	    DateTime()
//
// Posters can be read from JSON block documents, hOCR files or images
// (images need the "ocr" build tag). Blocks recognized elsewhere can be
// passed directly with FromBlocks. The lower-level extract, layout and
// datetime packages are also available.
package eventcap

import (
	"github.com/tsawler/eventcap/model"
)

// Open returns an Extractor for the poster file at path. The file is read
// by the terminal operations; configuration methods never touch it.
//
// Example:
//
//	ev, warnings, err := eventcap.Open("poster.hocr").Event()
func Open(path string) *Extractor {
	return &Extractor{
		filename: path,
		options:  defaultOptions(),
	}
}

// FromBlocks returns an Extractor over already recognized text blocks.
// The blocks are not copied and must not be modified while in use.
//
// Example:
//
//	result, _, err := eventcap.FromBlocks(blocks).InLocation(time.UTC).Result()
func FromBlocks(blocks []model.TextBlock) *Extractor {
	return &Extractor{
		blocks:     blocks,
		haveBlocks: true,
		options:    defaultOptions(),
	}
}

// Parse extracts the raw event fields from blocks with default options.
func Parse(blocks []model.TextBlock) model.RawEventData {
	return parseBlocks(blocks, defaultOptions())
}

// Normalize resolves date and time phrases to a structured datetime in the
// local timezone. It returns nil when the date is absent or unparsable.
func Normalize(date, clock *string) *model.StructuredDateTime {
	return newNormalizer(defaultOptions()).Normalize(date, clock)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	blocks := eventcap.Must(eventcap.Open("poster.json").Blocks())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a call to Event(), DateTime() or
// Result() and panics if the error is non-nil. It discards warnings and
// returns just the value.
//
// Example:
//
//	result := eventcap.MustResult(eventcap.Open("poster.json").Result())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
