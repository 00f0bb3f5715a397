package eventcap

import (
	"fmt"
	"strings"

	"github.com/tsawler/eventcap/datetime"
	"github.com/tsawler/eventcap/model"
)

// WarningCode classifies a Warning
type WarningCode int

const (
	// WarningNoBlocks means the poster had no text at all
	WarningNoBlocks WarningCode = iota + 1
	// WarningNoTitle means no block qualified as the title
	WarningNoTitle
	// WarningNoDate means no date phrase was found
	WarningNoDate
	// WarningUnparsedDate means a date phrase was found but could not be
	// resolved to a calendar date
	WarningUnparsedDate
	// WarningUnparsedTime means a time phrase was found but could not be
	// read, so the event was made all day
	WarningUnparsedTime
)

// String returns the code's name
func (c WarningCode) String() string {
	switch c {
	case WarningNoBlocks:
		return "no-blocks"
	case WarningNoTitle:
		return "no-title"
	case WarningNoDate:
		return "no-date"
	case WarningUnparsedDate:
		return "unparsed-date"
	case WarningUnparsedTime:
		return "unparsed-time"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue found during extraction. The extraction
// still succeeded, but the result is likely to need editing.
type Warning struct {
	Code    WarningCode
	Message string
}

// String returns the warning as "code: message"
func (w Warning) String() string {
	return w.Code.String() + ": " + w.Message
}

// FormatWarnings joins warnings into a single line for logging
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

func collectWarnings(blocks []model.TextBlock, ev model.RawEventData, dt *model.StructuredDateTime) []Warning {
	if len(blocks) == 0 {
		return []Warning{{Code: WarningNoBlocks, Message: "poster has no text blocks"}}
	}

	var warnings []Warning
	if ev.Title == nil {
		warnings = append(warnings, Warning{Code: WarningNoTitle, Message: "no title candidate found"})
	}
	switch {
	case ev.Date == nil:
		warnings = append(warnings, Warning{Code: WarningNoDate, Message: "no date found"})
	case dt == nil:
		warnings = append(warnings, Warning{
			Code:    WarningUnparsedDate,
			Message: fmt.Sprintf("date %q could not be resolved", *ev.Date),
		})
	}
	if ev.Date != nil && ev.Time != nil && datetime.ParseTime(*ev.Time) == nil {
		warnings = append(warnings, Warning{
			Code:    WarningUnparsedTime,
			Message: fmt.Sprintf("time %q could not be read; event is all day", *ev.Time),
		})
	}
	return warnings
}
