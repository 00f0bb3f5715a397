package eventcap

import (
	"context"
	"log/slog"
	"time"

	"github.com/tsawler/eventcap/layout"
)

// ExtractOptions holds configuration for event extraction.
type ExtractOptions struct {
	// Loading
	ctx           context.Context
	ocrLanguage   string
	minImageWidth int

	// Extraction tuning
	title        layout.TitleConfig
	paragraphGap int

	// Normalization
	location *time.Location
	now      func() time.Time

	logger *slog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		ctx:          context.Background(),
		title:        layout.DefaultTitleConfig(),
		paragraphGap: layout.DefaultParagraphConfig().Gap,
		location:     time.Local,
		now:          time.Now,
	}
}

// clone creates a copy of ExtractOptions. Every field is a value or
// shared read-only.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		ctx:           o.ctx,
		ocrLanguage:   o.ocrLanguage,
		minImageWidth: o.minImageWidth,
		title:         o.title,
		paragraphGap:  o.paragraphGap,
		location:      o.location,
		now:           o.now,
		logger:        o.logger,
	}
}

// loggerOrDefault returns the configured logger, or slog.Default() at the
// time of the call.
func (o ExtractOptions) loggerOrDefault() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}
