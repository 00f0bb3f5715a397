package datetime

import (
	"log/slog"
	"time"

	"github.com/tsawler/eventcap/model"
)

// NormalizerConfig holds configuration for datetime normalization
type NormalizerConfig struct {
	// Location is the timezone the parsed wall-clock values are read in
	// Default: time.Local
	Location *time.Location

	// Now supplies the current time for defaulted years and months
	// Default: time.Now
	Now func() time.Time

	// Logger receives a debug record per normalization
	// Default: slog.Default()
	Logger *slog.Logger
}

// DefaultNormalizerConfig returns sensible default configuration
func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		Location: time.Local,
		Now:      time.Now,
		Logger:   slog.Default(),
	}
}

// Normalizer turns extracted date and time phrases into a
// model.StructuredDateTime
type Normalizer struct {
	config NormalizerConfig
}

// NewNormalizer creates a new normalizer with default configuration
func NewNormalizer() *Normalizer {
	return NewNormalizerWithConfig(DefaultNormalizerConfig())
}

// NewNormalizerWithConfig creates a normalizer with custom configuration.
// Unset fields take their defaults.
func NewNormalizerWithConfig(config NormalizerConfig) *Normalizer {
	if config.Location == nil {
		config.Location = time.Local
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Normalizer{config: config}
}

// Normalize parses the date and time phrases and resolves them to
// timestamps in the configured location.
//
// A nil or unparsable date yields nil whatever the time. A nil or
// unparsable time makes the event all day, starting at midnight and
// ending 24 hours later. A time range ends on the same date, or the next
// day when the end is earlier than the start. A single time has no end.
func (n *Normalizer) Normalize(date, clock *string) *model.StructuredDateTime {
	if date == nil {
		return nil
	}

	now := n.config.Now().In(n.config.Location)
	d := ParseDate(*date, now)
	if d == nil {
		n.config.Logger.Debug("unparsable date", "date", *date)
		return nil
	}

	var t *model.TimeComponents
	if clock != nil {
		t = ParseTime(*clock)
	}

	result := &model.StructuredDateTime{
		AllDay: t == nil,
		Year:   model.IntPtr(d.Year),
		Month:  model.IntPtr(d.Month),
		Day:    model.IntPtr(d.Day),
	}

	if t == nil {
		start := n.at(*d, 0, 0)
		result.StartDateTime = model.Int64Ptr(start.UnixMilli())
		result.EndDateTime = model.Int64Ptr(start.Add(24 * time.Hour).UnixMilli())
	} else {
		start := n.at(*d, t.StartHour, t.StartMinute)
		result.StartDateTime = model.Int64Ptr(start.UnixMilli())
		result.Hour = model.IntPtr(t.StartHour)
		result.Minute = model.IntPtr(t.StartMinute)

		if t.IsRange() {
			end := n.at(*d, *t.EndHour, *t.EndMinute)
			if end.Before(start) {
				end = end.AddDate(0, 0, 1)
			}
			result.EndDateTime = model.Int64Ptr(end.UnixMilli())
		}
	}

	n.config.Logger.Debug("normalized datetime",
		"date", *d,
		"time", t,
		"allDay", result.AllDay,
	)

	return result
}

// Location returns the timezone the normalizer resolves times in
func (n *Normalizer) Location() *time.Location {
	return n.config.Location
}

func (n *Normalizer) at(d model.DateComponents, hour, minute int) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, hour, minute, 0, 0, n.config.Location)
}
