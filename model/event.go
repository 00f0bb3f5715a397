package model

import (
	"errors"
	"time"
)

// RawEventData holds the event fields extracted from one page of text.
// Every field is independently optional; nil means nothing was found.
type RawEventData struct {
	Title       *string `json:"title,omitempty" yaml:"title,omitempty"`
	Date        *string `json:"date,omitempty" yaml:"date,omitempty"`
	Time        *string `json:"time,omitempty" yaml:"time,omitempty"`
	Location    *string `json:"location,omitempty" yaml:"location,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	RawText     *string `json:"rawText,omitempty" yaml:"rawText,omitempty"`
}

// DateComponents is a calendar date. Month is 1-12.
type DateComponents struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

// TimeComponents is a 24-hour start time with an optional end time.
// EndHour and EndMinute are both set for a range and both nil otherwise.
type TimeComponents struct {
	StartHour   int  `json:"startHour" yaml:"startHour"`
	StartMinute int  `json:"startMinute" yaml:"startMinute"`
	EndHour     *int `json:"endHour,omitempty" yaml:"endHour,omitempty"`
	EndMinute   *int `json:"endMinute,omitempty" yaml:"endMinute,omitempty"`
}

// IsRange returns true if an end time is present
func (t TimeComponents) IsRange() bool {
	return t.EndHour != nil && t.EndMinute != nil
}

// StructuredDateTime is the normalized form of an event's date and time,
// shaped for a calendar API's insert call. Timestamps are Unix epoch
// milliseconds.
type StructuredDateTime struct {
	StartDateTime *int64 `json:"startDateTime,omitempty" yaml:"startDateTime,omitempty"`
	EndDateTime   *int64 `json:"endDateTime,omitempty" yaml:"endDateTime,omitempty"`
	AllDay        bool   `json:"allDay" yaml:"allDay"`
	Year          *int   `json:"year,omitempty" yaml:"year,omitempty"`
	Month         *int   `json:"month,omitempty" yaml:"month,omitempty"`
	Day           *int   `json:"day,omitempty" yaml:"day,omitempty"`
	Hour          *int   `json:"hour,omitempty" yaml:"hour,omitempty"`
	Minute        *int   `json:"minute,omitempty" yaml:"minute,omitempty"`
}

// Start returns the start timestamp as a time in loc
func (s StructuredDateTime) Start(loc *time.Location) (time.Time, bool) {
	if s.StartDateTime == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*s.StartDateTime).In(loc), true
}

// End returns the end timestamp as a time in loc
func (s StructuredDateTime) End(loc *time.Location) (time.Time, bool) {
	if s.EndDateTime == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*s.EndDateTime).In(loc), true
}

// Validate checks the all-day and ordering invariants
func (s StructuredDateTime) Validate() error {
	if s.AllDay && (s.Hour != nil || s.Minute != nil) {
		return errors.New("all-day datetime has a time of day")
	}
	if s.StartDateTime != nil && s.EndDateTime != nil && *s.EndDateTime < *s.StartDateTime {
		return errors.New("end precedes start")
	}
	return nil
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to i
func IntPtr(i int) *int {
	return &i
}

// Int64Ptr returns a pointer to i
func Int64Ptr(i int64) *int64 {
	return &i
}

// Deref returns the pointed-to string, or "" for nil
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
