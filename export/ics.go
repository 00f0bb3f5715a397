package export

import (
	"errors"
	"fmt"
	"sort"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/tsawler/eventcap/model"
)

// DefaultDuration is the length given to events with a start time but no
// end time.
const DefaultDuration = time.Hour

// DefaultProductID identifies the generator in the PRODID property.
const DefaultProductID = "-//eventcap//eventcap//EN"

// UntitledSummary is the summary of events without a title.
const UntitledSummary = "Untitled event"

// ErrNoDate is returned when an event has no start to schedule.
var ErrNoDate = errors.New("event has no date")

// ICSOptions controls iCalendar generation
type ICSOptions struct {
	// UID is the event's unique identifier. Empty generates a random UUID.
	UID string

	// Now is the DTSTAMP time. Zero uses time.Now().
	Now time.Time

	// DefaultDuration is the length of events with a single time.
	// Zero uses DefaultDuration.
	DefaultDuration time.Duration

	// Location is the zone all-day dates are read in when the date
	// components are missing. Nil uses UTC.
	Location *time.Location

	// ProductID is the PRODID value. Empty uses DefaultProductID.
	ProductID string

	// Reminders are alarm offsets in minutes before the start. Negative
	// values are ignored and duplicates are collapsed.
	Reminders []int
}

// ICS builds an iCalendar document holding one VEVENT for the event.
//
// Timed events start at the normalized start and end at the normalized
// end, or DefaultDuration later when only a start time was parsed.
// All-day events use DATE values covering the event's day.
func ICS(ev model.RawEventData, dt *model.StructuredDateTime, opts ICSOptions) (string, error) {
	if dt == nil || dt.StartDateTime == nil {
		return "", ErrNoDate
	}
	opts = opts.withDefaults()

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(opts.ProductID)

	event := cal.AddEvent(opts.UID)
	event.SetDtStampTime(opts.Now)

	if dt.AllDay {
		day := allDayDate(dt, opts.Location)
		event.SetAllDayStartAt(day)
		event.SetAllDayEndAt(day.AddDate(0, 0, 1))
	} else {
		start, _ := dt.Start(time.UTC)
		end, ok := dt.End(time.UTC)
		if !ok {
			end = start.Add(opts.DefaultDuration)
		}
		event.SetStartAt(start)
		event.SetEndAt(end)
	}

	summary := UntitledSummary
	if ev.Title != nil && *ev.Title != "" {
		summary = *ev.Title
	}
	event.SetSummary(summary)
	if ev.Location != nil {
		event.SetLocation(*ev.Location)
	}
	if ev.Description != nil {
		event.SetDescription(*ev.Description)
	}

	for _, minutes := range reminderOffsets(opts.Reminders) {
		alarm := event.AddAlarm()
		alarm.SetAction(ical.ActionDisplay)
		alarm.SetTrigger(reminderTrigger(minutes))
		alarm.SetProperty(ical.ComponentPropertyDescription, summary)
	}

	return cal.Serialize(), nil
}

func (o ICSOptions) withDefaults() ICSOptions {
	if o.UID == "" {
		o.UID = uuid.NewString()
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.DefaultDuration <= 0 {
		o.DefaultDuration = DefaultDuration
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.ProductID == "" {
		o.ProductID = DefaultProductID
	}
	return o
}

// allDayDate returns the event's calendar day. The parsed components are
// authoritative; the start timestamp is the fallback.
func allDayDate(dt *model.StructuredDateTime, loc *time.Location) time.Time {
	if dt.Year != nil && dt.Month != nil && dt.Day != nil {
		return time.Date(*dt.Year, time.Month(*dt.Month), *dt.Day, 0, 0, 0, 0, time.UTC)
	}
	start, _ := dt.Start(loc)
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
}

func reminderOffsets(reminders []int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, m := range reminders {
		if m < 0 || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	sort.Ints(out)
	return out
}

// reminderTrigger formats a relative TRIGGER duration, e.g. "-PT15M"
func reminderTrigger(minutes int) string {
	if minutes == 0 {
		return "PT0M"
	}
	return fmt.Sprintf("-PT%dM", minutes)
}
