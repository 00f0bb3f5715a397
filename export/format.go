package export

import (
	"time"

	"github.com/tsawler/eventcap/model"
)

const (
	dayLayout  = "Mon, Jan 2 2006"
	timeLayout = "3:04 PM"
)

// FormatRange renders a normalized date and time for display, e.g.
// "Sat, Mar 15 2025 7:00 PM - 10:00 PM". The end day is repeated only
// when it differs from the start day. Nil or empty input returns "".
func FormatRange(dt *model.StructuredDateTime, loc *time.Location) string {
	if dt == nil {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	start, ok := dt.Start(loc)
	if !ok {
		return ""
	}

	if dt.AllDay {
		if dt.Year != nil && dt.Month != nil && dt.Day != nil {
			start = time.Date(*dt.Year, time.Month(*dt.Month), *dt.Day, 0, 0, 0, 0, loc)
		}
		return start.Format(dayLayout) + " (all day)"
	}

	s := start.Format(dayLayout + " " + timeLayout)
	end, ok := dt.End(loc)
	if !ok {
		return s
	}
	if sameDay(start, end) {
		return s + " - " + end.Format(timeLayout)
	}
	return s + " - " + end.Format(dayLayout+" "+timeLayout)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
