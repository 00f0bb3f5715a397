package datetime

import (
	"regexp"
	"strings"

	"github.com/tsawler/eventcap/model"
)

var (
	timeRange  = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(AM|PM)?\s*(?:-|to)\s*(\d{1,2}):(\d{2})\s*(AM|PM)?`)
	singleTime = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{1,2}))?\s*(AM|PM)`)
)

// ParseTime converts a time phrase into 24-hour components. A range such
// as "9:00 - 11:30 PM" is tried first; a start without AM/PM takes the
// end's designator. Otherwise a single time with a mandatory AM/PM is
// expected. Missing minutes are 0. Hours or minutes that do not fit a
// 24-hour clock after conversion return nil.
func ParseTime(phrase string) *model.TimeComponents {
	phrase = strings.TrimSpace(phrase)

	if m := timeRange.FindStringSubmatch(phrase); m != nil {
		endMeridiem := m[6]
		startMeridiem := m[3]
		if startMeridiem == "" {
			startMeridiem = endMeridiem
		}

		startHour, startMinute, ok := to24Hour(atoi(m[1]), atoi(m[2]), startMeridiem)
		if !ok {
			return nil
		}
		endHour, endMinute, ok := to24Hour(atoi(m[4]), atoi(m[5]), endMeridiem)
		if !ok {
			return nil
		}

		return &model.TimeComponents{
			StartHour:   startHour,
			StartMinute: startMinute,
			EndHour:     model.IntPtr(endHour),
			EndMinute:   model.IntPtr(endMinute),
		}
	}

	if m := singleTime.FindStringSubmatch(phrase); m != nil {
		hour, minute, ok := to24Hour(atoi(m[1]), atoi(m[2]), m[3])
		if !ok {
			return nil
		}
		return &model.TimeComponents{StartHour: hour, StartMinute: minute}
	}

	return nil
}

// to24Hour applies the AM/PM designator: 12 AM is hour 0 and a PM hour
// other than 12 gains 12. An empty designator leaves the hour as is.
func to24Hour(hour, minute int, meridiem string) (int, int, bool) {
	switch strings.ToUpper(meridiem) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
