package export

import (
	"strconv"
	"strings"
)

// reminderChoices maps the reminder labels offered to users to minutes
var reminderChoices = map[string]int{
	"at time of event":  0,
	"5 minutes before":  5,
	"10 minutes before": 10,
	"15 minutes before": 15,
	"30 minutes before": 30,
	"1 hour before":     60,
	"1 day before":      1440,
}

// ParseReminder converts a reminder label such as "15 minutes before" or a
// bare number of minutes to minutes. Unknown labels and "None" return -1.
func ParseReminder(text string) int {
	key := strings.ToLower(strings.TrimSpace(text))
	if m, ok := reminderChoices[key]; ok {
		return m
	}
	if m, err := strconv.Atoi(key); err == nil && m >= 0 {
		return m
	}
	return -1
}
