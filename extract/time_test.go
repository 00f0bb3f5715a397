package extract

import (
	"reflect"
	"testing"

	"github.com/tsawler/eventcap/model"
)

func TestTime(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"simple am", "Meeting at 9:00 AM", "9:00 AM"},
		{"simple pm", "Event at 3:30 PM", "3:30 PM"},
		{"range with designators", "Conference 9:00 AM - 11:30 AM", "9:00 AM - 11:30 AM"},
		{"range with to", "Event 9:00 to 10:00 PM", "9:00 to 10:00 PM"},
		{"range bare start", "Meeting 9 - 11:30 PM", "9 - 11:30 PM"},
		{"range to with designators", "Event 9:00 AM to 11:00 AM", "9:00 AM to 11:00 AM"},
		{"no minutes no space", "Event at 9AM", "9AM"},
		{"no minutes", "Conference at 9 AM", "9 AM"},
		{"lowercase designator", "Event at 3:30 pm", "3:30 pm"},
		{"noon", "Event at 12:00 PM", "12:00 PM"},
		{"midnight", "Event at 12:00 AM", "12:00 AM"},
		{"no space before designator", "Meeting at 9:00AM", "9:00AM"},
		{"extra spaces", "Meeting at 9:30  AM", "9:30  AM"},
		{"first of two times", "Meeting at 9:00 AM or 2:00 PM", "9:00 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Time(tt.text)
			if got == nil {
				t.Fatalf("Time(%q) = nil, want %q", tt.text, tt.want)
			}
			if *got != tt.want {
				t.Errorf("Time(%q) = %q, want %q", tt.text, *got, tt.want)
			}
		})
	}
}

func TestTime_NoMatch(t *testing.T) {
	tests := []string{
		"Meeting at 14:30",
		"Annual Conference",
		"Doors open at 9",
	}

	for _, text := range tests {
		if got := Time(text); got != nil {
			t.Errorf("Time(%q) = %q, want nil", text, *got)
		}
	}
}

func TestTimePatterns_Individually(t *testing.T) {
	if got, ok := TimePatterns[0].Find("9:00 AM - 11:30 AM"); !ok || got != "9:00 AM - 11:30 AM" {
		t.Errorf("range pattern = %q, %v", got, ok)
	}
	if TimePatterns[0].Matches("9:00 AM") {
		t.Error("range pattern should not match a single time")
	}
	if got, ok := TimePatterns[1].Find("at 7 pm"); !ok || got != "7 pm" {
		t.Errorf("single pattern = %q, %v", got, ok)
	}
}

func TestTimeInBlocks(t *testing.T) {
	blocks := []model.TextBlock{
		{Text: "JAZZ NIGHT"},
		{Text: "Doors 7:00 PM"},
		{Text: "Ends 10:00 PM"},
	}

	got := TimeInBlocks(blocks)
	if got == nil || *got != "7:00 PM" {
		t.Errorf("TimeInBlocks() = %v, want %q", got, "7:00 PM")
	}

	if idx := TimeBlocks(blocks); !reflect.DeepEqual(idx, []int{1, 2}) {
		t.Errorf("TimeBlocks() = %v, want [1 2]", idx)
	}
}

func TestTimeInBlocks_None(t *testing.T) {
	blocks := []model.TextBlock{{Text: "Nothing here"}}
	if got := TimeInBlocks(blocks); got != nil {
		t.Errorf("TimeInBlocks() = %q, want nil", *got)
	}
	if idx := TimeBlocks(blocks); idx != nil {
		t.Errorf("TimeBlocks() = %v, want nil", idx)
	}
	if got := TimeInBlocks(nil); got != nil {
		t.Error("TimeInBlocks(nil) should be nil")
	}
}

func TestHasDateOrTime(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Saturday, March 3", true},
		{"7:30 PM", true},
		{"Community Garden Party", false},
	}

	for _, tt := range tests {
		if got := HasDateOrTime(tt.text); got != tt.want {
			t.Errorf("HasDateOrTime(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
