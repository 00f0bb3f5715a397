package datetime

import (
	"reflect"
	"testing"
	"time"

	"github.com/tsawler/eventcap/model"
)

func newTestNormalizer(loc *time.Location) *Normalizer {
	return NewNormalizerWithConfig(NormalizerConfig{
		Location: loc,
		Now:      func() time.Time { return fixedNow },
	})
}

func ms(t time.Time) int64 {
	return t.UnixMilli()
}

func TestNewNormalizer_Defaults(t *testing.T) {
	n := NewNormalizer()
	if n.Location() != time.Local {
		t.Errorf("Location() = %v, want time.Local", n.Location())
	}

	n = NewNormalizerWithConfig(NormalizerConfig{})
	if n.config.Now == nil || n.config.Logger == nil || n.config.Location == nil {
		t.Error("NewNormalizerWithConfig should fill unset fields")
	}
}

func TestNormalize_NilDate(t *testing.T) {
	n := newTestNormalizer(time.UTC)

	if got := n.Normalize(nil, model.StringPtr("9:00 AM")); got != nil {
		t.Errorf("Normalize(nil, time) = %+v, want nil", got)
	}
	if got := n.Normalize(nil, nil); got != nil {
		t.Errorf("Normalize(nil, nil) = %+v, want nil", got)
	}
	if got := n.Normalize(model.StringPtr("someday"), model.StringPtr("9:00 AM")); got != nil {
		t.Errorf("Normalize(unparsable, time) = %+v, want nil", got)
	}
}

func TestNormalize_AllDay(t *testing.T) {
	n := newTestNormalizer(time.UTC)

	for _, clock := range []*string{nil, model.StringPtr("around noon")} {
		got := n.Normalize(model.StringPtr("December 31, 2024"), clock)
		if got == nil {
			t.Fatal("Normalize() = nil")
		}
		if !got.AllDay {
			t.Error("AllDay = false, want true")
		}
		if got.Hour != nil || got.Minute != nil {
			t.Errorf("all-day result has a time of day: %+v", got)
		}

		start := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
		if *got.StartDateTime != ms(start) {
			t.Errorf("StartDateTime = %d, want %d", *got.StartDateTime, ms(start))
		}
		if *got.EndDateTime != ms(start.Add(24*time.Hour)) {
			t.Errorf("EndDateTime = %d, want start + 24h", *got.EndDateTime)
		}
		if *got.Year != 2024 || *got.Month != 12 || *got.Day != 31 {
			t.Errorf("components = %d-%d-%d", *got.Year, *got.Month, *got.Day)
		}
		if err := got.Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
	}
}

func TestNormalize_SingleTime(t *testing.T) {
	n := newTestNormalizer(time.UTC)

	got := n.Normalize(model.StringPtr("2024-06-01"), model.StringPtr("7:30 PM"))
	if got == nil {
		t.Fatal("Normalize() = nil")
	}
	if got.AllDay {
		t.Error("AllDay = true, want false")
	}
	want := time.Date(2024, 6, 1, 19, 30, 0, 0, time.UTC)
	if *got.StartDateTime != ms(want) {
		t.Errorf("StartDateTime = %d, want %d", *got.StartDateTime, ms(want))
	}
	if got.EndDateTime != nil {
		t.Errorf("EndDateTime = %d, want nil", *got.EndDateTime)
	}
	if *got.Hour != 19 || *got.Minute != 30 {
		t.Errorf("Hour:Minute = %d:%d, want 19:30", *got.Hour, *got.Minute)
	}
}

func TestNormalize_Range(t *testing.T) {
	n := newTestNormalizer(time.UTC)

	got := n.Normalize(model.StringPtr("21st January"), model.StringPtr("9:00 AM - 11:30 AM"))
	if got == nil {
		t.Fatal("Normalize() = nil")
	}
	start := time.Date(2025, 1, 21, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 21, 11, 30, 0, 0, time.UTC)
	if *got.StartDateTime != ms(start) {
		t.Errorf("StartDateTime = %d, want %d", *got.StartDateTime, ms(start))
	}
	if *got.EndDateTime != ms(end) {
		t.Errorf("EndDateTime = %d, want %d", *got.EndDateTime, ms(end))
	}
}

func TestNormalize_OvernightRange(t *testing.T) {
	n := newTestNormalizer(time.UTC)

	got := n.Normalize(model.StringPtr("12/31/2024"), model.StringPtr("10:00 PM - 1:00 AM"))
	if got == nil {
		t.Fatal("Normalize() = nil")
	}
	end := time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC)
	if *got.EndDateTime != ms(end) {
		t.Errorf("EndDateTime = %v, want %v", time.UnixMilli(*got.EndDateTime).UTC(), end)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestNormalize_Location(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	n := newTestNormalizer(est)

	got := n.Normalize(model.StringPtr("2024-03-01"), model.StringPtr("9:00 AM"))
	if got == nil {
		t.Fatal("Normalize() = nil")
	}
	want := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)
	if *got.StartDateTime != ms(want) {
		t.Errorf("StartDateTime = %v, want %v", time.UnixMilli(*got.StartDateTime).UTC(), want)
	}

	start, ok := got.Start(est)
	if !ok || start.Hour() != 9 {
		t.Errorf("Start(est) = %v, %v, want 09:00", start, ok)
	}
}

func TestNormalize_YearFromClock(t *testing.T) {
	n := newTestNormalizer(time.UTC)

	got := n.Normalize(model.StringPtr("Jan 21"), nil)
	if got == nil || *got.Year != fixedNow.Year() {
		t.Errorf("Normalize(Jan 21) year = %v, want %d", got, fixedNow.Year())
	}
}

// Re-deriving the calendar date from the start timestamp gives the
// components parsed directly from the phrase.
func TestNormalize_DateRoundTrip(t *testing.T) {
	phrases := []string{
		"2024-12-31",
		"2024/2/29",
		"01-15-2024",
		"12/25/24",
		"21st January",
		"3rd Sept 2026",
		"Jan 21",
		"December 31, 2024",
		"Friday, December 26",
		"21st",
	}

	for _, loc := range []*time.Location{time.UTC, time.FixedZone("UTC+13", 13*60*60), time.FixedZone("UTC-11", -11*60*60)} {
		n := newTestNormalizer(loc)
		for _, phrase := range phrases {
			want := ParseDate(phrase, fixedNow.In(loc))
			if want == nil {
				t.Fatalf("ParseDate(%q) = nil", phrase)
			}

			for _, clock := range []*string{nil, model.StringPtr("11:45 PM"), model.StringPtr("12:05 AM - 2:00 AM")} {
				got := n.Normalize(model.StringPtr(phrase), clock)
				if got == nil {
					t.Fatalf("Normalize(%q) = nil", phrase)
				}
				start, _ := got.Start(loc)
				if start.Year() != want.Year || int(start.Month()) != want.Month || start.Day() != want.Day {
					t.Errorf("%s: Normalize(%q, %v) starts %v, want %+v", loc, phrase, model.Deref(clock), start, *want)
				}
			}
		}
	}
}

func TestNormalize_RangeEndNotBeforeStart(t *testing.T) {
	ranges := []string{
		"9:00 AM - 11:30 AM",
		"9:00 to 10:00 PM",
		"9 - 11:30 PM",
		"11:00 PM - 12:30 AM",
		"10:00 PM - 1:00 AM",
		"5:00 PM - 5:00 PM",
		"12 - 12:00 AM",
	}

	n := newTestNormalizer(time.UTC)
	for _, r := range ranges {
		got := n.Normalize(model.StringPtr("2024-11-02"), model.StringPtr(r))
		if got == nil || got.EndDateTime == nil {
			t.Errorf("Normalize(%q) has no end", r)
			continue
		}
		if *got.EndDateTime < *got.StartDateTime {
			t.Errorf("Normalize(%q) ends before it starts", r)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n := newTestNormalizer(time.UTC)
	date, clock := model.StringPtr("15th December"), model.StringPtr("6:00 PM - 8:00 PM")

	first := n.Normalize(date, clock)
	second := n.Normalize(date, clock)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Normalize() not deterministic: %+v vs %+v", first, second)
	}
}
