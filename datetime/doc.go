// Package datetime turns the date and time phrases found on an event
// poster into calendar values.
//
// [ParseDate] and [ParseTime] convert a single phrase each:
//
//	d := datetime.ParseDate("21st January", time.Now()) // {Year: <this year>, Month: 1, Day: 21}
//	t := datetime.ParseTime("9:00 - 11:30 PM")         // 21:00 to 23:30
//
// A [Normalizer] combines both into a [model.StructuredDateTime] with Unix
// millisecond timestamps resolved in a configurable location:
//
//	n := datetime.NewNormalizerWithConfig(datetime.NormalizerConfig{
//	    Location: time.UTC,
//	})
//	dt := n.Normalize(event.Date, event.Time)
//
// The clock is injectable through NormalizerConfig.Now so that phrases
// without a year normalize the same way on every run.
package datetime
