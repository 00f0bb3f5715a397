// Package export hands extracted events to calendars and spreadsheets.
//
// ICS builds an iCalendar document for a single event, ready for import
// into any calendar application. Workbook collects the results of a batch
// of posters into an XLSX sheet for review. FormatRange renders a
// normalized date range for people.
package export
