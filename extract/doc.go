// Package extract locates date, time, and location phrases in recognized
// text using ordered pattern tables.
//
// Each table ([DatePatterns], [TimePatterns], [VenuePatterns]) is a plain
// ordered list of [Pattern] values. Lookups walk the list in order and
// return the first pattern's leftmost match, so list order, not position in
// the text, decides between competing matches:
//
//	extract.Date("Event on 21st January")            // "21st January"
//	extract.Time("Conference 9:00 AM - 11:30 AM")    // "9:00 AM - 11:30 AM"
//	extract.Location("Conference\nVenue: Grand Hotel",
//	    []string{"Conference", "Venue: Grand Hotel"}) // "Grand Hotel"
//
// All functions are pure and return nil when nothing matches.
package extract
