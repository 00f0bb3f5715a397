// Package model provides the value types exchanged between the OCR
// collaborator, the extraction engine, and the calendar collaborator.
//
// # Geometry
//
// [BBox] is a plain integer rectangle in image coordinates (origin at the
// top-left, Y growing downwards) with derived accessors:
//
//	box := model.NewBBox(40, 10, 560, 90)
//	box.Width()   // 520
//	box.Height()  // 80
//	box.CenterX() // 300
//
// # Blocks
//
// [TextBlock] is one geometrically grouped unit of recognized text with an
// optional bounding box and its ordered [Line] values. A page is an ordered
// []TextBlock; [JoinText] and [LineTexts] flatten it.
//
// # Event Records
//
//   - [RawEventData] - extracted title, date, time, location, description
//   - [DateComponents], [TimeComponents] - parsed date and time phrases
//   - [StructuredDateTime] - epoch-millisecond start/end, all-day flag and
//     calendar components
//
// All types are immutable values once built and safe to share between
// goroutines.
package model
