package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/eventcap/model"
)

// SheetName is the name of the results sheet
const SheetName = "Events"

// Row is one extraction result destined for a workbook
type Row struct {
	// Source names the poster the event came from, usually a file path
	Source string

	Event    model.RawEventData
	DateTime *model.StructuredDateTime
}

var workbookHeaders = []string{
	"Source",
	"Title",
	"Date",
	"Time",
	"Location",
	"Start",
	"End",
	"All Day",
	"Description",
}

// Workbook writes rows to an XLSX workbook with a single sheet: a header
// row, then one row per result in input order. Start and End are shown in
// loc; nil uses time.Local.
func Workbook(rows []Row, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.Local
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	for i, h := range workbookHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	for i, r := range rows {
		row := i + 2
		write := func(col int, v string) {
			if v == "" {
				return
			}
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(SheetName, cell, v)
		}

		start, end, allDay := timestampCells(r.DateTime, loc)

		write(1, r.Source)
		write(2, model.Deref(r.Event.Title))
		write(3, model.Deref(r.Event.Date))
		write(4, model.Deref(r.Event.Time))
		write(5, model.Deref(r.Event.Location))
		write(6, start)
		write(7, end)
		write(8, allDay)
		write(9, model.Deref(r.Event.Description))
	}

	_ = f.SetColWidth(SheetName, "A", "A", 32) // source
	_ = f.SetColWidth(SheetName, "B", "B", 36) // title
	_ = f.SetColWidth(SheetName, "C", "E", 22)
	_ = f.SetColWidth(SheetName, "F", "G", 18) // timestamps
	_ = f.SetColWidth(SheetName, "I", "I", 60) // description

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func timestampCells(dt *model.StructuredDateTime, loc *time.Location) (start, end, allDay string) {
	if dt == nil {
		return "", "", ""
	}
	layout := "2006-01-02 15:04"
	allDay = "no"
	if dt.AllDay {
		layout = "2006-01-02"
		allDay = "yes"
	}
	if t, ok := dt.Start(loc); ok {
		start = t.Format(layout)
	}
	if t, ok := dt.End(loc); ok {
		end = t.Format(layout)
	}
	return start, end, allDay
}
