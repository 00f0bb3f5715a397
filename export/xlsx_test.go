package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tsawler/eventcap/model"
)

func TestWorkbook(t *testing.T) {
	start := time.Date(2025, 3, 15, 19, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 15, 22, 0, 0, 0, time.UTC)

	rows := []Row{
		{
			Source: "jazz.png",
			Event: model.RawEventData{
				Title:       model.StringPtr("JAZZ NIGHT"),
				Date:        model.StringPtr("March 15, 2025"),
				Time:        model.StringPtr("7:00 PM - 10:00 PM"),
				Location:    model.StringPtr("Blue Room"),
				Description: model.StringPtr("Live music"),
			},
			DateTime: timed(start, &end),
		},
		{
			Source:   "fair.json",
			Event:    model.RawEventData{Title: model.StringPtr("Craft Fair")},
			DateTime: allDay(2025, 12, 25),
		},
		{Source: "blank.png"},
	}

	data, err := Workbook(rows, time.UTC)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, workbookHeaders, got[0])
	assert.Equal(t, []string{
		"jazz.png", "JAZZ NIGHT", "March 15, 2025", "7:00 PM - 10:00 PM", "Blue Room",
		"2025-03-15 19:00", "2025-03-15 22:00", "no", "Live music",
	}, got[1])

	assert.Equal(t, "fair.json", got[2][0])
	assert.Equal(t, "Craft Fair", got[2][1])
	assert.Equal(t, "2025-12-25", got[2][5])
	assert.Equal(t, "2025-12-26", got[2][6])
	assert.Equal(t, "yes", got[2][7])

	assert.Equal(t, []string{"blank.png"}, got[3])
}

func TestWorkbook_Empty(t *testing.T) {
	data, err := Workbook(nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
