package sheet_test

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/oceancruise/cruise"
	"github.com/katalvlaran/oceancruise/internal/sheet"
)

func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf
}

func TestRead(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"Station", "Lat (°N)", "Longitude", "Date"},
		[]interface{}{"A", "12,5", "-30,25", "2010-10-15"},
		[]interface{}{"B", "bad", "1", ""},
		[]interface{}{"", "13", "-31", ""},
		[]interface{}{"C", "95", "0", ""},
	)

	imp, err := sheet.Read(buf, "")
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", imp.Track.Name)
	assert.Equal(t, []int{3, 5}, imp.Skipped)
	require.Len(t, imp.Track.Stations, 2)

	a := imp.Track.Stations[0]
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, 12.5, a.Lat)
	assert.Equal(t, -30.25, a.Lon)
	assert.Equal(t, time.Date(2010, 10, 15, 0, 0, 0, 0, time.UTC), a.Time)

	unnamed := imp.Track.Stations[1]
	assert.Equal(t, "S4", unnamed.Name)
	assert.True(t, unnamed.Time.IsZero())
}

func TestRead_Errors(t *testing.T) {
	_, err := sheet.Read(workbook(t, []interface{}{"Name", "Depth"}), "")
	assert.ErrorIs(t, err, sheet.ErrMissingColumn)

	_, err = sheet.Read(workbook(t, []interface{}{"Lat", "Lon"}), "Missing")
	assert.ErrorIs(t, err, sheet.ErrNoSheet)

	_, err = sheet.Read(bytes.NewBufferString("not a workbook"), "")
	assert.Error(t, err)
}

func TestWriteReadRoundTrip(t *testing.T) {
	at := time.Date(2011, 3, 2, 12, 30, 0, 0, time.UTC)
	track := cruise.Track{Name: "eq", Stations: []cruise.Station{
		{Name: "w", Lat: 0, Lon: 0, Time: at},
		{Name: "m", Lat: 0, Lon: 1},
		{Name: "e", Lat: 0, Lon: 2},
	}}

	var buf bytes.Buffer
	require.NoError(t, sheet.Write(&buf, track, ""))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []string{sheet.DefaultSheet}, f.GetSheetList())
	rows, err := f.GetRows(sheet.DefaultSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Segment (km)", rows[0][5])
	assert.Equal(t, "111.195", rows[2][5])
	assert.Equal(t, "222.39", rows[3][6])
	require.NoError(t, f.Close())

	imp, err := sheet.Read(bytes.NewReader(buf.Bytes()), "")
	require.NoError(t, err)
	assert.Empty(t, imp.Skipped)
	require.Len(t, imp.Track.Stations, 3)
	assert.Equal(t, "w", imp.Track.Stations[0].Name)
	assert.True(t, at.Equal(imp.Track.Stations[0].Time))
	assert.Equal(t, 2.0, imp.Track.Stations[2].Lon)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	track := cruise.Track{Name: "one", Stations: []cruise.Station{{Name: "only", Lat: 5, Lon: 5}}}
	require.NoError(t, sheet.WriteFile(path, track, "Ordered"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Ordered")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "only", "5", "5", "", "0", "0"}, rows[1])
}

func TestWrite_InvalidSheetName(t *testing.T) {
	track := cruise.Track{Name: "one", Stations: []cruise.Station{{Name: "only", Lat: 5, Lon: 5}}}

	var buf bytes.Buffer
	assert.Error(t, sheet.Write(&buf, track, "leg:1/2"))
	assert.Zero(t, buf.Len())

	path := filepath.Join(t.TempDir(), "out.xlsx")
	assert.Error(t, sheet.WriteFile(path, track, "a sheet name well past the thirty-one rune limit"))
	assert.NoFileExists(t, path)
}
