// Package sheet reads station lists from spreadsheets and writes ordered
// tracks back out.
package sheet

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/oceancruise/cruise"
	"github.com/katalvlaran/oceancruise/geo"
)

// DefaultSheet is the sheet name used for written tracks.
const DefaultSheet = "Track"

var (
	// ErrMissingColumn is returned when no latitude or longitude header is
	// found in the first row.
	ErrMissingColumn = errors.New("sheet: missing latitude/longitude column")

	// ErrNoSheet is returned when the workbook has no sheet by that name.
	ErrNoSheet = errors.New("sheet: no such sheet")
)

var headerAliases = map[string]string{
	"name": "name", "station": "name", "station name": "name", "id": "name",
	"lat": "lat", "latitude": "lat",
	"lon": "lon", "long": "lon", "lng": "lon", "longitude": "lon",
	"time": "time", "date": "time", "datetime": "time", "timestamp": "time",
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Import is the outcome of reading a station sheet.
type Import struct {
	Track cruise.Track
	// Skipped lists 1-based row numbers whose coordinates could not be
	// parsed.
	Skipped []int
}

func parseCoord(val string) (float64, error) {
	// Decimal commas are common in exported sheets.
	val = strings.TrimSpace(strings.ReplaceAll(val, ",", "."))
	if val == "" {
		return 0, fmt.Errorf("empty")
	}
	return strconv.ParseFloat(val, 64)
}

func parseTime(val string) time.Time {
	val = strings.TrimSpace(val)
	if val == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			return t
		}
	}
	// Unformatted date cells come through as serial numbers.
	if serial, err := strconv.ParseFloat(val, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t
		}
	}

	return time.Time{}
}

func normalizeHeader(h string) string {
	h = strings.ToLower(h)
	if i := strings.IndexByte(h, '('); i >= 0 {
		h = h[:i]
	}
	return strings.TrimSpace(h)
}

// Read parses a workbook from r. sheetName selects the sheet; empty means
// the first one. The first row is the header: columns are matched by name
// (station/name, lat/latitude, lon/longitude, time/date), in any order and
// with optional unit suffixes such as "Lat (°N)". The track is named after
// the sheet.
func Read(r io.Reader, sheetName string) (Import, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Import{}, fmt.Errorf("sheet: open: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return Import{}, ErrNoSheet
		}
		sheetName = list[0]
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return Import{}, fmt.Errorf("%q: %w", sheetName, ErrNoSheet)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return Import{}, fmt.Errorf("sheet: rows of %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return Import{}, fmt.Errorf("%q: %w", sheetName, ErrMissingColumn)
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		if key, ok := headerAliases[normalizeHeader(h)]; ok {
			if _, dup := cols[key]; !dup {
				cols[key] = i
			}
		}
	}
	_, okLat := cols["lat"]
	_, okLon := cols["lon"]
	if !okLat || !okLon {
		return Import{}, fmt.Errorf("%q header %v: %w", sheetName, rows[0], ErrMissingColumn)
	}

	cell := func(row []string, key string) string {
		i, ok := cols[key]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	out := Import{Track: cruise.Track{Name: sheetName, Stations: []cruise.Station{}}}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		rowNum := i + 1
		if len(row) == 0 {
			continue
		}

		lat, err1 := parseCoord(cell(row, "lat"))
		lon, err2 := parseCoord(cell(row, "lon"))
		if err1 != nil || err2 != nil {
			out.Skipped = append(out.Skipped, rowNum)
			continue
		}
		if _, err := geo.NewPoint(lat, lon); err != nil {
			out.Skipped = append(out.Skipped, rowNum)
			continue
		}

		name := strings.TrimSpace(cell(row, "name"))
		if name == "" {
			name = "S" + strconv.Itoa(rowNum)
		}
		out.Track.Stations = append(out.Track.Stations, cruise.Station{
			Name: name,
			Lat:  lat,
			Lon:  lon,
			Time: parseTime(cell(row, "time")),
		})
	}

	return out, nil
}

// Write stores track as a single-sheet workbook on w. Rows follow the
// track order with the leg length from the previous station and the
// along-track distance, both in kilometres.
func Write(w io.Writer, track cruise.Track, sheetName string) error {
	f, err := build(track, sheetName)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// WriteFile is Write to a file path.
func WriteFile(path string, track cruise.Track, sheetName string) error {
	f, err := build(track, sheetName)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

// build returns an open workbook the caller must Close; on error the
// workbook is closed here.
func build(track cruise.Track, sheetName string) (_ *excelize.File, err error) {
	if sheetName == "" {
		sheetName = DefaultSheet
	}

	f := excelize.NewFile()
	defer func() {
		if err != nil {
			_ = f.Close()
		}
	}()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return nil, err
	}

	headers := []interface{}{"Order", "Station", "Lat", "Lon", "Time", "Segment (km)", "Cumulative (km)"}
	if err = sw.SetRow("A1", headers); err != nil {
		return nil, err
	}

	seg := track.SegmentDistances(geo.EarthRadiusKm)
	cum := track.CumulativeDistances(geo.EarthRadiusKm)
	for i, s := range track.Stations {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		var (
			leg float64
			at  string
		)
		if i > 0 {
			leg = seg[i-1]
		}
		if !s.Time.IsZero() {
			at = s.Time.Format(time.RFC3339)
		}
		row := []interface{}{i + 1, s.Name, s.Lat, s.Lon, at, round3(leg), round3(cum[i])}
		if err = sw.SetRow(cell, row); err != nil {
			return nil, err
		}
	}

	if err = sw.Flush(); err != nil {
		return nil, err
	}

	f.SetActiveSheet(index)
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	return f, nil
}

func round3(x float64) float64 { return math.Round(x*1000) / 1000 }
