package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/oceancruise/internal/sheet"
	"github.com/katalvlaran/oceancruise/internal/store"
)

func writeStations(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]any{
		{"Station", "Latitude", "Longitude"},
		{"C", 3, 6},
		{"D", 10, 20},
		{"A", 1, 2},
		{"B", 2, 4},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestRun_Usage(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), nil, &out, &errOut))
	assert.Contains(t, errOut.String(), "usage: cruiseroute")

	errOut.Reset()
	assert.Equal(t, 2, run(context.Background(), []string{"fly"}, &out, &errOut))
	assert.Contains(t, errOut.String(), `unknown command "fly"`)

	assert.Equal(t, 0, run(context.Background(), []string{"help"}, &out, &errOut))
	assert.Equal(t, 0, run(context.Background(), []string{"order", "--help"}, &out, &errOut))
}

func TestRun_Order(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	in := filepath.Join(dir, "stations.xlsx")
	writeStations(t, in)

	outXlsx := filepath.Join(dir, "ordered.xlsx")
	outJSON := filepath.Join(dir, "track.geojson")
	db := filepath.Join(dir, "cruises.db")

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"order",
		"--input", in,
		"--output", outXlsx,
		"--geojson", outJSON,
		"--name", "GA03",
		"--db", db,
		"--save",
		"--log-format", "text",
	}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "orientation: west")
	assert.Contains(t, errOut.String(), "track ordered")

	f, err := os.Open(outXlsx)
	require.NoError(t, err)
	defer f.Close()
	imp, err := sheet.Read(f, "")
	require.NoError(t, err)
	require.Len(t, imp.Track.Stations, 4)
	assert.Equal(t, "A", imp.Track.Stations[0].Name)
	assert.Equal(t, "D", imp.Track.Stations[3].Name)

	data, err := os.ReadFile(outJSON)
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 5)

	st, err := store.Open(db, nil)
	require.NoError(t, err)
	defer st.Close()
	runs, err := st.Orderings(context.Background(), "GA03")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, []int{2, 3, 0, 1}, runs[0].Permutation)
	assert.Equal(t, []string{"C", "D", "A", "B"}, runs[0].Input)
}

func TestRun_OrderErrors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	var out, errOut bytes.Buffer

	assert.Equal(t, 1, run(context.Background(), []string{"order"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "--input is required")

	in := filepath.Join(dir, "stations.xlsx")
	writeStations(t, in)
	errOut.Reset()
	assert.Equal(t, 1, run(context.Background(), []string{"order", "--input", in, "--save"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "--save needs --db")

	errOut.Reset()
	assert.Equal(t, 1, run(context.Background(), []string{"order", "--input", in, "--orientation", "up"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "route.orientation")
}

func TestRun_ServeStopsOnCancel(t *testing.T) {
	chdir(t, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	code := run(ctx, []string{"serve", "--addr", "127.0.0.1:0", "--log-level", "error"}, &out, &errOut)
	assert.Equal(t, 0, code, errOut.String())
}
