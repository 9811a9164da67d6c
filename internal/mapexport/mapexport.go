// Package mapexport renders a cruise track as a GeoJSON FeatureCollection:
// one LineString for the path and one Point per station.
package mapexport

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/oceancruise/cruise"
	"github.com/katalvlaran/oceancruise/geo"
)

// Feature kinds, stored in the "kind" property.
const (
	KindTrack   = "track"
	KindStation = "station"
)

// FeatureCollection builds the collection in track order. Longitudes are
// auto-shifted so a track across the prime meridian draws as one line. The
// track LineString is omitted for fewer than two stations.
func FeatureCollection(track cruise.Track) *geojson.FeatureCollection {
	shifted := track.AutoShift()
	cum := shifted.CumulativeDistances(geo.EarthRadiusKm)

	fc := geojson.NewFeatureCollection()
	line := make(orb.LineString, 0, len(shifted.Stations))
	for _, s := range shifted.Stations {
		line = append(line, orb.Point{s.Lon, s.Lat})
	}

	if len(line) >= 2 {
		f := geojson.NewFeature(line)
		f.Properties["kind"] = KindTrack
		f.Properties["name"] = track.Name
		f.Properties["stations"] = len(line)
		f.Properties["length_km"] = cum[len(cum)-1]
		fc.Append(f)
	}

	for i, s := range shifted.Stations {
		f := geojson.NewFeature(line[i])
		f.Properties["kind"] = KindStation
		f.Properties["name"] = s.Name
		f.Properties["order"] = i + 1
		f.Properties["distance_km"] = cum[i]
		if !s.Time.IsZero() {
			f.Properties["time"] = s.Time
		}
		fc.Append(f)
	}

	if len(line) > 0 {
		fc.BBox = geojson.NewBBox(line.Bound())
	}

	return fc
}

// Marshal returns the GeoJSON encoding of track.
func Marshal(track cruise.Track) ([]byte, error) {
	data, err := FeatureCollection(track).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("mapexport: %w", err)
	}

	return data, nil
}

// Write encodes track to w.
func Write(w io.Writer, track cruise.Track) error {
	data, err := Marshal(track)
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}
