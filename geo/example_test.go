package geo_test

import (
	"fmt"

	"github.com/katalvlaran/oceancruise/geo"
)

// ExampleAutoShift shows a track crossing the prime meridian being remapped
// into [-180, 180).
func ExampleAutoShift() {
	pts := []geo.Point{{Lat: 60, Lon: 5}, {Lat: 61, Lon: 355}, {Lat: 62, Lon: 10}}
	for _, p := range geo.AutoShift(pts) {
		fmt.Printf("%.0f ", p.Lon)
	}
	fmt.Println()
	// Output: 5 -5 10
}

// ExampleSegmentDistances reduces a short equatorial track to kilometres.
func ExampleSegmentDistances() {
	pts := []geo.Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}, {Lat: 0, Lon: 2}}
	for _, d := range geo.SegmentDistances(pts, geo.EarthRadiusKm) {
		fmt.Printf("%.1f km\n", d)
	}
	// Output:
	// 111.2 km
	// 111.2 km
}
