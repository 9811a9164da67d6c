package cruise

import (
	"fmt"
	"time"

	"github.com/katalvlaran/oceancruise/geo"
)

// Station is one sampling position of a cruise.
type Station struct {
	Name string    `json:"name"`
	Lat  float64   `json:"lat"`
	Lon  float64   `json:"lon"`
	Time time.Time `json:"time,omitzero"`
}

// NewStation validates lat/lon through geo.NewPoint.
func NewStation(name string, lat, lon float64, at time.Time) (Station, error) {
	if _, err := geo.NewPoint(lat, lon); err != nil {
		return Station{}, fmt.Errorf("station %q: %w", name, err)
	}

	return Station{Name: name, Lat: lat, Lon: lon, Time: at}, nil
}

// Point returns the station position.
func (s Station) Point() geo.Point { return geo.Point{Lat: s.Lat, Lon: s.Lon} }

func (s Station) String() string {
	return fmt.Sprintf("%s %s", s.Name, s.Point())
}
