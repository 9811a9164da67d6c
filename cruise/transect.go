package cruise

import (
	"fmt"

	"github.com/katalvlaran/oceancruise/geo"
	"github.com/katalvlaran/oceancruise/route"
)

// Transect is a set of profiles of one tracer collected along a cruise.
type Transect struct {
	Tracer   string    `json:"tracer"`
	Cruise   string    `json:"cruise"`
	Profiles []Profile `json:"profiles"`
}

// NewTransect builds profiles from parallel station/depth/value slices.
func NewTransect(tracer, cruise string, stations []Station, depths, values [][]float64) (Transect, error) {
	if len(depths) != len(stations) || len(values) != len(stations) {
		return Transect{}, fmt.Errorf("transect %q: %d stations, %d depth sets, %d value sets: %w",
			tracer, len(stations), len(depths), len(values), geo.ErrLengthMismatch)
	}

	out := Transect{Tracer: tracer, Cruise: cruise, Profiles: make([]Profile, len(stations))}
	for i, st := range stations {
		p, err := NewProfile(st, depths[i], values[i])
		if err != nil {
			return Transect{}, fmt.Errorf("transect %q: %w", tracer, err)
		}
		out.Profiles[i] = p
	}

	return out, nil
}

// Track returns the track formed by the profile stations, named after the
// cruise.
func (t Transect) Track() Track {
	st := make([]Station, len(t.Profiles))
	for i, p := range t.Profiles {
		st[i] = p.Station
	}

	return Track{Name: t.Cruise, Stations: st}
}

// Sort reorders the profiles along the station order inferred by e.
func (t Transect) Sort(e *route.Engine) (Transect, route.Result, error) {
	res, err := e.Order(t.Track().Points())
	if err != nil {
		return Transect{}, route.Result{}, fmt.Errorf("transect %q: %w", t.Tracer, err)
	}
	if err = checkPermutation(res.Order, len(t.Profiles)); err != nil {
		return Transect{}, route.Result{}, err
	}

	out := Transect{Tracer: t.Tracer, Cruise: t.Cruise, Profiles: make([]Profile, len(res.Order))}
	for k, i := range res.Order {
		out.Profiles[k] = t.Profiles[i]
	}

	return out, res, nil
}

// Distances returns the along-track distance of each profile in the current
// order.
func (t Transect) Distances(radius float64) []float64 {
	return t.Track().CumulativeDistances(radius)
}
