package cruise

import (
	"fmt"

	"github.com/katalvlaran/oceancruise/geo"
	"github.com/katalvlaran/oceancruise/route"
)

// Track is the ordered list of stations occupied during a cruise.
type Track struct {
	Name     string    `json:"name"`
	Stations []Station `json:"stations"`
}

// Len returns the number of stations.
func (t Track) Len() int { return len(t.Stations) }

// Names returns the station names, in track order.
func (t Track) Names() []string {
	out := make([]string, len(t.Stations))
	for i, s := range t.Stations {
		out[i] = s.Name
	}

	return out
}

// Points returns the station positions, in track order.
func (t Track) Points() []geo.Point {
	out := make([]geo.Point, len(t.Stations))
	for i, s := range t.Stations {
		out[i] = s.Point()
	}

	return out
}

// Latitudes returns the station latitudes, in track order.
func (t Track) Latitudes() []float64 {
	out := make([]float64, len(t.Stations))
	for i, s := range t.Stations {
		out[i] = s.Lat
	}

	return out
}

// Longitudes returns the station longitudes as stored, in track order.
func (t Track) Longitudes() []float64 {
	out := make([]float64, len(t.Stations))
	for i, s := range t.Stations {
		out[i] = s.Lon
	}

	return out
}

// Extent returns the bounding box of the auto-shifted positions, so a
// track across the prime meridian reports a narrow longitude span.
func (t Track) Extent() geo.Extent {
	return geo.ExtentOf(geo.AutoShift(t.Points()))
}

// ShiftLongitudes returns a copy with every longitude normalized into
// [base, base+360).
func (t Track) ShiftLongitudes(base float64) Track {
	return t.withPoints(geo.ShiftLongitudes(t.Points(), base))
}

// AutoShift returns a copy with longitudes remapped into [-180, 180) when
// the track straddles the prime meridian, or an unchanged copy otherwise.
func (t Track) AutoShift() Track {
	return t.withPoints(geo.AutoShift(t.Points()))
}

func (t Track) withPoints(pts []geo.Point) Track {
	out := Track{Name: t.Name, Stations: make([]Station, len(t.Stations))}
	for i, s := range t.Stations {
		s.Lon = pts[i].Lon
		out.Stations[i] = s
	}

	return out
}

// Reorder returns a copy whose k-th station is t.Stations[perm[k]].
func (t Track) Reorder(perm []int) (Track, error) {
	if err := checkPermutation(perm, len(t.Stations)); err != nil {
		return Track{}, err
	}
	out := Track{Name: t.Name, Stations: make([]Station, len(perm))}
	for k, i := range perm {
		out.Stations[k] = t.Stations[i]
	}

	return out, nil
}

// Sort orders the stations with e and returns the reordered track together
// with the engine result. Stored longitudes are kept as they were; only the
// order changes.
func (t Track) Sort(e *route.Engine) (Track, route.Result, error) {
	res, err := e.Order(t.Points())
	if err != nil {
		return Track{}, route.Result{}, fmt.Errorf("cruise %q: %w", t.Name, err)
	}
	sorted, err := t.Reorder(res.Order)
	if err != nil {
		return Track{}, route.Result{}, err
	}

	return sorted, res, nil
}

// SegmentDistances returns the N-1 leg lengths of the track in its current
// order, after auto-shifting.
func (t Track) SegmentDistances(radius float64) []float64 {
	return geo.SegmentDistances(geo.AutoShift(t.Points()), radius)
}

// CumulativeDistances returns the along-track distance of every station,
// starting at 0.
func (t Track) CumulativeDistances(radius float64) []float64 {
	return geo.CumulativeDistances(geo.AutoShift(t.Points()), radius)
}

func checkPermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: len %d for %d stations", ErrBadPermutation, len(perm), n)
	}
	seen := make([]bool, n)
	for k, i := range perm {
		if i < 0 || i >= n || seen[i] {
			return fmt.Errorf("%w: perm[%d]=%d", ErrBadPermutation, k, i)
		}
		seen[i] = true
	}

	return nil
}

// Validate checks that the track is named and every station position is a
// finite coordinate with |lat| ≤ 90.
func (t Track) Validate() error {
	if t.Name == "" {
		return ErrEmptyName
	}
	for i, s := range t.Stations {
		if _, err := geo.NewPoint(s.Lat, s.Lon); err != nil {
			return fmt.Errorf("cruise %q station %d (%s): %w", t.Name, i, s.Name, err)
		}
	}

	return nil
}
