package cruise

import (
	"fmt"

	"github.com/katalvlaran/oceancruise/geo"
)

// Profile is a vertical cast at one station: Values[i] was measured at
// Depths[i].
type Profile struct {
	Station Station   `json:"station"`
	Depths  []float64 `json:"depths"`
	Values  []float64 `json:"values"`
}

// NewProfile copies depths and values; their lengths must agree.
func NewProfile(st Station, depths, values []float64) (Profile, error) {
	if len(depths) != len(values) {
		return Profile{}, fmt.Errorf("profile %q: %d depths, %d values: %w",
			st.Name, len(depths), len(values), geo.ErrLengthMismatch)
	}

	return Profile{
		Station: st,
		Depths:  append([]float64(nil), depths...),
		Values:  append([]float64(nil), values...),
	}, nil
}

// Len returns the number of samples.
func (p Profile) Len() int { return len(p.Depths) }
