package route

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/oceancruise/geo"
)

// Orientation selects which endpoint an ordered path starts from.
type Orientation int

const (
	// Auto derives the orientation from the point set: West when the
	// longitude span exceeds the latitude span, South otherwise.
	Auto Orientation = iota
	// South starts at the southern endpoint (first lat ≤ last lat).
	South
	// West starts at the western endpoint (first lon ≤ last lon).
	West
)

// String returns "auto", "south" or "west".
func (o Orientation) String() string {
	switch o {
	case Auto:
		return "auto"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseOrientation.
func (o *Orientation) UnmarshalText(text []byte) error {
	v, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = v

	return nil
}

// ParseOrientation parses "auto", "south" or "west" (case-insensitive).
// The empty string means Auto.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "south":
		return South, nil
	case "west":
		return West, nil
	default:
		return Auto, fmt.Errorf("%q: %w", s, ErrUnknownOrientation)
	}
}

// Resolve returns o itself when it is South or West; for Auto it compares
// the spans of points (already auto-shifted): LonSpan > LatSpan ⇒ West,
// otherwise South.
func (o Orientation) Resolve(points []geo.Point) Orientation {
	if o == South || o == West {
		return o
	}
	ext := geo.ExtentOf(points)
	if ext.LonSpan() > ext.LatSpan() {
		return West
	}

	return South
}

// Orient returns path (indices into points) reversed if needed so that it
// starts at the endpoint mode selects: West reverses when the first
// longitude exceeds the last, South when the first latitude exceeds the
// last. path is not modified. mode must be resolved (South or West).
func Orient(points []geo.Point, path []int, mode Orientation) []int {
	out := make([]int, len(path))
	copy(out, path)
	if len(out) < 2 {
		return out
	}

	first, last := points[out[0]], points[out[len(out)-1]]
	var reverse bool
	switch mode {
	case West:
		reverse = first.Lon > last.Lon
	default:
		reverse = first.Lat > last.Lat
	}
	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return out
}
