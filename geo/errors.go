package geo

import "errors"

var (
	// ErrLengthMismatch is returned when two co-indexed sequences (for example
	// latitudes and longitudes, or depths and values) differ in length.
	ErrLengthMismatch = errors.New("geo: length mismatch")

	// ErrLatitudeOutOfRange is returned by NewPoint for |lat| > 90.
	ErrLatitudeOutOfRange = errors.New("geo: latitude out of range [-90, 90]")

	// ErrNonFinite is returned by NewPoint for NaN or ±Inf coordinates.
	ErrNonFinite = errors.New("geo: non-finite coordinate")
)
