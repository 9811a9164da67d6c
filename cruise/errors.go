package cruise

import "errors"

var (
	// ErrBadPermutation is returned by Reorder when the permutation does not
	// cover every index of the track exactly once.
	ErrBadPermutation = errors.New("cruise: bad permutation")

	// ErrEmptyName is returned when a cruise or station lacks a name where
	// one is required.
	ErrEmptyName = errors.New("cruise: empty name")
)
