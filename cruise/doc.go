// Package cruise holds the record types of an oceanographic cruise:
// stations, the track they form, vertical profiles taken at them and the
// transect that strings profiles along the track.
//
// The types are plain values. Methods that change order or coordinates
// return new values and leave the receiver untouched; ordering is delegated
// to a route.Engine and distances to package geo.
package cruise
