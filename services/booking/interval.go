package booking

import "time"

// Overlaps reports whether the proposed interval [start, end) collides
// with an existing booking interval [existingStart, existingEnd).
//
// This is the in-process twin of the $or filter the booking repository
// ships to Mongo, and it deliberately keeps the engine's historical
// three-clause policy rather than the minimal two-sided overlap test:
// the two disagree on some exact boundary touches, and existing clients
// rely on the current edge semantics.
func Overlaps(existingStart, existingEnd, start, end time.Time) bool {
	// New start falls inside the existing interval.
	if start.Before(existingEnd) && !start.Before(existingStart) {
		return true
	}
	// New end falls inside the existing interval.
	if end.After(existingStart) && !end.After(existingEnd) {
		return true
	}
	// New interval fully contains the existing one.
	if !start.After(existingStart) && !end.Before(existingEnd) {
		return true
	}
	return false
}
