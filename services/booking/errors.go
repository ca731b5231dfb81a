package booking

import "errors"

var (
	ErrInvalidInterval = errors.New("end time must be after start time")
	ErrInvalidDate     = errors.New("date must be formatted YYYY-MM-DD")
	ErrCourtNotFound   = errors.New("court not found")
	ErrCoachNotFound   = errors.New("coach not found")
	// ErrCoachUnavailable means the coach exists but is administratively
	// toggled off, independent of any time conflict.
	ErrCoachUnavailable = errors.New("coach not available")
)

// Conflict resources.
const (
	ResourceCourt     = "court"
	ResourceCoach     = "coach"
	ResourceEquipment = "equipment"
)

// ConflictError reports that a resource cannot serve the requested
// interval. The message names the resource that failed.
type ConflictError struct {
	Resource string
	Message  string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func newCourtConflict() error {
	return &ConflictError{Resource: ResourceCourt, Message: "Court is not available for this slot"}
}

func newCoachConflict() error {
	return &ConflictError{Resource: ResourceCoach, Message: "Coach is already booked for this slot"}
}

func newEquipmentConflict() error {
	return &ConflictError{Resource: ResourceEquipment, Message: "Requested equipment not available"}
}
