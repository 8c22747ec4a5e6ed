package errs

import "errors"

// Sentinel errors shared by the domain, usecase and handler layers
var (
	// Caller contract violations (malformed slot, station out of range, empty contact)
	ErrInvalidArgument = errors.New("invalid argument")

	// Backing store could not be reached; retryable
	ErrStoreUnavailable = errors.New("store unavailable")

	// Two persisted reservations occupy the same station/hour
	ErrDataIntegrity = errors.New("data integrity warning")

	// Reservation errors
	ErrSlotConflict        = errors.New("slot conflict")
	ErrOutsideBookingHours = errors.New("outside booking hours")
	ErrDateInPast          = errors.New("date in the past")
)
