package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrLocationUnavailable  = errors.New("device location is unavailable")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed radius")
	ErrAlreadyCheckedIn     = errors.New("you have already checked in today")
	ErrNotCheckedIn         = errors.New("you have not checked in today")
	ErrAlreadyCheckedOut    = errors.New("you have already checked out today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
