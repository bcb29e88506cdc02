package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn processes the Absent -> CheckedIn transition for the caller's
	// current work day, gated by the office geofence. When an open record
	// already exists it is returned alongside ErrAlreadyCheckedIn.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut processes the CheckedIn -> CheckedOut transition, gated by
	// the office geofence.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetToday returns the caller's day state for the current work day.
	GetToday(ctx context.Context) (TodayResponse, error)

	// GetMyAttendance returns the caller's records for one month.
	GetMyAttendance(ctx context.Context, month string) ([]AttendanceResponse, error)
}
