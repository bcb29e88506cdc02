package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts the check-in record. The (employee_id, work_date)
	// unique constraint backstops concurrent check-ins; a violation is
	// returned as ErrAlreadyCheckedIn.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns the record for one employee on one work
	// day, or nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*Attendance, error)

	// Update sets the logout timestamp at check-out. Records are never
	// deleted.
	Update(ctx context.Context, attendance Attendance) error

	// ListByEmployeeAndRange returns an employee's records with work dates
	// in [from, to], ordered by work date.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
}
