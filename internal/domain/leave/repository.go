package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus, reviewedBy *string, reviewedAt *time.Time) error
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListPending(ctx context.Context) ([]LeaveRequest, error)

	// GetApprovedDates returns the distinct approved leave dates for one
	// employee with leave dates in [from, to]. Duplicate requests for the
	// same date collapse to a single entry.
	GetApprovedDates(ctx context.Context, employeeID string, from, to time.Time) ([]time.Time, error)
}
