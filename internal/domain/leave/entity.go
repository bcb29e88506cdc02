package leave

import (
	"time"
)

type LeaveType string

const (
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeCasual LeaveType = "casual"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// LeaveRequest entity. Immutable once created except Status, which moves
// pending -> approved or pending -> rejected; both are terminal. The ledger
// permits duplicate requests for the same (employee, date); payroll dedupes
// approved dates downstream.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	// LeaveDate is the calendar day in the organizational time zone.
	LeaveDate time.Time
	Type      LeaveType
	Status    LeaveRequestStatus

	ReviewedBy *string
	ReviewedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	EmployeeName *string
}
