package leave

import (
	"github.com/workline-hq/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE DTOs
// ========================================

type ApplyLeaveRequest struct {
	LeaveDate string `json:"leave_date"`
	Type      string `json:"type"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.LeaveDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_date",
			Message: "leave_date must be YYYY-MM-DD",
		})
	}

	if !validator.IsInSlice(r.Type, []string{string(LeaveTypeSick), string(LeaveTypeCasual)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be sick or casual",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	LeaveDate    string  `json:"leave_date"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	ReviewedBy   *string `json:"reviewed_by,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
}

func ToResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		LeaveDate:    r.LeaveDate.Format("2006-01-02"),
		Type:         string(r.Type),
		Status:       string(r.Status),
		ReviewedBy:   r.ReviewedBy,
		EmployeeName: r.EmployeeName,
	}
}
