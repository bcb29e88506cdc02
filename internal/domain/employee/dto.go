package employee

import (
	"github.com/shopspring/decimal"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	FullName   string           `json:"full_name"`
	Email      string           `json:"email"`
	Role       string           `json:"role"`
	BaseSalary *decimal.Decimal `json:"base_salary"`
	ShiftStart *string          `json:"shift_start"`
	ShiftEnd   *string          `json:"shift_end"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if !validator.IsInSlice(r.Role, []string{string(RoleEmployee), string(RoleDirector)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be employee or director",
		})
	}

	if r.BaseSalary == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary is required",
		})
	} else if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	errs = append(errs, validateShiftBounds(r.ShiftStart, r.ShiftEnd)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	FullName   *string          `json:"full_name"`
	Role       *string          `json:"role"`
	BaseSalary *decimal.Decimal `json:"base_salary"`
	ShiftStart *string          `json:"shift_start"`
	ShiftEnd   *string          `json:"shift_end"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleEmployee), string(RoleDirector)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be employee or director",
		})
	}

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	errs = append(errs, validateShiftBounds(r.ShiftStart, r.ShiftEnd)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateShiftBounds(start, end *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if (start == nil) != (end == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "shift_start and shift_end must be set together",
		})
		return errs
	}

	if start != nil {
		if _, ok := validator.IsValidTimeOfDay(*start); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_start",
				Message: "shift_start must be HH:MM",
			})
		}
	}
	if end != nil {
		if _, ok := validator.IsValidTimeOfDay(*end); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_end",
				Message: "shift_end must be HH:MM",
			})
		}
	}

	return errs
}

type EmployeeResponse struct {
	ID         string           `json:"id"`
	FullName   string           `json:"full_name"`
	Email      string           `json:"email"`
	Role       string           `json:"role"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
	ShiftStart *string          `json:"shift_start,omitempty"`
	ShiftEnd   *string          `json:"shift_end,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		FullName:   e.FullName,
		Email:      e.Email,
		Role:       string(e.Role),
		BaseSalary: e.BaseSalary,
		ShiftStart: e.ShiftStart,
		ShiftEnd:   e.ShiftEnd,
	}
}
