package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	FullName   string
	Email      string
	Role       Role
	BaseSalary *decimal.Decimal
	// Shift bounds as "HH:MM" time-of-day in the organizational time zone.
	// Both must be set for shift compliance to apply; otherwise late/early
	// detection is skipped for this employee.
	ShiftStart *string
	ShiftEnd   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleDirector Role = "director"
)

// HasShiftConfigured reports whether both shift bounds are set.
func (e Employee) HasShiftConfigured() bool {
	return e.ShiftStart != nil && e.ShiftEnd != nil
}
