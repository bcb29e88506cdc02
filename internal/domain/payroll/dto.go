package payroll

import (
	"github.com/shopspring/decimal"
)

// Breakdown is the derived monthly payroll result for one employee. It is a
// pure function of (employee, month, attendance, approved leave, holidays)
// and is never persisted; callers recompute it on demand. Money fields are
// rounded to whole currency units at output only.
type Breakdown struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Month        string `json:"month"`

	TotalDaysInMonth   int `json:"total_days_in_month"`
	SundayCount        int `json:"sunday_count"`
	HolidayCount       int `json:"holiday_count"`
	PresentDays        int `json:"present_days"`
	ApprovedLeaveCount int `json:"approved_leave_count"`
	UnpaidDays         int `json:"unpaid_days"`
	LateLoginCount     int `json:"late_login_count"`
	EarlyLogoutCount   int `json:"early_logout_count"`

	DailySalary     decimal.Decimal `json:"daily_salary"`
	DeductionAmount decimal.Decimal `json:"deduction_amount"`
	FinalSalary     decimal.Decimal `json:"final_salary"`
}

// BatchFailure records one employee whose reconciliation failed inside a
// batch run without aborting the rest of the batch.
type BatchFailure struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Reason       string `json:"reason"`
}

// BatchResult is the outcome of reconciling every employee for one month.
type BatchResult struct {
	Month      string         `json:"month"`
	Breakdowns []Breakdown    `json:"breakdowns"`
	Failures   []BatchFailure `json:"failures,omitempty"`
}
