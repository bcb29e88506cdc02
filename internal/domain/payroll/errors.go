package payroll

import "errors"

var (
	// ErrInvalidSalary marks a missing or negative base salary. It is fatal
	// for that employee's reconciliation only; a batch run continues past
	// it.
	ErrInvalidSalary = errors.New("employee has no valid salary configured")

	ErrInvalidMonth = errors.New("month must be YYYY-MM")
)
