package payroll

import (
	"context"
)

// PayrollService defines the reconciliation operations
type PayrollService interface {
	// Reconcile computes one employee's breakdown for a month ("YYYY-MM").
	Reconcile(ctx context.Context, employeeID string, month string) (Breakdown, error)

	// ReconcileAll computes breakdowns for every employee. A failure for
	// one employee is recorded in the result and does not abort the batch.
	ReconcileAll(ctx context.Context, month string) (BatchResult, error)
}
