package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/workline-hq/attendance-backend-go/internal/domain/payroll"
)

type PayrollJobs struct {
	payrollSvc payroll.PayrollService
	loc        *time.Location
}

func NewPayrollJobs(payrollSvc payroll.PayrollService, loc *time.Location) *PayrollJobs {
	return &PayrollJobs{
		payrollSvc: payrollSvc,
		loc:        loc,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("payroll_month_end_preview", 1*time.Hour, j.MonthEndPreview)
}

// MonthEndPreview reconciles every employee for the current month on its
// last day and logs the batch summary. Breakdowns are recomputed on demand
// and never persisted; the log line is the only artifact.
func (j *PayrollJobs) MonthEndPreview(ctx context.Context) error {
	now := time.Now().In(j.loc)

	// Only run during the last day of the month, first hour slot.
	lastDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, j.loc).AddDate(0, 1, -1).Day()
	if now.Day() != lastDay || now.Hour() != 0 {
		return nil
	}

	runID := uuid.NewString()
	month := now.Format("2006-01")
	slog.Info("Cron: Starting month-end payroll preview", "run_id", runID, "month", month)

	result, err := j.payrollSvc.ReconcileAll(ctx, month)
	if err != nil {
		return fmt.Errorf("failed to reconcile month %s: %w", month, err)
	}

	for _, failure := range result.Failures {
		slog.Warn("Cron: Payroll reconciliation skipped employee",
			"run_id", runID,
			"employee_id", failure.EmployeeID,
			"reason", failure.Reason)
	}

	slog.Info("Cron: Month-end payroll preview completed",
		"run_id", runID,
		"month", month,
		"reconciled", len(result.Breakdowns),
		"failed", len(result.Failures))

	return nil
}
