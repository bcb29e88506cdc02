package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/workline-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/workline-hq/attendance-backend-go/internal/domain/employee"
	"github.com/workline-hq/attendance-backend-go/internal/domain/holiday"
	"github.com/workline-hq/attendance-backend-go/internal/domain/leave"
	"github.com/workline-hq/attendance-backend-go/internal/domain/payroll"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	holidayRepo    holiday.HolidayRepository
	loc            *time.Location
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	holidayRepo holiday.HolidayRepository,
	loc *time.Location,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		holidayRepo:    holidayRepo,
		loc:            loc,
	}
}

// Reconcile implements payroll.PayrollService. Access control lives in the
// router: payroll routes sit behind the admin-only middleware, and the cron
// preview job calls this directly.
func (s *PayrollServiceImpl) Reconcile(ctx context.Context, employeeID string, month string) (payroll.Breakdown, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.Breakdown{}, err
	}

	return s.reconcileEmployee(ctx, emp, month)
}

// reconcileEmployee loads the three month-scoped data sets and computes the
// breakdown. The reads are independent and issued concurrently; computation
// starts only after all of them resolve. Nothing is published on failure.
func (s *PayrollServiceImpl) reconcileEmployee(ctx context.Context, emp employee.Employee, month string) (payroll.Breakdown, error) {
	parsed, ok := validator.IsValidMonth(month)
	if !ok {
		return payroll.Breakdown{}, payroll.ErrInvalidMonth
	}
	year, m := parsed.Year(), parsed.Month()

	from := time.Date(year, m, 1, 0, 0, 0, 0, s.loc)
	to := from.AddDate(0, 1, -1)

	var in Inputs
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := s.attendanceRepo.ListByEmployeeAndRange(gctx, emp.ID, from, to)
		if err != nil {
			return fmt.Errorf("failed to load attendance: %w", err)
		}
		in.Attendance = records
		return nil
	})

	g.Go(func() error {
		dates, err := s.leaveRepo.GetApprovedDates(gctx, emp.ID, from, to)
		if err != nil {
			return fmt.Errorf("failed to load approved leave: %w", err)
		}
		in.LeaveDates = dates
		return nil
	})

	g.Go(func() error {
		dates, err := s.holidayRepo.GetDates(gctx, from, to)
		if err != nil {
			return fmt.Errorf("failed to load holidays: %w", err)
		}
		in.HolidayDates = dates
		return nil
	})

	if err := g.Wait(); err != nil {
		return payroll.Breakdown{}, err
	}

	return Calculate(emp, year, m, in, s.loc)
}

// ReconcileAll implements payroll.PayrollService. One employee's failure is
// recorded and must not corrupt or omit the other breakdowns.
func (s *PayrollServiceImpl) ReconcileAll(ctx context.Context, month string) (payroll.BatchResult, error) {
	if _, ok := validator.IsValidMonth(month); !ok {
		return payroll.BatchResult{}, payroll.ErrInvalidMonth
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return payroll.BatchResult{}, fmt.Errorf("failed to list employees: %w", err)
	}

	result := payroll.BatchResult{Month: month}
	for _, emp := range employees {
		breakdown, err := s.reconcileEmployee(ctx, emp, month)
		if err != nil {
			result.Failures = append(result.Failures, payroll.BatchFailure{
				EmployeeID:   emp.ID,
				EmployeeName: emp.FullName,
				Reason:       err.Error(),
			})
			continue
		}
		result.Breakdowns = append(result.Breakdowns, breakdown)
	}

	return result, nil
}
