package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workline-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/workline-hq/attendance-backend-go/internal/domain/employee"
	"github.com/workline-hq/attendance-backend-go/internal/domain/payroll"
)

// Inputs is the month-scoped data a breakdown is computed from. Everything
// is loaded before computation starts; Calculate itself performs no I/O, so
// reconciliation with unchanged inputs always yields an identical breakdown.
type Inputs struct {
	Attendance   []attendance.Attendance
	LeaveDates   []time.Time
	HolidayDates []time.Time
}

var two = decimal.NewFromInt(2)

// Calculate produces the payroll breakdown for one employee and one month.
//
// Day classification follows a fixed precedence: Sunday, then holiday, then
// presence recording, then leave consumption, then unpaid. The first
// approved leave day of the month is free; every later one is unpaid. A day
// that is both present and on approved leave increments presentDays AND
// consumes (or charges) the leave — intentional, see DESIGN.md. Money stays
// unrounded until the output fields.
func Calculate(emp employee.Employee, year int, month time.Month, in Inputs, loc *time.Location) (payroll.Breakdown, error) {
	if emp.BaseSalary == nil || emp.BaseSalary.IsNegative() {
		return payroll.Breakdown{}, payroll.ErrInvalidSalary
	}

	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	totalDays := firstOfMonth.AddDate(0, 1, -1).Day()

	dailySalary := emp.BaseSalary.Div(decimal.NewFromInt(int64(totalDays)))

	compliance := AccumulateShiftCompliance(emp, in.Attendance, loc)

	// Every three late logins or three early logouts cost half a day.
	// Remainders below three carry no penalty and do not roll over.
	halfDayUnits := compliance.LateLoginCount/3 + compliance.EarlyLogoutCount/3
	extraDeduction := dailySalary.Div(two).Mul(decimal.NewFromInt(int64(halfDayUnits)))

	presentSet := dateSet(nil, in.Attendance)
	leaveSet := dateSet(in.LeaveDates, nil)
	holidaySet := dateSet(in.HolidayDates, nil)

	breakdown := payroll.Breakdown{
		EmployeeID:         emp.ID,
		EmployeeName:       emp.FullName,
		Month:              firstOfMonth.Format("2006-01"),
		TotalDaysInMonth:   totalDays,
		ApprovedLeaveCount: len(leaveSet),
		LateLoginCount:     compliance.LateLoginCount,
		EarlyLogoutCount:   compliance.EarlyLogoutCount,
	}

	paidLeaveUsed := false
	for day := 1; day <= totalDays; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, loc)
		key := date.Format("2006-01-02")

		if date.Weekday() == time.Sunday {
			breakdown.SundayCount++
			continue
		}

		if holidaySet[key] {
			// Paid regardless of presence or leave on the same date.
			breakdown.HolidayCount++
			continue
		}

		isPresent := presentSet[key]
		if isPresent {
			breakdown.PresentDays++
		}

		if leaveSet[key] {
			if !paidLeaveUsed {
				paidLeaveUsed = true
			} else {
				breakdown.UnpaidDays++
			}
			continue
		}

		if !isPresent {
			breakdown.UnpaidDays++
		}
	}

	unpaidAmount := dailySalary.Mul(decimal.NewFromInt(int64(breakdown.UnpaidDays))).Add(extraDeduction)

	breakdown.DailySalary = dailySalary.Round(0)
	breakdown.DeductionAmount = unpaidAmount.Round(0)
	breakdown.FinalSalary = emp.BaseSalary.Sub(unpaidAmount).Round(0)

	return breakdown, nil
}

// dateSet builds a "YYYY-MM-DD" lookup from either plain dates or attendance
// work dates. These are date-only values already anchored to the
// organizational day, so they are formatted as stored rather than converted
// through a zone. Duplicate dates collapse, so several approved requests for
// one day count as a single leave day.
func dateSet(dates []time.Time, records []attendance.Attendance) map[string]bool {
	set := make(map[string]bool, len(dates)+len(records))
	for _, d := range dates {
		set[d.Format("2006-01-02")] = true
	}
	for _, r := range records {
		set[r.WorkDate.Format("2006-01-02")] = true
	}
	return set
}
