package payroll

import (
	"time"

	"github.com/workline-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/workline-hq/attendance-backend-go/internal/domain/employee"
)

// ShiftCompliance holds the monthly punctuality counters derived from
// attendance timestamps against the employee's configured shift bounds. The
// counters are independent and carry no deduction semantics themselves.
type ShiftCompliance struct {
	LateLoginCount   int
	EarlyLogoutCount int
}

// AccumulateShiftCompliance walks one month's attendance records. A record
// counts as late when its login is strictly after that day's shift-start
// instant and as early when its logout is strictly before that day's
// shift-end instant, both in the organizational time zone. Records missing
// either timestamp are skipped; an employee without both shift bounds
// configured accrues nothing.
func AccumulateShiftCompliance(emp employee.Employee, records []attendance.Attendance, loc *time.Location) ShiftCompliance {
	var c ShiftCompliance

	if !emp.HasShiftConfigured() {
		return c
	}

	shiftStart, err := time.Parse("15:04", *emp.ShiftStart)
	if err != nil {
		return c
	}
	shiftEnd, err := time.Parse("15:04", *emp.ShiftEnd)
	if err != nil {
		return c
	}

	for _, record := range records {
		if record.LoginTime == nil || record.LogoutTime == nil {
			continue
		}

		// WorkDate is date-only; read its fields as stored.
		day := record.WorkDate
		startInstant := time.Date(day.Year(), day.Month(), day.Day(),
			shiftStart.Hour(), shiftStart.Minute(), 0, 0, loc)
		endInstant := time.Date(day.Year(), day.Month(), day.Day(),
			shiftEnd.Hour(), shiftEnd.Minute(), 0, 0, loc)

		if record.LoginTime.In(loc).After(startInstant) {
			c.LateLoginCount++
		}
		if record.LogoutTime.In(loc).Before(endInstant) {
			c.EarlyLogoutCount++
		}
	}

	return c
}
