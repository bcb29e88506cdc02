package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workline-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/workline-hq/attendance-backend-go/internal/domain/employee"
	"github.com/workline-hq/attendance-backend-go/internal/domain/payroll"
)

// September 2025 has 30 days with Sundays on the 7th, 14th, 21st and 28th,
// leaving 26 working days.

func testEmployee(salary int64) employee.Employee {
	s := decimal.NewFromInt(salary)
	return employee.Employee{
		ID:         "emp-1",
		FullName:   "Asha Verma",
		Email:      "asha@workline.test",
		Role:       employee.RoleEmployee,
		BaseSalary: &s,
	}
}

func sept(day int) time.Time {
	return time.Date(2025, time.September, day, 0, 0, 0, 0, time.UTC)
}

func presentOn(days ...int) []attendance.Attendance {
	records := make([]attendance.Attendance, 0, len(days))
	for _, d := range days {
		records = append(records, attendance.Attendance{
			ID:         "att-" + sept(d).Format("02"),
			EmployeeID: "emp-1",
			WorkDate:   sept(d),
		})
	}
	return records
}

func workingDaysOfSeptember() []int {
	sundays := map[int]bool{7: true, 14: true, 21: true, 28: true}
	var days []int
	for d := 1; d <= 30; d++ {
		if !sundays[d] {
			days = append(days, d)
		}
	}
	return days
}

func TestCalculateNoAttendance(t *testing.T) {
	b, err := Calculate(testEmployee(30000), 2025, time.September, Inputs{}, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 30, b.TotalDaysInMonth)
	assert.Equal(t, 4, b.SundayCount)
	assert.Equal(t, 0, b.PresentDays)
	assert.Equal(t, 26, b.UnpaidDays)
	assert.True(t, b.DailySalary.Equal(decimal.NewFromInt(1000)))
	assert.True(t, b.DeductionAmount.Equal(decimal.NewFromInt(26000)))
	assert.True(t, b.FinalSalary.Equal(decimal.NewFromInt(4000)))
}

func TestCalculateFullAttendance(t *testing.T) {
	in := Inputs{Attendance: presentOn(workingDaysOfSeptember()...)}

	b, err := Calculate(testEmployee(30000), 2025, time.September, in, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 26, b.PresentDays)
	assert.Equal(t, 0, b.UnpaidDays)
	assert.True(t, b.DeductionAmount.IsZero())
	assert.True(t, b.FinalSalary.Equal(decimal.NewFromInt(30000)))
}

func TestCalculateFirstLeaveDayIsFree(t *testing.T) {
	// Absent on the 1st with approved leave, present every other working day.
	days := workingDaysOfSeptember()[1:]
	in := Inputs{
		Attendance: presentOn(days...),
		LeaveDates: []time.Time{sept(1)},
	}

	b, err := Calculate(testEmployee(30000), 2025, time.September, in, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 1, b.ApprovedLeaveCount)
	assert.Equal(t, 25, b.PresentDays)
	assert.Equal(t, 0, b.UnpaidDays)
	assert.True(t, b.FinalSalary.Equal(decimal.NewFromInt(30000)))
}

func TestCalculateSecondLeaveDayIsUnpaid(t *testing.T) {
	days := workingDaysOfSeptember()[2:]
	in := Inputs{
		Attendance: presentOn(days...),
		LeaveDates: []time.Time{sept(1), sept(2)},
	}

	b, err := Calculate(testEmployee(30000), 2025, time.September, in, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 2, b.ApprovedLeaveCount)
	assert.Equal(t, 1, b.UnpaidDays)
	assert.True(t, b.DeductionAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, b.FinalSalary.Equal(decimal.NewFromInt(29000)))
}

func TestCalculateDuplicateLeaveDatesCollapse(t *testing.T) {
	// Two approved requests for the same date behave as one leave day.
	in := Inputs{
		Attendance: presentOn(workingDaysOfSeptember()[1:]...),
		LeaveDates: []time.Time{sept(1), sept(1)},
	}

	b, err := Calculate(testEmployee(30000), 2025, time.September, in, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 1, b.ApprovedLeaveCount)
	assert.Equal(t, 0, b.UnpaidDays)
	assert.True(t, b.FinalSalary.Equal(decimal.NewFromInt(30000)))
}

func TestCalculatePresentOnLeaveDay(t *testing.T) {
	// Presence on a leave day still counts the day present AND consumes the
	// free leave; a later leave day therefore becomes unpaid.
	in := Inputs{
		Attendance: presentOn(workingDaysOfSeptember()...),
		LeaveDates: []time.Time{sept(1), sept(2)},
	}

	b, err := Calculate(testEmployee(30000), 2025, time.September, in, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 26, b.PresentDays)
	assert.Equal(t, 1, b.UnpaidDays)
	assert.True(t, b.FinalSalary.Equal(decimal.NewFromInt(29000)))
}

func TestCalculateHolidayPrecedence(t *testing.T) {
	// A holiday is paid even with no attendance and no leave, and it shields
	// a leave date from consuming the free leave.
	in := Inputs{
		Attendance:   presentOn(workingDaysOfSeptember()[2:]...),
		LeaveDates:   []time.Time{sept(1), sept(2)},
		HolidayDates: []time.Time{sept(1)},
	}

	b, err := Calculate(testEmployee(30000), 2025, time.September, in, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 1, b.HolidayCount)
	assert.Equal(t, 0, b.UnpaidDays) // the 2nd uses the free leave
	assert.True(t, b.FinalSalary.Equal(decimal.NewFromInt(30000)))
}

func TestCalculateHolidayOnSunday(t *testing.T) {
	in := Inputs{HolidayDates: []time.Time{sept(7)}}

	b, err := Calculate(testEmployee(30000), 2025, time.September, in, time.UTC)
	require.NoError(t, err)

	// Sunday wins the classification; the holiday is not double counted.
	assert.Equal(t, 4, b.SundayCount)
	assert.Equal(t, 0, b.HolidayCount)
	assert.Equal(t, 26, b.UnpaidDays)
}

func TestCalculateLateLoginDeduction(t *testing.T) {
	start, end := "09:00", "18:00"
	emp := testEmployee(30000)
	emp.ShiftStart = &start
	emp.ShiftEnd = &end

	records := presentOn(workingDaysOfSeptember()...)
	lateDays := 0
	for i := range records {
		login := records[i].WorkDate.Add(9 * time.Hour)
		logout := records[i].WorkDate.Add(18 * time.Hour)
		if lateDays < 3 {
			login = login.Add(15 * time.Minute)
			lateDays++
		}
		records[i].LoginTime = &login
		records[i].LogoutTime = &logout
	}

	b, err := Calculate(emp, 2025, time.September, Inputs{Attendance: records}, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 3, b.LateLoginCount)
	assert.Equal(t, 0, b.EarlyLogoutCount)
	assert.Equal(t, 0, b.UnpaidDays)
	// Three late logins cost half a daily salary: 1000 / 2 = 500.
	assert.True(t, b.DeductionAmount.Equal(decimal.NewFromInt(500)))
	assert.True(t, b.FinalSalary.Equal(decimal.NewFromInt(29500)))
}

func TestCalculateTwoLateLoginsCostNothing(t *testing.T) {
	start, end := "09:00", "18:00"
	emp := testEmployee(30000)
	emp.ShiftStart = &start
	emp.ShiftEnd = &end

	records := presentOn(workingDaysOfSeptember()...)
	for i := range records {
		login := records[i].WorkDate.Add(9 * time.Hour)
		logout := records[i].WorkDate.Add(18 * time.Hour)
		if i < 2 {
			login = login.Add(30 * time.Minute)
		}
		records[i].LoginTime = &login
		records[i].LogoutTime = &logout
	}

	b, err := Calculate(emp, 2025, time.September, Inputs{Attendance: records}, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 2, b.LateLoginCount)
	assert.True(t, b.DeductionAmount.IsZero())
	assert.True(t, b.FinalSalary.Equal(decimal.NewFromInt(30000)))
}

func TestCalculateRoundsOnlyAtOutput(t *testing.T) {
	// 31000 over 30 days is not an integer daily salary; a single unpaid day
	// must deduct the exact fraction before rounding the outputs.
	b, err := Calculate(testEmployee(31000), 2025, time.September,
		Inputs{Attendance: presentOn(workingDaysOfSeptember()[1:]...)}, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 1, b.UnpaidDays)
	// 31000/30 = 1033.33..; deduction rounds to 1033, final to 29967.
	assert.True(t, b.DailySalary.Equal(decimal.NewFromInt(1033)))
	assert.True(t, b.DeductionAmount.Equal(decimal.NewFromInt(1033)))
	assert.True(t, b.FinalSalary.Equal(decimal.NewFromInt(29967)))

	// Reconstructing the salary from the rounded daily rate stays within
	// half a unit per day: |31000 - 1033*30| = 10 <= 15.
	reconstructed := b.DailySalary.Mul(decimal.NewFromInt(int64(b.TotalDaysInMonth)))
	tolerance := decimal.NewFromFloat(0.5).Mul(decimal.NewFromInt(int64(b.TotalDaysInMonth)))
	diff := decimal.NewFromInt(31000).Sub(reconstructed).Abs()
	assert.True(t, diff.LessThanOrEqual(tolerance))
}

func TestCalculateIsIdempotent(t *testing.T) {
	in := Inputs{
		Attendance: presentOn(1, 2, 3, 8, 9),
		LeaveDates: []time.Time{sept(4), sept(5)},
	}

	first, err := Calculate(testEmployee(30000), 2025, time.September, in, time.UTC)
	require.NoError(t, err)
	second, err := Calculate(testEmployee(30000), 2025, time.September, in, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateInvalidSalary(t *testing.T) {
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name   string
		salary *decimal.Decimal
	}{
		{name: "nil salary", salary: nil},
		{name: "negative salary", salary: &negative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := testEmployee(0)
			emp.BaseSalary = tt.salary

			_, err := Calculate(emp, 2025, time.September, Inputs{}, time.UTC)
			assert.ErrorIs(t, err, payroll.ErrInvalidSalary)
		})
	}
}

func TestCalculateDayPartition(t *testing.T) {
	// With disjoint inputs every day lands in exactly one bucket.
	in := Inputs{
		Attendance:   presentOn(1, 2, 3, 4, 5),
		LeaveDates:   []time.Time{sept(8), sept(9)},
		HolidayDates: []time.Time{sept(10)},
	}

	b, err := Calculate(testEmployee(30000), 2025, time.September, in, time.UTC)
	require.NoError(t, err)

	// 30 = 4 Sundays + 1 holiday + 5 present + 2 leave (1 free + 1 unpaid)
	//    + 18 absent.
	paidLeave := b.ApprovedLeaveCount - 1
	absent := b.UnpaidDays - paidLeave
	assert.Equal(t, b.TotalDaysInMonth,
		b.SundayCount+b.HolidayCount+b.PresentDays+b.ApprovedLeaveCount+absent)
}
