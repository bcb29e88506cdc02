package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workline-hq/attendance-backend-go/internal/config"
	"github.com/workline-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/workline-hq/attendance-backend-go/internal/domain/employee"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/utils"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	office         utils.Coordinate
	radiusMeters   float64
	loc            *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	org config.OrganizationConfig,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		office: utils.Coordinate{
			Latitude:  org.OfficeLatitude,
			Longitude: org.OfficeLongitude,
		},
		radiusMeters: org.GeofenceRadiusMeters,
		loc:          loc,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", employee.ErrEmployeeNotFound
	}

	return employeeID, nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	format := t.In(loc).Format("2006-01-02 15:04:05")
	return &format
}

// workDay truncates an instant to its calendar day in the organizational
// time zone. Every day-boundary computation goes through here so attendance,
// leave and holidays agree on what "today" means regardless of device zones.
func workDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// gate checks the geofence precondition shared by check-in and check-out.
// A missing position blocks the transition; it never defaults to allowed.
func (a *AttendanceServiceImpl) gate(lat, lon *float64) error {
	if lat == nil || lon == nil {
		return attendance.ErrLocationUnavailable
	}

	current := utils.Coordinate{Latitude: *lat, Longitude: *lon}
	if !utils.WithinRadius(current, a.office, a.radiusMeters) {
		return attendance.ErrOutsideAllowedRadius
	}

	return nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := a.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := a.gate(req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := time.Now().UTC()
	today := workDay(nowUTC, a.loc)

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}

	state := attendance.StateOf(existing)
	if !state.CanCheckIn() {
		// Idempotent read: surface the existing record, not a new transition.
		return a.toResponse(*existing), attendance.ErrAlreadyCheckedIn
	}

	data := attendance.Attendance{
		EmployeeID: employeeID,
		WorkDate:   today,
		LoginTime:  &nowUTC,
	}

	created, err := a.attendanceRepo.Create(ctx, data)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			// Lost the race against another device; report the stored state.
			if winner, getErr := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today); getErr == nil && winner != nil {
				return a.toResponse(*winner), attendance.ErrAlreadyCheckedIn
			}
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return a.toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := a.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := a.gate(req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := time.Now().UTC()
	today := workDay(nowUTC, a.loc)

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}

	state := attendance.StateOf(existing)
	if !state.CanCheckOut() {
		// Never create a logout-only record.
		if state.Kind == attendance.StateCheckedOut {
			return a.toResponse(*existing), attendance.ErrAlreadyCheckedOut
		}
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}

	existing.LogoutTime = &nowUTC
	if err := a.attendanceRepo.Update(ctx, *existing); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return a.toResponse(*existing), nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context) (attendance.TodayResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	today := workDay(time.Now().UTC(), a.loc)

	record, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	state := attendance.StateOf(record)
	resp := attendance.TodayResponse{
		WorkDate: today.Format("2006-01-02"),
		State:    state.Kind.String(),
	}
	if record != nil {
		resp.LoginTime = timePtrToString(record.LoginTime, a.loc)
		resp.LogoutTime = timePtrToString(record.LogoutTime, a.loc)
	}

	return resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, month string) ([]attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	start, ok := validator.IsValidMonth(month)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "month", Message: "month must be YYYY-MM"}}
	}

	from := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, a.loc)
	to := from.AddDate(0, 1, -1)

	records, err := a.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, a.toResponse(record))
	}

	return responses, nil
}

func (a *AttendanceServiceImpl) toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		WorkDate:     att.WorkDate.Format("2006-01-02"),
		State:        attendance.StateOf(&att).Kind.String(),
		LoginTime:    timePtrToString(att.LoginTime, a.loc),
		LogoutTime:   timePtrToString(att.LogoutTime, a.loc),
		EmployeeName: att.EmployeeName,
	}
}
