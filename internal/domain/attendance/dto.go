package attendance

import (
	"github.com/workline-hq/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// CheckInRequest carries the device position. Latitude/Longitude are
// pointers: a missing position (permission denied, no fix) must block the
// transition rather than default to allowed.
type CheckInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *CheckInRequest) Validate() error {
	return validatePosition(r.Latitude, r.Longitude)
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *CheckOutRequest) Validate() error {
	return validatePosition(r.Latitude, r.Longitude)
}

func validatePosition(lat, lon *float64) error {
	var errs validator.ValidationErrors

	if lat != nil && (*lat < -90 || *lat > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if lon != nil && (*lon < -180 || *lon > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	WorkDate     string  `json:"work_date"`
	State        string  `json:"state"`
	LoginTime    *string `json:"login_time"`
	LogoutTime   *string `json:"logout_time"`
	EmployeeName *string `json:"employee_name,omitempty"`
}

type TodayResponse struct {
	WorkDate   string  `json:"work_date"`
	State      string  `json:"state"`
	LoginTime  *string `json:"login_time"`
	LogoutTime *string `json:"logout_time"`
}
