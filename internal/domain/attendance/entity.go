package attendance

import (
	"time"
)

// Attendance is one employee's record for one work day. The pair
// (EmployeeID, WorkDate) is unique; the storage layer enforces it with a
// unique constraint so two devices racing a check-in cannot both insert.
type Attendance struct {
	ID         string
	EmployeeID string
	// WorkDate is the calendar day in the organizational time zone.
	WorkDate time.Time
	// LoginTime and LogoutTime are absolute instants (stored UTC).
	LoginTime  *time.Time
	LogoutTime *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// StateKind enumerates the per-day attendance states.
type StateKind int

const (
	StateAbsent StateKind = iota
	StateCheckedIn
	StateCheckedOut
)

func (k StateKind) String() string {
	switch k {
	case StateCheckedIn:
		return "checked_in"
	case StateCheckedOut:
		return "checked_out"
	default:
		return "absent"
	}
}

// DayState is the explicit tagged day state derived from the record's two
// optional timestamps: Absent (no record), CheckedIn{Since}, or
// CheckedOut{Since, Until}.
type DayState struct {
	Kind  StateKind
	Since *time.Time
	Until *time.Time
}

// StateOf derives the day state. A nil record means no check-in happened.
func StateOf(a *Attendance) DayState {
	switch {
	case a == nil || a.LoginTime == nil:
		return DayState{Kind: StateAbsent}
	case a.LogoutTime == nil:
		return DayState{Kind: StateCheckedIn, Since: a.LoginTime}
	default:
		return DayState{Kind: StateCheckedOut, Since: a.LoginTime, Until: a.LogoutTime}
	}
}

// CanCheckIn reports whether the check-in transition is allowed from this
// state.
func (s DayState) CanCheckIn() bool {
	return s.Kind == StateAbsent
}

// CanCheckOut reports whether the check-out transition is allowed from this
// state. Checked-out is terminal for the day.
func (s DayState) CanCheckOut() bool {
	return s.Kind == StateCheckedIn
}
