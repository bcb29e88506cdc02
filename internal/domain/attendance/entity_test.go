package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	login := time.Date(2025, 9, 15, 9, 2, 0, 0, time.UTC)
	logout := time.Date(2025, 9, 15, 18, 1, 0, 0, time.UTC)

	cases := []struct {
		name   string
		record *Attendance
		want   StateKind
	}{
		{"no record", nil, StateAbsent},
		{"record without login", &Attendance{}, StateAbsent},
		{"open session", &Attendance{LoginTime: &login}, StateCheckedIn},
		{"closed session", &Attendance{LoginTime: &login, LogoutTime: &logout}, StateCheckedOut},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			state := StateOf(c.record)
			assert.Equal(t, c.want, state.Kind)

			switch c.want {
			case StateAbsent:
				assert.Nil(t, state.Since)
				assert.Nil(t, state.Until)
			case StateCheckedIn:
				assert.Equal(t, &login, state.Since)
				assert.Nil(t, state.Until)
			case StateCheckedOut:
				assert.Equal(t, &login, state.Since)
				assert.Equal(t, &logout, state.Until)
			}
		})
	}
}

func TestDayState_TransitionGuards(t *testing.T) {
	login := time.Date(2025, 9, 15, 9, 2, 0, 0, time.UTC)
	logout := time.Date(2025, 9, 15, 18, 1, 0, 0, time.UTC)

	absent := StateOf(nil)
	checkedIn := StateOf(&Attendance{LoginTime: &login})
	checkedOut := StateOf(&Attendance{LoginTime: &login, LogoutTime: &logout})

	// Absent allows only check-in.
	assert.True(t, absent.CanCheckIn())
	assert.False(t, absent.CanCheckOut(), "check-out without a same-day login must be rejected")

	// CheckedIn allows only check-out.
	assert.False(t, checkedIn.CanCheckIn())
	assert.True(t, checkedIn.CanCheckOut())

	// CheckedOut is terminal for the day.
	assert.False(t, checkedOut.CanCheckIn())
	assert.False(t, checkedOut.CanCheckOut())
}

func TestStateKind_String(t *testing.T) {
	assert.Equal(t, "absent", StateAbsent.String())
	assert.Equal(t, "checked_in", StateCheckedIn.String())
	assert.Equal(t, "checked_out", StateCheckedOut.String())
}
