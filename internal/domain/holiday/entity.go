package holiday

import (
	"time"
)

// Holiday is an organization-wide paid non-working day. A holiday is always
// paid regardless of presence; payroll gives it precedence over both
// attendance and leave on the same date.
type Holiday struct {
	ID   string
	Date time.Time
	Name string

	CreatedAt time.Time
}
