package holiday

import (
	"context"
	"time"
)

// HolidayRepository - interface for holidays table
type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Holiday, error)

	// GetDates returns the holiday dates in [from, to].
	GetDates(ctx context.Context, from, to time.Time) ([]time.Time, error)
}
