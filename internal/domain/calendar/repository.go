package calendar

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error

	// ListForYear returns non-recurring holidays of the exact year plus
	// every recurring holiday.
	ListForYear(ctx context.Context, year int) ([]Holiday, error)

	// ListForMonth returns non-recurring holidays inside the month plus
	// recurring holidays whose stored month matches, from any year.
	ListForMonth(ctx context.Context, year int, month time.Month) ([]Holiday, error)
}

type WorkingDayRepository interface {
	Create(ctx context.Context, workingDay WorkingDay) (WorkingDay, error)
	Delete(ctx context.Context, id string) error
	ListForYear(ctx context.Context, year int) ([]WorkingDay, error)
	ListForMonth(ctx context.Context, year int, month time.Month) ([]WorkingDay, error)
}
