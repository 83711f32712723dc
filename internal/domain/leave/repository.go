package leave

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, leave Leave) (Leave, error)
	Delete(ctx context.Context, id string) error
	ListForMonth(ctx context.Context, year int, month time.Month) ([]Leave, error)
	ListForYear(ctx context.Context, year int) ([]Leave, error)
	ListForEmployee(ctx context.Context, employeeID string, year *int) ([]Leave, error)

	// ApprovedOnDate counts distinct employees with an approved leave on
	// the date; the kiosk landing stats use it.
	ApprovedOnDate(ctx context.Context, date time.Time) (int, error)
}
