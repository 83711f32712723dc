package attendance

import (
	"context"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/settings"
)

type Repository interface {
	// Create inserts a punch row. The (employee_id, date) pair is unique;
	// a conflicting insert returns the existing row unchanged so that
	// punch-in stays idempotent.
	Create(ctx context.Context, punch Punch) (Punch, error)

	// GetByEmployeeAndDate returns nil when no punch exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Punch, error)

	// SetClockOut closes the day's punch. Returns ErrNotPunchedIn when
	// there is no row and ErrAlreadyPunchedOut when clock_out is set.
	SetClockOut(ctx context.Context, employeeID string, date time.Time, at time.Time) error

	// ListForMonth returns every punch of the month keyed by scanning the
	// date column.
	ListForMonth(ctx context.Context, year int, month time.Month) ([]Punch, error)

	// ListForDate returns the day's punches newest first; the kiosk
	// landing stats read it.
	ListForDate(ctx context.Context, date time.Time) ([]Punch, error)

	// CloseOpenPunchesBefore sets clock_out on open punches from days
	// before the date, using the office end time on the punch's own day.
	// Returns the number of punches closed.
	CloseOpenPunchesBefore(ctx context.Context, before time.Time, endOfDay settings.TimeOfDay) (int, error)
}
