package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/attendance"
	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/settings"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

const punchColumns = `id, employee_id, date, clock_in, clock_out, created_at, updated_at`

func scanPunch(row pgx.Row) (attendance.Punch, error) {
	var p attendance.Punch
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Date, &p.ClockIn, &p.ClockOut,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements attendance.Repository. A second punch-in on the same
// day returns the existing row untouched; ON CONFLICT DO UPDATE with a
// no-op assignment makes RETURNING yield the stored row.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, punch attendance.Punch) (attendance.Punch, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_punches (id, employee_id, date, clock_in)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, date) DO UPDATE SET employee_id = EXCLUDED.employee_id
		RETURNING ` + punchColumns

	created, err := scanPunch(q.QueryRow(ctx, query,
		punch.ID, punch.EmployeeID, punch.Date, punch.ClockIn,
	))
	if err != nil {
		return attendance.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}
	return created, nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (a *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Punch, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + punchColumns + `
		FROM attendance_punches
		WHERE employee_id = $1 AND date = $2
	`

	punch, err := scanPunch(q.QueryRow(ctx, query, employeeID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get punch: %w", err)
	}
	return &punch, nil
}

// SetClockOut implements attendance.Repository. The read and the update
// share one transaction.
func (a *attendanceRepositoryImpl) SetClockOut(ctx context.Context, employeeID string, date time.Time, at time.Time) error {
	return WithTransaction(ctx, a.db, func(ctx context.Context) error {
		punch, err := a.GetByEmployeeAndDate(ctx, employeeID, date)
		if err != nil {
			return err
		}
		if punch == nil {
			return attendance.ErrNotPunchedIn
		}
		if punch.ClockOut != nil {
			return attendance.ErrAlreadyPunchedOut
		}

		query := `
			UPDATE attendance_punches
			SET clock_out = $3, updated_at = NOW()
			WHERE employee_id = $1 AND date = $2 AND clock_out IS NULL
		`

		q := GetQuerier(ctx, a.db)
		tag, err := q.Exec(ctx, query, employeeID, date, at)
		if err != nil {
			return fmt.Errorf("failed to set clock out: %w", err)
		}
		if tag.RowsAffected() == 0 {
			// Lost a race with a concurrent punch-out.
			return attendance.ErrAlreadyPunchedOut
		}
		return nil
	})
}

// ListForMonth implements attendance.Repository.
func (a *attendanceRepositoryImpl) ListForMonth(ctx context.Context, year int, month time.Month) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + punchColumns + `
		FROM attendance_punches
		WHERE date >= $1 AND date < $2
		ORDER BY date, employee_id
	`

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var punches []attendance.Punch
	for rows.Next() {
		punch, err := scanPunch(rows)
		if err != nil {
			return nil, err
		}
		punches = append(punches, punch)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return punches, nil
}

// CloseOpenPunchesBefore implements attendance.Repository.
func (a *attendanceRepositoryImpl) CloseOpenPunchesBefore(ctx context.Context, before time.Time, endOfDay settings.TimeOfDay) (int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_punches
		SET clock_out = date + ($2 * INTERVAL '1 second'), updated_at = NOW()
		WHERE date < $1 AND clock_in IS NOT NULL AND clock_out IS NULL
	`

	day := time.Date(before.Year(), before.Month(), before.Day(), 0, 0, 0, 0, time.UTC)

	tag, err := q.Exec(ctx, query, day, int(endOfDay))
	if err != nil {
		return 0, fmt.Errorf("failed to close stale punches: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ListForDate implements attendance.Repository.
func (a *attendanceRepositoryImpl) ListForDate(ctx context.Context, date time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + punchColumns + `
		FROM attendance_punches
		WHERE date = $1
		ORDER BY clock_in DESC NULLS LAST
	`

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	rows, err := q.Query(ctx, query, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var punches []attendance.Punch
	for rows.Next() {
		punch, err := scanPunch(rows)
		if err != nil {
			return nil, err
		}
		punches = append(punches, punch)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return punches, nil
}
