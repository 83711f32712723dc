package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/calendar"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workingDayRepositoryImpl struct {
	db *database.DB
}

func NewWorkingDayRepository(db *database.DB) calendar.WorkingDayRepository {
	return &workingDayRepositoryImpl{db: db}
}

const workingDayColumns = `id, date, name, description, created_at`

func scanWorkingDay(row pgx.Row) (calendar.WorkingDay, error) {
	var wd calendar.WorkingDay
	err := row.Scan(&wd.ID, &wd.Date, &wd.Name, &wd.Description, &wd.CreatedAt)
	return wd, err
}

// Create implements calendar.WorkingDayRepository. The uniqueness check
// and the insert share one transaction.
func (w *workingDayRepositoryImpl) Create(ctx context.Context, workingDay calendar.WorkingDay) (calendar.WorkingDay, error) {
	var created calendar.WorkingDay
	err := WithTransaction(ctx, w.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, w.db)

		var exists bool
		err := q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM working_days WHERE date = $1)`,
			workingDay.Date,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check working day date: %w", err)
		}
		if exists {
			return calendar.ErrWorkingDayExists
		}

		query := `
			INSERT INTO working_days (id, date, name, description)
			VALUES ($1, $2, $3, $4)
			RETURNING ` + workingDayColumns

		created, err = scanWorkingDay(q.QueryRow(ctx, query,
			workingDay.ID, workingDay.Date, workingDay.Name, workingDay.Description,
		))
		if err != nil {
			return fmt.Errorf("failed to create working day: %w", err)
		}
		return nil
	})
	if err != nil {
		return calendar.WorkingDay{}, err
	}
	return created, nil
}

// Delete implements calendar.WorkingDayRepository.
func (w *workingDayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, w.db)

	tag, err := q.Exec(ctx, `DELETE FROM working_days WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete working day %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrWorkingDayNotFound
	}
	return nil
}

// ListForYear implements calendar.WorkingDayRepository.
func (w *workingDayRepositoryImpl) ListForYear(ctx context.Context, year int) ([]calendar.WorkingDay, error) {
	query := `
		SELECT ` + workingDayColumns + `
		FROM working_days
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date
	`
	return w.list(ctx, query, year)
}

// ListForMonth implements calendar.WorkingDayRepository.
func (w *workingDayRepositoryImpl) ListForMonth(ctx context.Context, year int, month time.Month) ([]calendar.WorkingDay, error) {
	query := `
		SELECT ` + workingDayColumns + `
		FROM working_days
		WHERE EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2
		ORDER BY date
	`
	return w.list(ctx, query, year, int(month))
}

func (w *workingDayRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]calendar.WorkingDay, error) {
	q := GetQuerier(ctx, w.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workingDays []calendar.WorkingDay
	for rows.Next() {
		workingDay, err := scanWorkingDay(rows)
		if err != nil {
			return nil, err
		}
		workingDays = append(workingDays, workingDay)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return workingDays, nil
}
