package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/calendar"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

const holidayColumns = `id, date, name, description, type, is_recurring, created_at`

func scanHoliday(row pgx.Row) (calendar.Holiday, error) {
	var h calendar.Holiday
	err := row.Scan(
		&h.ID, &h.Date, &h.Name, &h.Description, &h.Type,
		&h.IsRecurring, &h.CreatedAt,
	)
	return h, err
}

// Create implements calendar.HolidayRepository. A date conflicts with an
// exact match, with any stored recurring holiday on the same month and
// day, and, for a recurring entry, with any stored holiday on that month
// and day in any year. The check and the insert share one transaction.
func (h *holidayRepositoryImpl) Create(ctx context.Context, holiday calendar.Holiday) (calendar.Holiday, error) {
	var created calendar.Holiday
	err := WithTransaction(ctx, h.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, h.db)

		var exists bool
		err := q.QueryRow(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM holidays
				WHERE EXTRACT(MONTH FROM date) = EXTRACT(MONTH FROM $1::date)
				  AND EXTRACT(DAY FROM date) = EXTRACT(DAY FROM $1::date)
				  AND (date = $1 OR is_recurring OR $2)
			)`,
			holiday.Date, holiday.IsRecurring,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check holiday date: %w", err)
		}
		if exists {
			return calendar.ErrHolidayExists
		}

		query := `
			INSERT INTO holidays (id, date, name, description, type, is_recurring)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING ` + holidayColumns

		created, err = scanHoliday(q.QueryRow(ctx, query,
			holiday.ID, holiday.Date, holiday.Name, holiday.Description,
			holiday.Type, holiday.IsRecurring,
		))
		if err != nil {
			return fmt.Errorf("failed to create holiday: %w", err)
		}
		return nil
	})
	if err != nil {
		return calendar.Holiday{}, err
	}
	return created, nil
}

// Delete implements calendar.HolidayRepository.
func (h *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, h.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrHolidayNotFound
	}
	return nil
}

// ListForYear implements calendar.HolidayRepository.
func (h *holidayRepositoryImpl) ListForYear(ctx context.Context, year int) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1 OR is_recurring
		ORDER BY date
	`

	return h.list(ctx, q, query, year)
}

// ListForMonth implements calendar.HolidayRepository.
func (h *holidayRepositoryImpl) ListForMonth(ctx context.Context, year int, month time.Month) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM holidays
		WHERE EXTRACT(MONTH FROM date) = $2
		  AND (EXTRACT(YEAR FROM date) = $1 OR is_recurring)
		ORDER BY date
	`

	return h.list(ctx, q, query, year, int(month))
}

func (h *holidayRepositoryImpl) list(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]calendar.Holiday, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		holiday, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, holiday)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return holidays, nil
}
