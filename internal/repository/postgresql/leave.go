package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/leave"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `id, employee_id, date, type, reason, status, created_at`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Date, &l.Type, &l.Reason,
		&l.Status, &l.CreatedAt,
	)
	return l, err
}

// Create implements leave.Repository. The uniqueness check and the
// insert share one transaction.
func (r *leaveRepositoryImpl) Create(ctx context.Context, record leave.Leave) (leave.Leave, error) {
	var created leave.Leave
	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		var exists bool
		err := q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM leaves WHERE employee_id = $1 AND date = $2)`,
			record.EmployeeID, record.Date,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check leave: %w", err)
		}
		if exists {
			return leave.ErrLeaveExists
		}

		query := `
			INSERT INTO leaves (id, employee_id, date, type, reason, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING ` + leaveColumns

		created, err = scanLeave(q.QueryRow(ctx, query,
			record.ID, record.EmployeeID, record.Date, record.Type,
			record.Reason, record.Status,
		))
		if err != nil {
			return fmt.Errorf("failed to create leave: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.Leave{}, err
	}
	return created, nil
}

// Delete implements leave.Repository.
func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

// ListForMonth implements leave.Repository.
func (r *leaveRepositoryImpl) ListForMonth(ctx context.Context, year int, month time.Month) ([]leave.Leave, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE date >= $1 AND date < $2
		ORDER BY date
	`
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return r.list(ctx, query, from, from.AddDate(0, 1, 0))
}

// ListForYear implements leave.Repository.
func (r *leaveRepositoryImpl) ListForYear(ctx context.Context, year int) ([]leave.Leave, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date
	`
	return r.list(ctx, query, year)
}

// ListForEmployee implements leave.Repository.
func (r *leaveRepositoryImpl) ListForEmployee(ctx context.Context, employeeID string, year *int) ([]leave.Leave, error) {
	if year != nil {
		query := `
			SELECT ` + leaveColumns + `
			FROM leaves
			WHERE employee_id = $1 AND EXTRACT(YEAR FROM date) = $2
			ORDER BY date
		`
		return r.list(ctx, query, employeeID, *year)
	}

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE employee_id = $1
		ORDER BY date
	`
	return r.list(ctx, query, employeeID)
}

// ApprovedOnDate implements leave.Repository.
func (r *leaveRepositoryImpl) ApprovedOnDate(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(DISTINCT employee_id) FROM leaves WHERE date = $1 AND status = $2`,
		day, leave.StatusApproved,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count approved leaves: %w", err)
	}
	return count, nil
}

func (r *leaveRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		record, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, record)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return leaves, nil
}
