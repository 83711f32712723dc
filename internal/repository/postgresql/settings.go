package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/settings"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.Repository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements settings.Repository. The table holds a single row with
// a fixed id; times are stored as seconds since midnight.
func (s *settingsRepositoryImpl) Get(ctx context.Context) (settings.OfficeHours, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT start_time, end_time, on_time_limit_minutes, updated_at
		FROM office_settings
		WHERE id = 1
	`

	var hours settings.OfficeHours
	err := q.QueryRow(ctx, query).Scan(
		&hours.StartTime, &hours.EndTime, &hours.OnTimeLimitMinutes, &hours.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return settings.OfficeHours{}, settings.ErrSettingsNotFound
	}
	if err != nil {
		return settings.OfficeHours{}, fmt.Errorf("failed to get office settings: %w", err)
	}
	return hours, nil
}

// Update implements settings.Repository.
func (s *settingsRepositoryImpl) Update(ctx context.Context, hours settings.OfficeHours) error {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO office_settings (id, start_time, end_time, on_time_limit_minutes, updated_at)
		VALUES (1, $1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE
		SET start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			on_time_limit_minutes = EXCLUDED.on_time_limit_minutes,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, hours.StartTime, hours.EndTime, hours.OnTimeLimitMinutes); err != nil {
		return fmt.Errorf("failed to update office settings: %w", err)
	}
	return nil
}
