package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/auth"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type adminRepositoryImpl struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) auth.Repository {
	return &adminRepositoryImpl{db: db}
}

// GetByUsername implements auth.Repository.
func (a *adminRepositoryImpl) GetByUsername(ctx context.Context, username string) (auth.Admin, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT id, username, password_hash FROM admins WHERE username = $1`

	var admin auth.Admin
	err := q.QueryRow(ctx, query, username).Scan(&admin.ID, &admin.Username, &admin.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return auth.Admin{}, auth.ErrAdminNotFound
	}
	if err != nil {
		return auth.Admin{}, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}

// Update implements auth.Repository.
func (a *adminRepositoryImpl) Update(ctx context.Context, admin auth.Admin) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE admins
		SET username = $2, password_hash = $3
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, admin.ID, admin.Username, admin.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrAdminNotFound
	}
	return nil
}
