package auth

import "context"

// Admin is the single kiosk administrator account.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
}

type Repository interface {
	// GetByUsername returns ErrAdminNotFound when no such admin exists.
	GetByUsername(ctx context.Context, username string) (Admin, error)
	Update(ctx context.Context, admin Admin) error
}
