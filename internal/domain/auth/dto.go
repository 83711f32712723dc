package auth

import (
	"context"

	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

type UpdateCredentialsRequest struct {
	CurrentUsername string  `json:"current_username"`
	CurrentPassword string  `json:"current_password"`
	NewUsername     *string `json:"new_username,omitempty"`
	NewPassword     *string `json:"new_password,omitempty"`
}

func (r *UpdateCredentialsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentUsername) {
		errs = append(errs, validator.ValidationError{
			Field:   "current_username",
			Message: "current_username is required",
		})
	}
	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "current_password",
			Message: "current_password is required",
		})
	}
	if r.NewUsername == nil && r.NewPassword == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "new_username",
			Message: "nothing to update",
		})
	}
	if r.NewPassword != nil && len(*r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	UpdateCredentials(ctx context.Context, req UpdateCredentialsRequest) error
}
