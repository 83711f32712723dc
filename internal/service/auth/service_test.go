package auth

import (
	"context"
	"testing"

	"github.com/Chris-debuggs/AttendenceSystem/internal/domain/auth"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memAdminRepo struct {
	admin auth.Admin
}

func (r *memAdminRepo) GetByUsername(ctx context.Context, username string) (auth.Admin, error) {
	if r.admin.Username != username {
		return auth.Admin{}, auth.ErrAdminNotFound
	}
	return r.admin, nil
}

func (r *memAdminRepo) Update(ctx context.Context, admin auth.Admin) error {
	r.admin = admin
	return nil
}

func newTestService(t *testing.T, password string) (auth.Service, *memAdminRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &memAdminRepo{admin: auth.Admin{
		ID:           "admin-1",
		Username:     "admin",
		PasswordHash: string(hash),
	}}
	return NewAuthService(repo, jwt.NewJWTService("test-secret-key", "1h")), repo
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestService(t, "correct horse battery")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Positive(t, resp.ExpiresAt)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t, "correct horse battery")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	svc, _ := newTestService(t, "correct horse battery")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "nobody",
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials,
		"unknown usernames must look like bad passwords")
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := newTestService(t, "correct horse battery")

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}

func TestUpdateCredentials_RotatesPassword(t *testing.T) {
	svc, repo := newTestService(t, "old password 1")

	newPassword := "new password 22"
	err := svc.UpdateCredentials(context.Background(), auth.UpdateCredentialsRequest{
		CurrentUsername: "admin",
		CurrentPassword: "old password 1",
		NewPassword:     &newPassword,
	})
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.admin.PasswordHash), []byte(newPassword)))

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "old password 1",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestUpdateCredentials_RotatesUsername(t *testing.T) {
	svc, repo := newTestService(t, "old password 1")

	newUsername := "superadmin"
	err := svc.UpdateCredentials(context.Background(), auth.UpdateCredentialsRequest{
		CurrentUsername: "admin",
		CurrentPassword: "old password 1",
		NewUsername:     &newUsername,
	})
	require.NoError(t, err)
	assert.Equal(t, "superadmin", repo.admin.Username)
}

func TestUpdateCredentials_WrongCurrentPassword(t *testing.T) {
	svc, _ := newTestService(t, "old password 1")

	newPassword := "new password 22"
	err := svc.UpdateCredentials(context.Background(), auth.UpdateCredentialsRequest{
		CurrentUsername: "admin",
		CurrentPassword: "wrong",
		NewPassword:     &newPassword,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestUpdateCredentials_ShortPasswordRejected(t *testing.T) {
	svc, _ := newTestService(t, "old password 1")

	short := "short"
	err := svc.UpdateCredentials(context.Background(), auth.UpdateCredentialsRequest{
		CurrentUsername: "admin",
		CurrentPassword: "old password 1",
		NewPassword:     &short,
	})
	assert.Error(t, err)
}
