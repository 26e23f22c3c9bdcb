package usecase_test

import (
	"context"
	"strconv"
	"testing"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/delivery/http/middleware"
	"hospital-admin-api/internal/domain/entity"
	"hospital-admin-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, f *fixture, email string) *dto.UserResponse {
	t.Helper()
	user, err := f.auth.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Operator",
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := register(t, f, "ops@hospital.com")
	assert.NotZero(t, user.ID)

	_, err := f.auth.Register(ctx, &dto.RegisterRequest{Name: "Dup", Email: "ops@hospital.com", Password: "secret123"})
	assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "ops@hospital.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "nobody@hospital.com", Password: "secret123"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	login, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "ops@hospital.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", login.TokenType)
	assert.Equal(t, user.ID, login.User.ID)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)

	claims, err := f.jwt.ValidateToken(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.True(t, f.redis.Exists("access_token:"+uintString(user.ID)+":"+claims.TokenID))

	logs, err := f.auditLogs.GetAllAuditLogs(ctx, &dto.AuditLogQuery{UserID: &user.ID})
	require.NoError(t, err)
	actions := make([]string, 0, len(logs.Logs))
	for _, l := range logs.Logs {
		actions = append(actions, l.Action)
	}
	assert.ElementsMatch(t, []string{entity.AuditActionUserRegister, entity.AuditActionUserLogin}, actions)
}

func TestRefreshTokenRotates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	register(t, f, "ops@hospital.com")

	login, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "ops@hospital.com", Password: "secret123"})
	require.NoError(t, err)

	rotated, err := f.auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, rotated.RefreshToken)

	_, err = f.auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, usecase.ErrTokenRevoked)

	_, err = f.auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, usecase.ErrInvalidToken)

	_, err = f.auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, usecase.ErrInvalidToken)
}

func TestLogoutRevokesTokens(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := register(t, f, "ops@hospital.com")

	login, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "ops@hospital.com", Password: "secret123"})
	require.NoError(t, err)
	access, err := f.jwt.ValidateToken(login.AccessToken)
	require.NoError(t, err)

	require.NoError(t, f.auth.Logout(ctx, user.ID, access.TokenID, login.RefreshToken))

	assert.False(t, f.redis.Exists("access_token:"+uintString(user.ID)+":"+access.TokenID))
	_, err = f.auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, usecase.ErrTokenRevoked)
}

func TestUserLifecycle(t *testing.T) {
	f := newFixture(t)
	admin := register(t, f, "admin@hospital.com")
	other := register(t, f, "other@hospital.com")
	ctx := middleware.WithIdentity(context.Background(), admin.ID, "tid")

	users, err := f.users.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = f.users.UpdateUser(ctx, other.ID, &dto.UpdateUserRequest{Email: strPtr(admin.Email)})
	assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)

	updated, err := f.users.UpdateUser(ctx, other.ID, &dto.UpdateUserRequest{
		Email:    strPtr(other.Email),
		Name:     strPtr("Renamed"),
		Password: strPtr("brand-new-pass"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: other.Email, Password: "secret123"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	login, err := f.auth.Login(ctx, &dto.LoginRequest{Email: other.Email, Password: "brand-new-pass"})
	require.NoError(t, err)

	require.NoError(t, f.users.DeleteUser(ctx, other.ID))

	_, err = f.users.GetUser(ctx, other.ID)
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	assert.ErrorIs(t, f.users.DeleteUser(ctx, other.ID), usecase.ErrUserNotFound)

	// Deleting a user revokes every token it held
	_, err = f.auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, usecase.ErrTokenRevoked)
	for _, key := range f.redis.Keys() {
		assert.NotContains(t, key, ":"+uintString(other.ID)+":")
	}

	logs, err := f.auditLogs.GetAllAuditLogs(ctx, &dto.AuditLogQuery{Action: entity.AuditActionUserDelete})
	require.NoError(t, err)
	require.Equal(t, int64(1), logs.Total)
	require.NotNil(t, logs.Logs[0].UserID)
	assert.Equal(t, admin.ID, *logs.Logs[0].UserID)
}

func uintString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
