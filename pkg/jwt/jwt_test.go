package jwt

import (
	"testing"
	"time"

	"hospital-admin-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string, access time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  access,
		RefreshExpiry: time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService("secret", time.Minute)

	token, tokenID, err := svc.GenerateAccessToken(42, "admin@hospital.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin@hospital.com", claims.Email)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	svc := newTestService("secret", time.Minute)

	token, _, err := svc.GenerateRefreshToken(7, "ops@hospital.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, _, err := newTestService("one", time.Minute).GenerateAccessToken(1, "a@x.com")
	require.NoError(t, err)

	_, err = newTestService("two", time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newTestService("secret", -time.Minute)

	token, _, err := svc.GenerateAccessToken(1, "a@x.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := newTestService("secret", time.Minute).ValidateToken("not-a-token")
	assert.Error(t, err)
}
