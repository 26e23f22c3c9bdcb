package service_test

import (
	"context"
	"testing"
	"time"

	"hospital-admin-api/internal/service"
	"hospital-admin-api/internal/testutil"
	"hospital-admin-api/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore(t *testing.T) {
	mr, client := testutil.NewRedis(t)
	store := service.NewTokenStore(client, testutil.NewLogger())
	ctx := context.Background()

	require.NoError(t, store.Store(ctx, jwt.AccessToken, 1, "a1", time.Minute))
	require.NoError(t, store.Store(ctx, jwt.RefreshToken, 1, "r1", time.Hour))
	require.NoError(t, store.Store(ctx, jwt.AccessToken, 2, "a2", time.Minute))

	assert.True(t, mr.Exists("access_token:1:a1"))
	assert.Equal(t, time.Minute, mr.TTL("access_token:1:a1"))

	ok, err := store.Exists(ctx, jwt.AccessToken, 1, "a1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Revoke(ctx, jwt.AccessToken, 1, "a1"))
	ok, err = store.Exists(ctx, jwt.AccessToken, 1, "a1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Revoke(ctx, jwt.AccessToken, 1, "unknown"))

	require.NoError(t, store.RevokeAll(ctx, 1))
	assert.False(t, mr.Exists("refresh_token:1:r1"))
	assert.True(t, mr.Exists("access_token:2:a2"))

	mr.FastForward(2 * time.Minute)
	ok, err = store.Exists(ctx, jwt.AccessToken, 2, "a2")
	require.NoError(t, err)
	assert.False(t, ok)
}
