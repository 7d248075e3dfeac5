package service

import (
	"context"
	"testing"
	"time"

	"globex-logistics/internal/core/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T, ttl time.Duration) (*SessionServiceImpl, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	redisCache, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { redisCache.Close() })

	return NewSessionService("hunter2", ttl, redisCache), mr
}

func TestSessionService_LoginLogout(t *testing.T) {
	svc, _ := newTestSessionService(t, time.Hour)
	ctx := context.Background()

	token, err := svc.Login(ctx, "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, svc.Validate(ctx, token))

	require.NoError(t, svc.Logout(ctx, token))
	assert.False(t, svc.Validate(ctx, token))
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestSessionService(t, time.Hour)

	_, err := svc.Login(context.Background(), "letmein")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestSessionService_Validate_UnknownToken(t *testing.T) {
	svc, _ := newTestSessionService(t, time.Hour)

	assert.False(t, svc.Validate(context.Background(), "not-a-session"))
	assert.False(t, svc.Validate(context.Background(), ""))
}

func TestSessionService_Validate_ExpiredToken(t *testing.T) {
	svc, mr := newTestSessionService(t, time.Minute)
	ctx := context.Background()

	token, err := svc.Login(ctx, "hunter2")
	require.NoError(t, err)
	require.True(t, svc.Validate(ctx, token))

	mr.FastForward(2 * time.Minute)

	assert.False(t, svc.Validate(ctx, token))
}

func TestSessionService_TokensAreDistinct(t *testing.T) {
	svc, _ := newTestSessionService(t, time.Hour)
	ctx := context.Background()

	first, err := svc.Login(ctx, "hunter2")
	require.NoError(t, err)
	second, err := svc.Login(ctx, "hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// Logging out one session leaves the other alive.
	require.NoError(t, svc.Logout(ctx, first))
	assert.False(t, svc.Validate(ctx, first))
	assert.True(t, svc.Validate(ctx, second))
}
