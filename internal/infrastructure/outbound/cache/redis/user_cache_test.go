package redis_test

import (
	"context"
	"testing"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	"microblog-service/internal/infrastructure/logger"
	"microblog-service/internal/infrastructure/outbound/cache/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestClient(t)
	users := redis.NewUserCache(client, logger.New("test"))

	alice := &model.User{ID: 1, Username: "Alice", Email: "alice@example.com", AboutMe: "hi"}
	require.NoError(t, users.SetUser(ctx, alice))

	assert.True(t, mr.Exists("user:1"))
	assert.True(t, mr.Exists("user:name:Alice"))
	assert.Positive(t, mr.TTL("user:1"))
	assert.Positive(t, mr.TTL("user:name:Alice"))

	byID, err := users.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.Username)
	assert.Equal(t, "hi", byID.AboutMe)

	byName, err := users.GetUserByUsername(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), byName.ID)
}

func TestUserCache_UsernamesAreCaseSensitive(t *testing.T) {
	ctx := context.Background()
	_, client := newTestClient(t)
	users := redis.NewUserCache(client, logger.New("test"))

	require.NoError(t, users.SetUser(ctx, &model.User{ID: 1, Username: "Alice"}))
	require.NoError(t, users.SetUser(ctx, &model.User{ID: 2, Username: "alice"}))

	for name, wantID := range map[string]int64{"Alice": 1, "alice": 2} {
		got, err := users.GetUserByUsername(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, wantID, got.ID, name)
	}

	_, err := users.GetUserByUsername(ctx, "ALICE")
	assert.ErrorIs(t, err, custom_errors.ErrCacheMiss)
}

func TestUserCache_DeleteUser(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestClient(t)
	users := redis.NewUserCache(client, logger.New("test"))

	alice := &model.User{ID: 1, Username: "Alice"}
	require.NoError(t, users.SetUser(ctx, alice))
	require.NoError(t, users.DeleteUser(ctx, alice))

	assert.False(t, mr.Exists("user:1"))
	assert.False(t, mr.Exists("user:name:Alice"))

	_, err := users.GetUser(ctx, 1)
	assert.ErrorIs(t, err, custom_errors.ErrCacheMiss)
	_, err = users.GetUserByUsername(ctx, "Alice")
	assert.ErrorIs(t, err, custom_errors.ErrCacheMiss)

	assert.NoError(t, users.DeleteUser(ctx, nil))
}

func TestUserCache_SetNil(t *testing.T) {
	_, client := newTestClient(t)
	users := redis.NewUserCache(client, logger.New("test"))

	assert.Error(t, users.SetUser(context.Background(), nil))
}
