package redis_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"microblog-service/internal/custom_errors"
	"microblog-service/internal/infrastructure/config"
	"microblog-service/internal/infrastructure/logger"
	"microblog-service/internal/infrastructure/outbound/cache/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, redis.NewClientFrom(rdb, logger.New("test"))
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestClient_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestClient(t)

	require.NoError(t, client.Set(ctx, "k", payload{Name: "a", Count: 2}, time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("k"))

	var got payload
	require.NoError(t, client.Get(ctx, "k", &got))
	assert.Equal(t, payload{Name: "a", Count: 2}, got)

	require.NoError(t, client.Delete(ctx, "k"))
	assert.False(t, mr.Exists("k"))
	assert.ErrorIs(t, client.Get(ctx, "k", &got), custom_errors.ErrCacheMiss)
}

func TestClient_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		setup     func(mr *miniredis.Miniredis)
		wantMiss  bool
		wantError bool
	}{
		{
			name:     "missing key",
			setup:    func(mr *miniredis.Miniredis) {},
			wantMiss: true,
		},
		{
			name: "expired key",
			setup: func(mr *miniredis.Miniredis) {
				require.NoError(t, mr.Set("k", `{"name":"a"}`))
				mr.SetTTL("k", time.Second)
				mr.FastForward(2 * time.Second)
			},
			wantMiss: true,
		},
		{
			name: "corrupt value",
			setup: func(mr *miniredis.Miniredis) {
				require.NoError(t, mr.Set("k", "not json"))
			},
			wantError: true,
		},
		{
			name:      "server down",
			setup:     func(mr *miniredis.Miniredis) { mr.Close() },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mr, client := newTestClient(t)
			tt.setup(mr)

			var got payload
			err := client.Get(ctx, "k", &got)
			require.Error(t, err)
			if tt.wantMiss {
				assert.ErrorIs(t, err, custom_errors.ErrCacheMiss)
			}
			if tt.wantError {
				assert.NotErrorIs(t, err, custom_errors.ErrCacheMiss)
			}
		})
	}
}

func TestClient_DeleteWithoutKeys(t *testing.T) {
	mr, client := newTestClient(t)
	mr.Close()

	assert.NoError(t, client.Delete(context.Background()))
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := redis.NewClient(config.Redis{Address: mr.Host(), Port: port, PoolSize: 2}, logger.New("test"))
	require.NoError(t, err)

	assert.NoError(t, client.Ping(context.Background()))
	assert.NoError(t, client.Close())
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	mr.Close()

	_, err = redis.NewClient(config.Redis{Address: mr.Host(), Port: port}, logger.New("test"))
	assert.Error(t, err)
}
