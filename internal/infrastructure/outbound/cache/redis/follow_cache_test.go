package redis_test

import (
	"context"
	"testing"

	"microblog-service/internal/custom_errors"
	"microblog-service/internal/domain/ports/output/cache"
	"microblog-service/internal/infrastructure/logger"
	"microblog-service/internal/infrastructure/outbound/cache/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowCache(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestClient(t)
	follows := redis.NewFollowCache(client, logger.New("test"))

	_, err := follows.GetCounts(ctx, 1)
	assert.ErrorIs(t, err, custom_errors.ErrCacheMiss)

	require.NoError(t, follows.SetCounts(ctx, 1, &cache.FollowCounts{Followers: 3, Following: 2}))
	require.NoError(t, follows.SetCounts(ctx, 2, &cache.FollowCounts{Followers: 1}))
	assert.Positive(t, mr.TTL("follow_counts:1"))

	got, err := follows.GetCounts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &cache.FollowCounts{Followers: 3, Following: 2}, got)

	require.NoError(t, follows.DeleteCounts(ctx, 1, 2))
	assert.False(t, mr.Exists("follow_counts:1"))
	assert.False(t, mr.Exists("follow_counts:2"))

	assert.NoError(t, follows.DeleteCounts(ctx))
	assert.Error(t, follows.SetCounts(ctx, 1, nil))
}
