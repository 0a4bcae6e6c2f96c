package follow_service_test

import (
	"context"
	"errors"
	"testing"

	follow_service "microblog-service/internal/application/service/follow"
	"microblog-service/internal/custom_errors"
	follow_port "microblog-service/internal/domain/ports/input/follow"
	"microblog-service/internal/domain/ports/output/cache"
	"microblog-service/internal/infrastructure/logger"
	"microblog-service/internal/infrastructure/outbound/metrics/prometheus"
	cache_mock "microblog-service/mocks/cache"
	follow_mock "microblog-service/mocks/follow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDecorator(t *testing.T) (*follow_mock.Service, *cache_mock.FollowCache, follow_port.Service) {
	service := follow_mock.NewService(t)
	followCache := cache_mock.NewFollowCache(t)
	decorator := follow_service.NewFollowServiceCacheDecorator(service, followCache, logger.New("test"), prometheus.NewPrometheusMetricsProvider())
	return service, followCache, decorator
}

func TestFollowCacheDecorator_Counts(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		_, followCache, decorator := newDecorator(t)
		followCache.On("GetCounts", mock.Anything, int64(1)).Return(&cache.FollowCounts{Followers: 3, Following: 5}, nil)

		followers, err := decorator.FollowerCount(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 3, followers)

		following, err := decorator.FollowedCount(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 5, following)
	})

	t.Run("cache miss loads and stores both counts", func(t *testing.T) {
		service, followCache, decorator := newDecorator(t)
		followCache.On("GetCounts", mock.Anything, int64(1)).Return(nil, custom_errors.ErrCacheMiss)
		service.On("FollowerCount", mock.Anything, int64(1)).Return(2, nil)
		service.On("FollowedCount", mock.Anything, int64(1)).Return(7, nil)
		followCache.On("SetCounts", mock.Anything, int64(1), &cache.FollowCounts{Followers: 2, Following: 7}).Return(nil)

		following, err := decorator.FollowedCount(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 7, following)
	})

	t.Run("cache failure falls through", func(t *testing.T) {
		service, followCache, decorator := newDecorator(t)
		followCache.On("GetCounts", mock.Anything, int64(1)).Return(nil, errors.New("redis down"))
		service.On("FollowerCount", mock.Anything, int64(1)).Return(1, nil)
		service.On("FollowedCount", mock.Anything, int64(1)).Return(0, nil)
		followCache.On("SetCounts", mock.Anything, int64(1), mock.Anything).Return(errors.New("redis down"))

		followers, err := decorator.FollowerCount(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, followers)
	})

	t.Run("service error", func(t *testing.T) {
		service, followCache, decorator := newDecorator(t)
		followCache.On("GetCounts", mock.Anything, int64(1)).Return(nil, custom_errors.ErrCacheMiss)
		service.On("FollowerCount", mock.Anything, int64(1)).Return(0, custom_errors.ErrDatabaseQuery)

		_, err := decorator.FollowerCount(ctx, 1)
		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	})
}

func TestFollowCacheDecorator_InvalidatesBothUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("follow", func(t *testing.T) {
		service, followCache, decorator := newDecorator(t)
		service.On("Follow", mock.Anything, int64(1), int64(2)).Return(nil)
		followCache.On("DeleteCounts", mock.Anything, int64(1), int64(2)).Return(nil)

		assert.NoError(t, decorator.Follow(ctx, 1, 2))
	})

	t.Run("unfollow with cache failure", func(t *testing.T) {
		service, followCache, decorator := newDecorator(t)
		service.On("Unfollow", mock.Anything, int64(1), int64(2)).Return(nil)
		followCache.On("DeleteCounts", mock.Anything, int64(1), int64(2)).Return(errors.New("redis down"))

		assert.NoError(t, decorator.Unfollow(ctx, 1, 2))
	})

	t.Run("failed follow leaves cache alone", func(t *testing.T) {
		service, _, decorator := newDecorator(t)
		service.On("Follow", mock.Anything, int64(1), int64(1)).Return(custom_errors.ErrSelfFollow)

		assert.ErrorIs(t, decorator.Follow(ctx, 1, 1), custom_errors.ErrSelfFollow)
	})
}
