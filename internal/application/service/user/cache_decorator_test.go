package user_service_test

import (
	"context"
	"errors"
	"testing"

	user_service "microblog-service/internal/application/service/user"
	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	user_port "microblog-service/internal/domain/ports/input/user"
	"microblog-service/internal/infrastructure/logger"
	"microblog-service/internal/infrastructure/outbound/metrics/prometheus"
	cache_mock "microblog-service/mocks/cache"
	user_mock "microblog-service/mocks/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDecorator(t *testing.T) (*user_mock.Service, *cache_mock.UserCache, user_port.Service) {
	service := user_mock.NewService(t)
	userCache := cache_mock.NewUserCache(t)
	decorator := user_service.NewUserServiceCacheDecorator(service, userCache, logger.New("test"), prometheus.NewPrometheusMetricsProvider())
	return service, userCache, decorator
}

func TestUserCacheDecorator_GetUserByID(t *testing.T) {
	ctx := context.Background()
	john := &model.User{ID: 1, Username: "john"}

	t.Run("hit", func(t *testing.T) {
		_, userCache, decorator := newDecorator(t)
		userCache.On("GetUser", mock.Anything, int64(1)).Return(john, nil)

		user, err := decorator.GetUserByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, john, user)
	})

	t.Run("miss", func(t *testing.T) {
		service, userCache, decorator := newDecorator(t)
		userCache.On("GetUser", mock.Anything, int64(1)).Return(nil, custom_errors.ErrCacheMiss)
		service.On("GetUserByID", mock.Anything, int64(1)).Return(john, nil)
		userCache.On("SetUser", mock.Anything, john).Return(nil)

		user, err := decorator.GetUserByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, john, user)
	})

	t.Run("not found is not cached", func(t *testing.T) {
		service, userCache, decorator := newDecorator(t)
		userCache.On("GetUser", mock.Anything, int64(5)).Return(nil, errors.New("redis down"))
		service.On("GetUserByID", mock.Anything, int64(5)).Return(nil, custom_errors.ErrUserNotFound)

		_, err := decorator.GetUserByID(ctx, 5)
		assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
	})
}

func TestUserCacheDecorator_GetUserByUsername(t *testing.T) {
	service, userCache, decorator := newDecorator(t)
	john := &model.User{ID: 1, Username: "john"}
	userCache.On("GetUserByUsername", mock.Anything, "john").Return(nil, custom_errors.ErrCacheMiss)
	service.On("GetUserByUsername", mock.Anything, "john").Return(john, nil)
	userCache.On("SetUser", mock.Anything, john).Return(errors.New("redis down"))

	user, err := decorator.GetUserByUsername(context.Background(), "john")

	require.NoError(t, err)
	assert.Equal(t, john, user)
}

func TestUserCacheDecorator_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	before := &model.User{ID: 1, Username: "john"}
	after := &model.User{ID: 1, Username: "johnny"}
	update := &model.UpdateProfileDTO{Username: "johnny"}

	t.Run("rename drops old and new entries", func(t *testing.T) {
		service, userCache, decorator := newDecorator(t)
		service.On("GetUserByID", mock.Anything, int64(1)).Return(before, nil)
		service.On("UpdateProfile", mock.Anything, int64(1), update).Return(after, nil)
		userCache.On("DeleteUser", mock.Anything, before).Return(nil).Once()
		userCache.On("DeleteUser", mock.Anything, after).Return(nil).Once()
		userCache.On("SetUser", mock.Anything, after).Return(nil)

		user, err := decorator.UpdateProfile(ctx, 1, update)
		require.NoError(t, err)
		assert.Equal(t, after, user)
	})

	t.Run("failed update leaves cache alone", func(t *testing.T) {
		service, _, decorator := newDecorator(t)
		service.On("GetUserByID", mock.Anything, int64(1)).Return(before, nil)
		service.On("UpdateProfile", mock.Anything, int64(1), update).Return(nil, custom_errors.ErrUsernameTaken)

		_, err := decorator.UpdateProfile(ctx, 1, update)
		assert.ErrorIs(t, err, custom_errors.ErrUsernameTaken)
	})
}

func TestUserCacheDecorator_TouchLastSeen(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps cached user", func(t *testing.T) {
		service, userCache, decorator := newDecorator(t)
		john := &model.User{ID: 1, Username: "john"}
		service.On("TouchLastSeen", mock.Anything, int64(1)).Return(nil)
		require.NoError(t, decorator.TouchLastSeen(ctx, 1))

		userCache.On("GetUser", mock.Anything, int64(1)).Return(john, nil).Once()
		got, err := decorator.GetUserByID(ctx, 1)
		require.NoError(t, err)
		assert.Same(t, john, got)
		userCache.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		service, _, decorator := newDecorator(t)
		service.On("TouchLastSeen", mock.Anything, int64(2)).Return(custom_errors.ErrUserNotFound)

		assert.ErrorIs(t, decorator.TouchLastSeen(ctx, 2), custom_errors.ErrUserNotFound)
	})
}
