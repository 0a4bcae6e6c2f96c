package follow_service_test

import (
	"context"
	"errors"
	"testing"

	follow_service "microblog-service/internal/application/service/follow"
	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	"microblog-service/internal/infrastructure/logger"
	"microblog-service/internal/infrastructure/outbound/metrics/prometheus"
	follow_mock "microblog-service/mocks/follow"
	uow_mock "microblog-service/mocks/uow"
	user_mock "microblog-service/mocks/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fixture struct {
	service *follow_service.Service
	follows *follow_mock.Repository
	users   *user_mock.Repository
	uow     *uow_mock.UnitOfWork
	tx      *uow_mock.Transaction
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		follows: follow_mock.NewRepository(t),
		users:   user_mock.NewRepository(t),
		uow:     uow_mock.NewUnitOfWork(t),
		tx:      uow_mock.NewTransaction(t),
	}
	f.service = follow_service.NewFollowService(f.follows, f.users, f.uow, logger.New("test"), prometheus.NewPrometheusMetricsProvider())
	return f
}

func TestService_Follow(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("db error")

	tests := []struct {
		name      string
		actorID   int64
		targetID  int64
		setup     func(f *fixture)
		wantError error
	}{
		{
			name:      "self follow rejected",
			actorID:   1,
			targetID:  1,
			setup:     func(f *fixture) {},
			wantError: custom_errors.ErrSelfFollow,
		},
		{
			name:     "unknown target",
			actorID:  1,
			targetID: 42,
			setup: func(f *fixture) {
				f.users.On("GetByID", mock.Anything, int64(42)).Return(nil, custom_errors.ErrUserNotFound)
			},
			wantError: custom_errors.ErrUserNotFound,
		},
		{
			name:     "begin fails",
			actorID:  1,
			targetID: 2,
			setup: func(f *fixture) {
				f.users.On("GetByID", mock.Anything, int64(2)).Return(&model.User{ID: 2}, nil)
				f.uow.On("Begin", mock.Anything).Return(nil, dbErr)
			},
			wantError: custom_errors.ErrDatabaseQuery,
		},
		{
			name:     "insert fails and rolls back",
			actorID:  1,
			targetID: 2,
			setup: func(f *fixture) {
				f.users.On("GetByID", mock.Anything, int64(2)).Return(&model.User{ID: 2}, nil)
				f.uow.On("Begin", mock.Anything).Return(f.tx, nil)
				f.tx.On("FollowRepository").Return(f.follows)
				f.follows.On("Follow", mock.Anything, int64(1), int64(2)).Return(custom_errors.ErrDatabaseQuery)
				f.tx.On("Rollback", mock.Anything).Return(nil)
			},
			wantError: custom_errors.ErrDatabaseQuery,
		},
		{
			name:     "commit fails",
			actorID:  1,
			targetID: 2,
			setup: func(f *fixture) {
				f.users.On("GetByID", mock.Anything, int64(2)).Return(&model.User{ID: 2}, nil)
				f.uow.On("Begin", mock.Anything).Return(f.tx, nil)
				f.tx.On("FollowRepository").Return(f.follows)
				f.follows.On("Follow", mock.Anything, int64(1), int64(2)).Return(nil)
				f.tx.On("Commit", mock.Anything).Return(dbErr)
			},
			wantError: custom_errors.ErrDatabaseQuery,
		},
		{
			name:     "success",
			actorID:  1,
			targetID: 2,
			setup: func(f *fixture) {
				f.users.On("GetByID", mock.Anything, int64(2)).Return(&model.User{ID: 2}, nil)
				f.uow.On("Begin", mock.Anything).Return(f.tx, nil)
				f.tx.On("FollowRepository").Return(f.follows)
				f.follows.On("Follow", mock.Anything, int64(1), int64(2)).Return(nil)
				f.tx.On("Commit", mock.Anything).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.service.Follow(ctx, tt.actorID, tt.targetID)

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_Unfollow(t *testing.T) {
	ctx := context.Background()

	t.Run("self unfollow rejected", func(t *testing.T) {
		f := newFixture(t)
		err := f.service.Unfollow(ctx, 3, 3)
		assert.ErrorIs(t, err, custom_errors.ErrSelfFollow)
		assert.ErrorIs(t, err, custom_errors.ErrInvalidOperation)
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByID", mock.Anything, int64(2)).Return(&model.User{ID: 2}, nil)
		f.uow.On("Begin", mock.Anything).Return(f.tx, nil)
		f.tx.On("FollowRepository").Return(f.follows)
		f.follows.On("Unfollow", mock.Anything, int64(1), int64(2)).Return(nil)
		f.tx.On("Commit", mock.Anything).Return(nil)

		assert.NoError(t, f.service.Unfollow(ctx, 1, 2))
	})
}

func TestService_Queries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.follows.On("IsFollowing", mock.Anything, int64(1), int64(2)).Return(true, nil)
	f.follows.On("CountFollowing", mock.Anything, int64(1)).Return(4, nil)
	f.follows.On("CountFollowers", mock.Anything, int64(1)).Return(9, nil)

	following, err := f.service.IsFollowing(ctx, 1, 2)
	assert.NoError(t, err)
	assert.True(t, following)

	followed, err := f.service.FollowedCount(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 4, followed)

	followers, err := f.service.FollowerCount(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 9, followers)
}
