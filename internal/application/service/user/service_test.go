package user_service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	user_service "microblog-service/internal/application/service/user"
	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	"microblog-service/internal/infrastructure/logger"
	"microblog-service/internal/infrastructure/outbound/metrics/prometheus"
	auth_mock "microblog-service/mocks/auth"
	follow_mock "microblog-service/mocks/follow"
	ports_mock "microblog-service/mocks/ports"
	uow_mock "microblog-service/mocks/uow"
	user_mock "microblog-service/mocks/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	service *user_service.Service
	users   *user_mock.Repository
	uow     *uow_mock.UnitOfWork
	tx      *uow_mock.Transaction
	hasher  *auth_mock.PasswordHasher
	tokens  *auth_mock.TokenManager
	follows *follow_mock.Service
	clock   *ports_mock.Clock
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		users:   user_mock.NewRepository(t),
		uow:     uow_mock.NewUnitOfWork(t),
		tx:      uow_mock.NewTransaction(t),
		hasher:  auth_mock.NewPasswordHasher(t),
		tokens:  auth_mock.NewTokenManager(t),
		follows: follow_mock.NewService(t),
		clock:   ports_mock.NewClock(t),
	}
	f.service = user_service.NewUserService(
		f.users, f.uow, f.hasher, f.tokens, f.follows, f.clock,
		logger.New("test"), prometheus.NewPrometheusMetricsProvider(),
	)
	return f
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	dto := &model.RegisterUserDTO{Username: " susan ", Email: "susan@example.com", Password: "cat-lover"}

	tests := []struct {
		name      string
		setup     func(f *fixture)
		wantError error
	}{
		{
			name: "username taken",
			setup: func(f *fixture) {
				f.users.On("GetByUsername", mock.Anything, "susan").Return(&model.User{ID: 3}, nil)
			},
			wantError: custom_errors.ErrUsernameTaken,
		},
		{
			name: "email taken",
			setup: func(f *fixture) {
				f.users.On("GetByUsername", mock.Anything, "susan").Return(nil, custom_errors.ErrUserNotFound)
				f.users.On("GetByEmail", mock.Anything, "susan@example.com").Return(&model.User{ID: 3}, nil)
			},
			wantError: custom_errors.ErrEmailTaken,
		},
		{
			name: "lookup fails",
			setup: func(f *fixture) {
				f.users.On("GetByUsername", mock.Anything, "susan").Return(nil, custom_errors.ErrDatabaseQuery)
			},
			wantError: custom_errors.ErrDatabaseQuery,
		},
		{
			name: "lost race on insert",
			setup: func(f *fixture) {
				f.users.On("GetByUsername", mock.Anything, "susan").Return(nil, custom_errors.ErrUserNotFound)
				f.users.On("GetByEmail", mock.Anything, "susan@example.com").Return(nil, custom_errors.ErrUserNotFound)
				f.hasher.On("Hash", "cat-lover").Return("hashed", nil)
				f.uow.On("Begin", mock.Anything).Return(f.tx, nil)
				f.clock.On("Now").Return(now)
				f.tx.On("UserRepository").Return(f.users)
				f.users.On("Create", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrUsernameTaken)
				f.tx.On("Rollback", mock.Anything).Return(nil)
			},
			wantError: custom_errors.ErrUsernameTaken,
		},
		{
			name: "success",
			setup: func(f *fixture) {
				f.users.On("GetByUsername", mock.Anything, "susan").Return(nil, custom_errors.ErrUserNotFound)
				f.users.On("GetByEmail", mock.Anything, "susan@example.com").Return(nil, custom_errors.ErrUserNotFound)
				f.hasher.On("Hash", "cat-lover").Return("hashed", nil)
				f.uow.On("Begin", mock.Anything).Return(f.tx, nil)
				f.clock.On("Now").Return(now)
				f.tx.On("UserRepository").Return(f.users)
				f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Username == "susan" && u.PasswordHash == "hashed" && u.CreatedAt.Time.Equal(now)
				})).Return(&model.User{ID: 1, Username: "susan"}, nil)
				f.tx.On("Commit", mock.Anything).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			user, err := f.service.Register(ctx, dto)

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), user.ID)
		})
	}
}

func TestService_Register_BlankUsername(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Register(context.Background(), &model.RegisterUserDTO{Username: "   ", Email: "x@example.com", Password: "password"})

	assert.ErrorIs(t, err, custom_errors.ErrInvalidUsername)
	assert.ErrorIs(t, err, custom_errors.ErrValidation)
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	stored := &model.User{ID: 7, Username: "john", PasswordHash: "hashed"}

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByUsername", mock.Anything, "ghost").Return(nil, custom_errors.ErrUserNotFound)

		_, _, err := f.service.Authenticate(ctx, "ghost", "pw")
		assert.ErrorIs(t, err, custom_errors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByUsername", mock.Anything, "john").Return(stored, nil)
		f.hasher.On("Compare", "hashed", "wrong").Return(custom_errors.ErrInvalidCredentials)

		_, _, err := f.service.Authenticate(ctx, "john", "wrong")
		assert.ErrorIs(t, err, custom_errors.ErrInvalidCredentials)
		assert.ErrorIs(t, err, custom_errors.ErrUnauthenticated)
	})

	t.Run("token issue fails", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByUsername", mock.Anything, "john").Return(stored, nil)
		f.hasher.On("Compare", "hashed", "pw").Return(nil)
		f.tokens.On("Issue", int64(7)).Return("", errors.New("signing failed"))

		_, _, err := f.service.Authenticate(ctx, "john", "pw")
		assert.Error(t, err)
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByUsername", mock.Anything, "john").Return(stored, nil)
		f.hasher.On("Compare", "hashed", "pw").Return(nil)
		f.tokens.On("Issue", int64(7)).Return("token", nil)

		user, token, err := f.service.Authenticate(ctx, "john", "pw")
		require.NoError(t, err)
		assert.Equal(t, stored, user)
		assert.Equal(t, "token", token)
	})
}

func TestService_GetProfile(t *testing.T) {
	ctx := context.Background()
	john := &model.User{ID: 1, Username: "john"}

	t.Run("another viewer sees follow state", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByUsername", mock.Anything, "john").Return(john, nil)
		f.follows.On("FollowerCount", mock.Anything, int64(1)).Return(2, nil)
		f.follows.On("FollowedCount", mock.Anything, int64(1)).Return(5, nil)
		f.follows.On("IsFollowing", mock.Anything, int64(9), int64(1)).Return(true, nil)

		profile, err := f.service.GetProfile(ctx, 9, "john")
		require.NoError(t, err)
		assert.Equal(t, 2, profile.FollowersCount)
		assert.Equal(t, 5, profile.FollowingCount)
		assert.True(t, profile.IsFollowing)
	})

	t.Run("own profile skips follow lookup", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByUsername", mock.Anything, "john").Return(john, nil)
		f.follows.On("FollowerCount", mock.Anything, int64(1)).Return(0, nil)
		f.follows.On("FollowedCount", mock.Anything, int64(1)).Return(0, nil)

		profile, err := f.service.GetProfile(ctx, 1, "john")
		require.NoError(t, err)
		assert.False(t, profile.IsFollowing)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByUsername", mock.Anything, "nobody").Return(nil, custom_errors.ErrUserNotFound)

		_, err := f.service.GetProfile(ctx, 1, "nobody")
		assert.ErrorIs(t, err, custom_errors.ErrNotFound)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		update    *model.UpdateProfileDTO
		setup     func(f *fixture)
		wantError error
	}{
		{
			name:      "blank username",
			update:    &model.UpdateProfileDTO{Username: " "},
			setup:     func(f *fixture) {},
			wantError: custom_errors.ErrInvalidUsername,
		},
		{
			name:      "about me too long",
			update:    &model.UpdateProfileDTO{Username: "john", AboutMe: strings.Repeat("é", 141)},
			setup:     func(f *fixture) {},
			wantError: custom_errors.ErrAboutMeTooLong,
		},
		{
			name:   "username owned by someone else",
			update: &model.UpdateProfileDTO{Username: "susan"},
			setup: func(f *fixture) {
				f.users.On("GetByUsername", mock.Anything, "susan").Return(&model.User{ID: 2}, nil)
			},
			wantError: custom_errors.ErrUsernameTaken,
		},
		{
			name:   "keeping own username",
			update: &model.UpdateProfileDTO{Username: "john", AboutMe: strings.Repeat("é", 140)},
			setup: func(f *fixture) {
				f.users.On("GetByUsername", mock.Anything, "john").Return(&model.User{ID: 1}, nil)
				f.users.On("UpdateProfile", mock.Anything, int64(1), mock.Anything).Return(&model.User{ID: 1, Username: "john"}, nil)
			},
		},
		{
			name:   "rename",
			update: &model.UpdateProfileDTO{Username: " johnny "},
			setup: func(f *fixture) {
				f.users.On("GetByUsername", mock.Anything, "johnny").Return(nil, custom_errors.ErrUserNotFound)
				f.users.On("UpdateProfile", mock.Anything, int64(1), &model.UpdateProfileDTO{Username: "johnny"}).
					Return(&model.User{ID: 1, Username: "johnny"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			user, err := f.service.UpdateProfile(ctx, 1, tt.update)

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), user.ID)
		})
	}
}

func TestService_TouchLastSeen(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f.clock.On("Now").Return(now)
	f.users.On("UpdateLastSeen", mock.Anything, int64(4), now).Return(custom_errors.ErrUserNotFound)

	err := f.service.TouchLastSeen(context.Background(), 4)

	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
}
