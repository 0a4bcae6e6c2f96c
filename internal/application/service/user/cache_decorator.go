package user_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	user_service "microblog-service/internal/domain/ports/input/user"
	output "microblog-service/internal/domain/ports/output"
	"microblog-service/internal/domain/ports/output/cache"
)

type UserServiceCacheDecorator struct {
	service   user_service.Service
	userCache cache.UserCache
	log       output.Logger
	metrics   output.MetricsProvider
}

func NewUserServiceCacheDecorator(
	service user_service.Service,
	userCache cache.UserCache,
	log output.Logger,
	metrics output.MetricsProvider,
) user_service.Service {
	return &UserServiceCacheDecorator{
		service:   service,
		userCache: userCache,
		log:       log,
		metrics:   metrics,
	}
}

func (d *UserServiceCacheDecorator) Register(ctx context.Context, user *model.RegisterUserDTO) (*model.User, error) {
	return d.service.Register(ctx, user)
}

func (d *UserServiceCacheDecorator) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	return d.service.Authenticate(ctx, username, password)
}

func (d *UserServiceCacheDecorator) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return d.cached(ctx, "user_get",
		func() (*model.User, error) { return d.userCache.GetUser(ctx, id) },
		func() (*model.User, error) { return d.service.GetUserByID(ctx, id) })
}

func (d *UserServiceCacheDecorator) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return d.cached(ctx, "user_get_by_username",
		func() (*model.User, error) { return d.userCache.GetUserByUsername(ctx, username) },
		func() (*model.User, error) { return d.service.GetUserByUsername(ctx, username) })
}

func (d *UserServiceCacheDecorator) GetProfile(ctx context.Context, viewerID int64, username string) (*model.UserProfile, error) {
	return d.service.GetProfile(ctx, viewerID, username)
}

// UpdateProfile drops the entries of the old username before caching the
// updated user, so a rename never leaves the old name resolvable.
func (d *UserServiceCacheDecorator) UpdateProfile(ctx context.Context, userID int64, update *model.UpdateProfileDTO) (*model.User, error) {
	previous, prevErr := d.service.GetUserByID(ctx, userID)

	updated, err := d.service.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	if prevErr == nil {
		d.delete(ctx, previous)
	}
	d.delete(ctx, updated)

	start := time.Now()
	if err := d.userCache.SetUser(ctx, updated); err != nil {
		d.log.Warn("Failed to cache updated user", slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("user_set", time.Since(start))
	return updated, nil
}

// TouchLastSeen leaves cached entries in place. Profiles read last_seen from
// the store, and other cached copies may lag by at most the cache TTL.
func (d *UserServiceCacheDecorator) TouchLastSeen(ctx context.Context, userID int64) error {
	return d.service.TouchLastSeen(ctx, userID)
}

func (d *UserServiceCacheDecorator) cached(
	ctx context.Context,
	operation string,
	fromCache func() (*model.User, error),
	fromService func() (*model.User, error),
) (*model.User, error) {
	start := time.Now()
	user, err := fromCache()
	d.metrics.RecordCacheOperationDuration(operation, time.Since(start))
	if err == nil {
		d.metrics.IncrementCacheHits()
		return user, nil
	}
	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
	} else {
		d.log.Warn("Failed to get user from cache", slog.String("operation", operation), slog.String("error", err.Error()))
	}

	user, err = fromService()
	if err != nil {
		return nil, err
	}

	start = time.Now()
	if err := d.userCache.SetUser(ctx, user); err != nil {
		d.log.Warn("Failed to cache user", slog.Int64("user_id", user.ID), slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("user_set", time.Since(start))
	return user, nil
}

func (d *UserServiceCacheDecorator) delete(ctx context.Context, user *model.User) {
	if err := d.userCache.DeleteUser(ctx, user); err != nil {
		d.log.Warn("Failed to invalidate user cache", slog.Int64("user_id", user.ID), slog.String("error", err.Error()))
	}
}
