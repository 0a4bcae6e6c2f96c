package follow_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"microblog-service/internal/custom_errors"
	follow_service "microblog-service/internal/domain/ports/input/follow"
	output "microblog-service/internal/domain/ports/output"
	"microblog-service/internal/domain/ports/output/cache"
)

// FollowServiceCacheDecorator caches both follow counts of a user as one entry
// and drops the entries of both ends whenever an edge changes.
type FollowServiceCacheDecorator struct {
	service     follow_service.Service
	followCache cache.FollowCache
	log         output.Logger
	metrics     output.MetricsProvider
}

func NewFollowServiceCacheDecorator(
	service follow_service.Service,
	followCache cache.FollowCache,
	log output.Logger,
	metrics output.MetricsProvider,
) follow_service.Service {
	return &FollowServiceCacheDecorator{
		service:     service,
		followCache: followCache,
		log:         log,
		metrics:     metrics,
	}
}

func (d *FollowServiceCacheDecorator) Follow(ctx context.Context, actorID, targetID int64) error {
	if err := d.service.Follow(ctx, actorID, targetID); err != nil {
		return err
	}
	d.invalidate(ctx, actorID, targetID)
	return nil
}

func (d *FollowServiceCacheDecorator) Unfollow(ctx context.Context, actorID, targetID int64) error {
	if err := d.service.Unfollow(ctx, actorID, targetID); err != nil {
		return err
	}
	d.invalidate(ctx, actorID, targetID)
	return nil
}

func (d *FollowServiceCacheDecorator) IsFollowing(ctx context.Context, actorID, targetID int64) (bool, error) {
	return d.service.IsFollowing(ctx, actorID, targetID)
}

func (d *FollowServiceCacheDecorator) FollowedCount(ctx context.Context, userID int64) (int, error) {
	counts, err := d.counts(ctx, userID)
	if err != nil {
		return 0, err
	}
	return counts.Following, nil
}

func (d *FollowServiceCacheDecorator) FollowerCount(ctx context.Context, userID int64) (int, error) {
	counts, err := d.counts(ctx, userID)
	if err != nil {
		return 0, err
	}
	return counts.Followers, nil
}

func (d *FollowServiceCacheDecorator) counts(ctx context.Context, userID int64) (*cache.FollowCounts, error) {
	start := time.Now()
	cached, err := d.followCache.GetCounts(ctx, userID)
	d.metrics.RecordCacheOperationDuration("follow_counts_get", time.Since(start))
	if err == nil {
		d.metrics.IncrementCacheHits()
		return cached, nil
	}
	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
	} else {
		d.log.Warn("Failed to get follow counts from cache", slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}

	followers, err := d.service.FollowerCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := d.service.FollowedCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	counts := &cache.FollowCounts{Followers: followers, Following: following}

	start = time.Now()
	if err := d.followCache.SetCounts(ctx, userID, counts); err != nil {
		d.log.Warn("Failed to cache follow counts", slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("follow_counts_set", time.Since(start))
	return counts, nil
}

func (d *FollowServiceCacheDecorator) invalidate(ctx context.Context, userIDs ...int64) {
	start := time.Now()
	if err := d.followCache.DeleteCounts(ctx, userIDs...); err != nil {
		d.log.Warn("Failed to invalidate follow counts", slog.Any("user_ids", userIDs), slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("follow_counts_delete", time.Since(start))
}
