package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"microblog-service/internal/custom_errors"
	ports "microblog-service/internal/domain/ports/output"
	"microblog-service/internal/domain/ports/output/cache"
)

const (
	followCountsKeyPrefix = "follow_counts:"
	followCountsTTL       = 5 * time.Minute
)

type FollowCache struct {
	client *Client
	log    ports.Logger
}

func NewFollowCache(client *Client, log ports.Logger) *FollowCache {
	return &FollowCache{client: client, log: log}
}

func (f *FollowCache) GetCounts(ctx context.Context, userID int64) (*cache.FollowCounts, error) {
	var counts cache.FollowCounts
	if err := f.client.Get(ctx, followCountsKey(userID), &counts); err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return nil, custom_errors.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get follow counts from cache: %w", err)
	}
	return &counts, nil
}

func (f *FollowCache) SetCounts(ctx context.Context, userID int64, counts *cache.FollowCounts) error {
	if counts == nil {
		return fmt.Errorf("counts cannot be nil")
	}
	if err := f.client.Set(ctx, followCountsKey(userID), counts, followCountsTTL); err != nil {
		return fmt.Errorf("failed to set follow counts cache: %w", err)
	}
	return nil
}

func (f *FollowCache) DeleteCounts(ctx context.Context, userIDs ...int64) error {
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, followCountsKey(id))
	}
	if err := f.client.Delete(ctx, keys...); err != nil {
		f.log.Error("Failed to delete follow counts", slog.Any("user_ids", userIDs), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete follow counts from cache: %w", err)
	}
	return nil
}

func followCountsKey(userID int64) string {
	return followCountsKeyPrefix + strconv.FormatInt(userID, 10)
}
