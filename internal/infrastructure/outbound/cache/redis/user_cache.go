package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	ports "microblog-service/internal/domain/ports/output"
)

const (
	userCacheKeyPrefix     = "user:"
	usernameCacheKeyPrefix = "user:name:"
	userCacheTTL           = 15 * time.Minute
)

// UserCache keeps each user under its id and under its username. Usernames
// are case-sensitive in the store, so the username key keeps the exact case.
type UserCache struct {
	client *Client
	log    ports.Logger
}

func NewUserCache(client *Client, log ports.Logger) *UserCache {
	return &UserCache{client: client, log: log}
}

func (u *UserCache) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	return u.get(ctx, userKey(userID))
}

func (u *UserCache) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return u.get(ctx, usernameKey(username))
}

func (u *UserCache) SetUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return fmt.Errorf("user cannot be nil")
	}

	for _, key := range []string{userKey(user.ID), usernameKey(user.Username)} {
		if err := u.client.Set(ctx, key, user, userCacheTTL); err != nil {
			u.log.Error("Failed to set user cache", slog.Int64("user_id", user.ID), slog.String("error", err.Error()))
			return fmt.Errorf("failed to set user cache: %w", err)
		}
	}

	u.log.Debug("User cached", slog.Int64("user_id", user.ID), slog.Duration("ttl", userCacheTTL))
	return nil
}

func (u *UserCache) DeleteUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return nil
	}
	if err := u.client.Delete(ctx, userKey(user.ID), usernameKey(user.Username)); err != nil {
		u.log.Error("Failed to delete user from cache", slog.Int64("user_id", user.ID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete user from cache: %w", err)
	}
	return nil
}

func (u *UserCache) get(ctx context.Context, key string) (*model.User, error) {
	var user model.User
	if err := u.client.Get(ctx, key, &user); err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return nil, custom_errors.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get user from cache: %w", err)
	}
	u.log.Debug("User cache hit", slog.String("key", key))
	return &user, nil
}

func userKey(userID int64) string {
	return userCacheKeyPrefix + strconv.FormatInt(userID, 10)
}

func usernameKey(username string) string {
	return usernameCacheKeyPrefix + username
}
