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
	postCacheKeyPrefix = "post:"
	postCacheTTL       = 30 * time.Minute
)

type PostCache struct {
	client *Client
	log    ports.Logger
}

func NewPostCache(client *Client, log ports.Logger) *PostCache {
	return &PostCache{client: client, log: log}
}

func (p *PostCache) GetPost(ctx context.Context, postID int64) (*model.PostDetailed, error) {
	var post model.PostDetailed
	if err := p.client.Get(ctx, postKey(postID), &post); err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			p.log.Debug("Post cache miss", slog.Int64("post_id", postID))
			return nil, custom_errors.ErrCacheMiss
		}
		p.log.Error("Failed to get post from cache", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get post from cache: %w", err)
	}

	p.log.Debug("Post cache hit", slog.Int64("post_id", postID))
	return &post, nil
}

func (p *PostCache) SetPost(ctx context.Context, post *model.PostDetailed) error {
	if post == nil || post.Post == nil {
		return fmt.Errorf("post cannot be nil")
	}

	if err := p.client.Set(ctx, postKey(post.Post.ID), post, postCacheTTL); err != nil {
		p.log.Error("Failed to set post cache", slog.Int64("post_id", post.Post.ID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to set post cache: %w", err)
	}
	return nil
}

func (p *PostCache) DeletePost(ctx context.Context, postID int64) error {
	if err := p.client.Delete(ctx, postKey(postID)); err != nil {
		return fmt.Errorf("failed to delete post from cache: %w", err)
	}
	return nil
}

func postKey(postID int64) string {
	return postCacheKeyPrefix + strconv.FormatInt(postID, 10)
}
