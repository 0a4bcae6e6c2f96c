package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	post_service "microblog-service/internal/domain/ports/input/post"
	output "microblog-service/internal/domain/ports/output"
	"microblog-service/internal/domain/ports/output/cache"
)

// PostServiceCacheDecorator caches single posts. The author stored with a
// cached post is refreshed from the user cache on every hit so renames show up
// without waiting for the post entry to expire.
type PostServiceCacheDecorator struct {
	service   post_service.Service
	userCache cache.UserCache
	postCache cache.PostCache
	log       output.Logger
	metrics   output.MetricsProvider
}

func NewPostServiceCacheDecorator(
	service post_service.Service,
	userCache cache.UserCache,
	postCache cache.PostCache,
	log output.Logger,
	metrics output.MetricsProvider,
) post_service.Service {
	return &PostServiceCacheDecorator{
		service:   service,
		userCache: userCache,
		postCache: postCache,
		log:       log,
		metrics:   metrics,
	}
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error) {
	result, err := d.service.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}

	d.setPost(ctx, result)
	return result, nil
}

func (d *PostServiceCacheDecorator) GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error) {
	cacheStart := time.Now()
	cachedPost, err := d.postCache.GetPost(ctx, id)
	d.metrics.RecordCacheOperationDuration("post_get", time.Since(cacheStart))
	if err == nil {
		d.metrics.IncrementCacheHits()
		d.refreshAuthor(ctx, cachedPost)
		return cachedPost, nil
	}

	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
	} else {
		d.log.Warn("Failed to get post from cache", slog.Int64("post_id", id), slog.String("error", err.Error()))
	}

	post, err := d.service.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d.setPost(ctx, post)
	return post, nil
}

func (d *PostServiceCacheDecorator) PostsByAuthor(ctx context.Context, authorID int64, pagination model.Pagination) (*model.Page[*model.PostDetailed], error) {
	return d.service.PostsByAuthor(ctx, authorID, pagination)
}

func (d *PostServiceCacheDecorator) AllPosts(ctx context.Context, pagination model.Pagination) (*model.Page[*model.PostDetailed], error) {
	return d.service.AllPosts(ctx, pagination)
}

func (d *PostServiceCacheDecorator) setPost(ctx context.Context, post *model.PostDetailed) {
	start := time.Now()
	if err := d.postCache.SetPost(ctx, post); err != nil {
		d.log.Warn("Failed to cache post", slog.Int64("post_id", post.Post.ID), slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(start))
}

func (d *PostServiceCacheDecorator) refreshAuthor(ctx context.Context, post *model.PostDetailed) {
	if post.Post == nil {
		return
	}
	start := time.Now()
	author, err := d.userCache.GetUser(ctx, post.Post.AuthorID)
	d.metrics.RecordCacheOperationDuration("user_get", time.Since(start))
	if err != nil {
		if !errors.Is(err, custom_errors.ErrCacheMiss) {
			d.log.Warn("Failed to get author from cache", slog.Int64("user_id", post.Post.AuthorID), slog.String("error", err.Error()))
		}
		return
	}
	post.Author = author
}
