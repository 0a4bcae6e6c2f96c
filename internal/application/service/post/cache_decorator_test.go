package post_service

import (
	"context"
	"testing"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	"microblog-service/internal/infrastructure/logger"
	"microblog-service/internal/infrastructure/outbound/metrics/prometheus"
	cache_mock "microblog-service/mocks/cache"
	post_service_mock "microblog-service/mocks/post"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDecorator(t *testing.T) (*post_service_mock.Service, *cache_mock.UserCache, *cache_mock.PostCache, *PostServiceCacheDecorator) {
	svc := post_service_mock.NewService(t)
	userCache := cache_mock.NewUserCache(t)
	postCache := cache_mock.NewPostCache(t)
	d := NewPostServiceCacheDecorator(svc, userCache, postCache, logger.New("test"), prometheus.NewPrometheusMetricsProvider())
	return svc, userCache, postCache, d.(*PostServiceCacheDecorator)
}

func TestPostServiceCacheDecorator_GetPostByID(t *testing.T) {
	post := &model.PostDetailed{
		Post:   &model.Post{ID: 7, AuthorID: 2, Body: "hi"},
		Author: &model.User{ID: 2, Username: "old-name"},
	}

	t.Run("Cache hit refreshes author", func(t *testing.T) {
		_, userCache, postCache, d := newDecorator(t)
		postCache.On("GetPost", mock.Anything, int64(7)).Return(post, nil)
		userCache.On("GetUser", mock.Anything, int64(2)).Return(&model.User{ID: 2, Username: "new-name"}, nil)

		got, err := d.GetPostByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "new-name", got.Author.Username)
	})

	t.Run("Cache miss loads and stores", func(t *testing.T) {
		svc, _, postCache, d := newDecorator(t)
		postCache.On("GetPost", mock.Anything, int64(7)).Return(nil, custom_errors.ErrCacheMiss)
		svc.On("GetPostByID", mock.Anything, int64(7)).Return(post, nil)
		postCache.On("SetPost", mock.Anything, post).Return(nil)

		got, err := d.GetPostByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, post, got)
	})

	t.Run("Cache failure falls through to service", func(t *testing.T) {
		svc, _, postCache, d := newDecorator(t)
		postCache.On("GetPost", mock.Anything, int64(7)).Return(nil, assert.AnError)
		svc.On("GetPostByID", mock.Anything, int64(7)).Return(post, nil)
		postCache.On("SetPost", mock.Anything, post).Return(assert.AnError)

		got, err := d.GetPostByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, post, got)
	})

	t.Run("Service error is returned", func(t *testing.T) {
		svc, _, postCache, d := newDecorator(t)
		postCache.On("GetPost", mock.Anything, int64(7)).Return(nil, custom_errors.ErrCacheMiss)
		svc.On("GetPostByID", mock.Anything, int64(7)).Return(nil, custom_errors.ErrPostNotFound)

		_, err := d.GetPostByID(context.Background(), 7)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}

func TestPostServiceCacheDecorator_CreatePost(t *testing.T) {
	dto := &model.CreatePostDTO{AuthorID: 2, Body: "hi"}
	created := &model.PostDetailed{Post: &model.Post{ID: 8, AuthorID: 2, Body: "hi"}}

	svc, _, postCache, d := newDecorator(t)
	svc.On("CreatePost", mock.Anything, dto).Return(created, nil)
	postCache.On("SetPost", mock.Anything, created).Return(nil)

	got, err := d.CreatePost(context.Background(), dto)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestPostServiceCacheDecorator_ListingsBypassCache(t *testing.T) {
	page := model.NewPage[*model.PostDetailed](nil, model.Pagination{Page: 1, PageSize: 10}, 0)

	svc, _, _, d := newDecorator(t)
	svc.On("AllPosts", mock.Anything, model.Pagination{Page: 1, PageSize: 10}).Return(page, nil)
	svc.On("PostsByAuthor", mock.Anything, int64(2), model.Pagination{Page: 1, PageSize: 10}).Return(page, nil)

	got, err := d.AllPosts(context.Background(), model.Pagination{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, page, got)

	got, err = d.PostsByAuthor(context.Background(), 2, model.Pagination{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, page, got)
}
