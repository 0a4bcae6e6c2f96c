package feed_service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	feed_service "microblog-service/internal/application/service/feed"
	follow_service "microblog-service/internal/application/service/follow"
	post_service "microblog-service/internal/application/service/post"
	search_service "microblog-service/internal/application/service/search"
	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	"microblog-service/internal/infrastructure/logger"
	"microblog-service/internal/infrastructure/outbound/metrics/prometheus"
	follow_memory "microblog-service/internal/infrastructure/outbound/repository/follow/memory"
	"microblog-service/internal/infrastructure/outbound/repository/memory"
	post_memory "microblog-service/internal/infrastructure/outbound/repository/post/memory"
	user_memory "microblog-service/internal/infrastructure/outbound/repository/user/memory"
	language_mock "microblog-service/mocks/language"
	search_mock "microblog-service/mocks/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stepClock advances one second on every reading so posts get distinct,
// increasing timestamps.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

type world struct {
	users   *user_memory.UserRepository
	posts   *post_service.Service
	follows *follow_service.Service
	feed    *feed_service.Service
}

func newWorld(t *testing.T) *world {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()

	users := user_memory.NewUserRepository(log)
	follows := follow_memory.NewFollowRepository(log)
	posts := post_memory.NewPostRepository(log, follows)
	uow := memory.NewUnitOfWork(users, posts, follows)

	detector := language_mock.NewDetector(t)
	detector.On("Detect", mock.Anything).Return("en").Maybe()
	indexer := search_mock.NewService(t)
	indexer.On("IndexPost", mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	clock := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	return &world{
		users:   users,
		posts:   post_service.NewPostService(posts, users, uow, detector, indexer, clock, log, metrics),
		follows: follow_service.NewFollowService(follows, users, uow, log, metrics),
		feed:    feed_service.NewFeedService(posts, users, log, metrics),
	}
}

func (w *world) user(t *testing.T, name string) *model.User {
	t.Helper()
	u, err := w.users.Create(context.Background(), &model.User{Username: name, Email: name + "@example.com"})
	require.NoError(t, err)
	return u
}

func (w *world) post(t *testing.T, author *model.User, body string) *model.Post {
	t.Helper()
	p, err := w.posts.CreatePost(context.Background(), &model.CreatePostDTO{AuthorID: author.ID, Body: body})
	require.NoError(t, err)
	return p.Post
}

func bodies(page *model.Page[*model.PostDetailed]) []string {
	result := make([]string, 0, len(page.Items))
	for _, item := range page.Items {
		result = append(result, item.Post.Body)
	}
	return result
}

func TestFeed_IncludesOwnPostsWithoutFollows(t *testing.T) {
	w := newWorld(t)
	john := w.user(t, "john")
	w.post(t, john, "first")
	w.post(t, john, "second")

	page, err := w.feed.FollowedPosts(context.Background(), john.ID, model.Pagination{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, bodies(page))
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, "john", page.Items[0].Author.Username)
}

func TestFeed_FollowedAuthorsOnly(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	a, b, c := w.user(t, "a"), w.user(t, "b"), w.user(t, "c")

	w.post(t, a, "a1")
	w.post(t, b, "b1")
	w.post(t, c, "c1")
	w.post(t, b, "b2")

	require.NoError(t, w.follows.Follow(ctx, a.ID, b.ID))

	page, err := w.feed.FollowedPosts(ctx, a.ID, model.Pagination{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"b2", "b1", "a1"}, bodies(page))

	require.NoError(t, w.follows.Unfollow(ctx, a.ID, b.ID))

	page, err = w.feed.FollowedPosts(ctx, a.ID, model.Pagination{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, bodies(page))
}

func TestFeed_FollowedAuthorsScenario(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	a, b, c := w.user(t, "a"), w.user(t, "b"), w.user(t, "c")
	require.NoError(t, w.follows.Follow(ctx, a.ID, b.ID))
	require.NoError(t, w.follows.Follow(ctx, a.ID, c.ID))

	w.post(t, b, "hello")
	w.post(t, c, "world")
	w.post(t, a, "me")

	page, err := w.feed.FollowedPosts(ctx, a.ID, model.Pagination{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"me", "world", "hello"}, bodies(page))
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrev)
}

func TestFeed_PostSurvivesUnreachableIndex(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()
	users := user_memory.NewUserRepository(log)
	follows := follow_memory.NewFollowRepository(log)
	posts := post_memory.NewPostRepository(log, follows)
	clock := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	index := search_mock.NewIndex(t)
	index.On("Index", mock.Anything, mock.Anything).Return(custom_errors.ErrExternalServiceError)
	searcher := search_service.NewSearchService(index, posts, users, search_service.Settings{Timeout: 50 * time.Millisecond}, clock, log, metrics)

	detector := language_mock.NewDetector(t)
	detector.On("Detect", "offline").Return("UNKNOWN")
	service := post_service.NewPostService(posts, users, memory.NewUnitOfWork(users, posts, follows), detector, searcher, clock, log, metrics)

	author, err := users.Create(context.Background(), &model.User{Username: "john", Email: "john@example.com"})
	require.NoError(t, err)

	created, err := service.CreatePost(context.Background(), &model.CreatePostDTO{AuthorID: author.ID, Body: "offline"})
	require.NoError(t, err)
	assert.Empty(t, created.Post.Language)

	stored, err := posts.GetByID(context.Background(), created.Post.ID)
	require.NoError(t, err)
	assert.Equal(t, "offline", stored.Body)
}

func TestFeed_FollowTwiceKeepsSingleEdge(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	a, b := w.user(t, "a"), w.user(t, "b")
	w.post(t, b, "b1")

	require.NoError(t, w.follows.Follow(ctx, a.ID, b.ID))
	require.NoError(t, w.follows.Follow(ctx, a.ID, b.ID))

	count, err := w.follows.FollowerCount(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	page, err := w.feed.FollowedPosts(ctx, a.ID, model.Pagination{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, bodies(page))
}

func TestFeed_PagesCoverEveryPostOnce(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	a, b := w.user(t, "a"), w.user(t, "b")
	require.NoError(t, w.follows.Follow(ctx, a.ID, b.ID))

	for i := 0; i < 25; i++ {
		author := a
		if i%2 == 1 {
			author = b
		}
		w.post(t, author, fmt.Sprintf("post %02d", i))
	}

	seen := make(map[string]bool)
	var all []string
	wantSizes := []int{10, 10, 5}
	for page := 1; page <= 3; page++ {
		got, err := w.feed.FollowedPosts(ctx, a.ID, model.Pagination{Page: page, PageSize: 10})
		require.NoError(t, err)
		assert.Len(t, got.Items, wantSizes[page-1])
		assert.Equal(t, 25, got.Total)
		assert.Equal(t, page > 1, got.HasPrev)
		assert.Equal(t, page < 3, got.HasNext)
		for _, body := range bodies(got) {
			assert.False(t, seen[body], "duplicate %s", body)
			seen[body] = true
			all = append(all, body)
		}
	}
	assert.Len(t, seen, 25)
	assert.Equal(t, "post 24", all[0])
	assert.Equal(t, "post 00", all[24])

	clamped, err := w.feed.FollowedPosts(ctx, a.ID, model.Pagination{Page: 4, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, clamped.Page)
	assert.Len(t, clamped.Items, 5)
}

func TestFeed_InvalidPageSize(t *testing.T) {
	w := newWorld(t)
	john := w.user(t, "john")

	_, err := w.feed.FollowedPosts(context.Background(), john.ID, model.Pagination{Page: 1, PageSize: -1})
	assert.Error(t, err)
}
