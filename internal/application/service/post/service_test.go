package post_service

import (
	"context"
	"strings"
	"testing"
	"time"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	"microblog-service/internal/domain/ports/output/language"
	"microblog-service/internal/infrastructure/logger"
	"microblog-service/internal/infrastructure/outbound/metrics/prometheus"
	language_mock "microblog-service/mocks/language"
	ports_mock "microblog-service/mocks/ports"
	post_repository_mock "microblog-service/mocks/post"
	search_mock "microblog-service/mocks/search"
	uow_mock "microblog-service/mocks/uow"
	user_repository_mock "microblog-service/mocks/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceMocks struct {
	postRepo *post_repository_mock.Repository
	userRepo *user_repository_mock.Repository
	uow      *uow_mock.UnitOfWork
	tx       *uow_mock.Transaction
	detector *language_mock.Detector
	indexer  *search_mock.Service
	clock    *ports_mock.Clock
}

func newServiceWithMocks(t *testing.T) (*Service, serviceMocks) {
	m := serviceMocks{
		postRepo: post_repository_mock.NewRepository(t),
		userRepo: user_repository_mock.NewRepository(t),
		uow:      uow_mock.NewUnitOfWork(t),
		tx:       uow_mock.NewTransaction(t),
		detector: language_mock.NewDetector(t),
		indexer:  search_mock.NewService(t),
		clock:    ports_mock.NewClock(t),
	}
	svc := NewPostService(m.postRepo, m.userRepo, m.uow, m.detector, m.indexer, m.clock,
		logger.New("test"), prometheus.NewPrometheusMetricsProvider())
	return svc, m
}

func TestPostService_CreatePost(t *testing.T) {
	author := &model.User{ID: 1, Username: "john"}
	now := time.Date(2024, 5, 1, 12, 0, 0, 123456789, time.UTC)

	tests := []struct {
		name         string
		dto          *model.CreatePostDTO
		mocks        func(m serviceMocks)
		wantErr      error
		wantLanguage string
	}{
		{
			name: "Success with detected language",
			dto:  &model.CreatePostDTO{AuthorID: 1, Body: "hello world"},
			mocks: func(m serviceMocks) {
				m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(author, nil)
				m.detector.On("Detect", "hello world").Return("en")
				m.clock.On("Now").Return(now)
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("PostRepository").Return(m.postRepo)
				m.postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
					return p.Language == "en" && p.CreatedAt.Time.Equal(now.Truncate(time.Microsecond))
				})).Return(&model.Post{ID: 10, AuthorID: 1, Body: "hello world", Language: "en"}, nil)
				m.tx.On("Commit", mock.Anything).Return(nil)
				m.indexer.On("IndexPost", mock.Anything, mock.AnythingOfType("*model.Post"), author).Return()
			},
			wantLanguage: "en",
		},
		{
			name: "Caller language skips detection",
			dto:  &model.CreatePostDTO{AuthorID: 1, Body: "hola", Language: "es"},
			mocks: func(m serviceMocks) {
				m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(author, nil)
				m.clock.On("Now").Return(now)
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("PostRepository").Return(m.postRepo)
				m.postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool { return p.Language == "es" })).
					Return(&model.Post{ID: 11, AuthorID: 1, Body: "hola", Language: "es"}, nil)
				m.tx.On("Commit", mock.Anything).Return(nil)
				m.indexer.On("IndexPost", mock.Anything, mock.Anything, author).Return()
			},
			wantLanguage: "es",
		},
		{
			name: "Unknown language stored as no tag",
			dto:  &model.CreatePostDTO{AuthorID: 1, Body: "?!"},
			mocks: func(m serviceMocks) {
				m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(author, nil)
				m.detector.On("Detect", "?!").Return(language.UnknownLanguage)
				m.clock.On("Now").Return(now)
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("PostRepository").Return(m.postRepo)
				m.postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool { return p.Language == "" })).
					Return(&model.Post{ID: 12, AuthorID: 1, Body: "?!"}, nil)
				m.tx.On("Commit", mock.Anything).Return(nil)
				m.indexer.On("IndexPost", mock.Anything, mock.Anything, author).Return()
			},
		},
		{
			name:    "Empty body",
			dto:     &model.CreatePostDTO{AuthorID: 1, Body: ""},
			mocks:   func(m serviceMocks) {},
			wantErr: custom_errors.ErrPostBodyEmpty,
		},
		{
			name:    "Whitespace body",
			dto:     &model.CreatePostDTO{AuthorID: 1, Body: " \n\t "},
			mocks:   func(m serviceMocks) {},
			wantErr: custom_errors.ErrPostBodyEmpty,
		},
		{
			name:    "Body of 141 characters",
			dto:     &model.CreatePostDTO{AuthorID: 1, Body: strings.Repeat("a", 141)},
			mocks:   func(m serviceMocks) {},
			wantErr: custom_errors.ErrPostBodyTooLong,
		},
		{
			name: "Unknown author",
			dto:  &model.CreatePostDTO{AuthorID: 99, Body: "hi"},
			mocks: func(m serviceMocks) {
				m.userRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, custom_errors.ErrUserNotFound)
			},
			wantErr: custom_errors.ErrUserNotFound,
		},
		{
			name: "Transaction begin error",
			dto:  &model.CreatePostDTO{AuthorID: 1, Body: "hi", Language: "en"},
			mocks: func(m serviceMocks) {
				m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(author, nil)
				m.uow.On("Begin", mock.Anything).Return(nil, assert.AnError)
			},
			wantErr: custom_errors.ErrDatabaseQuery,
		},
		{
			name: "Insert error rolls back and skips indexing",
			dto:  &model.CreatePostDTO{AuthorID: 1, Body: "hi", Language: "en"},
			mocks: func(m serviceMocks) {
				m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(author, nil)
				m.clock.On("Now").Return(now)
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("PostRepository").Return(m.postRepo)
				m.postRepo.On("Create", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrDatabaseQuery)
				m.tx.On("Rollback", mock.Anything).Return(nil)
			},
			wantErr: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newServiceWithMocks(t)
			tt.mocks(m)

			got, err := svc.CreatePost(context.Background(), tt.dto)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, author, got.Author)
			assert.Equal(t, tt.wantLanguage, got.Post.Language)
		})
	}
}

func TestPostService_CreatePost_BodyLengthBoundaries(t *testing.T) {
	author := &model.User{ID: 1, Username: "john"}

	for _, body := range []string{"a", strings.Repeat("a", 140), strings.Repeat("é", 140)} {
		svc, m := newServiceWithMocks(t)
		m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(author, nil)
		m.clock.On("Now").Return(time.Now())
		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.postRepo.On("Create", mock.Anything, mock.Anything).Return(&model.Post{ID: 1, AuthorID: 1, Body: body}, nil)
		m.tx.On("Commit", mock.Anything).Return(nil)
		m.indexer.On("IndexPost", mock.Anything, mock.Anything, mock.Anything).Return()

		_, err := svc.CreatePost(context.Background(), &model.CreatePostDTO{AuthorID: 1, Body: body, Language: "en"})
		assert.NoError(t, err, "body of %d runes", len([]rune(body)))
	}
}

func TestPostService_GetPostByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.postRepo.On("GetByID", mock.Anything, int64(5)).Return(&model.Post{ID: 5, AuthorID: 2}, nil)
		m.userRepo.On("GetByIDs", mock.Anything, []int64{2}).Return([]*model.User{{ID: 2, Username: "susan"}}, nil)

		got, err := svc.GetPostByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.Post.ID)
		assert.Equal(t, "susan", got.Author.Username)
	})

	t.Run("Not found", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.postRepo.On("GetByID", mock.Anything, int64(5)).Return(nil, custom_errors.ErrPostNotFound)

		_, err := svc.GetPostByID(context.Background(), 5)
		assert.ErrorIs(t, err, custom_errors.ErrNotFound)
	})
}

func TestPostService_PostsByAuthor(t *testing.T) {
	authorID := int64(3)

	t.Run("Page past the end is clamped", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.postRepo.On("Count", mock.Anything, model.PostFilters{AuthorID: &authorID}).Return(3, nil)
		m.postRepo.On("List", mock.Anything, mock.MatchedBy(func(f model.PostFilters) bool {
			return *f.AuthorID == authorID && *f.Limit == 2 && *f.Offset == 2
		})).Return([]*model.Post{{ID: 1, AuthorID: authorID}}, nil)
		m.userRepo.On("GetByIDs", mock.Anything, []int64{authorID}).Return([]*model.User{{ID: authorID}}, nil)

		page, err := svc.PostsByAuthor(context.Background(), authorID, model.Pagination{Page: 9, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Page)
		assert.True(t, page.HasPrev)
		assert.False(t, page.HasNext)
		assert.Len(t, page.Items, 1)
	})

	t.Run("Invalid page size", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		_, err := svc.PostsByAuthor(context.Background(), authorID, model.Pagination{Page: 1, PageSize: 0})
		assert.ErrorIs(t, err, custom_errors.ErrInvalidPageSize)
	})

	t.Run("Empty result", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.postRepo.On("Count", mock.Anything, mock.Anything).Return(0, nil)

		page, err := svc.PostsByAuthor(context.Background(), authorID, model.Pagination{Page: 3, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Empty(t, page.Items)
		assert.False(t, page.HasPrev)
		assert.False(t, page.HasNext)
	})
}

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, "", normalizeLanguage(""))
	assert.Equal(t, "", normalizeLanguage(language.UnknownLanguage))
	assert.Equal(t, "", normalizeLanguage("toolong"))
	assert.Equal(t, "en", normalizeLanguage("en"))
	assert.Equal(t, "zh-tw", normalizeLanguage("zh-tw"))
}
