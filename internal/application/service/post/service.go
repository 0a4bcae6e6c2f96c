package post_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"microblog-service/internal/application/service/postview"
	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	ports "microblog-service/internal/domain/ports/output"
	"microblog-service/internal/domain/ports/output/language"
	post_repository "microblog-service/internal/domain/ports/output/post"
	"microblog-service/internal/domain/ports/output/uow"
	user_repository "microblog-service/internal/domain/ports/output/user"

	"github.com/jackc/pgx/v5/pgtype"
)

// maxLanguageLength is the widest tag the posts.language column accepts.
const maxLanguageLength = 5

// IndexPublisher receives every stored post. It must not fail the caller.
type IndexPublisher interface {
	IndexPost(ctx context.Context, post *model.Post, author *model.User)
}

type Service struct {
	postRepo post_repository.Repository
	userRepo user_repository.Repository
	uow      uow.UnitOfWork
	detector language.Detector
	indexer  IndexPublisher
	clock    ports.Clock
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewPostService(
	postRepo post_repository.Repository,
	userRepo user_repository.Repository,
	unitOfWork uow.UnitOfWork,
	detector language.Detector,
	indexer IndexPublisher,
	clock ports.Clock,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *Service {
	return &Service{
		postRepo: postRepo,
		userRepo: userRepo,
		uow:      unitOfWork,
		detector: detector,
		indexer:  indexer,
		clock:    clock,
		log:      log,
		metrics:  metrics,
	}
}

func (s *Service) CreatePost(ctx context.Context, post *model.CreatePostDTO) (result *model.PostDetailed, err error) {
	defer func() { s.metrics.IncrementPostOperations("create", err == nil) }()

	if strings.TrimSpace(post.Body) == "" {
		return nil, custom_errors.ErrPostBodyEmpty
	}
	if utf8.RuneCountInString(post.Body) > model.MaxPostLength {
		return nil, custom_errors.ErrPostBodyTooLong
	}

	author, err := s.userRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Author not found for new post", slog.Int64("author_id", post.AuthorID))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to load post author", slog.Int64("author_id", post.AuthorID), slog.String("error", err.Error()))
		return nil, err
	}

	lang := post.Language
	if lang == "" {
		lang = s.detector.Detect(post.Body)
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	committed := false
	defer func() {
		if !committed {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				s.log.Debug("Rollback after failed post create", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	created, err := tx.PostRepository().Create(ctx, &model.Post{
		AuthorID:  post.AuthorID,
		Body:      post.Body,
		Language:  normalizeLanguage(lang),
		CreatedAt: timestamptz(s.clock.Now()),
	})
	if err != nil {
		s.log.Error("Failed to create post", slog.Int64("author_id", post.AuthorID), slog.String("error", err.Error()))
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	committed = true

	s.indexer.IndexPost(ctx, created, author)

	s.log.Info("Post created",
		slog.Int64("post_id", created.ID),
		slog.Int64("author_id", created.AuthorID),
		slog.String("language", created.Language))
	return &model.PostDetailed{Post: created, Author: author}, nil
}

func (s *Service) GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detailed, err := postview.Attach(ctx, s.userRepo, []*model.Post{post})
	if err != nil {
		s.log.Error("Failed to load post author", slog.Int64("post_id", id), slog.String("error", err.Error()))
		return nil, err
	}
	return detailed[0], nil
}

func (s *Service) PostsByAuthor(ctx context.Context, authorID int64, pagination model.Pagination) (*model.Page[*model.PostDetailed], error) {
	page, err := postview.ListPage(ctx, s.postRepo, s.userRepo, model.PostFilters{AuthorID: &authorID}, pagination)
	s.metrics.IncrementPostOperations("list_by_author", err == nil)
	return page, err
}

func (s *Service) AllPosts(ctx context.Context, pagination model.Pagination) (*model.Page[*model.PostDetailed], error) {
	page, err := postview.ListPage(ctx, s.postRepo, s.userRepo, model.PostFilters{}, pagination)
	s.metrics.IncrementPostOperations("list_all", err == nil)
	return page, err
}

// normalizeLanguage drops detector output that is not a usable tag.
func normalizeLanguage(lang string) string {
	if lang == "" || lang == language.UnknownLanguage || len(lang) > maxLanguageLength {
		return ""
	}
	return lang
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t.UTC().Truncate(time.Microsecond), Valid: true}
}
