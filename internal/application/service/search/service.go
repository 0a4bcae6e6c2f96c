package search_service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"microblog-service/internal/application/service/postview"
	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	ports "microblog-service/internal/domain/ports/output"
	post_repository "microblog-service/internal/domain/ports/output/post"
	"microblog-service/internal/domain/ports/output/search"
	user_repository "microblog-service/internal/domain/ports/output/user"

	"golang.org/x/sync/singleflight"
)

const reindexKey = "reindex"

type Settings struct {
	// Timeout bounds every call to the index.
	Timeout time.Duration
	// ProbeInterval is the minimum time between two emptiness probes.
	ProbeInterval time.Duration
	BatchSize     int
}

// Service keeps the search index in step with the post store. Index failures
// never surface to writers; they are logged and counted.
type Service struct {
	index    search.Index
	postRepo post_repository.Repository
	userRepo user_repository.Repository
	settings Settings
	clock    ports.Clock
	log      ports.Logger
	metrics  ports.MetricsProvider

	sf        singleflight.Group
	mu        sync.Mutex
	lastProbe time.Time
}

func NewSearchService(
	index search.Index,
	postRepo post_repository.Repository,
	userRepo user_repository.Repository,
	settings Settings,
	clock ports.Clock,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *Service {
	if settings.BatchSize < 1 {
		settings.BatchSize = 500
	}
	return &Service{
		index:    index,
		postRepo: postRepo,
		userRepo: userRepo,
		settings: settings,
		clock:    clock,
		log:      log,
		metrics:  metrics,
	}
}

// IndexPost runs detached from ctx cancellation so an aborted request does not
// cut the write short. It is still bounded by the configured timeout.
func (s *Service) IndexPost(ctx context.Context, post *model.Post, author *model.User) {
	ctx, cancel := s.bounded(context.WithoutCancel(ctx))
	defer cancel()

	err := s.index.Index(ctx, model.NewSearchDocument(post, author))
	s.metrics.IncrementSearchIndexOperations("index", err == nil)
	if err != nil {
		s.log.Warn("Search index sync failed",
			slog.Int64("post_id", post.ID),
			slog.String("error", fmt.Errorf("%w: %v", custom_errors.ErrIndexSync, err).Error()))
	}
}

// EnsureIndexed rebuilds the index from the post store when it is empty. The
// probe runs at most once per probe interval and concurrent callers share one
// rebuild.
func (s *Service) EnsureIndexed(ctx context.Context) error {
	if !s.probeDue() {
		return nil
	}

	_, err, shared := s.sf.Do(reindexKey, func() (interface{}, error) {
		probeCtx, cancel := s.bounded(ctx)
		count, err := s.index.Count(probeCtx)
		cancel()
		if err != nil {
			return 0, err
		}
		if count > 0 {
			return 0, nil
		}
		return s.Reindex(context.WithoutCancel(ctx))
	})
	if err != nil {
		s.metrics.IncrementSearchIndexOperations("ensure", false)
		s.log.Warn("Search index probe failed", slog.Bool("shared", shared), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", custom_errors.ErrIndexSync, err)
	}
	return nil
}

// Reindex pushes every stored post to the index in id order and returns how
// many documents were written. A document the index rejects is logged and
// skipped; only a failing post store aborts the rebuild.
func (s *Service) Reindex(ctx context.Context) (int, error) {
	start := s.clock.Now()
	var afterID int64
	indexed, failed := 0, 0

	for {
		batch, err := s.postRepo.Scan(ctx, afterID, s.settings.BatchSize)
		if err != nil {
			return indexed, err
		}
		if len(batch) == 0 {
			break
		}

		detailed, err := postview.Attach(ctx, s.userRepo, batch)
		if err != nil {
			return indexed, err
		}
		for _, item := range detailed {
			indexCtx, cancel := s.bounded(ctx)
			err := s.index.Index(indexCtx, model.NewSearchDocument(item.Post, item.Author))
			cancel()
			s.metrics.IncrementSearchIndexOperations("reindex", err == nil)
			if err != nil {
				failed++
				s.log.Warn("Failed to index post during rebuild",
					slog.Int64("post_id", item.Post.ID),
					slog.String("error", err.Error()))
				continue
			}
			indexed++
		}
		afterID = batch[len(batch)-1].ID
	}

	s.log.Info("Search index rebuilt",
		slog.Int("documents", indexed),
		slog.Int("failed", failed),
		slog.Duration("took", s.clock.Now().Sub(start)))
	return indexed, nil
}

func (s *Service) Search(ctx context.Context, query string, pagination model.Pagination) (*model.Page[*model.PostDetailed], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, custom_errors.ErrEmptySearchQuery
	}
	if pagination.PageSize < 1 {
		return nil, custom_errors.ErrInvalidPageSize
	}
	if pagination.Page < 1 {
		pagination.Page = 1
	}

	ids, total, err := s.query(ctx, query, pagination)
	if err != nil {
		return nil, err
	}
	if clamped := pagination.Clamp(total); clamped.Page != pagination.Page {
		pagination = clamped
		if ids, total, err = s.query(ctx, query, pagination); err != nil {
			return nil, err
		}
	}

	posts, err := s.postRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*model.Post, len(posts))
	for _, post := range posts {
		byID[post.ID] = post
	}
	ordered := make([]*model.Post, 0, len(ids))
	for _, id := range ids {
		if post, ok := byID[id]; ok {
			ordered = append(ordered, post)
		}
	}

	detailed, err := postview.Attach(ctx, s.userRepo, ordered)
	if err != nil {
		return nil, err
	}
	return model.NewPage(detailed, pagination, total), nil
}

func (s *Service) query(ctx context.Context, query string, pagination model.Pagination) ([]int64, int, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	ids, total, err := s.index.Query(ctx, query, pagination.Offset(), pagination.PageSize)
	s.metrics.IncrementSearchIndexOperations("query", err == nil)
	if err != nil {
		s.log.Warn("Search query failed", slog.String("query", query), slog.String("error", err.Error()))
		return nil, 0, err
	}
	return ids, total, nil
}

func (s *Service) probeDue() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if !s.lastProbe.IsZero() && now.Sub(s.lastProbe) < s.settings.ProbeInterval {
		return false
	}
	s.lastProbe = now
	return true
}

func (s *Service) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.settings.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.settings.Timeout)
}
