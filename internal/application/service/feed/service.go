package feed_service

import (
	"context"
	"log/slog"

	"microblog-service/internal/application/service/postview"
	model "microblog-service/internal/domain/models"
	ports "microblog-service/internal/domain/ports/output"
	post_repository "microblog-service/internal/domain/ports/output/post"
	user_repository "microblog-service/internal/domain/ports/output/user"
)

// Service composes a user's home timeline: their own posts plus the posts of
// everyone they follow, newest first.
type Service struct {
	postRepo post_repository.Repository
	userRepo user_repository.Repository
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewFeedService(postRepo post_repository.Repository, userRepo user_repository.Repository, log ports.Logger, metrics ports.MetricsProvider) *Service {
	return &Service{postRepo: postRepo, userRepo: userRepo, log: log, metrics: metrics}
}

func (s *Service) FollowedPosts(ctx context.Context, userID int64, pagination model.Pagination) (*model.Page[*model.PostDetailed], error) {
	page, err := postview.ListPage(ctx, s.postRepo, s.userRepo, model.PostFilters{FollowedBy: &userID}, pagination)
	s.metrics.IncrementPostOperations("feed", err == nil)
	if err != nil {
		s.log.Debug("Failed to compose feed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}
	return page, nil
}
