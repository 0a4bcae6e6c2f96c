package follow_service

import (
	"context"
	"log/slog"

	"microblog-service/internal/custom_errors"
	ports "microblog-service/internal/domain/ports/output"
	follow_repository "microblog-service/internal/domain/ports/output/follow"
	"microblog-service/internal/domain/ports/output/uow"
	user_repository "microblog-service/internal/domain/ports/output/user"
)

type Service struct {
	followRepo follow_repository.Repository
	userRepo   user_repository.Repository
	uow        uow.UnitOfWork
	log        ports.Logger
	metrics    ports.MetricsProvider
}

func NewFollowService(
	followRepo follow_repository.Repository,
	userRepo user_repository.Repository,
	unitOfWork uow.UnitOfWork,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *Service {
	return &Service{
		followRepo: followRepo,
		userRepo:   userRepo,
		uow:        unitOfWork,
		log:        log,
		metrics:    metrics,
	}
}

// Follow adds the edge actor -> target. Following twice is a no-op.
func (s *Service) Follow(ctx context.Context, actorID, targetID int64) (err error) {
	defer func() { s.metrics.IncrementFollowOperations("follow", err == nil) }()

	return s.changeEdge(ctx, actorID, targetID, func(ctx context.Context, repo follow_repository.Repository) error {
		return repo.Follow(ctx, actorID, targetID)
	})
}

// Unfollow removes the edge actor -> target if present.
func (s *Service) Unfollow(ctx context.Context, actorID, targetID int64) (err error) {
	defer func() { s.metrics.IncrementFollowOperations("unfollow", err == nil) }()

	return s.changeEdge(ctx, actorID, targetID, func(ctx context.Context, repo follow_repository.Repository) error {
		return repo.Unfollow(ctx, actorID, targetID)
	})
}

func (s *Service) IsFollowing(ctx context.Context, actorID, targetID int64) (bool, error) {
	return s.followRepo.IsFollowing(ctx, actorID, targetID)
}

func (s *Service) FollowedCount(ctx context.Context, userID int64) (int, error) {
	return s.followRepo.CountFollowing(ctx, userID)
}

func (s *Service) FollowerCount(ctx context.Context, userID int64) (int, error) {
	return s.followRepo.CountFollowers(ctx, userID)
}

func (s *Service) changeEdge(
	ctx context.Context,
	actorID, targetID int64,
	apply func(ctx context.Context, repo follow_repository.Repository) error,
) error {
	if actorID == targetID {
		s.log.Debug("Rejected follow edge to self", slog.Int64("user_id", actorID))
		return custom_errors.ErrSelfFollow
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		s.log.Debug("Follow target lookup failed", slog.Int64("target_id", targetID), slog.String("error", err.Error()))
		return err
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	if err := apply(ctx, tx.FollowRepository()); err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			s.log.Debug("Rollback after failed follow change", slog.String("error", rollbackErr.Error()))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	s.log.Debug("Follow graph changed", slog.Int64("actor_id", actorID), slog.Int64("target_id", targetID))
	return nil
}
