package user_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	ports "microblog-service/internal/domain/ports/output"
	"microblog-service/internal/domain/ports/output/auth"
	"microblog-service/internal/domain/ports/output/uow"
	user_repository "microblog-service/internal/domain/ports/output/user"

	"github.com/jackc/pgx/v5/pgtype"
)

const maxAboutMeLength = 140

// FollowStats is the part of the follow graph a profile needs.
type FollowStats interface {
	FollowerCount(ctx context.Context, userID int64) (int, error)
	FollowedCount(ctx context.Context, userID int64) (int, error)
	IsFollowing(ctx context.Context, actorID, targetID int64) (bool, error)
}

type Service struct {
	userRepo user_repository.Repository
	uow      uow.UnitOfWork
	hasher   auth.PasswordHasher
	tokens   auth.TokenManager
	follows  FollowStats
	clock    ports.Clock
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewUserService(
	userRepo user_repository.Repository,
	unitOfWork uow.UnitOfWork,
	hasher auth.PasswordHasher,
	tokens auth.TokenManager,
	follows FollowStats,
	clock ports.Clock,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *Service {
	return &Service{
		userRepo: userRepo,
		uow:      unitOfWork,
		hasher:   hasher,
		tokens:   tokens,
		follows:  follows,
		clock:    clock,
		log:      log,
		metrics:  metrics,
	}
}

func (s *Service) Register(ctx context.Context, user *model.RegisterUserDTO) (result *model.User, err error) {
	defer func() { s.metrics.IncrementUserOperations("register", err == nil) }()

	username := strings.TrimSpace(user.Username)
	if username == "" {
		return nil, custom_errors.ErrInvalidUsername
	}
	if err := s.ensureAvailable(ctx, s.userRepo.GetByUsername, username, 0, custom_errors.ErrUsernameTaken); err != nil {
		return nil, err
	}
	if err := s.ensureAvailable(ctx, s.userRepo.GetByEmail, user.Email, 0, custom_errors.ErrEmailTaken); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.log.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, err
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	now := timestamptz(s.clock.Now())
	created, err := tx.UserRepository().Create(ctx, &model.User{
		Username:     username,
		Email:        user.Email,
		PasswordHash: hash,
		LastSeen:     now,
		CreatedAt:    now,
	})
	if err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			s.log.Debug("Rollback after failed register", slog.String("error", rollbackErr.Error()))
		}
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.log.Info("User registered", slog.Int64("user_id", created.ID), slog.String("username", created.Username))
	return created, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.metrics.IncrementUserOperations("login", false)
			return nil, "", custom_errors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.metrics.IncrementUserOperations("login", false)
		if errors.Is(err, custom_errors.ErrInvalidCredentials) {
			return nil, "", custom_errors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token", slog.Int64("user_id", user.ID), slog.String("error", err.Error()))
		return nil, "", err
	}

	s.metrics.IncrementUserOperations("login", true)
	return user, token, nil
}

func (s *Service) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *Service) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

func (s *Service) GetProfile(ctx context.Context, viewerID int64, username string) (*model.UserProfile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	followers, err := s.follows.FollowerCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.follows.FollowedCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	profile := &model.UserProfile{User: user, FollowersCount: followers, FollowingCount: following}
	if viewerID != user.ID {
		if profile.IsFollowing, err = s.follows.IsFollowing(ctx, viewerID, user.ID); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, update *model.UpdateProfileDTO) (result *model.User, err error) {
	defer func() { s.metrics.IncrementUserOperations("update_profile", err == nil) }()

	username := strings.TrimSpace(update.Username)
	if username == "" {
		return nil, custom_errors.ErrInvalidUsername
	}
	if utf8.RuneCountInString(update.AboutMe) > maxAboutMeLength {
		return nil, custom_errors.ErrAboutMeTooLong
	}
	if err := s.ensureAvailable(ctx, s.userRepo.GetByUsername, username, userID, custom_errors.ErrUsernameTaken); err != nil {
		return nil, err
	}

	updated, err := s.userRepo.UpdateProfile(ctx, userID, &model.UpdateProfileDTO{Username: username, AboutMe: update.AboutMe})
	if err != nil {
		return nil, err
	}
	s.log.Debug("Profile updated", slog.Int64("user_id", userID))
	return updated, nil
}

func (s *Service) TouchLastSeen(ctx context.Context, userID int64) error {
	return s.userRepo.UpdateLastSeen(ctx, userID, s.clock.Now())
}

// ensureAvailable fails with taken when lookup finds a user other than owner.
func (s *Service) ensureAvailable(
	ctx context.Context,
	lookup func(context.Context, string) (*model.User, error),
	value string,
	owner int64,
	taken error,
) error {
	existing, err := lookup(ctx, value)
	switch {
	case errors.Is(err, custom_errors.ErrUserNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != owner:
		return taken
	default:
		return nil
	}
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t.UTC().Truncate(time.Microsecond), Valid: true}
}
