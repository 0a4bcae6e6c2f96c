package follow_repository_postgres

import (
	"context"
	"log/slog"
	"time"

	"microblog-service/internal/custom_errors"
	ports "microblog-service/internal/domain/ports/output"
	"microblog-service/internal/infrastructure/outbound/repository/postgres/db"

	"github.com/jackc/pgx/v5"
)

type FollowRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewFollowRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *FollowRepository {
	return &FollowRepository{db: db, log: log, metrics: metrics}
}

func (f *FollowRepository) Follow(ctx context.Context, followerID, followedID int64) error {
	start := time.Now()
	f.log.Debug("Inserting follow edge", slog.Int64("follower_id", followerID), slog.Int64("followed_id", followedID))

	args := pgx.NamedArgs{"follower_id": followerID, "followed_id": followedID}
	query := `
		INSERT INTO followers (follower_id, followed_id)
		VALUES (@follower_id, @followed_id)
		ON CONFLICT (follower_id, followed_id) DO NOTHING`

	result, err := f.db.Exec(ctx, query, args)
	if err != nil {
		f.record("follow_insert", start, false)
		f.log.Error("Error inserting follow edge",
			slog.Int64("follower_id", followerID),
			slog.Int64("followed_id", followedID),
			slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	f.record("follow_insert", start, true)
	if result.RowsAffected() == 0 {
		f.log.Debug("Follow edge already present", slog.Int64("follower_id", followerID), slog.Int64("followed_id", followedID))
	}
	return nil
}

func (f *FollowRepository) Unfollow(ctx context.Context, followerID, followedID int64) error {
	start := time.Now()
	f.log.Debug("Deleting follow edge", slog.Int64("follower_id", followerID), slog.Int64("followed_id", followedID))

	args := pgx.NamedArgs{"follower_id": followerID, "followed_id": followedID}
	result, err := f.db.Exec(ctx, `DELETE FROM followers WHERE follower_id = @follower_id AND followed_id = @followed_id`, args)
	if err != nil {
		f.record("follow_delete", start, false)
		f.log.Error("Error deleting follow edge",
			slog.Int64("follower_id", followerID),
			slog.Int64("followed_id", followedID),
			slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	f.record("follow_delete", start, true)
	if result.RowsAffected() == 0 {
		f.log.Debug("Follow edge was not present", slog.Int64("follower_id", followerID), slog.Int64("followed_id", followedID))
	}
	return nil
}

func (f *FollowRepository) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	start := time.Now()

	args := pgx.NamedArgs{"follower_id": followerID, "followed_id": followedID}
	query := `SELECT EXISTS (SELECT 1 FROM followers WHERE follower_id = @follower_id AND followed_id = @followed_id)`

	var exists bool
	if err := f.db.QueryRow(ctx, query, args).Scan(&exists); err != nil {
		f.record("follow_exists", start, false)
		f.log.Error("Error checking follow edge", slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery
	}

	f.record("follow_exists", start, true)
	return exists, nil
}

func (f *FollowRepository) CountFollowing(ctx context.Context, userID int64) (int, error) {
	return f.count(ctx, "follow_count_following", `SELECT COUNT(*) FROM followers WHERE follower_id = @user_id`, userID)
}

func (f *FollowRepository) CountFollowers(ctx context.Context, userID int64) (int, error) {
	return f.count(ctx, "follow_count_followers", `SELECT COUNT(*) FROM followers WHERE followed_id = @user_id`, userID)
}

func (f *FollowRepository) count(ctx context.Context, queryType, query string, userID int64) (int, error) {
	start := time.Now()

	var total int
	if err := f.db.QueryRow(ctx, query, pgx.NamedArgs{"user_id": userID}).Scan(&total); err != nil {
		f.record(queryType, start, false)
		f.log.Error("Error counting follow edges",
			slog.String("query_type", queryType),
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}

	f.record(queryType, start, true)
	return total, nil
}

func (f *FollowRepository) record(queryType string, start time.Time, success bool) {
	f.metrics.IncrementDatabaseQueries(queryType, success)
	f.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}
