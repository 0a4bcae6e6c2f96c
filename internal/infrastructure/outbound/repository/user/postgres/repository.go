package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	ports "microblog-service/internal/domain/ports/output"
	"microblog-service/internal/infrastructure/outbound/repository/postgres/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	userColumns = `id, username, email, password_hash, about_me, last_seen, created_at`

	uniqueViolation        = "23505"
	usernameConstraintName = "users_username_key"
	emailConstraintName    = "users_email_key"
)

type UserRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewUserRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *UserRepository {
	return &UserRepository{db: db, log: log, metrics: metrics}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	start := time.Now()
	u.log.Debug("Creating new user", slog.String("username", user.Username))

	args := pgx.NamedArgs{
		"username":      user.Username,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"about_me":      user.AboutMe,
		"last_seen":     user.LastSeen,
		"created_at":    user.CreatedAt,
	}
	query := `
		INSERT INTO users (username, email, password_hash, about_me, last_seen, created_at)
		VALUES (@username, @email, @password_hash, @about_me, @last_seen, @created_at)
		RETURNING ` + userColumns

	created, err := scanUser(u.db.QueryRow(ctx, query, args))
	if err != nil {
		u.record("user_create", start, false)
		if mapped := mapUniqueViolation(err); mapped != nil {
			u.log.Debug("User violates unique constraint", slog.String("username", user.Username), slog.String("error", mapped.Error()))
			return nil, mapped
		}
		u.log.Error("Error creating user", slog.String("username", user.Username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.record("user_create", start, true)
	u.log.Debug("Successfully created user", slog.Int64("id", created.ID))
	return created, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.getOne(ctx, "user_get_by_id", `SELECT `+userColumns+` FROM users WHERE id = @value`, id)
}

func (u *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return u.getOne(ctx, "user_get_by_username", `SELECT `+userColumns+` FROM users WHERE username = @value`, username)
}

func (u *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return u.getOne(ctx, "user_get_by_email", `SELECT `+userColumns+` FROM users WHERE email = @value`, email)
}

func (u *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]*model.User, error) {
	if len(ids) == 0 {
		return []*model.User{}, nil
	}
	start := time.Now()
	u.log.Debug("Getting users by IDs", slog.Int("count", len(ids)))

	rows, err := u.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = ANY(@ids)`, pgx.NamedArgs{"ids": ids})
	if err != nil {
		u.record("user_get_by_ids", start, false)
		u.log.Error("Error getting users by ids", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	users := make([]*model.User, 0, len(ids))
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			u.record("user_get_by_ids", start, false)
			u.log.Error("Error scanning user during GetByIDs", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		u.record("user_get_by_ids", start, false)
		u.log.Error("Error iterating rows during GetByIDs", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.record("user_get_by_ids", start, true)
	return users, nil
}

func (u *UserRepository) UpdateProfile(ctx context.Context, id int64, update *model.UpdateProfileDTO) (*model.User, error) {
	start := time.Now()
	u.log.Debug("Updating user profile", slog.Int64("id", id), slog.String("username", update.Username))

	args := pgx.NamedArgs{
		"id":       id,
		"username": update.Username,
		"about_me": update.AboutMe,
	}
	query := `UPDATE users SET username = @username, about_me = @about_me WHERE id = @id RETURNING ` + userColumns

	updated, err := scanUser(u.db.QueryRow(ctx, query, args))
	if err != nil {
		u.record("user_update_profile", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found during profile update", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		if mapped := mapUniqueViolation(err); mapped != nil {
			u.log.Debug("Profile update violates unique constraint", slog.Int64("id", id), slog.String("error", mapped.Error()))
			return nil, mapped
		}
		u.log.Error("Error updating user profile", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.record("user_update_profile", start, true)
	return updated, nil
}

func (u *UserRepository) UpdateLastSeen(ctx context.Context, id int64, seenAt time.Time) error {
	start := time.Now()

	args := pgx.NamedArgs{
		"id":        id,
		"last_seen": pgtype.Timestamptz{Time: seenAt, Valid: true},
	}
	result, err := u.db.Exec(ctx, `UPDATE users SET last_seen = @last_seen WHERE id = @id`, args)
	if err != nil {
		u.record("user_update_last_seen", start, false)
		u.log.Error("Error updating last seen", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		u.record("user_update_last_seen", start, false)
		u.log.Debug("User not found during last seen update", slog.Int64("id", id))
		return custom_errors.ErrUserNotFound
	}

	u.record("user_update_last_seen", start, true)
	return nil
}

func (u *UserRepository) getOne(ctx context.Context, queryType, query string, value any) (*model.User, error) {
	start := time.Now()
	u.log.Debug("Getting user", slog.String("query_type", queryType), slog.Any("value", value))

	user, err := scanUser(u.db.QueryRow(ctx, query, pgx.NamedArgs{"value": value}))
	if err != nil {
		u.record(queryType, start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found", slog.String("query_type", queryType), slog.Any("value", value))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user", slog.String("query_type", queryType), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.record(queryType, start, true)
	return user, nil
}

func (u *UserRepository) record(queryType string, start time.Time, success bool) {
	u.metrics.IncrementDatabaseQueries(queryType, success)
	u.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case usernameConstraintName:
		return custom_errors.ErrUsernameTaken
	case emailConstraintName:
		return custom_errors.ErrEmailTaken
	default:
		return nil
	}
}

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.AboutMe,
		&user.LastSeen,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
