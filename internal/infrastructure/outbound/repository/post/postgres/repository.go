package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	ports "microblog-service/internal/domain/ports/output"
	"microblog-service/internal/infrastructure/outbound/repository/postgres/db"

	"github.com/jackc/pgx/v5"
)

const postColumns = `p.id, p.author_id, p.body, p.language, p.created_at`

type PostRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewPostRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Creating new post", slog.Int64("author_id", post.AuthorID), slog.String("language", post.Language))

	args := pgx.NamedArgs{
		"author_id":  post.AuthorID,
		"body":       post.Body,
		"language":   post.Language,
		"created_at": post.CreatedAt,
	}

	query := `
		INSERT INTO posts AS p (author_id, body, language, created_at)
		VALUES (@author_id, @body, @language, @created_at)
		RETURNING ` + postColumns

	createdPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.record("post_create", start, false)
		p.log.Error("Error creating post", slog.Int64("author_id", post.AuthorID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.record("post_create", start, true)
	p.log.Debug("Successfully created post", slog.Int64("id", createdPost.ID), slog.Int64("author_id", createdPost.AuthorID))
	return createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Getting post by ID", slog.Int64("id", id))

	query := `SELECT ` + postColumns + ` FROM posts p WHERE p.id = @id`
	post, err := scanPost(p.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		p.record("post_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.record("post_get_by_id", start, true)
	return post, nil
}

func (p *PostRepository) GetByIDs(ctx context.Context, ids []int64) ([]*model.Post, error) {
	if len(ids) == 0 {
		return []*model.Post{}, nil
	}
	start := time.Now()
	p.log.Debug("Getting posts by IDs", slog.Int("count", len(ids)))

	query := `SELECT ` + postColumns + ` FROM posts p WHERE p.id = ANY(@ids)`
	posts, err := p.queryPosts(ctx, query, pgx.NamedArgs{"ids": ids})
	if err != nil {
		p.record("post_get_by_ids", start, false)
		p.log.Error("Error getting posts by ids", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.record("post_get_by_ids", start, true)
	return posts, nil
}

func (p *PostRepository) Count(ctx context.Context, filters model.PostFilters) (int, error) {
	start := time.Now()
	where, args := p.buildWhere(filters)

	query := `SELECT COUNT(*) FROM posts p` + where
	p.log.Debug("Executing count query", slog.String("query", query))

	var total int
	if err := p.db.QueryRow(ctx, query, args).Scan(&total); err != nil {
		p.record("post_count", start, false)
		p.log.Error("Error counting posts", slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}

	p.record("post_count", start, true)
	return total, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	start := time.Now()
	p.log.Debug("Listing posts with filters",
		slog.Any("author_id", filters.AuthorID),
		slog.Any("followed_by", filters.FollowedBy),
		slog.Any("limit", filters.Limit),
		slog.Any("offset", filters.Offset))

	where, args := p.buildWhere(filters)
	query := `SELECT ` + postColumns + ` FROM posts p` + where + ` ORDER BY p.created_at DESC, p.id DESC`

	if filters.Limit != nil {
		query += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		query += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	p.log.Debug("Executing list query", slog.String("query", query))
	posts, err := p.queryPosts(ctx, query, args)
	if err != nil {
		p.record("post_list", start, false)
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.record("post_list", start, true)
	p.log.Debug("Retrieved posts in List", slog.Int("retrieved_posts_count", len(posts)))
	return posts, nil
}

func (p *PostRepository) Scan(ctx context.Context, afterID int64, limit int) ([]*model.Post, error) {
	start := time.Now()
	p.log.Debug("Scanning posts", slog.Int64("after_id", afterID), slog.Int("limit", limit))

	query := `SELECT ` + postColumns + ` FROM posts p WHERE p.id > @after_id ORDER BY p.id ASC LIMIT @limit`
	posts, err := p.queryPosts(ctx, query, pgx.NamedArgs{"after_id": afterID, "limit": limit})
	if err != nil {
		p.record("post_scan", start, false)
		p.log.Error("Error scanning posts", slog.Int64("after_id", afterID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.record("post_scan", start, true)
	return posts, nil
}

func (p *PostRepository) buildWhere(filters model.PostFilters) (string, pgx.NamedArgs) {
	args := pgx.NamedArgs{}
	var whereClauses []string

	if filters.AuthorID != nil {
		whereClauses = append(whereClauses, "p.author_id = @author_id")
		args["author_id"] = *filters.AuthorID
	}
	if filters.FollowedBy != nil {
		whereClauses = append(whereClauses,
			"(p.author_id = @followed_by OR p.author_id IN (SELECT f.followed_id FROM followers f WHERE f.follower_id = @followed_by))")
		args["followed_by"] = *filters.FollowedBy
	}

	if len(whereClauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(whereClauses, " AND "), args
}

func (p *PostRepository) queryPosts(ctx context.Context, query string, args pgx.NamedArgs) ([]*model.Post, error) {
	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*model.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

func (p *PostRepository) record(queryType string, start time.Time, success bool) {
	p.metrics.IncrementDatabaseQueries(queryType, success)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var post model.Post
	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Body,
		&post.Language,
		&post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
