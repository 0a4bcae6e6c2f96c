package handler

import (
	"net/http"
	"strconv"
	"time"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	"microblog-service/internal/infrastructure/config"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserResponse struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	AboutMe   string     `json:"about_me"`
	LastSeen  *time.Time `json:"last_seen,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type AuthorResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type PostResponse struct {
	ID        int64           `json:"id"`
	Body      string          `json:"body"`
	Language  string          `json:"language,omitempty"`
	CreatedAt *time.Time      `json:"created_at,omitempty"`
	Author    *AuthorResponse `json:"author,omitempty"`
}

type PageResponse struct {
	Items    []*PostResponse `json:"items"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Total    int             `json:"total"`
	HasPrev  bool            `json:"has_prev"`
	HasNext  bool            `json:"has_next"`
}

type ProfileResponse struct {
	User           *UserResponse `json:"user"`
	FollowersCount int           `json:"followers_count"`
	FollowingCount int           `json:"following_count"`
	IsFollowing    bool          `json:"is_following"`
}

func toUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		AboutMe:   u.AboutMe,
		LastSeen:  timePtr(u.LastSeen),
		CreatedAt: timePtr(u.CreatedAt),
	}
}

func toPostResponse(p *model.PostDetailed) *PostResponse {
	resp := &PostResponse{}
	if p.Post != nil {
		resp.ID = p.Post.ID
		resp.Body = p.Post.Body
		resp.Language = p.Post.Language
		resp.CreatedAt = timePtr(p.Post.CreatedAt)
	}
	if p.Author != nil {
		resp.Author = &AuthorResponse{ID: p.Author.ID, Username: p.Author.Username}
	}
	return resp
}

func toPageResponse(page *model.Page[*model.PostDetailed]) *PageResponse {
	items := make([]*PostResponse, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, toPostResponse(item))
	}
	return &PageResponse{
		Items:    items,
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
		HasPrev:  page.HasPrev,
		HasNext:  page.HasNext,
	}
}

func timePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time.UTC()
	return &t
}

// Paginator reads page and page_size query parameters. page defaults to 1,
// page_size defaults to the configured page size and is capped at the maximum.
type Paginator struct {
	defaultSize int
	maxSize     int
}

func NewPaginator(cfg config.Feed) Paginator {
	return Paginator{defaultSize: cfg.PostsPerPage, maxSize: cfg.MaxPageSize}
}

func (p Paginator) Parse(r *http.Request) (model.Pagination, error) {
	pagination := model.Pagination{Page: 1, PageSize: p.defaultSize}
	q := r.URL.Query()

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return pagination, custom_errors.ErrInvalidPageNumber
		}
		pagination.Page = page
	}
	if raw := q.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return pagination, custom_errors.ErrInvalidPageSize
		}
		pagination.PageSize = size
	}
	if p.maxSize > 0 && pagination.PageSize > p.maxSize {
		pagination.PageSize = p.maxSize
	}
	return pagination, nil
}
