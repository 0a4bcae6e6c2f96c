package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	model "microblog-service/internal/domain/models"
	ports "microblog-service/internal/domain/ports/output"
	"microblog-service/internal/infrastructure/inbound/http/middleware"
	"microblog-service/internal/infrastructure/inbound/http/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type PostService interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
	GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error)
	AllPosts(ctx context.Context, pagination model.Pagination) (*model.Page[*model.PostDetailed], error)
}

type FeedService interface {
	FollowedPosts(ctx context.Context, userID int64, pagination model.Pagination) (*model.Page[*model.PostDetailed], error)
}

type PostHandler struct {
	posts     PostService
	feed      FeedService
	paginator Paginator
	validate  *validator.Validate
	log       ports.Logger
}

func NewPostHandler(posts PostService, feed FeedService, paginator Paginator, validate *validator.Validate, log ports.Logger) *PostHandler {
	return &PostHandler{posts: posts, feed: feed, paginator: paginator, validate: validate, log: log}
}

// CreatePostRequest leaves body length to the post service, which counts
// characters rather than bytes and treats blank bodies as empty.
type CreatePostRequest struct {
	Body     string `json:"body" validate:"required"`
	Language string `json:"language" validate:"omitempty,max=5"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req CreatePostRequest
	if !decode(w, r, h.validate, &req) {
		return
	}

	post, err := h.posts.CreatePost(r.Context(), &model.CreatePostDTO{
		AuthorID: userID,
		Body:     req.Body,
		Language: req.Language,
	})
	if err != nil {
		h.log.Debug("Create post failed", slog.Int64("author_id", userID), slog.String("error", err.Error()))
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, toPostResponse(post))
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		response.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := h.posts.GetPostByID(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toPostResponse(post))
}

func (h *PostHandler) Explore(w http.ResponseWriter, r *http.Request) {
	pagination, err := h.paginator.Parse(r)
	if err != nil {
		response.FromError(w, err)
		return
	}

	page, err := h.posts.AllPosts(r.Context(), pagination)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toPageResponse(page))
}

func (h *PostHandler) Feed(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	pagination, err := h.paginator.Parse(r)
	if err != nil {
		response.FromError(w, err)
		return
	}

	page, err := h.feed.FollowedPosts(r.Context(), userID, pagination)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toPageResponse(page))
}
