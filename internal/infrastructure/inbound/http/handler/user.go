package handler

import (
	"context"
	"log/slog"
	"net/http"

	model "microblog-service/internal/domain/models"
	ports "microblog-service/internal/domain/ports/output"
	"microblog-service/internal/infrastructure/inbound/http/middleware"
	"microblog-service/internal/infrastructure/inbound/http/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type UserService interface {
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetProfile(ctx context.Context, viewerID int64, username string) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, userID int64, update *model.UpdateProfileDTO) (*model.User, error)
}

type AuthorPosts interface {
	PostsByAuthor(ctx context.Context, authorID int64, pagination model.Pagination) (*model.Page[*model.PostDetailed], error)
}

type FollowService interface {
	Follow(ctx context.Context, actorID, targetID int64) error
	Unfollow(ctx context.Context, actorID, targetID int64) error
}

type UserHandler struct {
	users     UserService
	posts     AuthorPosts
	follows   FollowService
	paginator Paginator
	validate  *validator.Validate
	log       ports.Logger
}

func NewUserHandler(
	users UserService,
	posts AuthorPosts,
	follows FollowService,
	paginator Paginator,
	validate *validator.Validate,
	log ports.Logger,
) *UserHandler {
	return &UserHandler{
		users:     users,
		posts:     posts,
		follows:   follows,
		paginator: paginator,
		validate:  validate,
		log:       log,
	}
}

type UpdateProfileRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	AboutMe  string `json:"about_me" validate:"max=140"`
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := middleware.UserIDFromContext(r.Context())

	profile, err := h.users.GetProfile(r.Context(), viewerID, mux.Vars(r)["username"])
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, &ProfileResponse{
		User:           toUserResponse(profile.User),
		FollowersCount: profile.FollowersCount,
		FollowingCount: profile.FollowingCount,
		IsFollowing:    profile.IsFollowing,
	})
}

func (h *UserHandler) Posts(w http.ResponseWriter, r *http.Request) {
	pagination, err := h.paginator.Parse(r)
	if err != nil {
		response.FromError(w, err)
		return
	}

	user, err := h.users.GetUserByUsername(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	page, err := h.posts.PostsByAuthor(r.Context(), user.ID, pagination)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toPageResponse(page))
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req UpdateProfileRequest
	if !decode(w, r, h.validate, &req) {
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), userID, &model.UpdateProfileDTO{
		Username: req.Username,
		AboutMe:  req.AboutMe,
	})
	if err != nil {
		h.log.Debug("Update profile failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	h.changeFollow(w, r, h.follows.Follow)
}

func (h *UserHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.changeFollow(w, r, h.follows.Unfollow)
}

func (h *UserHandler) changeFollow(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, actorID, targetID int64) error) {
	actorID, _ := middleware.UserIDFromContext(r.Context())

	target, err := h.users.GetUserByUsername(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	if err := apply(r.Context(), actorID, target.ID); err != nil {
		h.log.Debug("Follow change failed",
			slog.Int64("actor_id", actorID),
			slog.Int64("target_id", target.ID),
			slog.String("error", err.Error()))
		response.FromError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
