package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	model "microblog-service/internal/domain/models"
	ports "microblog-service/internal/domain/ports/output"
	"microblog-service/internal/infrastructure/inbound/http/response"

	"github.com/go-playground/validator/v10"
)

type Authenticator interface {
	Register(ctx context.Context, user *model.RegisterUserDTO) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, string, error)
}

type AuthHandler struct {
	users    Authenticator
	validate *validator.Validate
	log      ports.Logger
}

func NewAuthHandler(users Authenticator, validate *validator.Validate, log ports.Logger) *AuthHandler {
	return &AuthHandler{users: users, validate: validate, log: log}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decode(w, r, h.validate, &req) {
		return
	}

	user, err := h.users.Register(r.Context(), &model.RegisterUserDTO{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.Debug("Register failed", slog.String("username", req.Username), slog.String("error", err.Error()))
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decode(w, r, h.validate, &req) {
		return
	}

	user, token, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.log.Debug("Login failed", slog.String("username", req.Username), slog.String("error", err.Error()))
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, &LoginResponse{Token: token, User: toUserResponse(user)})
}

// decode reads a JSON body into dst and validates it, answering 400 itself on
// failure.
func decode(w http.ResponseWriter, r *http.Request, validate *validator.Validate, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.Error(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return false
	}
	return true
}
