package user_service

import (
	"context"
	model "microblog-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/user --outpkg mocks --with-expecter --filename UserService.go
type Service interface {
	Register(ctx context.Context, user *model.RegisterUserDTO) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, string, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetProfile(ctx context.Context, viewerID int64, username string) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, userID int64, update *model.UpdateProfileDTO) (*model.User, error)
	TouchLastSeen(ctx context.Context, userID int64) error
}
