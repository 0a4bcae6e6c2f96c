package cache

import (
	"context"
	model "microblog-service/internal/domain/models"
)

//go:generate mockery --name UserCache --dir . --output ../../../../../mocks/cache --outpkg mocks --with-expecter --filename UserCache.go
type UserCache interface {
	GetUser(ctx context.Context, userID int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	SetUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, user *model.User) error
}
