package feed_service

import (
	"context"
	model "microblog-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/feed --outpkg mocks --with-expecter --filename FeedService.go
type Service interface {
	FollowedPosts(ctx context.Context, userID int64, pagination model.Pagination) (*model.Page[*model.PostDetailed], error)
}
