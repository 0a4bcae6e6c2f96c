package follow_service

import "context"

//go:generate mockery --name Service --dir . --output ../../../../../mocks/follow --outpkg mocks --with-expecter --filename FollowService.go
type Service interface {
	Follow(ctx context.Context, actorID, targetID int64) error
	Unfollow(ctx context.Context, actorID, targetID int64) error
	IsFollowing(ctx context.Context, actorID, targetID int64) (bool, error)
	FollowedCount(ctx context.Context, userID int64) (int, error)
	FollowerCount(ctx context.Context, userID int64) (int, error)
}
