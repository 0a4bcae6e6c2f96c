package follow_repository

import "context"

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/follow --outpkg mocks --with-expecter --filename FollowRepository.go
type Repository interface {
	// Follow and Unfollow are idempotent.
	Follow(ctx context.Context, followerID, followedID int64) error
	Unfollow(ctx context.Context, followerID, followedID int64) error
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)
	CountFollowing(ctx context.Context, userID int64) (int, error)
	CountFollowers(ctx context.Context, userID int64) (int, error)
}
