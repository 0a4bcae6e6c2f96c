package cache

import "context"

// FollowCounts holds both cardinalities of a user's edges in the follow graph.
type FollowCounts struct {
	Followers int `json:"followers"`
	Following int `json:"following"`
}

//go:generate mockery --name FollowCache --dir . --output ../../../../../mocks/cache --outpkg mocks --with-expecter --filename FollowCache.go
type FollowCache interface {
	GetCounts(ctx context.Context, userID int64) (*FollowCounts, error)
	SetCounts(ctx context.Context, userID int64, counts *FollowCounts) error
	DeleteCounts(ctx context.Context, userIDs ...int64) error
}
