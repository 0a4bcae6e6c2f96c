package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	model "microblog-service/internal/domain/models"
	ports "microblog-service/internal/domain/ports/output"

	"github.com/jackc/pgx/v5/pgtype"
)

type edge struct {
	follower int64
	followed int64
}

type FollowRepository struct {
	log   ports.Logger
	mu    sync.RWMutex
	edges map[edge]*model.Follow
}

func NewFollowRepository(log ports.Logger) *FollowRepository {
	return &FollowRepository{
		log:   log,
		edges: make(map[edge]*model.Follow),
	}
}

func (f *FollowRepository) Follow(ctx context.Context, followerID, followedID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := edge{follower: followerID, followed: followedID}
	if _, exists := f.edges[key]; exists {
		f.log.Debug("Follow edge already present", slog.Int64("follower_id", followerID), slog.Int64("followed_id", followedID))
		return nil
	}
	f.edges[key] = &model.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
		CreatedAt:  pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	return nil
}

func (f *FollowRepository) Unfollow(ctx context.Context, followerID, followedID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.edges, edge{follower: followerID, followed: followedID})
	return nil
}

func (f *FollowRepository) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, exists := f.edges[edge{follower: followerID, followed: followedID}]
	return exists, nil
}

func (f *FollowRepository) CountFollowing(ctx context.Context, userID int64) (int, error) {
	return len(f.FollowedIDs(userID)), nil
}

func (f *FollowRepository) CountFollowers(ctx context.Context, userID int64) (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	count := 0
	for key := range f.edges {
		if key.followed == userID {
			count++
		}
	}
	return count, nil
}

// FollowedIDs lists the users userID follows, sorted by id.
func (f *FollowRepository) FollowedIDs(userID int64) []int64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	ids := make([]int64, 0)
	for key := range f.edges {
		if key.follower == userID {
			ids = append(ids, key.followed)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
