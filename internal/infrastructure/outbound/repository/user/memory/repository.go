package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	ports "microblog-service/internal/domain/ports/output"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct {
	log    ports.Logger
	mu     sync.RWMutex
	users  map[int64]*model.User
	nextID int64
}

func NewUserRepository(log ports.Logger) *UserRepository {
	return &UserRepository{
		log:    log,
		users:  make(map[int64]*model.User),
		nextID: 1,
	}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, existing := range u.users {
		if existing.Username == user.Username {
			return nil, custom_errors.ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return nil, custom_errors.ErrEmailTaken
		}
	}

	newUser := *user
	newUser.ID = u.nextID
	u.nextID++
	u.users[newUser.ID] = &newUser

	result := newUser
	return &result, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, exists := u.users[id]
	if !exists {
		u.log.Debug("User not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrUserNotFound
	}
	result := *user
	return &result, nil
}

func (u *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	result := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if user, exists := u.users[id]; exists {
			userCopy := *user
			result = append(result, &userCopy)
		}
	}
	return result, nil
}

func (u *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return u.find(func(user *model.User) bool { return user.Username == username })
}

func (u *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return u.find(func(user *model.User) bool { return user.Email == email })
}

func (u *UserRepository) UpdateProfile(ctx context.Context, id int64, update *model.UpdateProfileDTO) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, exists := u.users[id]
	if !exists {
		return nil, custom_errors.ErrUserNotFound
	}
	for otherID, other := range u.users {
		if otherID != id && other.Username == update.Username {
			return nil, custom_errors.ErrUsernameTaken
		}
	}

	user.Username = update.Username
	user.AboutMe = update.AboutMe

	result := *user
	return &result, nil
}

func (u *UserRepository) UpdateLastSeen(ctx context.Context, id int64, seenAt time.Time) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, exists := u.users[id]
	if !exists {
		return custom_errors.ErrUserNotFound
	}
	user.LastSeen = pgtype.Timestamptz{Time: seenAt, Valid: true}
	return nil
}

func (u *UserRepository) find(match func(*model.User) bool) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for _, user := range u.users {
		if match(user) {
			result := *user
			return &result, nil
		}
	}
	return nil, custom_errors.ErrUserNotFound
}
