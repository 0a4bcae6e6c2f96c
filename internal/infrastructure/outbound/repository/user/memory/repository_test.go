package memory

import (
	"context"
	"testing"
	"time"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	"microblog-service/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(logger.New("test"))

	john, err := repo.Create(ctx, &model.User{Username: "john", Email: "john@example.com"})
	require.NoError(t, err)
	susan, err := repo.Create(ctx, &model.User{Username: "susan", Email: "susan@example.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &model.User{Username: "john", Email: "other@example.com"})
	assert.ErrorIs(t, err, custom_errors.ErrUsernameTaken)
	_, err = repo.Create(ctx, &model.User{Username: "other", Email: "susan@example.com"})
	assert.ErrorIs(t, err, custom_errors.ErrEmailTaken)

	byEmail, err := repo.GetByEmail(ctx, "susan@example.com")
	require.NoError(t, err)
	assert.Equal(t, susan.ID, byEmail.ID)

	_, err = repo.UpdateProfile(ctx, john.ID, &model.UpdateProfileDTO{Username: "susan"})
	assert.ErrorIs(t, err, custom_errors.ErrUsernameTaken)

	renamed, err := repo.UpdateProfile(ctx, john.ID, &model.UpdateProfileDTO{Username: "johnny", AboutMe: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "johnny", renamed.Username)

	_, err = repo.GetByUsername(ctx, "john")
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)

	seen := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateLastSeen(ctx, john.ID, seen))
	reloaded, err := repo.GetByID(ctx, john.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.LastSeen.Time.Equal(seen))

	assert.ErrorIs(t, repo.UpdateLastSeen(ctx, 99, seen), custom_errors.ErrUserNotFound)

	users, err := repo.GetByIDs(ctx, []int64{susan.ID, 99})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
