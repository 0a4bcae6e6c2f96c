package memory

import (
	"context"

	follow_repository "microblog-service/internal/domain/ports/output/follow"
	post_repository "microblog-service/internal/domain/ports/output/post"
	user_repository "microblog-service/internal/domain/ports/output/user"
	"microblog-service/internal/domain/ports/output/uow"
)

// UnitOfWork hands out the shared in-memory repositories. Writes are applied
// immediately, so Rollback cannot undo them.
type UnitOfWork struct {
	users   user_repository.Repository
	posts   post_repository.Repository
	follows follow_repository.Repository
}

func NewUnitOfWork(users user_repository.Repository, posts post_repository.Repository, follows follow_repository.Repository) *UnitOfWork {
	return &UnitOfWork{users: users, posts: posts, follows: follows}
}

func (u *UnitOfWork) Begin(ctx context.Context) (uow.Transaction, error) {
	return &transaction{uow: u}, nil
}

type transaction struct {
	uow *UnitOfWork
}

func (t *transaction) UserRepository() user_repository.Repository     { return t.uow.users }
func (t *transaction) PostRepository() post_repository.Repository     { return t.uow.posts }
func (t *transaction) FollowRepository() follow_repository.Repository { return t.uow.follows }
func (t *transaction) Commit(ctx context.Context) error               { return nil }
func (t *transaction) Rollback(ctx context.Context) error             { return nil }
