package uow

import (
	"context"

	follow_repository "microblog-service/internal/domain/ports/output/follow"
	post_repository "microblog-service/internal/domain/ports/output/post"
	user_repository "microblog-service/internal/domain/ports/output/user"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../../mocks/uow --outpkg mocks --with-expecter --filename UnitOfWork.go
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

//go:generate mockery --name Transaction --dir . --output ../../../../../mocks/uow --outpkg mocks --with-expecter --filename Transaction.go
type Transaction interface {
	UserRepository() user_repository.Repository
	PostRepository() post_repository.Repository
	FollowRepository() follow_repository.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
