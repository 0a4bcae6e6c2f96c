package search_service

import (
	"context"
	model "microblog-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/search --outpkg mocks --with-expecter --filename SearchService.go
type Service interface {
	IndexPost(ctx context.Context, post *model.Post, author *model.User)
	EnsureIndexed(ctx context.Context) error
	Reindex(ctx context.Context) (int, error)
	Search(ctx context.Context, query string, pagination model.Pagination) (*model.Page[*model.PostDetailed], error)
}
