package search

import (
	"context"
	model "microblog-service/internal/domain/models"
)

//go:generate mockery --name Index --dir . --output ../../../../../mocks/search --outpkg mocks --with-expecter --filename SearchIndex.go
type Index interface {
	Index(ctx context.Context, doc *model.SearchDocument) error
	Count(ctx context.Context) (int64, error)
	// Query returns matching post ids in relevance order and the total hit count.
	Query(ctx context.Context, text string, from, size int) ([]int64, int, error)
}
