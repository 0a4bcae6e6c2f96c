package noop

import (
	"context"

	model "microblog-service/internal/domain/models"
)

// Index is wired when search is disabled. Count reports a non-empty index so
// no reindex is ever attempted.
type Index struct{}

func NewIndex() *Index {
	return &Index{}
}

func (Index) Index(ctx context.Context, doc *model.SearchDocument) error {
	return nil
}

func (Index) Count(ctx context.Context) (int64, error) {
	return 1, nil
}

func (Index) Query(ctx context.Context, text string, from, size int) ([]int64, int, error) {
	return []int64{}, 0, nil
}
