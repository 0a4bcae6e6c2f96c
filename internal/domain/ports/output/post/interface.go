package post_repository

import (
	"context"
	model "microblog-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/post --outpkg mocks --with-expecter --filename PostRepository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	// GetByIDs returns the posts that exist, in no particular order.
	GetByIDs(ctx context.Context, ids []int64) ([]*model.Post, error)
	Count(ctx context.Context, filters model.PostFilters) (int, error)
	// List orders by (created_at DESC, id DESC).
	List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error)
	// Scan walks the whole store in id order, returning up to limit posts with id > afterID.
	Scan(ctx context.Context, afterID int64, limit int) ([]*model.Post, error)
}
