package post_service

import (
	"context"
	model "microblog-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/post --outpkg mocks --with-expecter --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
	GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error)
	PostsByAuthor(ctx context.Context, authorID int64, pagination model.Pagination) (*model.Page[*model.PostDetailed], error)
	AllPosts(ctx context.Context, pagination model.Pagination) (*model.Page[*model.PostDetailed], error)
}
