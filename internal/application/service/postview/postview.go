// Package postview turns stored posts into pages of posts with their authors.
package postview

import (
	"context"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	post_repository "microblog-service/internal/domain/ports/output/post"
	user_repository "microblog-service/internal/domain/ports/output/user"
)

// Attach pairs every post with its author, keeping the order of posts. Authors
// are loaded with a single query.
func Attach(ctx context.Context, users user_repository.Repository, posts []*model.Post) ([]*model.PostDetailed, error) {
	if len(posts) == 0 {
		return []*model.PostDetailed{}, nil
	}

	seen := make(map[int64]struct{}, len(posts))
	authorIDs := make([]int64, 0, len(posts))
	for _, post := range posts {
		if _, ok := seen[post.AuthorID]; !ok {
			seen[post.AuthorID] = struct{}{}
			authorIDs = append(authorIDs, post.AuthorID)
		}
	}

	authors, err := users.GetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*model.User, len(authors))
	for _, author := range authors {
		byID[author.ID] = author
	}

	result := make([]*model.PostDetailed, 0, len(posts))
	for _, post := range posts {
		result = append(result, &model.PostDetailed{Post: post, Author: byID[post.AuthorID]})
	}
	return result, nil
}

// ListPage counts the posts matching filters, clamps the requested page into
// range and loads it newest first.
func ListPage(
	ctx context.Context,
	posts post_repository.Repository,
	users user_repository.Repository,
	filters model.PostFilters,
	pagination model.Pagination,
) (*model.Page[*model.PostDetailed], error) {
	if pagination.PageSize < 1 {
		return nil, custom_errors.ErrInvalidPageSize
	}

	total, err := posts.Count(ctx, filters)
	if err != nil {
		return nil, err
	}
	pagination = pagination.Clamp(total)

	if total == 0 {
		return model.NewPage[*model.PostDetailed](nil, pagination, 0), nil
	}

	limit, offset := pagination.PageSize, pagination.Offset()
	filters.Limit = &limit
	filters.Offset = &offset

	items, err := posts.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	detailed, err := Attach(ctx, users, items)
	if err != nil {
		return nil, err
	}
	return model.NewPage(detailed, pagination, total), nil
}
