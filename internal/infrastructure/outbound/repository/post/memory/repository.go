package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	ports "microblog-service/internal/domain/ports/output"
)

// FollowedLister resolves the follow graph for FollowedBy filters.
type FollowedLister interface {
	FollowedIDs(userID int64) []int64
}

type PostRepository struct {
	log     ports.Logger
	follows FollowedLister
	mu      sync.RWMutex
	posts   map[int64]*model.Post
	nextID  int64
}

func NewPostRepository(log ports.Logger, follows FollowedLister) *PostRepository {
	return &PostRepository{
		log:     log,
		follows: follows,
		posts:   make(map[int64]*model.Post),
		nextID:  1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	newPost := &model.Post{
		ID:        p.nextID,
		AuthorID:  post.AuthorID,
		Body:      post.Body,
		Language:  post.Language,
		CreatedAt: post.CreatedAt,
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) GetByIDs(ctx context.Context, ids []int64) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]*model.Post, 0, len(ids))
	for _, id := range ids {
		if post, exists := p.posts[id]; exists {
			postCopy := *post
			result = append(result, &postCopy)
		}
	}
	return result, nil
}

func (p *PostRepository) Count(ctx context.Context, filters model.PostFilters) (int, error) {
	return len(p.filter(filters)), nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	result := p.filter(filters)

	sort.Slice(result, func(i, j int) bool {
		ti, tj := result[i].CreatedAt.Time, result[j].CreatedAt.Time
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return result[i].ID > result[j].ID
	})

	offset := 0
	if filters.Offset != nil {
		offset = *filters.Offset
	}
	if offset >= len(result) {
		return []*model.Post{}, nil
	}
	result = result[offset:]

	if filters.Limit != nil && *filters.Limit < len(result) {
		result = result[:*filters.Limit]
	}
	return result, nil
}

func (p *PostRepository) Scan(ctx context.Context, afterID int64, limit int) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]*model.Post, 0)
	for id, post := range p.posts {
		if id > afterID {
			postCopy := *post
			result = append(result, &postCopy)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (p *PostRepository) filter(filters model.PostFilters) []*model.Post {
	var authors map[int64]struct{}
	if filters.FollowedBy != nil {
		authors = map[int64]struct{}{*filters.FollowedBy: {}}
		if p.follows != nil {
			for _, id := range p.follows.FollowedIDs(*filters.FollowedBy) {
				authors[id] = struct{}{}
			}
		}
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]*model.Post, 0)
	for _, post := range p.posts {
		if filters.AuthorID != nil && post.AuthorID != *filters.AuthorID {
			continue
		}
		if authors != nil {
			if _, ok := authors[post.AuthorID]; !ok {
				continue
			}
		}
		postCopy := *post
		result = append(result, &postCopy)
	}
	return result
}
