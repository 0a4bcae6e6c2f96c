package handler

import (
	"net/http/httptest"
	"testing"

	"microblog-service/internal/custom_errors"
	model "microblog-service/internal/domain/models"
	"microblog-service/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
)

func TestPaginator_Parse(t *testing.T) {
	paginator := NewPaginator(config.Feed{PostsPerPage: 10, MaxPageSize: 50})

	tests := []struct {
		name      string
		query     string
		want      model.Pagination
		wantError error
	}{
		{name: "defaults", query: "", want: model.Pagination{Page: 1, PageSize: 10}},
		{name: "explicit", query: "page=3&page_size=20", want: model.Pagination{Page: 3, PageSize: 20}},
		{name: "capped", query: "page_size=500", want: model.Pagination{Page: 1, PageSize: 50}},
		{name: "negative page left for clamping", query: "page=-2", want: model.Pagination{Page: -2, PageSize: 10}},
		{name: "zero size left for the service", query: "page_size=0", want: model.Pagination{Page: 1, PageSize: 0}},
		{name: "bad page", query: "page=two", wantError: custom_errors.ErrInvalidPageNumber},
		{name: "bad size", query: "page_size=ten", wantError: custom_errors.ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := paginator.Parse(httptest.NewRequest("GET", "/?"+tt.query, nil))
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToPostResponse_MissingAuthor(t *testing.T) {
	resp := toPostResponse(&model.PostDetailed{Post: &model.Post{ID: 4, Body: "orphan"}})

	assert.Equal(t, int64(4), resp.ID)
	assert.Nil(t, resp.Author)
	assert.Nil(t, resp.CreatedAt)
}
