package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Clamp(t *testing.T) {
	tests := []struct {
		name  string
		in    Pagination
		total int
		want  int
	}{
		{name: "first page", in: Pagination{Page: 1, PageSize: 10}, total: 25, want: 1},
		{name: "last partial page", in: Pagination{Page: 3, PageSize: 10}, total: 25, want: 3},
		{name: "past the end", in: Pagination{Page: 9, PageSize: 10}, total: 25, want: 3},
		{name: "zero", in: Pagination{Page: 0, PageSize: 10}, total: 25, want: 1},
		{name: "negative", in: Pagination{Page: -4, PageSize: 10}, total: 25, want: 1},
		{name: "empty result", in: Pagination{Page: 5, PageSize: 10}, total: 0, want: 1},
		{name: "exact multiple", in: Pagination{Page: 3, PageSize: 10}, total: 20, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp(tt.total)
			assert.Equal(t, tt.want, got.Page)
			assert.Equal(t, tt.in.PageSize, got.PageSize)
		})
	}
}

func TestNewPage(t *testing.T) {
	page := NewPage([]int{1, 2}, Pagination{Page: 2, PageSize: 2}, 5)
	assert.True(t, page.HasPrev)
	assert.True(t, page.HasNext)

	last := NewPage([]int{5}, Pagination{Page: 3, PageSize: 2}, 5)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)

	empty := NewPage[int](nil, Pagination{Page: 1, PageSize: 10}, 0)
	assert.NotNil(t, empty.Items)
	assert.False(t, empty.HasPrev)
	assert.False(t, empty.HasNext)
}
