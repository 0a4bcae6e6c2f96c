package model

type Pagination struct {
	Page     int
	PageSize int
}

// Clamp pulls the page number into [1, last page]. The last page of an empty
// result set is 1.
func (p Pagination) Clamp(total int) Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	last := 1
	if p.PageSize > 0 && total > 0 {
		last = (total + p.PageSize - 1) / p.PageSize
	}
	if p.Page > last {
		p.Page = last
	}
	return p
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type Page[T any] struct {
	Items    []T  `json:"items"`
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	Total    int  `json:"total"`
	HasPrev  bool `json:"has_prev"`
	HasNext  bool `json:"has_next"`
}

func NewPage[T any](items []T, p Pagination, total int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:    items,
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    total,
		HasPrev:  p.Page > 1,
		HasNext:  p.Page*p.PageSize < total,
	}
}
