package handler

import (
	"context"
	"net/http"

	model "microblog-service/internal/domain/models"
	"microblog-service/internal/infrastructure/inbound/http/response"
)

type Searcher interface {
	Search(ctx context.Context, query string, pagination model.Pagination) (*model.Page[*model.PostDetailed], error)
}

type SearchHandler struct {
	search    Searcher
	paginator Paginator
}

func NewSearchHandler(search Searcher, paginator Paginator) *SearchHandler {
	return &SearchHandler{search: search, paginator: paginator}
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	pagination, err := h.paginator.Parse(r)
	if err != nil {
		response.FromError(w, err)
		return
	}

	page, err := h.search.Search(r.Context(), r.URL.Query().Get("q"), pagination)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toPageResponse(page))
}

func Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
