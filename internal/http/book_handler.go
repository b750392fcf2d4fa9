package http

import (
	"net/http"
	"strconv"

	"bookstore/internal/catalog"
	"bookstore/internal/usecase"
)

type BookHandler struct {
	catalog usecase.CatalogLister
}

func NewBookHandler(lister usecase.CatalogLister) *BookHandler {
	return &BookHandler{catalog: lister}
}

// @Summary List books
// @Description Get books with filters and pagination; served from the store or, when it is unreachable, the fallback catalog
// @Tags books
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Param id query string false "Exact book id"
// @Param genre query string false "Genre membership filter"
// @Param featured query bool false "Featured flag"
// @Param inStock query bool false "In-stock flag"
// @Param search query string false "Free-text search"
// @Success 200 {object} usecase.BookPage
// @Router /books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := parsePositiveInt(q.Get("page"), catalog.DefaultPage)
	limit := parsePositiveInt(q.Get("limit"), catalog.DefaultLimit)

	filter := usecase.BookFilter{
		ID:     q.Get("id"),
		Genre:  q.Get("genre"),
		Search: q.Get("search"),
	}
	// Presence matters for the boolean filters: ?featured=false constrains,
	// an absent parameter does not.
	if q.Has("featured") {
		filter.Featured = boolPtr(q.Get("featured") == "true")
	}
	if q.Has("inStock") {
		filter.InStock = boolPtr(q.Get("inStock") == "true")
	}

	result := h.catalog.List(r.Context(), filter, page, limit)
	JSON(w, http.StatusOK, result)
}

func parsePositiveInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func boolPtr(b bool) *bool {
	return &b
}
