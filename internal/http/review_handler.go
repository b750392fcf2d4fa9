package http

import (
	"encoding/json"
	"net/http"
	"time"

	"bookstore/internal/catalog"
	"bookstore/internal/entity"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviews usecase.ReviewRepository
}

func NewReviewHandler(reviews usecase.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// ServeHTTP dispatches /reviews by method.
func (h *ReviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.List(w, r)
	case http.MethodPost:
		h.Create(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param bookId query string false "Filter by book id"
// @Param verified query bool false "Filter by verified flag"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /reviews [get]
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := parsePositiveInt(q.Get("page"), catalog.DefaultPage)
	limit := parsePositiveInt(q.Get("limit"), catalog.DefaultLimit)

	filter := usecase.ReviewFilter{BookID: q.Get("bookId")}
	if q.Has("verified") {
		filter.Verified = boolPtr(q.Get("verified") == "true")
	}

	reviews, total, err := h.reviews.List(r.Context(), filter, limit, (page-1)*limit)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Failed to fetch reviews", err.Error())
		return
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}

	JSON(w, http.StatusOK, map[string]any{
		"reviews": reviews,
		"pagination": usecase.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	})
}

type createReviewRequest struct {
	BookID   string  `json:"bookId" validate:"required"`
	Author   string  `json:"author" validate:"required"`
	Rating   float64 `json:"rating" validate:"required,gte=0,lte=5"`
	Title    string  `json:"title" validate:"required"`
	Comment  string  `json:"comment" validate:"required"`
	Verified bool    `json:"verified"`
}

// @Summary Submit a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body createReviewRequest true "Review fields"
// @Success 201 {object} entity.Review
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	// `required` fails a zero rating: a rating of 0 counts as missing.
	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "Missing required fields or rating out of range", validationErrors)
		return
	}

	review := entity.Review{
		ID:        "review-" + uuid.NewString(),
		BookID:    req.BookID,
		Author:    req.Author,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Verified:  req.Verified,
	}

	if err := h.reviews.Create(r.Context(), review); err != nil {
		JSONError(w, http.StatusInternalServerError, "Failed to create review", err.Error())
		return
	}
	JSON(w, http.StatusCreated, review)
}
