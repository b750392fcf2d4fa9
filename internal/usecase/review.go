package usecase

import (
	"context"

	"bookstore/internal/entity"
)

type ReviewFilter struct {
	BookID   string
	Verified *bool
}

type ReviewRepository interface {
	// List returns one page of reviews matching the filter plus the total
	// match count, newest first by timestamp.
	List(ctx context.Context, f ReviewFilter, limit, offset int) ([]entity.Review, int, error)

	// Create persists a fully-populated review record.
	Create(ctx context.Context, review entity.Review) error
}
