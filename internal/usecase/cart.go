package usecase

import (
	"context"

	"bookstore/internal/entity"
)

// CartSelector addresses one cart line by its own id or by the referenced
// book id. Exactly one field should be set.
type CartSelector struct {
	ID     string
	BookID string
}

func (s CartSelector) Empty() bool { return s.ID == "" && s.BookID == "" }

type CartRepository interface {
	// List returns all cart lines ordered by addedAt descending.
	List(ctx context.Context) ([]entity.CartItem, error)

	// Add increments the existing line for bookID by quantity, or creates a
	// new line. The returned bool is true when a new line was created.
	Add(ctx context.Context, bookID string, quantity int) (entity.CartItem, bool, error)

	// UpdateQuantity sets the matching line's quantity (>= 1) and returns the
	// updated line. Returns ErrNotFound when nothing matches.
	UpdateQuantity(ctx context.Context, sel CartSelector, quantity int) (entity.CartItem, error)

	// Remove deletes the matching line and returns it.
	// Returns ErrNotFound when nothing matches.
	Remove(ctx context.Context, sel CartSelector) (entity.CartItem, error)
}
