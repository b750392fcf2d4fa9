package entity

import "time"

// CartItem is one (book, quantity) line in the cart. There is at most one
// line per bookId, enforced by look-up-then-update logic in the store rather
// than a uniqueness constraint.
type CartItem struct {
	ID        string    `json:"id"`
	BookID    string    `json:"bookId"`
	Quantity  int       `json:"quantity"`
	AddedAt   string    `json:"addedAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
