package store

import (
	"context"
	"errors"
	"time"

	"bookstore/internal/entity"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CartPG struct {
	client *Client
}

func NewCartPG(client *Client) *CartPG {
	return &CartPG{client: client}
}

const cartColumns = "id, book_id, quantity, added_at, created_at, updated_at"

func (r *CartPG) List(ctx context.Context) ([]entity.CartItem, error) {
	db, err := r.client.Pool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(ctx, `
		SELECT `+cartColumns+`
		FROM cart_items
		ORDER BY added_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.CartItem
	for rows.Next() {
		var item entity.CartItem
		if err := scanCartItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Add looks the line up first and then updates or inserts. The read and the
// write are separate statements, so two concurrent adds for the same book can
// lose an increment; known limitation.
func (r *CartPG) Add(ctx context.Context, bookID string, quantity int) (entity.CartItem, bool, error) {
	db, err := r.client.Pool(ctx)
	if err != nil {
		return entity.CartItem{}, false, err
	}

	var existingID string
	var existingQty int
	err = db.QueryRow(ctx,
		`SELECT id, quantity FROM cart_items WHERE book_id = $1 LIMIT 1`,
		bookID,
	).Scan(&existingID, &existingQty)

	switch {
	case err == nil:
		var item entity.CartItem
		row := db.QueryRow(ctx, `
			UPDATE cart_items
			SET quantity = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING `+cartColumns,
			existingID, existingQty+quantity)
		if err := scanCartItem(row, &item); err != nil {
			return entity.CartItem{}, false, err
		}
		return item, false, nil

	case errors.Is(err, pgx.ErrNoRows):
		var item entity.CartItem
		row := db.QueryRow(ctx, `
			INSERT INTO cart_items (id, book_id, quantity, added_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			RETURNING `+cartColumns,
			"cart-"+uuid.NewString(), bookID, quantity, time.Now().UTC().Format(time.RFC3339))
		if err := scanCartItem(row, &item); err != nil {
			return entity.CartItem{}, false, err
		}
		return item, true, nil

	default:
		return entity.CartItem{}, false, err
	}
}

func (r *CartPG) UpdateQuantity(ctx context.Context, sel usecase.CartSelector, quantity int) (entity.CartItem, error) {
	db, err := r.client.Pool(ctx)
	if err != nil {
		return entity.CartItem{}, err
	}

	where, arg := cartSelectorClause(sel)
	var item entity.CartItem
	row := db.QueryRow(ctx, `
		UPDATE cart_items
		SET quantity = $2, updated_at = NOW()
		WHERE `+where+`
		RETURNING `+cartColumns,
		arg, quantity)
	if err := scanCartItem(row, &item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.CartItem{}, usecase.ErrNotFound
		}
		return entity.CartItem{}, err
	}
	return item, nil
}

func (r *CartPG) Remove(ctx context.Context, sel usecase.CartSelector) (entity.CartItem, error) {
	db, err := r.client.Pool(ctx)
	if err != nil {
		return entity.CartItem{}, err
	}

	where, arg := cartSelectorClause(sel)
	var item entity.CartItem
	row := db.QueryRow(ctx, `
		DELETE FROM cart_items
		WHERE `+where+`
		RETURNING `+cartColumns,
		arg)
	if err := scanCartItem(row, &item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.CartItem{}, usecase.ErrNotFound
		}
		return entity.CartItem{}, err
	}
	return item, nil
}

func cartSelectorClause(sel usecase.CartSelector) (where string, arg any) {
	if sel.ID != "" {
		return "id = $1", sel.ID
	}
	return "book_id = $1", sel.BookID
}

func scanCartItem(row pgx.Row, item *entity.CartItem) error {
	return row.Scan(&item.ID, &item.BookID, &item.Quantity, &item.AddedAt,
		&item.CreatedAt, &item.UpdatedAt)
}
