package store

import (
	"context"
	"fmt"
	"strings"

	"bookstore/internal/entity"
	"bookstore/internal/usecase"
)

// BookPG is the Postgres interpreter of the book filter descriptor. Its WHERE
// clauses must stay in lockstep with catalog.Matches, except for Search:
// here it is indexed full-text (with stemming), there a substring test.
type BookPG struct {
	client *Client
}

func NewBookPG(client *Client) *BookPG {
	return &BookPG{client: client}
}

func (r *BookPG) List(ctx context.Context, f usecase.BookFilter, limit, offset int) ([]entity.Book, int, error) {
	db, err := r.client.Pool(ctx)
	if err != nil {
		return nil, 0, err
	}

	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if f.ID != "" {
		clauses = append(clauses, fmt.Sprintf("id = $%d", argn))
		args = append(args, f.ID)
		argn++
	}
	if f.Genre != "" {
		clauses = append(clauses, fmt.Sprintf("$%d = ANY(genre)", argn))
		args = append(args, f.Genre)
		argn++
	}
	if f.Featured != nil {
		clauses = append(clauses, fmt.Sprintf("featured = $%d", argn))
		args = append(args, *f.Featured)
		argn++
	}
	if f.InStock != nil {
		clauses = append(clauses, fmt.Sprintf("in_stock = $%d", argn))
		args = append(args, *f.InStock)
		argn++
	}
	if f.Search != "" {
		clauses = append(clauses, fmt.Sprintf("search_vector @@ plainto_tsquery('english', $%d)", argn))
		args = append(args, f.Search)
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM books %s", where)
	var total int
	if err := db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT id, title, author, description, price, image, isbn, genre, tags,
		       date_published, pages, language, publisher, rating, review_count,
		       in_stock, featured, created_at, updated_at
		FROM books
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		where, argn, argn+1)

	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, limit, offset)
	rows, err := db.Query(ctx, dataSQL, argsWithPage...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Description, &b.Price, &b.Image,
			&b.ISBN, &b.Genre, &b.Tags, &b.DatePublished, &b.Pages, &b.Language,
			&b.Publisher, &b.Rating, &b.ReviewCount, &b.InStock, &b.Featured,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return books, total, nil
}
