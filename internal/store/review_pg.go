package store

import (
	"context"
	"fmt"
	"strings"

	"bookstore/internal/entity"
	"bookstore/internal/usecase"
)

type ReviewPG struct {
	client *Client
}

func NewReviewPG(client *Client) *ReviewPG {
	return &ReviewPG{client: client}
}

func (r *ReviewPG) List(ctx context.Context, f usecase.ReviewFilter, limit, offset int) ([]entity.Review, int, error) {
	db, err := r.client.Pool(ctx)
	if err != nil {
		return nil, 0, err
	}

	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if f.BookID != "" {
		clauses = append(clauses, fmt.Sprintf("book_id = $%d", argn))
		args = append(args, f.BookID)
		argn++
	}
	if f.Verified != nil {
		clauses = append(clauses, fmt.Sprintf("verified = $%d", argn))
		args = append(args, *f.Verified)
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM reviews %s", where)
	var total int
	if err := db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT id, book_id, author, rating, title, comment, timestamp, verified,
		       created_at, updated_at
		FROM reviews
		%s
		ORDER BY timestamp DESC
		LIMIT $%d OFFSET $%d`,
		where, argn, argn+1)

	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, limit, offset)
	rows, err := db.Query(ctx, dataSQL, argsWithPage...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reviews []entity.Review
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(
			&rv.ID, &rv.BookID, &rv.Author, &rv.Rating, &rv.Title, &rv.Comment,
			&rv.Timestamp, &rv.Verified, &rv.CreatedAt, &rv.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *ReviewPG) Create(ctx context.Context, review entity.Review) error {
	db, err := r.client.Pool(ctx)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		INSERT INTO reviews (id, book_id, author, rating, title, comment, timestamp, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`,
		review.ID, review.BookID, review.Author, review.Rating, review.Title,
		review.Comment, review.Timestamp, review.Verified)
	return err
}
