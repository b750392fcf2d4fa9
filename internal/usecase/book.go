package usecase

import (
	"context"

	"bookstore/internal/entity"
)

// BookFilter is the shared filter descriptor for book listing. Both query
// paths interpret the same descriptor: the Postgres repository compiles it
// into a WHERE clause, the fallback catalog evaluates it as an in-memory
// predicate. A new filter field must be added to both interpreters.
type BookFilter struct {
	ID       string // exact match
	Genre    string // set membership: record's genre list contains this value
	Search   string // free text; full-text on the store path, substring on fallback
	Featured *bool  // nil means no constraint
	InStock  *bool
}

// Empty reports whether the descriptor imposes no constraint.
func (f BookFilter) Empty() bool {
	return f.ID == "" && f.Genre == "" && f.Search == "" && f.Featured == nil && f.InStock == nil
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ListSource identifies which path produced a book page.
type ListSource string

const (
	SourceStore    ListSource = "store"
	SourceFallback ListSource = "fallback"
)

// BookPage is the unified listing result, identical in shape on both paths.
type BookPage struct {
	Books      []entity.Book `json:"books"`
	Pagination Pagination    `json:"pagination"`
	Source     ListSource    `json:"source"`
}

// BookRepository is the persistent catalog. List returns one page of books
// matching the filter plus the total match count, newest first.
type BookRepository interface {
	List(ctx context.Context, f BookFilter, limit, offset int) ([]entity.Book, int, error)
}

// CatalogLister is the fallback-aware listing engine consumed by the HTTP
// layer. It never fails: store errors are swallowed and answered from the
// fallback snapshot.
type CatalogLister interface {
	List(ctx context.Context, f BookFilter, page, limit int) BookPage
}
