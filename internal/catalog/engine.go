package catalog

import (
	"context"
	"log"

	"bookstore/internal/entity"
	"bookstore/internal/usecase"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
)

// Engine serves book listings from the persistent catalog, degrading to the
// compiled-in fallback snapshot when the store is unreachable. The caller
// never observes a store failure: both paths produce the same result shape,
// and the Source field says which one answered.
type Engine struct {
	books    usecase.BookRepository
	fallback []entity.Book
}

func NewEngine(books usecase.BookRepository) *Engine {
	return &Engine{books: books, fallback: Fallback()}
}

// NewEngineWithFallback injects a custom snapshot, for tests and seeding.
func NewEngineWithFallback(books usecase.BookRepository, fallback []entity.Book) *Engine {
	return &Engine{books: books, fallback: fallback}
}

func (e *Engine) List(ctx context.Context, f usecase.BookFilter, page, limit int) usecase.BookPage {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	offset := (page - 1) * limit

	books, total, err := e.books.List(ctx, f, limit, offset)
	if err != nil {
		log.Printf("books list: store path failed, serving fallback: %v", err)
		return e.listFallback(f, page, limit)
	}
	if books == nil {
		books = []entity.Book{}
	}
	return usecase.BookPage{
		Books: books,
		Pagination: usecase.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			// 0 when nothing matches; the fallback path reports 1 instead.
			// Known inconsistency, reproduced on purpose.
			Pages: (total + limit - 1) / limit,
		},
		Source: usecase.SourceStore,
	}
}

func (e *Engine) listFallback(f usecase.BookFilter, page, limit int) usecase.BookPage {
	filtered := e.fallback
	if !f.Empty() {
		filtered = make([]entity.Book, 0, len(e.fallback))
		for _, b := range e.fallback {
			if Matches(f, b) {
				filtered = append(filtered, b)
			}
		}
	}

	total := len(filtered)
	// page and limit come straight from the query string, so the products
	// below can overflow and wrap negative. A wrapped offset means the page
	// is far beyond the snapshot either way: serve an empty page.
	start := (page - 1) * limit
	if start < 0 || start > total {
		start = total
	}
	end := start + limit
	if end < start || end > total {
		end = total
	}

	pages := (total + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}

	return usecase.BookPage{
		Books: filtered[start:end],
		Pagination: usecase.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
		Source: usecase.SourceFallback,
	}
}
