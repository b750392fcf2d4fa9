package catalog

import (
	"strings"

	"bookstore/internal/entity"
	"bookstore/internal/usecase"
)

// Matches is the in-memory interpreter of the book filter descriptor. It must
// mirror the SQL interpreter in store.BookPG clause for clause, with one
// documented exception: Search is a case-insensitive substring test over
// title, author and description, weaker than the store path's full-text
// search. The two paths are allowed to disagree on stemmed queries and tests
// pin that difference; do not "fix" it by strengthening this predicate.
func Matches(f usecase.BookFilter, b entity.Book) bool {
	if f.ID != "" && b.ID != f.ID {
		return false
	}
	if f.Genre != "" && !containsString(b.Genre, f.Genre) {
		return false
	}
	if f.Featured != nil && b.Featured != *f.Featured {
		return false
	}
	if f.InStock != nil && b.InStock != *f.InStock {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		hay := strings.ToLower(b.Title + " " + b.Author + " " + b.Description)
		if !strings.Contains(hay, q) {
			return false
		}
	}
	return true
}

func containsString(set []string, want string) bool {
	for _, s := range set {
		if s == want {
			return true
		}
	}
	return false
}
