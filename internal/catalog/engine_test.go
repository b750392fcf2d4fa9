package catalog

import (
	"context"
	"errors"
	"math"
	"testing"

	"bookstore/internal/entity"
	"bookstore/internal/store/mocks"
	"bookstore/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("connection refused")

func snapshot() []entity.Book {
	return []entity.Book{
		{ID: "fb-1", Title: "First", Author: "A", Featured: true, InStock: true, Genre: []string{"Fiction"}},
		{ID: "fb-2", Title: "Second", Author: "B", Featured: true, InStock: true, Genre: []string{"History"}},
		{ID: "fb-3", Title: "Third", Author: "C", Featured: false, InStock: false, Genre: []string{"Fiction"}},
	}
}

func TestEngineStorePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	engine := NewEngineWithFallback(mockRepo, snapshot())

	books := []entity.Book{{ID: "db-1"}, {ID: "db-2"}}
	mockRepo.EXPECT().
		List(gomock.Any(), usecase.BookFilter{}, 2, 2).
		Return(books, 5, nil)

	page := engine.List(context.Background(), usecase.BookFilter{}, 2, 2)

	assert.Equal(t, usecase.SourceStore, page.Source)
	assert.Equal(t, books, page.Books)
	assert.Equal(t, usecase.Pagination{Page: 2, Limit: 2, Total: 5, Pages: 3}, page.Pagination)
}

func TestEngineStorePathEmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	engine := NewEngineWithFallback(mockRepo, snapshot())

	mockRepo.EXPECT().
		List(gomock.Any(), gomock.Any(), 50, 0).
		Return(nil, 0, nil)

	page := engine.List(context.Background(), usecase.BookFilter{ID: "missing"}, 1, 50)

	assert.Equal(t, usecase.SourceStore, page.Source)
	assert.NotNil(t, page.Books)
	assert.Len(t, page.Books, 0)
	// Store path reports 0 pages for an empty result; the fallback path
	// would report 1. Both behaviors are pinned.
	assert.Equal(t, 0, page.Pagination.Pages)
}

func TestEngineFallsBackOnStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	engine := NewEngineWithFallback(mockRepo, snapshot())

	featured := true
	filter := usecase.BookFilter{Featured: &featured}
	mockRepo.EXPECT().
		List(gomock.Any(), filter, 10, 0).
		Return(nil, 0, errStoreDown)

	page := engine.List(context.Background(), filter, 1, 10)

	require.Equal(t, usecase.SourceFallback, page.Source)
	assert.Equal(t, 2, page.Pagination.Total)
	assert.Equal(t, 1, page.Pagination.Pages)
	require.Len(t, page.Books, 2)
	// Fallback declaration order, no re-sorting.
	assert.Equal(t, "fb-1", page.Books[0].ID)
	assert.Equal(t, "fb-2", page.Books[1].ID)
}

func TestEngineFallbackPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	engine := NewEngineWithFallback(mockRepo, snapshot())
	mockRepo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, 0, errStoreDown).AnyTimes()

	t.Run("second page slice", func(t *testing.T) {
		page := engine.List(context.Background(), usecase.BookFilter{}, 2, 2)
		assert.Equal(t, 3, page.Pagination.Total)
		assert.Equal(t, 2, page.Pagination.Pages)
		require.Len(t, page.Books, 1)
		assert.Equal(t, "fb-3", page.Books[0].ID)
	})

	t.Run("page beyond range is empty, not an error", func(t *testing.T) {
		page := engine.List(context.Background(), usecase.BookFilter{}, 9, 2)
		assert.Len(t, page.Books, 0)
		assert.Equal(t, 3, page.Pagination.Total)
	})

	t.Run("huge page whose offset overflows is empty, not a panic", func(t *testing.T) {
		// (page-1)*limit wraps negative here; the slice bounds must be
		// clamped rather than passed through.
		page := engine.List(context.Background(), usecase.BookFilter{}, 200000000000000001, 50)
		assert.Len(t, page.Books, 0)
		assert.Equal(t, 3, page.Pagination.Total)
	})

	t.Run("huge limit whose end index overflows is clamped", func(t *testing.T) {
		page := engine.List(context.Background(), usecase.BookFilter{}, 2, math.MaxInt)
		assert.Len(t, page.Books, 0)
		assert.Equal(t, 3, page.Pagination.Total)
	})

	t.Run("no match still reports one page", func(t *testing.T) {
		page := engine.List(context.Background(), usecase.BookFilter{Genre: "Poetry"}, 1, 10)
		assert.Equal(t, 0, page.Pagination.Total)
		assert.Equal(t, 1, page.Pagination.Pages)
		assert.Len(t, page.Books, 0)
	})

	t.Run("genre membership on fallback", func(t *testing.T) {
		page := engine.List(context.Background(), usecase.BookFilter{Genre: "Fiction"}, 1, 10)
		require.Len(t, page.Books, 2)
		assert.Equal(t, "fb-1", page.Books[0].ID)
		assert.Equal(t, "fb-3", page.Books[1].ID)
	})

	t.Run("inStock false on fallback", func(t *testing.T) {
		stocked := false
		page := engine.List(context.Background(), usecase.BookFilter{InStock: &stocked}, 1, 10)
		require.Len(t, page.Books, 1)
		assert.Equal(t, "fb-3", page.Books[0].ID)
	})
}

func TestEngineNormalizesPageAndLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	engine := NewEngineWithFallback(mockRepo, snapshot())

	mockRepo.EXPECT().
		List(gomock.Any(), gomock.Any(), DefaultLimit, 0).
		Return(nil, 0, nil)

	page := engine.List(context.Background(), usecase.BookFilter{}, 0, -3)
	assert.Equal(t, DefaultPage, page.Pagination.Page)
	assert.Equal(t, DefaultLimit, page.Pagination.Limit)
}

func TestFallbackSnapshot(t *testing.T) {
	books := Fallback()
	require.NotEmpty(t, books)

	seenID := make(map[string]bool)
	seenISBN := make(map[string]bool)
	for _, b := range books {
		assert.False(t, seenID[b.ID], "duplicate id %s", b.ID)
		assert.False(t, seenISBN[b.ISBN], "duplicate isbn %s", b.ISBN)
		seenID[b.ID] = true
		seenISBN[b.ISBN] = true

		assert.NotEmpty(t, b.Title)
		assert.NotEmpty(t, b.Genre, "genre set must be non-empty for %s", b.ID)
		assert.GreaterOrEqual(t, b.Price, 0.0)
		assert.Greater(t, b.Pages, 0)
		assert.GreaterOrEqual(t, b.Rating, 0.0)
		assert.LessOrEqual(t, b.Rating, 5.0)
	}
}
