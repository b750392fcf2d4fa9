package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"bookstore/internal/entity"
)

// TestBook is a mock book for testing.
var TestBook = entity.Book{
	ID:            "test-book-id-789",
	Title:         "Test Book Title",
	Author:        "Test Author",
	Description:   "A test book description",
	Price:         9.99,
	Image:         "/images/books/test.jpg",
	ISBN:          "978-0-123456-78-9",
	Genre:         []string{"Fiction"},
	Tags:          []string{"test"},
	DatePublished: "2020-01-01",
	Pages:         123,
	Language:      "English",
	Publisher:     "Test Publisher",
	Rating:        4.0,
	ReviewCount:   10,
	InStock:       true,
	Featured:      false,
	CreatedAt:     time.Now(),
	UpdatedAt:     time.Now(),
}

// TestCartItem is a mock cart line for testing.
var TestCartItem = entity.CartItem{
	ID:        "cart-test-123",
	BookID:    TestBook.ID,
	Quantity:  2,
	AddedAt:   time.Now().UTC().Format(time.RFC3339),
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// TestReview is a mock review for testing.
var TestReview = entity.Review{
	ID:        "review-test-456",
	BookID:    TestBook.ID,
	Author:    "Test Reviewer",
	Rating:    4.5,
	Title:     "Great read",
	Comment:   "Could not put it down.",
	Timestamp: time.Now().UTC().Format(time.RFC3339),
	Verified:  true,
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// NewRequest creates a new HTTP request for testing.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse holds a decoded HTTP response for assertions.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes the recorded response body as a JSON object.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
