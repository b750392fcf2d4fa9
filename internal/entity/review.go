package entity

import "time"

type Review struct {
	ID        string    `json:"id"`
	BookID    string    `json:"bookId"`
	Author    string    `json:"author"`
	Rating    float64   `json:"rating"`
	Title     string    `json:"title"`
	Comment   string    `json:"comment"`
	Timestamp string    `json:"timestamp"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
