package entity

import "time"

type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Image         string    `json:"image"`
	ISBN          string    `json:"isbn"`
	Genre         []string  `json:"genre"`
	Tags          []string  `json:"tags"`
	DatePublished string    `json:"datePublished"`
	Pages         int       `json:"pages"`
	Language      string    `json:"language"`
	Publisher     string    `json:"publisher"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	InStock       bool      `json:"inStock"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
