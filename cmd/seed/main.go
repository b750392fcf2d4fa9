package main

import (
	"context"
	"log"
	"os"

	"bookstore/internal/catalog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// Seeds the books collection from the compiled-in fallback catalog, so the
// store path and the fallback path serve the same data out of the box.
func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is required to seed the database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	books := catalog.Fallback()
	log.Printf("Seeding %d books...", len(books))

	const insertSQL = `
		INSERT INTO books (id, title, author, description, price, image, isbn, genre, tags,
		                   date_published, pages, language, publisher, rating, review_count,
		                   in_stock, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW(), NOW())
		ON CONFLICT (id) DO NOTHING`

	inserted := 0
	for _, b := range books {
		tag, err := pool.Exec(ctx, insertSQL,
			b.ID, b.Title, b.Author, b.Description, b.Price, b.Image, b.ISBN,
			b.Genre, b.Tags, b.DatePublished, b.Pages, b.Language, b.Publisher,
			b.Rating, b.ReviewCount, b.InStock, b.Featured)
		if err != nil {
			log.Fatalf("Failed to insert book %s: %v", b.ID, err)
		}
		inserted += int(tag.RowsAffected())
	}

	var total int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&total); err != nil {
		log.Fatalf("Failed to count books: %v", err)
	}
	log.Printf("Inserted %d new books, %d total in catalog", inserted, total)
}
