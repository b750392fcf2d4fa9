package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"bookstore/internal/catalog"
	apphttp "bookstore/internal/http"
	"bookstore/internal/httpx"
	"bookstore/internal/store"

	"github.com/joho/godotenv"
)

const maxRequestBody = 1 << 20 // 1 MiB

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	databaseDSN := os.Getenv("DB_DSN")
	if databaseDSN == "" {
		// Book listings still work from the fallback catalog; every other
		// endpoint will answer 500 until DB_DSN is provided.
		log.Println("WARNING: DB_DSN is not set; store-backed endpoints are unavailable")
	}

	// The client connects lazily on first use and is shared by every
	// repository, so the "already connected" short-circuit lives in one place.
	client := store.NewClient(databaseDSN)
	defer client.Close()

	bookRepository := store.NewBookPG(client)
	cartRepository := store.NewCartPG(client)
	reviewRepository := store.NewReviewPG(client)

	engine := catalog.NewEngine(bookRepository)

	bookHandler := apphttp.NewBookHandler(engine)
	cartHandler := apphttp.NewCartHandler(cartRepository)
	reviewHandler := apphttp.NewReviewHandler(reviewRepository)

	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := client.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("/books", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		bookHandler.List(w, r)
	})
	router.Handle("/cart", cartHandler)
	router.Handle("/reviews", reviewHandler)

	rateLimit := httpx.NewRateLimitMiddleware(getEnvFloat("RATE_LIMIT_RPS", 20), getEnvInt("RATE_LIMIT_BURST", 40))
	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))

	var handler http.Handler = router
	handler = httpx.RequestSizeLimitMiddleware(maxRequestBody)(handler)
	handler = httpx.CORSMiddleware(corsOrigins)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = rateLimit.Middleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil && f > 0 {
		return f
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
