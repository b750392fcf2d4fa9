package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoDSN means the database connection string was never configured. It is
// raised on the first store touch, not at startup: the listing path catches
// it and serves the fallback catalog, every other path surfaces it as a 500.
var ErrNoDSN = errors.New("store: DB_DSN is not configured")

const connectTimeout = 2 * time.Second

// Client owns the connection state for the document collections. It connects
// lazily, at most once per process lifetime; a concurrent caller observing an
// established pool simply proceeds. A failed attempt leaves the client
// disconnected so the next request retries.
type Client struct {
	dsn string

	mu   sync.Mutex
	pool *pgxpool.Pool
}

func NewClient(dsn string) *Client {
	return &Client{dsn: dsn}
}

// Pool returns the connection pool, establishing it on first use.
func (c *Client) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pool != nil {
		return c.pool, nil
	}
	if c.dsn == "" {
		return nil, ErrNoDSN
	}

	pool, err := pgxpool.New(ctx, c.dsn)
	if err != nil {
		return nil, fmt.Errorf("store: create pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ping database: %w", err)
	}

	c.pool = pool
	return c.pool, nil
}

// Ping reports whether the store is reachable, connecting if needed.
func (c *Client) Ping(ctx context.Context) error {
	pool, err := c.Pool(ctx)
	if err != nil {
		return err
	}
	return pool.Ping(ctx)
}

// Close releases the pool if one was ever established.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pool != nil {
		c.pool.Close()
		c.pool = nil
	}
}
