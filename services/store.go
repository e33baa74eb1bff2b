package services

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the services layer over the shared connection pool. Every handler
// reaches the database through it; there is no other path to the pool.
type Store struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func New(pool *pgxpool.Pool, log *slog.Logger) *Store {
	return &Store{pool: pool, log: log}
}
