package db

import (
	"context"
	"fmt"

	"github.com/Montsi0721/resturant-site/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens the shared connection pool. The pool is passed to the
// services layer explicitly; nothing else in the program touches it.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
