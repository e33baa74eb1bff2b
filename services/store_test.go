package services

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/Montsi0721/resturant-site/config"
	"github.com/Montsi0721/resturant-site/db"
)

// testStore connects to the database from the environment and makes sure the
// schema exists. Integration tests skip when no database is reachable or in
// -short mode.
func testStore(t *testing.T) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	cfg, err := config.Load()
	if err != nil {
		t.Skipf("skipping integration test: config: %v", err)
	}
	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		t.Skipf("skipping integration test: no database: %v", err)
	}
	t.Cleanup(pool.Close)

	// Same ordered bootstrap the server runs; all steps are idempotent.
	names, err := filepath.Glob(filepath.Join("..", "migrations", "*.sql"))
	if err != nil {
		t.Fatalf("list migrations: %v", err)
	}
	sort.Strings(names)
	for _, name := range names {
		sqlBytes, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("read migration %s: %v", name, err)
		}
		if _, err := pool.Exec(ctx, string(sqlBytes)); err != nil {
			t.Fatalf("apply migration %s: %v", name, err)
		}
	}

	return New(pool, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
