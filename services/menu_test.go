package services

import (
	"context"
	"testing"
)

func TestDefaultMenuItems(t *testing.T) {
	items := DefaultMenuItems()
	if len(items) != 6 {
		t.Fatalf("len = %d, want 6", len(items))
	}
	want := []string{
		"Grilled Salmon",
		"Filet Mignon",
		"Mushroom Risotto",
		"Caprese Salad",
		"Chocolate Lava Cake",
		"Tiramisu",
	}
	names := map[string]bool{}
	for _, it := range items {
		names[it.Name] = true
		if it.Price <= 0 {
			t.Errorf("%s: price = %v, want > 0", it.Name, it.Price)
		}
		if it.Description == "" {
			t.Errorf("%s: empty description", it.Name)
		}
	}
	for _, w := range want {
		if !names[w] {
			t.Errorf("missing seed item %q", w)
		}
	}
}

func TestSeedMenuIfEmpty_Integration(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	var before int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu`).Scan(&before); err != nil {
		t.Fatalf("count menu: %v", err)
	}

	if err := s.SeedMenuIfEmpty(ctx); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	var after1 int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu`).Scan(&after1); err != nil {
		t.Fatalf("count menu: %v", err)
	}
	if before == 0 && after1 != 6 {
		t.Errorf("seed of empty table gave %d rows, want 6", after1)
	}

	// Second run must not duplicate anything.
	if err := s.SeedMenuIfEmpty(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	var after2 int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu`).Scan(&after2); err != nil {
		t.Fatalf("count menu: %v", err)
	}
	if after2 != after1 {
		t.Errorf("row count changed on repeat seed: %d -> %d", after1, after2)
	}

	if before == 0 {
		items, err := s.ListMenu(ctx)
		if err != nil {
			t.Fatalf("list menu: %v", err)
		}
		got := map[string]bool{}
		for _, it := range items {
			got[it.Name] = true
		}
		for _, it := range DefaultMenuItems() {
			if !got[it.Name] {
				t.Errorf("seeded menu missing %q", it.Name)
			}
		}
	}
}
