package services

import (
	"context"

	"github.com/Montsi0721/resturant-site/models"

	"github.com/jackc/pgx/v5"
)

// DefaultMenuItems returns the sample menu inserted into an empty database.
func DefaultMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			Name:        "Grilled Salmon",
			Description: "Fresh Atlantic salmon with lemon butter sauce, served with seasonal vegetables",
			Price:       24.99,
			Image:       "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80",
		},
		{
			Name:        "Filet Mignon",
			Description: "8oz premium beef tenderloin with red wine reduction and garlic mashed potatoes",
			Price:       32.99,
			Image:       "https://images.unsplash.com/photo-1546964124-0cce460f38ef?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80",
		},
		{
			Name:        "Mushroom Risotto",
			Description: "Creamy arborio rice with wild mushrooms and parmesan cheese",
			Price:       18.99,
			Image:       "https://images.unsplash.com/photo-1476124369491-e7addf5db371?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80",
		},
		{
			Name:        "Caprese Salad",
			Description: "Fresh mozzarella, tomatoes, and basil with balsamic glaze",
			Price:       10.99,
			Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			Name:        "Chocolate Lava Cake",
			Description: "Warm chocolate cake with a molten center, served with vanilla ice cream",
			Price:       8.99,
			Image:       "https://images.unsplash.com/photo-1578985545062-69928b1d9587?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80",
		},
		{
			Name:        "Tiramisu",
			Description: "Classic Italian dessert with layers of coffee-soaked ladyfingers and mascarpone cream",
			Price:       7.99,
			Image:       "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80",
		},
	}
}

func (s *Store) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image, '')
		FROM menu`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var m models.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Image); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// SeedMenuIfEmpty inserts the sample menu when the table has no rows yet.
// A populated table is left untouched, so repeated startups never duplicate
// the seed.
func (s *Store) SeedMenuIfEmpty(ctx context.Context) error {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		s.log.Debug("menu already populated", "count", count)
		return nil
	}

	batch := &pgx.Batch{}
	items := DefaultMenuItems()
	for _, it := range items {
		batch.Queue(`
			INSERT INTO menu (name, description, price, image)
			VALUES ($1, $2, $3, $4)`,
			it.Name, it.Description, it.Price, it.Image,
		)
	}
	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()
	for range items {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	s.log.Info("sample menu seeded", "items", len(items))
	return nil
}
