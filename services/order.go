package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Montsi0721/resturant-site/models"
)

func (s *Store) CreateOrder(ctx context.Context, input models.CreateOrderInput) (*models.Order, error) {
	itemsJSON, err := json.Marshal(input.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}

	o := models.Order{
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Items:         input.Items,
		TotalAmount:   input.TotalAmount,
	}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO orders (customer_name, customer_email, customer_phone, items, total_amount)
		VALUES ($1, $2, $3, $4::jsonb, $5)
		RETURNING id, status, created_at`,
		input.CustomerName, input.CustomerEmail, input.CustomerPhone, string(itemsJSON), input.TotalAmount,
	).Scan(&o.ID, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, customer_name, customer_email, customer_phone, items, total_amount, status, created_at
		FROM orders
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		var itemsJSON []byte
		if err := rows.Scan(
			&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
			&itemsJSON, &o.TotalAmount, &o.Status, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items for order %d: %w", o.ID, err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
