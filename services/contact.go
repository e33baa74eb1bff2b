package services

import (
	"context"

	"github.com/Montsi0721/resturant-site/models"
)

func (s *Store) CreateContactMessage(ctx context.Context, input models.CreateContactInput) (*models.ContactMessage, error) {
	m := models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO contact_messages (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		input.Name, input.Email, input.Message,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
