package services

import (
	"context"

	"github.com/Montsi0721/resturant-site/models"
)

func (s *Store) CreateReservation(ctx context.Context, input models.CreateReservationInput) (*models.Reservation, error) {
	r := models.Reservation{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Date:    input.Date,
		Time:    input.Time,
		Guests:  input.Guests,
		Message: input.Message,
	}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO reservations (name, email, phone, date, time, guests, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at`,
		input.Name, input.Email, input.Phone, input.Date, input.Time, input.Guests, input.Message,
	).Scan(&r.ID, &r.Status, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, email, phone, date, time, guests, COALESCE(message, ''), status, created_at
		FROM reservations
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		var r models.Reservation
		if err := rows.Scan(
			&r.ID, &r.Name, &r.Email, &r.Phone, &r.Date, &r.Time,
			&r.Guests, &r.Message, &r.Status, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		reservations = append(reservations, r)
	}
	return reservations, rows.Err()
}
