package models

import "time"

const OrderStatusPending = "pending"

// OrderItem is one line of an order as submitted by the client. The list is
// persisted as a JSON blob on the order row; it does not reference the menu
// table.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID            int64       `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	CustomerPhone string      `json:"customer_phone"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"total_amount"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

type CreateOrderInput struct {
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	CustomerPhone string      `json:"customer_phone"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"total_amount"`
}
