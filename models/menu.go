package models

// MenuItem is a row from the menu table. Items are created only by the
// one-time seed; the API exposes them read-only.
type MenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}
