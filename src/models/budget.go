package models

import "time"

// Budget is the spending ceiling for one category in one month.
// Month is a period label like "Apr-2025"; at most one record exists
// per (category, month) pair.
type Budget struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Month     string    `json:"month"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
