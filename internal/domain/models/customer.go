package models

import "time"

// Customer is a roster entry derived from orders sharing a phone number.
type Customer struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	TotalOrders   int       `json:"total_orders"`
	TotalSpent    int64     `json:"total_spent"`
	AverageRating float64   `json:"average_rating"`
	LastOrderAt   time.Time `json:"last_order_at"`
	Status        string    `json:"status"`
	IsDemo        bool      `json:"is_demo,omitempty"`
	Orders        []Order   `json:"orders,omitempty"`
}
