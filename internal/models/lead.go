package models

import "time"

// Lead is a contact request submitted from a property page. The store
// assigns ID and CreatedAt on insert; leads are never updated or deleted.
type Lead struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	PropertyURL string    `json:"property_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// LeadInput is a Lead before the store has assigned its identity fields.
// Empty contact fields are accepted and forwarded as-is.
type LeadInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	PropertyURL string `json:"property_url"`
}
