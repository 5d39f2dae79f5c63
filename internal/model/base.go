package model

import (
	"time"
)

// Base contains common fields for all stored entities. IDs are opaque
// strings assigned by the store (UUIDs for new records, fixed ids for
// seed data).
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
