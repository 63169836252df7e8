package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered traveler, keyed by email
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Hidden from JSON responses
	Name         string    `json:"name" db:"name"`
	Preferences  string    `json:"preferences" db:"preferences"` // JSON-encoded preference map
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
