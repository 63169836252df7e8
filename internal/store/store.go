// Package store persists users, booking records, and payment records. The
// Store interface keeps the persistence backend swappable: Postgres in
// production, in-memory for tests and local runs without a database.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/models"
)

// Sentinel errors shared by all implementations
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// Store is the record-store capability the service depends on
type Store interface {
	// Users, keyed by email
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdatePreferences(ctx context.Context, email, preferences string) error

	// Booking records
	AddBooking(ctx context.Context, booking *models.Booking) error
	ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID, status string) error

	// Payment records
	RecordPayment(ctx context.Context, payment *models.Payment) error
	UpdatePaymentStatus(ctx context.Context, transactionID, status string) error
}
