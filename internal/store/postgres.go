package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"TRAVELPLANNER_BACK-END/internal/models"
)

// Postgres implements Store on a pgx connection pool
type Postgres struct {
	db *pgxpool.Pool
}

// NewPostgres creates a Postgres-backed store
func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) CreateUser(ctx context.Context, user *models.User) error {
	var existingID uuid.UUID
	err := s.db.QueryRow(ctx,
		"SELECT id FROM users WHERE email = $1",
		user.Email).Scan(&existingID)
	if err == nil {
		return ErrAlreadyExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check existing user: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, preferences, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Preferences,
		user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Postgres) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(ctx,
		`SELECT id, email, password_hash, name, preferences, created_at, updated_at
		 FROM users WHERE email = $1`,
		email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name,
		&user.Preferences, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return &user, nil
}

func (s *Postgres) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(ctx,
		`SELECT id, email, password_hash, name, preferences, created_at, updated_at
		 FROM users WHERE id = $1`,
		id).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name,
		&user.Preferences, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user by id: %w", err)
	}
	return &user, nil
}

func (s *Postgres) UpdatePreferences(ctx context.Context, email, preferences string) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE users SET preferences = $1, updated_at = now() WHERE email = $2",
		preferences, email)
	if err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) AddBooking(ctx context.Context, booking *models.Booking) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO bookings (booking_id, email, booking_type, provider, itinerary_id, booking_data, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		booking.BookingID, booking.Email, booking.BookingType, booking.Provider,
		booking.ItineraryID, booking.BookingData, booking.Status, booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (s *Postgres) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	rows, err := s.db.Query(ctx,
		`SELECT booking_id, email, booking_type, provider, itinerary_id, booking_data, status, created_at
		 FROM bookings WHERE email = $1 ORDER BY created_at DESC`,
		email)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.BookingID, &b.Email, &b.BookingType, &b.Provider,
			&b.ItineraryID, &b.BookingData, &b.Status, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (s *Postgres) UpdateBookingStatus(ctx context.Context, bookingID, status string) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE bookings SET status = $1 WHERE booking_id = $2",
		status, bookingID)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) RecordPayment(ctx context.Context, payment *models.Payment) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO payments (transaction_id, amount, currency, description, provider, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		payment.TransactionID, payment.Amount, payment.Currency, payment.Description,
		payment.Provider, payment.Status, payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (s *Postgres) UpdatePaymentStatus(ctx context.Context, transactionID, status string) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE payments SET status = $1 WHERE transaction_id = $2",
		status, transactionID)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
