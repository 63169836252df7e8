package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/models"
)

// Memory implements Store with in-process maps. Used by tests and by local
// runs without a database.
type Memory struct {
	mu       sync.RWMutex
	users    map[string]models.User    // keyed by email
	bookings map[string]models.Booking // keyed by booking id
	payments map[string]models.Payment // keyed by transaction id
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		users:    make(map[string]models.User),
		bookings: make(map[string]models.Booking),
		payments: make(map[string]models.Payment),
	}
}

func (s *Memory) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return ErrAlreadyExists
	}
	s.users[user.Email] = *user
	return nil
}

func (s *Memory) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *Memory) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.ID == id {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) UpdatePreferences(_ context.Context, email, preferences string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return ErrNotFound
	}
	user.Preferences = preferences
	s.users[email] = user
	return nil
}

func (s *Memory) AddBooking(_ context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[booking.BookingID] = *booking
	return nil
}

func (s *Memory) ListBookingsByEmail(_ context.Context, email string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var bookings []models.Booking
	for _, b := range s.bookings {
		if b.Email == email {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

func (s *Memory) UpdateBookingStatus(_ context.Context, bookingID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking, ok := s.bookings[bookingID]
	if !ok {
		return ErrNotFound
	}
	booking.Status = status
	s.bookings[bookingID] = booking
	return nil
}

func (s *Memory) RecordPayment(_ context.Context, payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[payment.TransactionID] = *payment
	return nil
}

func (s *Memory) UpdatePaymentStatus(_ context.Context, transactionID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[transactionID]
	if !ok {
		return ErrNotFound
	}
	payment.Status = status
	s.payments[transactionID] = payment
	return nil
}
