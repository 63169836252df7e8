package models

import "time"

// Booking statuses
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Payment statuses
const (
	PaymentStatusCompleted = "completed"
	PaymentStatusRefunded  = "refunded"
)

// Booking represents a confirmed booking record for one itinerary item
type Booking struct {
	BookingID   string    `json:"booking_id" db:"booking_id"`
	Email       string    `json:"email" db:"email"`
	BookingType string    `json:"booking_type" db:"booking_type"` // flight | hotel | activity
	Provider    string    `json:"provider" db:"provider"`
	ItineraryID string    `json:"itinerary_id" db:"itinerary_id"`
	BookingData string    `json:"booking_data" db:"booking_data"` // JSON-encoded booked item
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Payment represents a processed payment record
type Payment struct {
	TransactionID string    `json:"transaction_id" db:"transaction_id"`
	Amount        float64   `json:"amount" db:"amount"`
	Currency      string    `json:"currency" db:"currency"`
	Description   string    `json:"description" db:"description"`
	Provider      string    `json:"provider" db:"provider"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
