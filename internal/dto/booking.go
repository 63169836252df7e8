package dto

import "TRAVELPLANNER_BACK-END/internal/models"

// BookFlightRequest represents the payload to book a flight from an itinerary
type BookFlightRequest struct {
	ItineraryID string              `json:"itinerary_id"`
	Flight      models.FlightOption `json:"flight"`
}

// BookHotelRequest represents the payload to book an accommodation
type BookHotelRequest struct {
	ItineraryID string                     `json:"itinerary_id"`
	Hotel       models.AccommodationOption `json:"hotel"`
}

// BookActivityRequest represents the payload to book an activity
type BookActivityRequest struct {
	ItineraryID string          `json:"itinerary_id"`
	Activity    models.Activity `json:"activity"`
}

// CancelBookingRequest represents the payload to cancel a booking
type CancelBookingRequest struct {
	BookingID   string `json:"booking_id"`
	BookingType string `json:"booking_type"` // flight | hotel | activity
}

// BookingResponse represents the outcome of a booking attempt
type BookingResponse struct {
	Success      bool    `json:"success"`
	BookingID    string  `json:"booking_id,omitempty"`
	Confirmation string  `json:"confirmation,omitempty"`
	Price        float64 `json:"price,omitempty"`
	Provider     string  `json:"provider,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// CancelBookingResponse represents the outcome of a cancellation attempt
type CancelBookingResponse struct {
	Success      bool    `json:"success"`
	Message      string  `json:"message,omitempty"`
	RefundAmount float64 `json:"refund_amount,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// BookingHistoryResponse lists the authenticated user's bookings, newest first
type BookingHistoryResponse struct {
	Bookings []models.Booking `json:"bookings"`
}
