// Package booking simulates confirmations against travel-data providers.
// Each booking call is independent: a fixed artificial latency, a simulated
// provider draw, and a persisted record on success. Calls carry no
// transactional relationship to each other.
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/store"
)

// Booking categories
const (
	TypeFlight   = "flight"
	TypeHotel    = "hotel"
	TypeActivity = "activity"
)

var providerPools = map[string][]string{
	TypeFlight:   {"skyscanner", "google_flights", "expedia"},
	TypeHotel:    {"booking", "expedia", "airbnb"},
	TypeActivity: {"viator", "getyourguide", "airbnb_experiences"},
}

var bookingPrefixes = map[string]string{
	TypeFlight:   "FL",
	TypeHotel:    "HT",
	TypeActivity: "AC",
}

// Result is the outcome of a single booking attempt
type Result struct {
	Success      bool
	BookingID    string
	Confirmation string
	Price        float64
	Provider     string
	Err          string
}

// CancelResult is the outcome of a cancellation attempt
type CancelResult struct {
	Success      bool
	Message      string
	RefundAmount float64
	Err          string
}

// Service books itinerary items against simulated providers and records
// successful bookings in the store
type Service struct {
	store   store.Store
	latency time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a booking service. Latency models the provider API
// round-trip; tests pass zero.
func NewService(st store.Store, latency time.Duration) *Service {
	return NewServiceWithRand(st, latency, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewServiceWithRand creates a booking service with an injected rand source
func NewServiceWithRand(st store.Store, latency time.Duration, rng *rand.Rand) *Service {
	return &Service{store: st, latency: latency, rng: rng}
}

// BookFlight attempts to book a flight for the given itinerary
func (s *Service) BookFlight(ctx context.Context, email, itineraryID string, flight models.FlightOption) Result {
	confirmation := func(provider string) string {
		return fmt.Sprintf("Flight confirmed with %s via %s", flight.Airline, provider)
	}
	return s.book(ctx, email, itineraryID, TypeFlight, flight, flight.Price, confirmation,
		"No available flights matching your criteria")
}

// BookHotel attempts to book an accommodation for the given itinerary
func (s *Service) BookHotel(ctx context.Context, email, itineraryID string, hotel models.AccommodationOption) Result {
	confirmation := func(provider string) string {
		return fmt.Sprintf("Hotel confirmed at %s via %s", hotel.Name, provider)
	}
	return s.book(ctx, email, itineraryID, TypeHotel, hotel, hotel.TotalPrice, confirmation,
		"No available rooms matching your criteria")
}

// BookActivity attempts to book an activity for the given itinerary
func (s *Service) BookActivity(ctx context.Context, email, itineraryID string, activity models.Activity) Result {
	confirmation := func(provider string) string {
		return fmt.Sprintf("Activity confirmed: %s via %s", activity.Name, provider)
	}
	return s.book(ctx, email, itineraryID, TypeActivity, activity, activity.Cost, confirmation,
		"Activity not available for the selected dates")
}

func (s *Service) book(ctx context.Context, email, itineraryID, bookingType string, item any, price float64, confirmation func(string) string, failureMsg string) Result {
	time.Sleep(s.latency) // simulated provider API delay

	s.mu.Lock()
	provider := providerPools[bookingType][s.rng.Intn(len(providerPools[bookingType]))]
	success := s.rng.Float64() > 0.1 // 90% simulated success rate
	bookingID := fmt.Sprintf("%s%d", bookingPrefixes[bookingType], 10000+s.rng.Intn(90000))
	s.mu.Unlock()

	if !success {
		return Result{Success: false, Provider: provider, Err: failureMsg}
	}

	data, err := json.Marshal(item)
	if err != nil {
		return Result{Success: false, Provider: provider, Err: fmt.Sprintf("encode booking data: %v", err)}
	}

	record := &models.Booking{
		BookingID:   bookingID,
		Email:       email,
		BookingType: bookingType,
		Provider:    provider,
		ItineraryID: itineraryID,
		BookingData: string(data),
		Status:      models.BookingStatusConfirmed,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.AddBooking(ctx, record); err != nil {
		// The provider confirmed; losing the record is logged, not surfaced
		log.Printf("booking: failed to record %s booking %s: %v", bookingType, bookingID, err)
	}

	return Result{
		Success:      true,
		BookingID:    bookingID,
		Confirmation: confirmation(provider),
		Price:        price,
		Provider:     provider,
	}
}

// Cancel attempts to cancel a prior booking. Cancellation succeeds 80% of the
// time and yields a simulated partial refund.
func (s *Service) Cancel(ctx context.Context, bookingID, bookingType string) CancelResult {
	time.Sleep(s.latency)

	s.mu.Lock()
	success := s.rng.Float64() > 0.2
	refund := float64(50 + s.rng.Intn(51))
	s.mu.Unlock()

	if !success {
		return CancelResult{Success: false, Err: "Unable to cancel booking - please contact customer service"}
	}

	if err := s.store.UpdateBookingStatus(ctx, bookingID, models.BookingStatusCancelled); err != nil {
		log.Printf("booking: failed to mark booking %s cancelled: %v", bookingID, err)
	}

	return CancelResult{
		Success:      true,
		Message:      fmt.Sprintf("%s booking %s successfully cancelled", capitalize(bookingType), bookingID),
		RefundAmount: refund,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
