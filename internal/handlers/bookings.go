package handlers

import (
	"net/http"
	"strings"

	"TRAVELPLANNER_BACK-END/internal/booking"
	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/store"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

// BookingHandler exposes booking operations against simulated providers
type BookingHandler struct {
	service *booking.Service
	store   store.Store
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(service *booking.Service, st store.Store) *BookingHandler {
	return &BookingHandler{service: service, store: st}
}

// BookFlight handles POST /api/bookings/flight
// @Summary Book a flight
// @Description Book the selected flight option from a generated itinerary
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.BookFlightRequest true "Flight selection"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/bookings/flight [post]
func (h *BookingHandler) BookFlight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Missing authentication context")
		return
	}

	var req dto.BookFlightRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Flight.Airline == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "flight.airline is required")
		return
	}

	result := h.service.BookFlight(r.Context(), email, req.ItineraryID, req.Flight)
	utils.WriteJSONResponse(w, http.StatusOK, toBookingResponse(result))
}

// BookHotel handles POST /api/bookings/hotel
// @Summary Book an accommodation
// @Description Book the selected accommodation option from a generated itinerary
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.BookHotelRequest true "Accommodation selection"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/bookings/hotel [post]
func (h *BookingHandler) BookHotel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Missing authentication context")
		return
	}

	var req dto.BookHotelRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Hotel.Name == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "hotel.name is required")
		return
	}

	result := h.service.BookHotel(r.Context(), email, req.ItineraryID, req.Hotel)
	utils.WriteJSONResponse(w, http.StatusOK, toBookingResponse(result))
}

// BookActivity handles POST /api/bookings/activity
// @Summary Book an activity
// @Description Book an activity from a generated itinerary's daily schedule
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.BookActivityRequest true "Activity selection"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/bookings/activity [post]
func (h *BookingHandler) BookActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Missing authentication context")
		return
	}

	var req dto.BookActivityRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Activity.Name == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "activity.name is required")
		return
	}

	result := h.service.BookActivity(r.Context(), email, req.ItineraryID, req.Activity)
	utils.WriteJSONResponse(w, http.StatusOK, toBookingResponse(result))
}

// CancelBooking handles POST /api/bookings/cancel
// @Summary Cancel a booking
// @Description Cancel a prior booking and receive a simulated partial refund
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CancelBookingRequest true "Booking reference"
// @Success 200 {object} dto.CancelBookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/bookings/cancel [post]
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := utils.GetEmailFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Missing authentication context")
		return
	}

	var req dto.CancelBookingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.BookingID = strings.TrimSpace(req.BookingID)
	if req.BookingID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "booking_id is required")
		return
	}
	switch req.BookingType {
	case booking.TypeFlight, booking.TypeHotel, booking.TypeActivity:
	default:
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "booking_type must be flight, hotel, or activity")
		return
	}

	result := h.service.Cancel(r.Context(), req.BookingID, req.BookingType)
	utils.WriteJSONResponse(w, http.StatusOK, dto.CancelBookingResponse{
		Success:      result.Success,
		Message:      result.Message,
		RefundAmount: result.RefundAmount,
		Error:        result.Err,
	})
}

// GetBookingHistory handles GET /api/bookings/history
// @Summary List booking history
// @Description List the authenticated user's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BookingHistoryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/bookings/history [get]
func (h *BookingHandler) GetBookingHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Missing authentication context")
		return
	}

	bookings, err := h.store.ListBookingsByEmail(r.Context(), email)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", "Failed to load booking history")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.BookingHistoryResponse{Bookings: bookings})
}

func toBookingResponse(result booking.Result) dto.BookingResponse {
	return dto.BookingResponse{
		Success:      result.Success,
		BookingID:    result.BookingID,
		Confirmation: result.Confirmation,
		Price:        result.Price,
		Provider:     result.Provider,
		Error:        result.Err,
	}
}
