package handlers

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/booking"
	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/store"
)

func testBookingHandler(seed int64) (*BookingHandler, *store.Memory) {
	st := store.NewMemory()
	svc := booking.NewServiceWithRand(st, 0, rand.New(rand.NewSource(seed)))
	return NewBookingHandler(svc, st), st
}

func authedPost(t *testing.T, path, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	return req.WithContext(authedContext(req.Context(), uuid.New(), "alice@example.com"))
}

func TestBookFlightEndpoint(t *testing.T) {
	h, st := testBookingHandler(1)

	body := `{"itinerary_id":"it-1","flight":{"airline":"Delta","price":420,"duration":"5h"}}`

	// Booking success is stochastic; retry until the simulated provider accepts
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		h.BookFlight(rec, authedPost(t, "/api/bookings/flight", body))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.BookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		if !resp.Success {
			assert.NotEmpty(t, resp.Error)
			continue
		}

		assert.True(t, strings.HasPrefix(resp.BookingID, "FL"))
		assert.Equal(t, 420.0, resp.Price)

		bookings, err := st.ListBookingsByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, bookings)
		return
	}
	t.Fatal("no successful booking in 20 attempts")
}

func TestBookFlightValidation(t *testing.T) {
	h, _ := testBookingHandler(2)

	rec := httptest.NewRecorder()
	h.BookFlight(rec, authedPost(t, "/api/bookings/flight", `{"itinerary_id":"it-1","flight":{}}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookFlightUnauthenticated(t *testing.T) {
	h, _ := testBookingHandler(3)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/flight", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.BookFlight(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCancelBookingValidation(t *testing.T) {
	h, _ := testBookingHandler(4)

	t.Run("missing id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.CancelBooking(rec, authedPost(t, "/api/bookings/cancel", `{"booking_type":"flight"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad type", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.CancelBooking(rec, authedPost(t, "/api/bookings/cancel", `{"booking_id":"FL12345","booking_type":"cruise"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetBookingHistoryEndpoint(t *testing.T) {
	h, st := testBookingHandler(5)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/history", nil)
	ctx := authedContext(req.Context(), uuid.New(), "alice@example.com")
	require.NoError(t, st.AddBooking(ctx, &models.Booking{
		BookingID:   "FL12345",
		Email:       "alice@example.com",
		BookingType: booking.TypeFlight,
		Status:      models.BookingStatusConfirmed,
	}))

	rec := httptest.NewRecorder()
	h.GetBookingHistory(rec, req.WithContext(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BookingHistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 1)
}
