package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/payment"
	"TRAVELPLANNER_BACK-END/internal/store"
)

func testPaymentHandler(seed int64) *PaymentHandler {
	gw := payment.NewGatewayWithRand(store.NewMemory(), 0, rand.New(rand.NewSource(seed)))
	return NewPaymentHandler(gw)
}

func TestProcessPaymentEndpoint(t *testing.T) {
	h := testPaymentHandler(1)

	body := `{"amount":1350,"token":"tok_visa","description":"Paris trip"}`
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		h.ProcessPayment(rec, authedPost(t, "/api/payments/process", body))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.PaymentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		if !resp.Success {
			continue
		}
		assert.True(t, strings.HasPrefix(resp.TransactionID, "TXN"))
		assert.Equal(t, 1350.0, resp.Amount)
		assert.Equal(t, "USD", resp.Currency)
		return
	}
	t.Fatal("no successful payment in 20 attempts")
}

func TestProcessPaymentValidation(t *testing.T) {
	h := testPaymentHandler(2)

	rec := httptest.NewRecorder()
	h.ProcessPayment(rec, authedPost(t, "/api/payments/process", `{"amount":0,"token":"tok_visa"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefundPaymentValidation(t *testing.T) {
	h := testPaymentHandler(3)

	rec := httptest.NewRecorder()
	h.RefundPayment(rec, authedPost(t, "/api/payments/refund", `{"amount":100}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentsUnauthenticated(t *testing.T) {
	h := testPaymentHandler(4)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/process", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.ProcessPayment(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
