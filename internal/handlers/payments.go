package handlers

import (
	"net/http"
	"strings"

	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/payment"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

// PaymentHandler exposes simulated payment processing
type PaymentHandler struct {
	gateway *payment.Gateway
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(gateway *payment.Gateway) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

// ProcessPayment handles POST /api/payments/process
// @Summary Process a payment
// @Description Authorize a payment for booked itinerary items
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ProcessPaymentRequest true "Payment details"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/payments/process [post]
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := utils.GetEmailFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Missing authentication context")
		return
	}

	var req dto.ProcessPaymentRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Amount <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "amount must be positive")
		return
	}

	result := h.gateway.Process(r.Context(), req.Amount, req.Token, req.Description)
	utils.WriteJSONResponse(w, http.StatusOK, dto.PaymentResponse{
		Success:       result.Success,
		TransactionID: result.TransactionID,
		Amount:        result.Amount,
		Currency:      result.Currency,
		Provider:      result.Provider,
		Error:         result.Err,
	})
}

// RefundPayment handles POST /api/payments/refund
// @Summary Refund a payment
// @Description Refund a prior transaction, fully or partially
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.RefundPaymentRequest true "Refund details"
// @Success 200 {object} dto.RefundResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/payments/refund [post]
func (h *PaymentHandler) RefundPayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := utils.GetEmailFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Missing authentication context")
		return
	}

	var req dto.RefundPaymentRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.TransactionID = strings.TrimSpace(req.TransactionID)
	if req.TransactionID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "transaction_id is required")
		return
	}

	result := h.gateway.Refund(r.Context(), req.TransactionID, req.Amount)
	utils.WriteJSONResponse(w, http.StatusOK, dto.RefundResponse{
		Success:       result.Success,
		RefundID:      result.RefundID,
		TransactionID: result.TransactionID,
		Amount:        result.Amount,
		Message:       result.Message,
		Error:         result.Err,
	})
}
