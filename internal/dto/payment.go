package dto

// ProcessPaymentRequest represents the payload to authorize a payment
type ProcessPaymentRequest struct {
	Amount      float64 `json:"amount"`
	Token       string  `json:"token"` // opaque payment-method token
	Description string  `json:"description"`
}

// PaymentResponse represents the outcome of a payment attempt
type PaymentResponse struct {
	Success       bool    `json:"success"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	Currency      string  `json:"currency,omitempty"`
	Provider      string  `json:"provider,omitempty"`
	Error         string  `json:"error,omitempty"`
}

// RefundPaymentRequest represents the payload to refund a prior payment
type RefundPaymentRequest struct {
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount,omitempty"` // zero means provider-decided partial refund
}

// RefundResponse represents the outcome of a refund attempt
type RefundResponse struct {
	Success       bool    `json:"success"`
	RefundID      string  `json:"refund_id,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	Message       string  `json:"message,omitempty"`
	Error         string  `json:"error,omitempty"`
}
