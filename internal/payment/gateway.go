// Package payment simulates a payment gateway with interchangeable
// providers. Authorizations and refunds are recorded in the store; no real
// charge ever occurs.
package payment

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/store"
)

var supportedProviders = []string{"stripe", "paypal", "square", "braintree"}

// Result is the outcome of a payment authorization attempt
type Result struct {
	Success       bool
	TransactionID string
	Amount        float64
	Currency      string
	Provider      string
	Err           string
}

// RefundResult is the outcome of a refund attempt
type RefundResult struct {
	Success       bool
	RefundID      string
	TransactionID string
	Amount        float64
	Message       string
	Err           string
}

// Gateway processes simulated payments
type Gateway struct {
	store   store.Store
	latency time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGateway creates a payment gateway. Latency models the provider API
// round-trip; tests pass zero.
func NewGateway(st store.Store, latency time.Duration) *Gateway {
	return NewGatewayWithRand(st, latency, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGatewayWithRand creates a payment gateway with an injected rand source
func NewGatewayWithRand(st store.Store, latency time.Duration, rng *rand.Rand) *Gateway {
	return &Gateway{store: st, latency: latency, rng: rng}
}

// Process authorizes a payment for the given amount. Simulated 95% success.
func (g *Gateway) Process(ctx context.Context, amount float64, token, description string) Result {
	time.Sleep(g.latency) // simulated gateway delay

	g.mu.Lock()
	provider := supportedProviders[g.rng.Intn(len(supportedProviders))]
	success := g.rng.Float64() > 0.05
	transactionID := fmt.Sprintf("TXN%d", 100000+g.rng.Intn(900000))
	g.mu.Unlock()

	if token == "" {
		return Result{Success: false, Provider: provider, Err: "Missing payment token"}
	}
	if !success {
		return Result{Success: false, Provider: provider, Err: "Payment declined by bank"}
	}

	record := &models.Payment{
		TransactionID: transactionID,
		Amount:        amount,
		Currency:      "USD",
		Description:   description,
		Provider:      provider,
		Status:        models.PaymentStatusCompleted,
		CreatedAt:     time.Now().UTC(),
	}
	if err := g.store.RecordPayment(ctx, record); err != nil {
		log.Printf("payment: failed to record transaction %s: %v", transactionID, err)
	}

	return Result{
		Success:       true,
		TransactionID: transactionID,
		Amount:        amount,
		Currency:      "USD",
		Provider:      provider,
	}
}

// Refund processes a refund for a previous payment. A zero amount yields a
// simulated partial refund. Simulated 90% success.
func (g *Gateway) Refund(ctx context.Context, transactionID string, amount float64) RefundResult {
	time.Sleep(g.latency)

	g.mu.Lock()
	success := g.rng.Float64() > 0.1
	refundID := fmt.Sprintf("RFN%d", 100000+g.rng.Intn(900000))
	partial := float64(50 + g.rng.Intn(51))
	g.mu.Unlock()

	if !success {
		return RefundResult{Success: false, Err: "Unable to process refund - please contact support"}
	}

	if amount <= 0 {
		amount = partial
	}

	if err := g.store.UpdatePaymentStatus(ctx, transactionID, models.PaymentStatusRefunded); err != nil {
		log.Printf("payment: failed to mark transaction %s refunded: %v", transactionID, err)
	}

	return RefundResult{
		Success:       true,
		RefundID:      refundID,
		TransactionID: transactionID,
		Amount:        amount,
		Message:       "Refund processed successfully",
	}
}
