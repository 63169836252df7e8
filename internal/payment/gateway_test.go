package payment

import (
	"context"
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/store"
)

func testGateway(seed int64) (*Gateway, *store.Memory) {
	st := store.NewMemory()
	return NewGatewayWithRand(st, 0, rand.New(rand.NewSource(seed))), st
}

func TestProcess(t *testing.T) {
	gw, st := testGateway(1)
	ctx := context.Background()

	idPattern := regexp.MustCompile(`^TXN\d{6}$`)
	var successes int
	for i := 0; i < 40; i++ {
		result := gw.Process(ctx, 1350, "tok_visa", "Paris trip")
		assert.Contains(t, supportedProviders, result.Provider)
		if !result.Success {
			assert.Equal(t, "Payment declined by bank", result.Err)
			continue
		}
		successes++
		assert.Regexp(t, idPattern, result.TransactionID)
		assert.Equal(t, 1350.0, result.Amount)
		assert.Equal(t, "USD", result.Currency)

		require.NoError(t, st.UpdatePaymentStatus(ctx, result.TransactionID, models.PaymentStatusCompleted),
			"successful payments are recorded")
	}

	// ~95% success rate
	assert.Greater(t, successes, 30)
}

func TestProcessRejectsMissingToken(t *testing.T) {
	gw, st := testGateway(2)

	result := gw.Process(context.Background(), 100, "", "Paris trip")
	assert.False(t, result.Success)
	assert.Equal(t, "Missing payment token", result.Err)

	// Nothing recorded for a rejected payment
	assert.ErrorIs(t, st.UpdatePaymentStatus(context.Background(), result.TransactionID, models.PaymentStatusCompleted), store.ErrNotFound)
}

func TestRefundFullAmount(t *testing.T) {
	gw, st := testGateway(3)
	ctx := context.Background()

	require.NoError(t, st.RecordPayment(ctx, &models.Payment{
		TransactionID: "TXN123456",
		Amount:        800,
		Currency:      "USD",
		Status:        models.PaymentStatusCompleted,
	}))

	idPattern := regexp.MustCompile(`^RFN\d{6}$`)
	for i := 0; i < 30; i++ {
		result := gw.Refund(ctx, "TXN123456", 800)
		if !result.Success {
			assert.Equal(t, "Unable to process refund - please contact support", result.Err)
			continue
		}
		assert.Regexp(t, idPattern, result.RefundID)
		assert.Equal(t, "TXN123456", result.TransactionID)
		assert.Equal(t, 800.0, result.Amount)
		assert.Equal(t, "Refund processed successfully", result.Message)
		return
	}
	t.Fatal("no successful refund in 30 attempts")
}

func TestRefundPartialWhenAmountOmitted(t *testing.T) {
	gw, _ := testGateway(4)

	for i := 0; i < 30; i++ {
		result := gw.Refund(context.Background(), "TXN999999", 0)
		if result.Success {
			assert.GreaterOrEqual(t, result.Amount, 50.0)
			assert.LessOrEqual(t, result.Amount, 100.0)
			return
		}
	}
	t.Fatal("no successful refund in 30 attempts")
}
