package services

import (
	"context"
	"testing"
	"time"

	"zambus/internal/domain"
	"zambus/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookedEnv(t *testing.T) (Env, *recorder, models.Booking) {
	t.Helper()
	env, rec := newEnv(t)
	fixture(t, env)
	b, err := BookingService{Env: env}.Create(context.Background(), passenger, bookingInput("+260 97 1234567"))
	require.NoError(t, err)
	return env, rec, b
}

func paymentInput(bookingID domain.ID, ref string) models.PaymentInput {
	return models.PaymentInput{BookingID: bookingID, Amount: "350", Method: "Mobile Money", Reference: ref}
}

func TestPaymentCompletes(t *testing.T) {
	env, rec, b := bookedEnv(t)
	svc := PaymentService{Env: env, Gateway: NewSimulatedGateway(0, 1)}

	p, err := svc.Create(context.Background(), passenger, paymentInput(b.ID, "MTN12345678"))
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, p.Status)
	assert.Equal(t, "Lusaka → Livingstone", p.Route)
	assert.Equal(t, "2026-10-20", p.DepartureDate)
	assert.Equal(t, refNow, p.Timestamp)
	assert.Equal(t, "Payment Successful", rec.last().Title)
	assert.Contains(t, rec.last().Description, "K350")

	_, err = svc.Create(context.Background(), passenger, paymentInput(b.ID, "MTN87654321"))
	assert.True(t, domain.IsConflict(err), "booking already paid")
}

func TestPaymentDeclineStoresNothing(t *testing.T) {
	env, rec, b := bookedEnv(t)
	svc := PaymentService{Env: env, Gateway: NewSimulatedGateway(1, 1)}

	_, err := svc.Create(context.Background(), passenger, paymentInput(b.ID, "MTN12345678"))
	require.True(t, domain.IsProcessing(err))
	assert.Equal(t, "Payment Failed", rec.last().Title)

	list, err := svc.List(passenger)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPaymentReferenceRules(t *testing.T) {
	env, _, b := bookedEnv(t)
	svc := PaymentService{Env: env}
	ctx := context.Background()

	card := models.PaymentInput{BookingID: b.ID, Amount: "350", Method: "Bank Card", Reference: "MTN12345678"}
	_, err := svc.Create(ctx, passenger, card)
	assert.True(t, domain.IsValidation(err))

	card.Reference = "A-123456"
	_, err = svc.Create(ctx, passenger, card)
	require.NoError(t, err)

	second, err := BookingService{Env: env}.Create(ctx, passenger, bookingInput("+260 97 7654321"))
	require.NoError(t, err)
	card.BookingID = second.ID
	card.Reference = "a-123456"
	_, err = svc.Create(ctx, passenger, card)
	assert.True(t, domain.IsValidation(err), "lower case reference does not match the card pattern")

	_, err = svc.Create(ctx, domain.RequestContext{UserID: 99, Role: domain.RolePassenger}, paymentInput(second.ID, "MTN99999999"))
	assert.True(t, domain.IsNotFound(err))
}

func TestPaymentGatewayIsDeterministicPerSeed(t *testing.T) {
	a := NewSimulatedGateway(0.5, 7)
	b := NewSimulatedGateway(0.5, 7)
	for i := 0; i < 20; i++ {
		errA := a.Charge(context.Background(), models.Payment{})
		errB := b.Charge(context.Background(), models.Payment{})
		assert.Equal(t, errA == nil, errB == nil)
	}
}

func TestPaymentRefundWindow(t *testing.T) {
	env, _, b := bookedEnv(t)
	clock := refNow
	env.Now = func() time.Time { return clock }
	svc := PaymentService{Env: env}
	ctx := context.Background()

	p, err := svc.Create(ctx, passenger, paymentInput(b.ID, "MTN12345678"))
	require.NoError(t, err)

	_, err = svc.Refund(ctx, passenger, p.ID, false)
	assert.True(t, domain.IsConfirmationRequired(err))

	clock = refNow.Add(25 * time.Hour)
	_, err = svc.Refund(ctx, passenger, p.ID, true)
	require.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "24 hours")

	clock = refNow.Add(23 * time.Hour)
	refunded, err := svc.Refund(ctx, passenger, p.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRefunded, refunded.Status)

	_, err = svc.Refund(ctx, passenger, p.ID, true)
	assert.True(t, domain.IsValidation(err))
}

func TestRefundUsesGeneralLatency(t *testing.T) {
	env, _, b := bookedEnv(t)
	p, err := PaymentService{Env: env}.Create(context.Background(), passenger, paymentInput(b.ID, "MTN12345678"))
	require.NoError(t, err)

	env.PaymentLatency = time.Hour
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	refunded, err := PaymentService{Env: env}.Refund(ctx, passenger, p.ID, true)
	require.NoError(t, err, "refund must not wait for the payment processing delay")
	assert.Equal(t, models.PaymentRefunded, refunded.Status)
}

func TestPaymentVisibleToRouteOperator(t *testing.T) {
	env, _, b := bookedEnv(t)
	svc := PaymentService{Env: env}
	p, err := svc.Create(context.Background(), passenger, paymentInput(b.ID, "MTN12345678"))
	require.NoError(t, err)

	got, err := svc.Get(operator, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = svc.Get(rival, p.ID)
	assert.True(t, domain.IsNotFound(err))
}
