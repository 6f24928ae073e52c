package services

import (
	"context"
	"testing"

	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyListIncludesDefaults(t *testing.T) {
	d, err := db.Open(context.Background(), storage.NewMemory(), true)
	require.NoError(t, err)
	svc := CompanyService{Env: Env{DB: d}}

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []string{"Lusaka - Livingstone", "Lusaka - Kitwe"}, list[0].Routes, "derived from active routes")
	assert.Equal(t, []string{"Lusaka - Ndola", "Kitwe - Solwezi", "Lusaka - Chipata"}, list[1].Routes, "falls back to profile")

	_, err = svc.Get(99)
	assert.True(t, domain.IsNotFound(err))
}

func TestCompanyUpdateProfile(t *testing.T) {
	env, rec := newEnv(t)
	svc := CompanyService{Env: env}
	ctx := context.Background()

	in := models.CompanyProfileInput{Name: "Power Tools Bus Services", Email: "INFO@powertools.com", Phone: "+260976543210", BusinessLicense: "ptb123456"}
	c, err := svc.UpdateProfile(ctx, operator, in)
	require.NoError(t, err)
	assert.Equal(t, operator.UserID, c.ID)
	assert.Equal(t, "info@powertools.com", c.Email)
	assert.Equal(t, "+260 97 6543210", c.Phone)
	assert.Equal(t, "PTB123456", c.BusinessLicense)
	assert.Equal(t, "Profile Updated", rec.last().Title)

	_, err = svc.UpdateProfile(ctx, passenger, in)
	assert.True(t, domain.IsForbidden(err))

	in.Phone = "0971234567"
	_, err = svc.UpdateProfile(ctx, operator, in)
	assert.True(t, domain.IsValidation(err))
}

func TestCompanyStats(t *testing.T) {
	env, _ := newEnv(t)
	_, bus, sc := fixture(t, env)
	ctx := context.Background()
	bookings := BookingService{Env: env}
	payments := PaymentService{Env: env, Gateway: NewSimulatedGateway(0, 1)}

	first, err := bookings.Create(ctx, passenger, bookingInput("+260 97 1234567"))
	require.NoError(t, err)
	second, err := bookings.Create(ctx, passenger, bookingInput("+260 97 7654321"))
	require.NoError(t, err)

	_, err = payments.Create(ctx, passenger, paymentInput(first.ID, "MTN11111111"))
	require.NoError(t, err)
	refunded, err := payments.Create(ctx, passenger, paymentInput(second.ID, "MTN22222222"))
	require.NoError(t, err)
	_, err = payments.Refund(ctx, passenger, refunded.ID, true)
	require.NoError(t, err)

	svc := CompanyService{Env: env}
	stats, err := svc.Stats(operator)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ActiveRoutes)
	assert.Equal(t, 1, stats.TotalBuses)
	assert.Equal(t, 1, stats.ActiveBuses)
	assert.Equal(t, 1, stats.Customers, "one passenger holding two tickets")
	assert.InDelta(t, 350, stats.Revenue, 0.001, "refunded payments do not count")

	require.Len(t, stats.UpcomingDepartures, 1)
	next := stats.UpcomingDepartures[0]
	assert.Equal(t, sc.ID, next.ScheduleID)
	assert.Equal(t, "2026-10-20", next.Date, "today's 08:00 run has already left")
	assert.Equal(t, "08:00", next.Time)
	assert.Equal(t, 2, next.Booked)
	assert.Equal(t, bus.Capacity, next.Capacity)

	empty, err := svc.Stats(rival)
	require.NoError(t, err)
	assert.Zero(t, empty.ActiveRoutes)
	assert.Zero(t, empty.Customers)
	assert.Zero(t, empty.Revenue)
	assert.Empty(t, empty.UpcomingDepartures)

	_, err = svc.Stats(passenger)
	assert.True(t, domain.IsForbidden(err))
}

func TestInsurancePlansAreACopy(t *testing.T) {
	plans := InsurancePlans()
	require.Len(t, plans, 3)
	plans[0].Price = 0
	assert.InDelta(t, 50, models.InsurancePlans[0].Price, 0.001)
}
