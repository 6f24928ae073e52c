package services

import (
	"context"
	"testing"

	"zambus/internal/domain"
	"zambus/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingInput(phone string) models.BookingInput {
	return models.BookingInput{
		Origin:         "Lusaka",
		Destination:    "Livingstone",
		DepartureDate:  "2026-10-20",
		DepartureTime:  "08:00",
		PassengerName:  "John Doe",
		PassengerPhone: phone,
	}
}

func TestBookingAssignsSeatsAndFare(t *testing.T) {
	env, rec := newEnv(t)
	route, _, sc := fixture(t, env)
	svc := BookingService{Env: env}
	ctx := context.Background()

	in := bookingInput("+260 97 1234567")
	in.InsurancePlan = "Premium"
	first, err := svc.Create(ctx, passenger, in)
	require.NoError(t, err)
	assert.Equal(t, "1A", first.SeatNumber)
	assert.Equal(t, route.ID, first.RouteID)
	assert.Equal(t, sc.ID, first.ScheduleID)
	assert.Equal(t, "premium", first.InsurancePlan)
	assert.InDelta(t, 450, first.Fare, 0.001)
	assert.Equal(t, models.BookingConfirmed, first.Status)
	assert.Equal(t, "Booking Confirmed", rec.last().Title)

	second, err := svc.Create(ctx, passenger, bookingInput("+260971234568"))
	require.NoError(t, err)
	assert.Equal(t, "1B", second.SeatNumber)
	assert.InDelta(t, 350, second.Fare, 0.001)
}

func TestBookingRejectsDuplicatePassenger(t *testing.T) {
	env, _ := newEnv(t)
	fixture(t, env)
	svc := BookingService{Env: env}
	ctx := context.Background()

	_, err := svc.Create(ctx, passenger, bookingInput("+260 97 1234567"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, passenger, bookingInput("+260971234567"))
	assert.True(t, domain.IsConflict(err))
}

func TestBookingNeedsRouteAndDeparture(t *testing.T) {
	env, rec := newEnv(t)
	fixture(t, env)
	svc := BookingService{Env: env}
	ctx := context.Background()

	in := bookingInput("+260 97 1234567")
	in.Destination = "Kitwe"
	_, err := svc.Create(ctx, passenger, in)
	require.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "No route available")
	assert.Equal(t, "Booking Failed", rec.last().Title)

	in = bookingInput("+260 97 1234567")
	in.DepartureTime = "09:00"
	_, err = svc.Create(ctx, passenger, in)
	require.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "No bus departs")
}

func TestBookingRespectsCapacity(t *testing.T) {
	env, _ := newEnv(t)
	ctx := context.Background()
	route, err := RouteService{Env: env}.Create(ctx, operator, routeInput("Lusaka", "Livingstone"))
	require.NoError(t, err)
	small := busInput("ZB 1111")
	small.Capacity = "1"
	bus, err := FleetService{Env: env}.Create(ctx, operator, small)
	require.NoError(t, err)
	_, err = ScheduleService{Env: env}.Create(ctx, operator, models.ScheduleInput{
		RouteID: route.ID, BusID: bus.ID, Departure: "08:00", Arrival: "14:00", Days: "Daily",
	})
	require.NoError(t, err)

	svc := BookingService{Env: env}
	_, err = svc.Create(ctx, passenger, bookingInput("+260 97 1234567"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, passenger, bookingInput("+260 97 7654321"))
	require.True(t, domain.IsConflict(err))
	assert.Contains(t, err.Error(), "No seats")

	other := bookingInput("+260 97 7654321")
	other.DepartureDate = "2026-10-21"
	_, err = svc.Create(ctx, passenger, other)
	assert.NoError(t, err, "capacity counts per departure date")
}

func TestBookingCancellation(t *testing.T) {
	env, _ := newEnv(t)
	ctx := context.Background()
	route, _, _ := fixture(t, env)
	late, err := FleetService{Env: env}.Create(ctx, operator, busInput("ZB 2222"))
	require.NoError(t, err)
	_, err = ScheduleService{Env: env}.Create(ctx, operator, models.ScheduleInput{
		RouteID: route.ID, BusID: late.ID, Departure: "13:00", Arrival: "19:00", Days: "Daily",
	})
	require.NoError(t, err)
	svc := BookingService{Env: env}

	tomorrow, err := svc.Create(ctx, passenger, bookingInput("+260 97 1234567"))
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, passenger, tomorrow.ID, false)
	assert.True(t, domain.IsConfirmationRequired(err))

	cancelled, err := svc.Cancel(ctx, passenger, tomorrow.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)

	_, err = svc.Cancel(ctx, passenger, tomorrow.ID, true)
	assert.True(t, domain.IsValidation(err))

	soonIn := bookingInput("+260 97 1234567")
	soonIn.DepartureDate = "2026-10-19"
	soonIn.DepartureTime = "13:00"
	soon, err := svc.Create(ctx, passenger, soonIn)
	require.NoError(t, err, "three hours ahead is enough to book")
	_, err = svc.Cancel(ctx, passenger, soon.ID, true)
	require.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "4 hours")
}

func TestBookingVisibility(t *testing.T) {
	env, _ := newEnv(t)
	fixture(t, env)
	svc := BookingService{Env: env}
	ctx := context.Background()

	b, err := svc.Create(ctx, passenger, bookingInput("+260 97 1234567"))
	require.NoError(t, err)

	stranger := domain.RequestContext{UserID: 42, Role: domain.RolePassenger}
	_, err = svc.Get(stranger, b.ID)
	assert.True(t, domain.IsNotFound(err))
	_, err = svc.Cancel(ctx, stranger, b.ID, true)
	assert.True(t, domain.IsNotFound(err))

	mine, err := svc.List(passenger)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	ops, err := svc.List(operator)
	require.NoError(t, err)
	assert.Len(t, ops, 1)

	none, err := svc.List(rival)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBookingUpdateAndComplete(t *testing.T) {
	env, _ := newEnv(t)
	fixture(t, env)
	svc := BookingService{Env: env}
	ctx := context.Background()

	_, err := svc.Create(ctx, passenger, bookingInput("+260 97 7654321"))
	require.NoError(t, err)
	b, err := svc.Create(ctx, passenger, bookingInput("+260 97 1234567"))
	require.NoError(t, err)
	require.Equal(t, "1B", b.SeatNumber)

	in := bookingInput("+260 97 1234567")
	in.PassengerName = "Jane Doe"
	renamed, err := svc.Update(ctx, passenger, b.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", renamed.PassengerName)
	assert.Equal(t, "1B", renamed.SeatNumber)

	in.DepartureDate = "2026-10-22"
	moved, err := svc.Update(ctx, passenger, b.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "1A", moved.SeatNumber)

	_, err = svc.Complete(ctx, rival, b.ID)
	assert.True(t, domain.IsNotFound(err))
	done, err := svc.Complete(ctx, operator, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, done.Status)

	_, err = svc.Update(ctx, passenger, b.ID, in)
	assert.True(t, domain.IsValidation(err))
}
