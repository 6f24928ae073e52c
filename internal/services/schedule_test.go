package services

import (
	"context"
	"testing"

	"zambus/internal/domain"
	"zambus/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleConflictOnSameBus(t *testing.T) {
	env, rec := newEnv(t)
	ctx := context.Background()
	route, err := RouteService{Env: env}.Create(ctx, operator, routeInput("Lusaka", "Livingstone"))
	require.NoError(t, err)
	bus, err := FleetService{Env: env}.Create(ctx, operator, busInput("ZB 1234"))
	require.NoError(t, err)
	svc := ScheduleService{Env: env}

	_, err = svc.Create(ctx, operator, models.ScheduleInput{RouteID: route.ID, BusID: bus.ID, Departure: "08:00", Arrival: "10:00", Days: "Daily"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, operator, models.ScheduleInput{RouteID: route.ID, BusID: bus.ID, Departure: "09:00", Arrival: "11:00", Days: "Daily"})
	require.True(t, domain.IsConflict(err))
	assert.Contains(t, err.Error(), "conflict")
	assert.Equal(t, "destructive", string(rec.last().Variant))

	_, err = svc.Create(ctx, operator, models.ScheduleInput{RouteID: route.ID, BusID: bus.ID, Departure: "10:00", Arrival: "12:00", Days: "Daily"})
	assert.NoError(t, err, "back to back windows do not overlap")

	list, err := svc.List(operator)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestScheduleDisjointDaysDoNotConflict(t *testing.T) {
	env, _ := newEnv(t)
	ctx := context.Background()
	route, bus, _ := fixture(t, env)
	svc := ScheduleService{Env: env}

	// fixture runs daily, so only a suspended schedule frees the bus.
	_, err := svc.Create(ctx, operator, models.ScheduleInput{RouteID: route.ID, BusID: bus.ID, Departure: "09:00", Arrival: "11:00", Days: "Mon, Wed"})
	require.True(t, domain.IsConflict(err))

	bus2, err := FleetService{Env: env}.Create(ctx, operator, busInput("ZB 5678"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, operator, models.ScheduleInput{RouteID: route.ID, BusID: bus2.ID, Departure: "09:00", Arrival: "11:00", Days: "Mon, Wed"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, operator, models.ScheduleInput{RouteID: route.ID, BusID: bus2.ID, Departure: "09:00", Arrival: "11:00", Days: "Tue-Thu"})
	assert.True(t, domain.IsConflict(err))
	_, err = svc.Create(ctx, operator, models.ScheduleInput{RouteID: route.ID, BusID: bus2.ID, Departure: "09:00", Arrival: "11:00", Days: "Weekends"})
	assert.NoError(t, err)
}

func TestScheduleRequiresOwnActiveBus(t *testing.T) {
	env, _ := newEnv(t)
	ctx := context.Background()
	route, bus, _ := fixture(t, env)
	svc := ScheduleService{Env: env}

	_, err := svc.Create(ctx, rival, models.ScheduleInput{RouteID: route.ID, BusID: bus.ID, Departure: "15:00", Arrival: "18:00", Days: "Daily"})
	assert.True(t, domain.IsValidation(err))

	spare, err := FleetService{Env: env}.Create(ctx, operator, busInput("ZB 9999"))
	require.NoError(t, err)
	_, err = FleetService{Env: env}.SetStatus(ctx, operator, spare.ID, models.BusMaintenance)
	require.NoError(t, err)
	_, err = svc.Create(ctx, operator, models.ScheduleInput{RouteID: route.ID, BusID: spare.ID, Departure: "15:00", Arrival: "18:00", Days: "Daily"})
	require.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "not active")
}

func TestScheduleReactivationRechecksConflicts(t *testing.T) {
	env, _ := newEnv(t)
	ctx := context.Background()
	route, bus, first := fixture(t, env)
	svc := ScheduleService{Env: env}

	_, err := svc.SetStatus(ctx, operator, first.ID, models.ScheduleSuspended)
	require.NoError(t, err)
	_, err = svc.Create(ctx, operator, models.ScheduleInput{RouteID: route.ID, BusID: bus.ID, Departure: "09:00", Arrival: "11:00", Days: "Daily"})
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, operator, first.ID, models.ScheduleActive)
	assert.True(t, domain.IsConflict(err))

	_, err = svc.SetStatus(ctx, operator, first.ID, models.ScheduleSuspended)
	require.True(t, domain.IsValidation(err))
	assert.Equal(t, "Schedule is already Suspended", err.Error())
}

func TestScheduleUpdate(t *testing.T) {
	env, _ := newEnv(t)
	ctx := context.Background()
	route, bus, sc := fixture(t, env)

	updated, err := ScheduleService{Env: env}.Update(ctx, operator, sc.ID, models.ScheduleInput{
		RouteID: route.ID, BusID: bus.ID, Departure: "7:30", Arrival: "13:30", Days: "Mon-Fri",
	})
	require.NoError(t, err)
	assert.Equal(t, "07:30", updated.Departure)
	assert.Equal(t, "Weekdays", updated.Days.String())
	assert.Equal(t, sc.ID, updated.ID)
}
