package services

import (
	"context"
	"testing"

	"zambus/internal/domain"
	"zambus/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFleetRejectsMalformedRegistration(t *testing.T) {
	env, rec := newEnv(t)
	svc := FleetService{Env: env}

	_, err := svc.Create(context.Background(), operator, busInput("ZB12"))
	require.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "format")
	assert.Contains(t, rec.last().Description, "ZB XXXX")

	buses, err := svc.List(operator)
	require.NoError(t, err)
	assert.Empty(t, buses)
}

func TestFleetAddsAndListsBus(t *testing.T) {
	env, rec := newEnv(t)
	svc := FleetService{Env: env}

	bus, err := svc.Create(context.Background(), operator, busInput("ZB 1234"))
	require.NoError(t, err)
	assert.Equal(t, 45, bus.Capacity)
	assert.Equal(t, 2021, bus.ManufactureYear)
	assert.Equal(t, operator.UserID, bus.CompanyID)
	assert.Equal(t, "Bus added", rec.last().Title)

	buses, err := svc.List(operator)
	require.NoError(t, err)
	require.Len(t, buses, 1)
	assert.Equal(t, "ZB 1234", buses[0].RegistrationNumber)

	others, err := svc.List(rival)
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestFleetRegistrationIsUnique(t *testing.T) {
	env, _ := newEnv(t)
	svc := FleetService{Env: env}
	ctx := context.Background()

	_, err := svc.Create(ctx, operator, busInput("ZB 1234"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, rival, busInput("zb 1234"))
	assert.True(t, domain.IsConflict(err))
}

func TestFleetUpdateKeepsIdentity(t *testing.T) {
	env, _ := newEnv(t)
	_, bus, sc := fixture(t, env)
	svc := FleetService{Env: env}

	in := busInput("ZB 4321")
	in.Capacity = "50"
	updated, err := svc.Update(context.Background(), operator, bus.ID, in)
	require.NoError(t, err)
	assert.Equal(t, bus.ID, updated.ID)
	assert.Equal(t, 50, updated.Capacity)

	got, err := ScheduleService{Env: env}.Get(operator, sc.ID)
	require.NoError(t, err)
	assert.Equal(t, "ZB 4321", got.Bus)

	_, err = svc.Update(context.Background(), rival, bus.ID, in)
	assert.True(t, domain.IsNotFound(err))
}

func TestFleetDeleteNeedsConfirmationAndNoActiveSchedule(t *testing.T) {
	env, _ := newEnv(t)
	_, bus, sc := fixture(t, env)
	svc := FleetService{Env: env}
	ctx := context.Background()

	err := svc.Delete(ctx, operator, bus.ID, false)
	assert.True(t, domain.IsConfirmationRequired(err))

	err = svc.Delete(ctx, operator, bus.ID, true)
	assert.True(t, domain.IsConflict(err))

	_, err = ScheduleService{Env: env}.SetStatus(ctx, operator, sc.ID, models.ScheduleSuspended)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, operator, bus.ID, true))

	_, err = svc.Get(operator, bus.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestFleetSetStatus(t *testing.T) {
	env, _ := newEnv(t)
	svc := FleetService{Env: env}
	ctx := context.Background()
	bus, err := svc.Create(ctx, operator, busInput("ZB 1234"))
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, operator, bus.ID, models.BusActive)
	require.True(t, domain.IsValidation(err))
	assert.Equal(t, "Bus is already Active", err.Error())

	got, err := svc.SetStatus(ctx, operator, bus.ID, models.BusMaintenance)
	require.NoError(t, err)
	assert.Equal(t, models.BusMaintenance, got.Status)

	_, err = svc.SetStatus(ctx, operator, bus.ID, "Parked")
	assert.True(t, domain.IsValidation(err))
}
