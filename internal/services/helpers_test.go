package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/notify"
	"zambus/internal/storage"

	"github.com/stretchr/testify/require"
)

// Monday.
var refNow = time.Date(2026, 10, 19, 10, 0, 0, 0, time.Local)

var (
	operator  = domain.RequestContext{UserID: 1, Role: domain.RoleCompany}
	rival     = domain.RequestContext{UserID: 3, Role: domain.RoleCompany}
	passenger = domain.RequestContext{UserID: 2, Role: domain.RolePassenger}
)

type recorder struct {
	mu     sync.Mutex
	toasts []notify.Toast
}

func (r *recorder) Notify(_ context.Context, t notify.Toast) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, t)
}

func (r *recorder) last() notify.Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.toasts) == 0 {
		return notify.Toast{}
	}
	return r.toasts[len(r.toasts)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.toasts)
}

// newEnv opens an empty store with no latency and a fixed clock.
func newEnv(t *testing.T) (Env, *recorder) {
	t.Helper()
	d, err := db.Open(context.Background(), storage.NewMemory(), false)
	require.NoError(t, err)
	rec := &recorder{}
	return Env{
		DB:        d,
		Notifier:  rec,
		Now:       func() time.Time { return refNow },
		RequestID: "test",
	}, rec
}

func busInput(reg string) models.BusInput {
	return models.BusInput{
		RegistrationNumber: reg,
		Model:              "Scania K410",
		Capacity:           "45",
		ManufactureYear:    "2021",
		LastMaintenance:    "2026-02-15",
		Mileage:            "150000",
	}
}

func routeInput(origin, destination string) models.RouteInput {
	return models.RouteInput{
		Origin:          origin,
		Destination:     destination,
		DistanceKm:      480,
		DurationMinutes: 360,
		Stops:           []string{"Kafue", "Mazabuka", "Choma"},
		Fare:            350,
	}
}

// fixture creates a route, a bus and a daily 08:00-14:00 schedule for operator.
func fixture(t *testing.T, env Env) (models.Route, models.Bus, models.Schedule) {
	t.Helper()
	ctx := context.Background()
	route, err := RouteService{Env: env}.Create(ctx, operator, routeInput("Lusaka", "Livingstone"))
	require.NoError(t, err)
	bus, err := FleetService{Env: env}.Create(ctx, operator, busInput("ZB 1234"))
	require.NoError(t, err)
	sc, err := ScheduleService{Env: env}.Create(ctx, operator, models.ScheduleInput{
		RouteID: route.ID, BusID: bus.ID, Departure: "08:00", Arrival: "14:00", Days: "Daily",
	})
	require.NoError(t, err)
	return route, bus, sc
}
