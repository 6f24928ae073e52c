package repositories

import (
	"testing"
	"time"

	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func daily(dep, arr string) models.Schedule {
	return models.Schedule{BusID: 1, Departure: dep, Arrival: arr, Days: models.AllDays, Status: models.ScheduleActive}
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(daily("08:00", "10:00"), daily("09:00", "11:00")))
	assert.False(t, Overlaps(daily("08:00", "10:00"), daily("10:00", "12:00")), "touching windows do not overlap")

	mon := daily("08:00", "10:00")
	mon.Days = models.Days(0).With(time.Monday)
	tue := daily("08:00", "10:00")
	tue.Days = models.Days(0).With(time.Tuesday)
	assert.False(t, Overlaps(mon, tue))
}

func TestScheduleConflictingIgnoresInactiveAndSelf(t *testing.T) {
	st := &db.State{}
	repo := ScheduleRepo{S: st}
	first := repo.Insert(daily("08:00", "10:00"))

	_, found := repo.Conflicting(first)
	assert.False(t, found)

	_, found = repo.Conflicting(daily("09:00", "11:00"))
	assert.True(t, found)

	first.Status = models.ScheduleSuspended
	require.NoError(t, repo.Replace(first))
	_, found = repo.Conflicting(daily("09:00", "11:00"))
	assert.False(t, found)
}

func TestSeatAssignment(t *testing.T) {
	assert.Equal(t, "1A", SeatLabel(0))
	assert.Equal(t, "1D", SeatLabel(3))
	assert.Equal(t, "2A", SeatLabel(4))

	seat, ok := FreeSeat(map[string]bool{"1A": true, "1B": true}, 45)
	require.True(t, ok)
	assert.Equal(t, "1C", seat)

	_, ok = FreeSeat(map[string]bool{"1A": true, "1B": true}, 2)
	assert.False(t, ok)
}

func TestBookingDuplicateSkipsCancelled(t *testing.T) {
	st := &db.State{}
	repo := BookingRepo{S: st}
	b := repo.Insert(models.Booking{DepartureDate: "2026-10-20", DepartureTime: "08:00", PassengerPhone: "+260 97 1234567", Status: models.BookingConfirmed})

	probe := models.Booking{DepartureDate: b.DepartureDate, DepartureTime: b.DepartureTime, PassengerPhone: b.PassengerPhone}
	assert.True(t, repo.Duplicate(probe))

	b.Status = models.BookingCancelled
	require.NoError(t, repo.Replace(b))
	assert.False(t, repo.Duplicate(probe))
}

func TestRouteOwnershipAndPairs(t *testing.T) {
	st := &db.State{}
	repo := RouteRepo{S: st}
	r := repo.Insert(models.Route{CompanyID: 1, Origin: "Lusaka", Destination: "Kitwe", Status: models.RouteActive})

	_, err := repo.GetOwned(r.ID, 2)
	assert.True(t, domain.IsNotFound(err))

	assert.True(t, repo.ActivePairTaken(1, "lusaka", "KITWE", 0))
	assert.False(t, repo.ActivePairTaken(1, "lusaka", "KITWE", r.ID))
	assert.False(t, repo.ActivePairTaken(2, "Lusaka", "Kitwe", 0))

	require.NoError(t, repo.Delete(r.ID))
	assert.Empty(t, repo.List(0))
	assert.True(t, domain.IsNotFound(repo.Delete(r.ID)))
}

func TestBusRegistrationTakenIsCaseInsensitive(t *testing.T) {
	repo := BusRepo{S: &db.State{}}
	b := repo.Insert(models.Bus{RegistrationNumber: "ZB 1234"})
	assert.True(t, repo.RegistrationTaken("zb 1234", 0))
	assert.False(t, repo.RegistrationTaken("ZB 1234", b.ID))
}
