package repositories

import (
	"time"

	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/storage"
	"zambus/internal/utils"
)

type ScheduleRepo struct {
	S *db.State
}

func (r ScheduleRepo) List(companyID domain.ID) []models.Schedule {
	out := []models.Schedule{}
	for _, v := range r.S.Schedules {
		if companyID == 0 || v.CompanyID == companyID {
			out = append(out, v)
		}
	}
	return out
}

func (r ScheduleRepo) index(id domain.ID) int {
	for i, v := range r.S.Schedules {
		if v.ID == id {
			return i
		}
	}
	return -1
}

func (r ScheduleRepo) Get(id domain.ID) (models.Schedule, error) {
	if i := r.index(id); i >= 0 {
		return r.S.Schedules[i], nil
	}
	return models.Schedule{}, domain.NotFoundError{Resource: "Schedule"}
}

func (r ScheduleRepo) GetOwned(id, companyID domain.ID) (models.Schedule, error) {
	v, err := r.Get(id)
	if err != nil || v.CompanyID != companyID {
		return models.Schedule{}, domain.NotFoundError{Resource: "Schedule"}
	}
	return v, nil
}

// ActiveForBus lists active schedules using busID.
func (r ScheduleRepo) ActiveForBus(busID domain.ID) []models.Schedule {
	out := []models.Schedule{}
	for _, v := range r.S.Schedules {
		if v.BusID == busID && v.Status == models.ScheduleActive {
			out = append(out, v)
		}
	}
	return out
}

// ActiveForRoute lists active schedules on routeID.
func (r ScheduleRepo) ActiveForRoute(routeID domain.ID) []models.Schedule {
	out := []models.Schedule{}
	for _, v := range r.S.Schedules {
		if v.RouteID == routeID && v.Status == models.ScheduleActive {
			out = append(out, v)
		}
	}
	return out
}

// Departing lists active schedules of routeID leaving at clock on weekday.
func (r ScheduleRepo) Departing(routeID domain.ID, clock string, weekday time.Weekday) []models.Schedule {
	out := []models.Schedule{}
	for _, v := range r.ActiveForRoute(routeID) {
		if v.Days.Has(weekday) && v.Departure == clock {
			out = append(out, v)
		}
	}
	return out
}

// Overlaps reports whether two schedules share an operating day and their
// [departure, arrival) windows intersect.
func Overlaps(a, b models.Schedule) bool {
	if !a.Days.Overlaps(b.Days) {
		return false
	}
	aDep, err1 := utils.ClockMinutes(a.Departure)
	aArr, err2 := utils.ClockMinutes(a.Arrival)
	bDep, err3 := utils.ClockMinutes(b.Departure)
	bArr, err4 := utils.ClockMinutes(b.Arrival)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return true
	}
	return aDep < bArr && bDep < aArr
}

// Conflicting returns the first active schedule of the same bus that overlaps s.
func (r ScheduleRepo) Conflicting(s models.Schedule) (models.Schedule, bool) {
	for _, v := range r.ActiveForBus(s.BusID) {
		if v.ID != s.ID && Overlaps(v, s) {
			return v, true
		}
	}
	return models.Schedule{}, false
}

func (r ScheduleRepo) Insert(v models.Schedule) models.Schedule {
	v.ID = r.S.NextID(storage.KeySchedules)
	r.S.Schedules = append(r.S.Schedules, v)
	return v
}

func (r ScheduleRepo) Replace(v models.Schedule) error {
	i := r.index(v.ID)
	if i < 0 {
		return domain.NotFoundError{Resource: "Schedule"}
	}
	r.S.Schedules[i] = v
	return nil
}

func (r ScheduleRepo) Delete(id domain.ID) error {
	i := r.index(id)
	if i < 0 {
		return domain.NotFoundError{Resource: "Schedule"}
	}
	r.S.Schedules = append(r.S.Schedules[:i:i], r.S.Schedules[i+1:]...)
	return nil
}
