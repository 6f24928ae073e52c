package validators

import (
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/utils"
)

// Schedule validates the field set of a schedule. Route and bus existence are
// checked by the caller against the store.
func Schedule(in models.ScheduleInput) (models.Schedule, error) {
	if in.RouteID <= 0 {
		return models.Schedule{}, domain.Invalid("routeId", "Route is required")
	}
	if in.BusID <= 0 {
		return models.Schedule{}, domain.Invalid("busId", "Bus is required")
	}

	dep, err := utils.NormalizeClock(in.Departure)
	if err != nil {
		return models.Schedule{}, domain.Invalid("departure", "Invalid departure time. Use HH:MM (24-hour format)")
	}
	arr, err := utils.NormalizeClock(in.Arrival)
	if err != nil {
		return models.Schedule{}, domain.Invalid("arrival", "Invalid arrival time. Use HH:MM (24-hour format)")
	}
	if dep >= arr {
		return models.Schedule{}, domain.Invalid("arrival", "Departure time must be before arrival time")
	}

	days, err := models.ParseDays(in.Days)
	if err != nil {
		return models.Schedule{}, domain.ValidationError{Field: "days", Msg: "Invalid operating days. Use Daily, Weekdays, Mon-Fri or Mon, Wed, Fri", Err: err}
	}

	return models.Schedule{
		RouteID:   in.RouteID,
		BusID:     in.BusID,
		Departure: dep,
		Arrival:   arr,
		Days:      days,
		Status:    models.ScheduleActive,
	}, nil
}
