package validators

import (
	"strings"

	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/utils"
)

// Route validates a route submission. The returned route is Active and has no ID or owner.
func Route(in models.RouteInput) (models.Route, error) {
	origin := clean(in.Origin)
	destination := clean(in.Destination)
	if origin == "" || destination == "" {
		return models.Route{}, domain.Invalid("origin", "Origin and destination are required")
	}
	if utils.SameText(origin, destination) {
		return models.Route{}, domain.Invalid("destination", "Origin and destination cannot be the same")
	}
	if in.Fare <= 0 {
		return models.Route{}, domain.Invalid("fare", "Fare must be a positive number")
	}
	if in.DistanceKm <= 0 {
		return models.Route{}, domain.Invalid("distanceKm", "Distance must be a positive number")
	}
	if in.DurationMinutes <= 0 {
		return models.Route{}, domain.Invalid("durationMinutes", "Duration must be a positive number of minutes")
	}

	stops := make([]string, 0, len(in.Stops))
	for _, raw := range in.Stops {
		stop := clean(raw)
		if stop == "" {
			continue
		}
		if utils.SameText(stop, origin) || utils.SameText(stop, destination) {
			return models.Route{}, domain.Invalid("stops", "Stops cannot include the origin or destination")
		}
		for _, seen := range stops {
			if utils.SameText(seen, stop) {
				return models.Route{}, domain.Invalid("stops", "Duplicate stop: "+stop)
			}
		}
		stops = append(stops, stop)
	}

	return models.Route{
		Origin:          origin,
		Destination:     destination,
		DistanceKm:      in.DistanceKm,
		DurationMinutes: in.DurationMinutes,
		Stops:           stops,
		Fare:            in.Fare,
		Frequency:       strings.TrimSpace(in.Frequency),
		Discount:        strings.TrimSpace(in.Discount),
		Insurance:       strings.TrimSpace(in.Insurance),
		Status:          models.RouteActive,
	}, nil
}
