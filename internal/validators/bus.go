package validators

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/utils"
)

var registrationPattern = regexp.MustCompile(`^ZB\s\d{4}$`)

const (
	minCapacity = 1
	maxCapacity = 100
	minBusYear  = 2000
)

// Bus validates a fleet submission against the reference time now.
func Bus(in models.BusInput, now time.Time) (models.Bus, error) {
	if anyBlank(in.RegistrationNumber, in.Model, in.Capacity, in.ManufactureYear, in.LastMaintenance, in.Mileage) {
		return models.Bus{}, domain.Invalid("", "All fields are required")
	}

	reg := strings.ToUpper(clean(in.RegistrationNumber))
	if !registrationPattern.MatchString(reg) {
		return models.Bus{}, domain.Invalid("registrationNumber", "Invalid registration number format. Must be in format: ZB XXXX")
	}

	capacity, ok := atoi(in.Capacity)
	if !ok || capacity < minCapacity || capacity > maxCapacity {
		return models.Bus{}, domain.Invalid("capacity", "Capacity must be between 1 and 100")
	}

	year, ok := atoi(in.ManufactureYear)
	if !ok || year < minBusYear || year > now.Year() {
		return models.Bus{}, domain.Invalid("manufactureYear", fmt.Sprintf("Manufacture year must be between %d and %d", minBusYear, now.Year()))
	}

	maintained, err := utils.ParseDate(in.LastMaintenance)
	if err != nil {
		return models.Bus{}, domain.Invalid("lastMaintenance", "Invalid maintenance date")
	}
	if maintained.After(now) {
		return models.Bus{}, domain.Invalid("lastMaintenance", "Last maintenance date cannot be in the future")
	}

	mileage, ok := atoi(in.Mileage)
	if !ok || mileage < 0 {
		return models.Bus{}, domain.Invalid("mileage", "Mileage must be a positive number")
	}

	return models.Bus{
		RegistrationNumber: reg,
		Model:              clean(in.Model),
		Capacity:           capacity,
		ManufactureYear:    year,
		LastMaintenance:    maintained.Format(utils.LayoutDate),
		Mileage:            mileage,
		Status:             models.BusActive,
	}, nil
}
