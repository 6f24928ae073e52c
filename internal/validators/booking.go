package validators

import (
	"strings"
	"time"

	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/utils"
)

const (
	// MinBookingLead is how far ahead of departure a booking must be made.
	MinBookingLead = 2 * time.Hour
	// MinCancellationLead is how far ahead of departure a booking may still be cancelled.
	MinCancellationLead = 4 * time.Hour
	minPassengerName    = 3
)

// Booking validates a booking request. The result carries the normalized
// passenger and trip fields; route, schedule, seat and fare are filled in by
// the caller from the store.
func Booking(in models.BookingInput, now time.Time) (models.Booking, error) {
	if anyBlank(in.Origin, in.Destination, in.DepartureDate, in.DepartureTime, in.PassengerName, in.PassengerPhone) {
		return models.Booking{}, domain.Invalid("", "All fields are required")
	}

	origin := clean(in.Origin)
	destination := clean(in.Destination)
	if utils.SameText(origin, destination) {
		return models.Booking{}, domain.Invalid("destination", "Origin and destination cannot be the same")
	}

	day, err := utils.ParseDate(in.DepartureDate)
	if err != nil {
		return models.Booking{}, domain.Invalid("departureDate", "Invalid departure date")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return models.Booking{}, domain.Invalid("departureDate", "Departure date cannot be in the past")
	}

	clock, err := utils.NormalizeClock(in.DepartureTime)
	if err != nil {
		return models.Booking{}, domain.Invalid("departureTime", "Invalid time format. Use HH:MM (24-hour format)")
	}

	name := clean(in.PassengerName)
	if len([]rune(name)) < minPassengerName {
		return models.Booking{}, domain.Invalid("passengerName", "Passenger name must be at least 3 characters long")
	}

	phone, ok := NormalizePhone(in.PassengerPhone)
	if !ok {
		return models.Booking{}, domain.Invalid("passengerPhone", "Invalid phone number format. Use: +260 XX XXXXXXX")
	}

	date := day.Format(utils.LayoutDate)
	departure, err := utils.CombineDateClock(date, clock, now.Location())
	if err != nil {
		return models.Booking{}, domain.Invalid("departureTime", "Invalid departure time")
	}
	if departure.Before(now.Add(MinBookingLead)) {
		return models.Booking{}, domain.Invalid("departureTime", "Bookings must be made at least 2 hours before departure")
	}

	plan := ""
	if code := strings.TrimSpace(in.InsurancePlan); code != "" {
		p, ok := models.FindInsurancePlan(code)
		if !ok {
			return models.Booking{}, domain.Invalid("insurancePlan", "Unknown insurance plan")
		}
		plan = p.Code
	}

	return models.Booking{
		ScheduleID:     in.ScheduleID,
		Origin:         origin,
		Destination:    destination,
		DepartureDate:  date,
		DepartureTime:  clock,
		PassengerName:  name,
		PassengerPhone: phone,
		InsurancePlan:  plan,
		Status:         models.BookingConfirmed,
	}, nil
}

// DepartureOf returns the departure instant of a booking in loc.
func DepartureOf(b models.Booking, loc *time.Location) (time.Time, error) {
	return utils.CombineDateClock(b.DepartureDate, b.DepartureTime, loc)
}

// Cancellation checks that b may still be cancelled at now.
func Cancellation(b models.Booking, now time.Time) error {
	if b.Status != models.BookingConfirmed {
		return domain.Invalid("status", "Only confirmed bookings can be cancelled")
	}
	departure, err := DepartureOf(b, now.Location())
	if err != nil {
		return domain.Invalid("departureTime", "Invalid departure time")
	}
	if departure.Sub(now) < MinCancellationLead {
		return domain.Invalid("departureTime", "Bookings can only be cancelled at least 4 hours before departure")
	}
	return nil
}

// BookingUpdate checks that current may be replaced by a modified booking.
func BookingUpdate(current models.Booking) error {
	if current.Status != models.BookingConfirmed {
		return domain.Invalid("status", "Only confirmed bookings can be modified")
	}
	return nil
}
