package services

import (
	"context"
	"fmt"

	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/notify"
	"zambus/internal/repositories"
	"zambus/internal/utils"
	"zambus/internal/validators"
)

type BookingService struct {
	Env
}

// List returns a passenger's own bookings, or the bookings made on an
// operator's routes.
func (s BookingService) List(actor domain.RequestContext) ([]models.Booking, error) {
	var out []models.Booking
	err := s.view(func(st *db.State) error {
		out = []models.Booking{}
		for _, b := range (repositories.BookingRepo{S: st}).List(0) {
			if canSeeBooking(st, actor, b) {
				out = append(out, b)
			}
		}
		return nil
	})
	return out, err
}

func (s BookingService) Get(actor domain.RequestContext, id domain.ID) (models.Booking, error) {
	var out models.Booking
	err := s.view(func(st *db.State) error {
		b, err := repositories.BookingRepo{S: st}.Get(id)
		if err != nil {
			return err
		}
		if !canSeeBooking(st, actor, b) {
			return domain.NotFoundError{Resource: "Booking"}
		}
		out = b
		return nil
	})
	return out, err
}

func canSeeBooking(st *db.State, actor domain.RequestContext, b models.Booking) bool {
	if actor.Role != domain.RoleCompany {
		return b.UserID == actor.UserID
	}
	_, err := repositories.RouteRepo{S: st}.GetOwned(b.RouteID, actor.UserID)
	return err == nil
}

func (s BookingService) Create(ctx context.Context, actor domain.RequestContext, in models.BookingInput) (models.Booking, error) {
	var booking models.Booking
	err := s.mutator(actor, s.Latency).Run(ctx, Op{
		Module:       "bookings",
		Action:       "create",
		FailureTitle: "Booking Failed",
		Validate: func() error {
			var err error
			booking, err = validators.Booking(in, s.now())
			return err
		},
		Commit: func(st *db.State) error {
			booking.UserID = actor.UserID
			if err := s.place(st, &booking, models.Booking{}); err != nil {
				return err
			}
			booking = repositories.BookingRepo{S: st}.Insert(booking)
			return nil
		},
		Success: func() notify.Toast {
			return notify.Success("Booking Confirmed", fmt.Sprintf("Your ticket from %s to %s has been booked. Seat %s.",
				booking.Origin, booking.Destination, booking.SeatNumber))
		},
	})
	return booking, err
}

// Update changes the trip or passenger details of a confirmed booking. The
// seat is kept when the departure does not change.
func (s BookingService) Update(ctx context.Context, actor domain.RequestContext, id domain.ID, in models.BookingInput) (models.Booking, error) {
	var booking models.Booking
	err := s.mutator(actor, s.Latency).Run(ctx, Op{
		Module:       "bookings",
		Action:       "update",
		FailureTitle: "Update Failed",
		Validate: func() error {
			var err error
			booking, err = validators.Booking(in, s.now())
			return err
		},
		Commit: func(st *db.State) error {
			repo := repositories.BookingRepo{S: st}
			current, err := repo.Get(id)
			if err != nil || current.UserID != actor.UserID {
				return domain.NotFoundError{Resource: "Booking"}
			}
			if err := validators.BookingUpdate(current); err != nil {
				return err
			}
			booking.ID = current.ID
			booking.UserID = current.UserID
			if err := s.place(st, &booking, current); err != nil {
				return err
			}
			return repo.Replace(booking)
		},
		Success: func() notify.Toast {
			return notify.Success("Booking Updated", fmt.Sprintf("Your booking from %s to %s on %s has been updated",
				booking.Origin, booking.Destination, booking.DepartureDate))
		},
	})
	return booking, err
}

// Cancel cancels a confirmed booking at least four hours before departure.
func (s BookingService) Cancel(ctx context.Context, actor domain.RequestContext, id domain.ID, confirmed bool) (models.Booking, error) {
	var booking models.Booking
	err := s.mutator(actor, s.Latency).Run(ctx, Op{
		Module:       "bookings",
		Action:       "cancel",
		Prompt:       "Are you sure you want to cancel this booking?",
		Confirmed:    confirmed,
		FailureTitle: "Cancellation Failed",
		Commit: func(st *db.State) error {
			repo := repositories.BookingRepo{S: st}
			current, err := repo.Get(id)
			if err != nil || current.UserID != actor.UserID {
				return domain.NotFoundError{Resource: "Booking"}
			}
			if err := validators.Cancellation(current, s.now()); err != nil {
				return err
			}
			current.Status = models.BookingCancelled
			booking = current
			return repo.Replace(current)
		},
		Success: func() notify.Toast {
			return notify.Success("Booking Cancelled", fmt.Sprintf("Your booking from %s to %s has been cancelled",
				booking.Origin, booking.Destination))
		},
	})
	return booking, err
}

// Complete marks a confirmed booking on one of the operator's routes as travelled.
func (s BookingService) Complete(ctx context.Context, actor domain.RequestContext, id domain.ID) (models.Booking, error) {
	var booking models.Booking
	err := s.mutator(actor, s.Latency).Run(ctx, Op{
		Module: "bookings",
		Action: "complete",
		Commit: func(st *db.State) error {
			repo := repositories.BookingRepo{S: st}
			current, err := repo.Get(id)
			if err != nil || !canSeeBooking(st, actor, current) {
				return domain.NotFoundError{Resource: "Booking"}
			}
			if current.Status != models.BookingConfirmed {
				return domain.Invalid("status", "Only confirmed bookings can be completed")
			}
			current.Status = models.BookingCompleted
			booking = current
			return repo.Replace(current)
		},
		Success: func() notify.Toast {
			return notify.Success("Booking Completed", fmt.Sprintf("Booking #%d has been marked as completed", booking.ID))
		},
	})
	return booking, err
}

// place resolves route, schedule, seat and fare for b against the store.
// prev is the stored version of b when it is being modified; its seat is kept
// if the departure stays the same.
func (s BookingService) place(st *db.State, b *models.Booking, prev models.Booking) error {
	routes := repositories.RouteRepo{S: st}.ActiveBetween(b.Origin, b.Destination)
	if len(routes) == 0 {
		return domain.Invalid("destination", fmt.Sprintf("No route available from %s to %s", b.Origin, b.Destination))
	}

	day, err := utils.ParseDate(b.DepartureDate)
	if err != nil {
		return domain.Invalid("departureDate", "Invalid departure date")
	}
	schedules := repositories.ScheduleRepo{S: st}
	var (
		sc    models.Schedule
		route models.Route
		found bool
	)
	for _, r := range routes {
		for _, cand := range schedules.Departing(r.ID, b.DepartureTime, day.Weekday()) {
			if b.ScheduleID == 0 || cand.ID == b.ScheduleID {
				sc, route, found = cand, r, true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return domain.Invalid("departureTime", fmt.Sprintf("No bus departs from %s to %s at %s on %s",
			b.Origin, b.Destination, b.DepartureTime, day.Weekday()))
	}

	repo := repositories.BookingRepo{S: st}
	if repo.Duplicate(*b) {
		return domain.ConflictError{Resource: "Booking", Msg: "A booking for this passenger and departure already exists"}
	}

	bus, err := repositories.BusRepo{S: st}.Get(sc.BusID)
	if err != nil {
		return domain.InternalError{Msg: "schedule references a missing bus", Err: err}
	}
	taken := repo.TakenSeats(sc.ID, b.DepartureDate, b.ID)
	seat := ""
	if prev.ID != 0 && prev.ScheduleID == sc.ID && prev.DepartureDate == b.DepartureDate && !taken[prev.SeatNumber] {
		seat = prev.SeatNumber
	} else {
		var ok bool
		if seat, ok = repositories.FreeSeat(taken, bus.Capacity); !ok {
			return domain.ConflictError{Resource: "Booking", Msg: "No seats available on this departure"}
		}
	}

	b.RouteID = route.ID
	b.ScheduleID = sc.ID
	b.SeatNumber = seat
	b.Fare = route.Fare
	if p, ok := models.FindInsurancePlan(b.InsurancePlan); ok {
		b.Fare += p.Price
	}
	return nil
}
