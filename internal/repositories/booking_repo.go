package repositories

import (
	"fmt"

	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/storage"
)

type BookingRepo struct {
	S *db.State
}

// List returns bookings of userID, or every booking when userID is 0.
func (r BookingRepo) List(userID domain.ID) []models.Booking {
	out := []models.Booking{}
	for _, v := range r.S.Bookings {
		if userID == 0 || v.UserID == userID {
			out = append(out, v)
		}
	}
	return out
}

func (r BookingRepo) index(id domain.ID) int {
	for i, v := range r.S.Bookings {
		if v.ID == id {
			return i
		}
	}
	return -1
}

func (r BookingRepo) Get(id domain.ID) (models.Booking, error) {
	if i := r.index(id); i >= 0 {
		return r.S.Bookings[i], nil
	}
	return models.Booking{}, domain.NotFoundError{Resource: "Booking"}
}

// Duplicate reports a live booking for the same departure and phone.
func (r BookingRepo) Duplicate(b models.Booking) bool {
	for _, v := range r.S.Bookings {
		if v.ID == b.ID || v.Status == models.BookingCancelled {
			continue
		}
		if v.DepartureDate == b.DepartureDate && v.DepartureTime == b.DepartureTime && v.PassengerPhone == b.PassengerPhone {
			return true
		}
	}
	return false
}

// TakenSeats lists seats held by live bookings on one departure of a schedule.
func (r BookingRepo) TakenSeats(scheduleID domain.ID, date string, exceptID domain.ID) map[string]bool {
	out := map[string]bool{}
	for _, v := range r.S.Bookings {
		if v.ID == exceptID || v.Status == models.BookingCancelled {
			continue
		}
		if v.ScheduleID == scheduleID && v.DepartureDate == date {
			out[v.SeatNumber] = true
		}
	}
	return out
}

// SeatLabel maps a zero based seat index to "1A", "1B" ... four seats a row.
func SeatLabel(idx int) string {
	return fmt.Sprintf("%d%c", idx/4+1, 'A'+rune(idx%4))
}

// FreeSeat returns the first unassigned seat of a bus with capacity seats.
func FreeSeat(taken map[string]bool, capacity int) (string, bool) {
	for i := 0; i < capacity; i++ {
		if label := SeatLabel(i); !taken[label] {
			return label, true
		}
	}
	return "", false
}

func (r BookingRepo) Insert(v models.Booking) models.Booking {
	v.ID = r.S.NextID(storage.KeyBookings)
	r.S.Bookings = append(r.S.Bookings, v)
	return v
}

func (r BookingRepo) Replace(v models.Booking) error {
	i := r.index(v.ID)
	if i < 0 {
		return domain.NotFoundError{Resource: "Booking"}
	}
	r.S.Bookings[i] = v
	return nil
}
