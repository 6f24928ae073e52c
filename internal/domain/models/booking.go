package models

import "zambus/internal/domain"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingCompleted BookingStatus = "Completed"
)

// Booking is a passenger's reservation of a seat on a scheduled departure.
type Booking struct {
	ID             domain.ID     `json:"id"`
	UserID         domain.ID     `json:"userId"`
	RouteID        domain.ID     `json:"routeId"`
	ScheduleID     domain.ID     `json:"scheduleId"`
	Origin         string        `json:"origin"`
	Destination    string        `json:"destination"`
	DepartureDate  string        `json:"departureDate"` // YYYY-MM-DD
	DepartureTime  string        `json:"departureTime"` // HH:MM
	SeatNumber     string        `json:"seatNumber"`
	PassengerName  string        `json:"passengerName"`
	PassengerPhone string        `json:"passengerPhone"`
	InsurancePlan  string        `json:"insurancePlan,omitempty"`
	Fare           float64       `json:"fare"`
	Status         BookingStatus `json:"status"`
}

type BookingInput struct {
	ScheduleID     domain.ID `json:"scheduleId"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureDate  string    `json:"departureDate"`
	DepartureTime  string    `json:"departureTime"`
	PassengerName  string    `json:"passengerName"`
	PassengerPhone string    `json:"passengerPhone"`
	InsurancePlan  string    `json:"insurancePlan"`
}
