package models

import "zambus/internal/domain"

type RouteStatus string

const (
	RouteActive   RouteStatus = "Active"
	RouteInactive RouteStatus = "Inactive"
)

func (s RouteStatus) Valid() bool {
	return s == RouteActive || s == RouteInactive
}

// Route is an origin-destination pair with intermediate stops.
type Route struct {
	ID              domain.ID   `json:"id"`
	CompanyID       domain.ID   `json:"companyId"`
	Origin          string      `json:"origin"`
	Destination     string      `json:"destination"`
	DistanceKm      float64     `json:"distanceKm"`
	DurationMinutes int         `json:"durationMinutes"`
	Stops           []string    `json:"stops"`
	Fare            float64     `json:"fare"`
	Frequency       string      `json:"frequency,omitempty"`
	Discount        string      `json:"discount,omitempty"`
	Insurance       string      `json:"insurance,omitempty"`
	Status          RouteStatus `json:"status"`
}

// Label renders "Lusaka - Livingstone".
func (r Route) Label() string {
	return r.Origin + " - " + r.Destination
}

// RouteInput is the raw field set submitted for a route.
type RouteInput struct {
	Origin          string   `json:"origin"`
	Destination     string   `json:"destination"`
	DistanceKm      float64  `json:"distanceKm"`
	DurationMinutes int      `json:"durationMinutes"`
	Stops           []string `json:"stops"`
	Fare            float64  `json:"fare"`
	Frequency       string   `json:"frequency"`
	Discount        string   `json:"discount"`
	Insurance       string   `json:"insurance"`
}
