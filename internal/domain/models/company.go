package models

import "zambus/internal/domain"

type Company struct {
	ID                domain.ID `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	BusinessLicense   string    `json:"businessLicense"`
	Description       string    `json:"description"`
	Address           string    `json:"address,omitempty"`
	OperatingRegions  string    `json:"operatingRegions,omitempty"`
	InsurancePartners string    `json:"insurancePartners,omitempty"`
	DiscountPrograms  string    `json:"discountPrograms,omitempty"`
	Rating            float64   `json:"rating"`
	Routes            []string  `json:"routes"`
}

type CompanyProfileInput struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	BusinessLicense   string `json:"businessLicense"`
	Description       string `json:"description"`
	Address           string `json:"address"`
	OperatingRegions  string `json:"operatingRegions"`
	InsurancePartners string `json:"insurancePartners"`
	DiscountPrograms  string `json:"discountPrograms"`
}

// CompanyStats is the operator dashboard summary.
type CompanyStats struct {
	ActiveRoutes int     `json:"activeRoutes"`
	TotalBuses   int     `json:"totalBuses"`
	ActiveBuses  int     `json:"activeBuses"`
	Customers    int     `json:"customers"`
	Revenue      float64 `json:"revenue"`

	UpcomingDepartures []UpcomingDeparture `json:"upcomingDepartures"`
}

// UpcomingDeparture is the next run of one active schedule.
type UpcomingDeparture struct {
	ScheduleID domain.ID `json:"scheduleId"`
	Route      string    `json:"route"`
	Bus        string    `json:"bus"`
	Date       string    `json:"date"` // YYYY-MM-DD
	Time       string    `json:"time"` // HH:MM
	Booked     int       `json:"booked"`
	Capacity   int       `json:"capacity"`
}
