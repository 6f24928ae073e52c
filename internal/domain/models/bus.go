package models

import "zambus/internal/domain"

type BusStatus string

const (
	BusActive       BusStatus = "Active"
	BusMaintenance  BusStatus = "Maintenance"
	BusOutOfService BusStatus = "Out of Service"
)

func (s BusStatus) Valid() bool {
	switch s {
	case BusActive, BusMaintenance, BusOutOfService:
		return true
	}
	return false
}

type Bus struct {
	ID                 domain.ID `json:"id"`
	CompanyID          domain.ID `json:"companyId"`
	RegistrationNumber string    `json:"registrationNumber"`
	Model              string    `json:"model"`
	Capacity           int       `json:"capacity"`
	ManufactureYear    int       `json:"manufactureYear"`
	LastMaintenance    string    `json:"lastMaintenance"` // YYYY-MM-DD
	Mileage            int       `json:"mileage"`
	Status             BusStatus `json:"status"`
}

// BusInput uses strings for numeric fields so that empty and malformed values
// can be told apart from zero.
type BusInput struct {
	RegistrationNumber string `json:"registrationNumber"`
	Model              string `json:"model"`
	Capacity           string `json:"capacity"`
	ManufactureYear    string `json:"manufactureYear"`
	LastMaintenance    string `json:"lastMaintenance"`
	Mileage            string `json:"mileage"`
}
