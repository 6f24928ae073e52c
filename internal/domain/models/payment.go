package models

import (
	"time"

	"zambus/internal/domain"
)

type PaymentMethod string

const (
	MethodMobileMoney  PaymentMethod = "Mobile Money"
	MethodBankCard     PaymentMethod = "Bank Card"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
	PaymentRefunded  PaymentStatus = "Refunded"
)

type Payment struct {
	ID            domain.ID     `json:"id"`
	UserID        domain.ID     `json:"userId"`
	BookingID     domain.ID     `json:"bookingId"`
	Amount        float64       `json:"amount"`
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	Reference     string        `json:"reference"`
	Timestamp     time.Time     `json:"timestamp"`
	Route         string        `json:"route"`
	DepartureDate string        `json:"departureDate"`
}

type PaymentInput struct {
	BookingID domain.ID `json:"bookingId"`
	Amount    string    `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference"`
}
