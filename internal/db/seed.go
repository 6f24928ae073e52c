package db

import (
	"time"

	"zambus/internal/domain"
	"zambus/internal/domain/models"

	"golang.org/x/crypto/bcrypt"
)

// Demo accounts installed with the sample data.
const (
	DemoCompanyEmail   = "company@zambus.co.zm"
	DemoPassengerEmail = "passenger@zambus.co.zm"
	DemoPassword       = "password123"
)

// SeedState builds the fixed sample data set.
func SeedState() (*State, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	st := &State{
		Users: []models.User{
			{ID: 1, Name: "Power Tools Bus Services", Email: DemoCompanyEmail, Type: domain.RoleCompany, PasswordHash: string(hash)},
			{ID: 2, Name: "John Doe", Email: DemoPassengerEmail, Type: domain.RolePassenger, PasswordHash: string(hash)},
			{ID: 3, Name: "Mazhandu Family Bus", Email: "info@mazhandu.com", Type: domain.RoleCompany, PasswordHash: string(hash)},
		},
		Companies: []models.Company{
			{
				ID:               1,
				Name:             "Power Tools Bus Services",
				Email:            "info@powertools.com",
				Phone:            "+260976543210",
				BusinessLicense:  "PTB123456",
				Description:      "Premium bus service with modern fleet and professional drivers.",
				OperatingRegions: "Lusaka, Copperbelt, Southern Province",
				Rating:           4.5,
				Routes:           []string{"Lusaka - Livingstone", "Lusaka - Kitwe", "Ndola - Chipata"},
			},
			{
				ID:              3,
				Name:            "Mazhandu Family Bus",
				Email:           "info@mazhandu.com",
				Phone:           "+260976543211",
				BusinessLicense: "MFB123457",
				Description:     "Reliable intercity transport with competitive prices.",
				Rating:          4.3,
				Routes:          []string{"Lusaka - Ndola", "Kitwe - Solwezi", "Lusaka - Chipata"},
			},
		},
		Routes: []models.Route{
			{
				ID: 1, CompanyID: 1,
				Origin: "Lusaka", Destination: "Livingstone",
				DistanceKm: 480, DurationMinutes: 360,
				Stops:     []string{"Kafue", "Mazabuka", "Choma"},
				Fare:      350,
				Frequency: "Daily",
				Discount:  "10% off for students",
				Insurance: "Basic coverage included",
				Status:    models.RouteActive,
			},
			{
				ID: 2, CompanyID: 1,
				Origin: "Lusaka", Destination: "Kitwe",
				DistanceKm: 360, DurationMinutes: 240,
				Stops:     []string{"Kabwe", "Kapiri Mposhi", "Ndola"},
				Fare:      280,
				Frequency: "Twice daily",
				Discount:  "15% off for seniors",
				Insurance: "Premium coverage available",
				Status:    models.RouteActive,
			},
		},
		Buses: []models.Bus{
			{ID: 1, CompanyID: 1, RegistrationNumber: "ZB 1234", Model: "Scania K410", Capacity: 45, ManufactureYear: 2020, LastMaintenance: "2024-02-15", Mileage: 150000, Status: models.BusActive},
			{ID: 2, CompanyID: 1, RegistrationNumber: "ZB 5678", Model: "Volvo 9700", Capacity: 52, ManufactureYear: 2021, LastMaintenance: "2024-03-01", Mileage: 120000, Status: models.BusActive},
		},
		Schedules: []models.Schedule{
			{ID: 1, CompanyID: 1, RouteID: 1, BusID: 1, Route: "Lusaka - Livingstone", Bus: "ZB 1234", Departure: "08:00", Arrival: "14:00", Days: models.AllDays, Status: models.ScheduleActive},
			{ID: 2, CompanyID: 1, RouteID: 2, BusID: 2, Route: "Lusaka - Kitwe", Bus: "ZB 5678", Departure: "09:30", Arrival: "13:30", Days: mwf(), Status: models.ScheduleActive},
		},
		Bookings: []models.Booking{
			{
				ID: 1, UserID: 2, RouteID: 1, ScheduleID: 1,
				Origin: "Lusaka", Destination: "Livingstone",
				DepartureDate: "2024-03-20", DepartureTime: "08:00",
				SeatNumber:    "12A",
				PassengerName: "John Doe", PassengerPhone: "+260 97 1234567",
				Fare:   350,
				Status: models.BookingCompleted,
			},
		},
		Payments: []models.Payment{
			{
				ID: 1, UserID: 2, BookingID: 1,
				Amount:        350,
				Method:        models.MethodMobileMoney,
				Status:        models.PaymentCompleted,
				Reference:     "MTN12345678",
				Timestamp:     time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local),
				Route:         "Lusaka → Livingstone",
				DepartureDate: "2024-03-20",
			},
		},
	}
	return st, nil
}

func mwf() models.Days {
	return models.Days(0).With(time.Monday).With(time.Wednesday).With(time.Friday)
}
