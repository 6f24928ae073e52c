package services

import (
	"context"
	"sort"
	"time"

	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/notify"
	"zambus/internal/repositories"
	"zambus/internal/utils"
	"zambus/internal/validators"
)

type CompanyService struct {
	Env
}

// List returns every operator. Route labels come from the operator's active
// routes when it has any, otherwise from its stored profile.
func (s CompanyService) List() ([]models.Company, error) {
	var out []models.Company
	err := s.view(func(st *db.State) error {
		out = repositories.CompanyRepo{S: st}.List()
		for i := range out {
			out[i].Routes = routeLabels(st, out[i])
		}
		return nil
	})
	return out, err
}

func (s CompanyService) Get(id domain.ID) (models.Company, error) {
	var out models.Company
	err := s.view(func(st *db.State) error {
		c, err := repositories.CompanyRepo{S: st}.Get(id)
		if err != nil {
			return err
		}
		c.Routes = routeLabels(st, c)
		out = c
		return nil
	})
	return out, err
}

func routeLabels(st *db.State, c models.Company) []string {
	labels := []string{}
	for _, r := range (repositories.RouteRepo{S: st}).List(c.ID) {
		if r.Status == models.RouteActive {
			labels = append(labels, r.Label())
		}
	}
	if len(labels) == 0 && len(c.Routes) > 0 {
		return append(labels, c.Routes...)
	}
	return labels
}

// UpdateProfile saves the signed-in operator's profile.
func (s CompanyService) UpdateProfile(ctx context.Context, actor domain.RequestContext, in models.CompanyProfileInput) (models.Company, error) {
	var (
		profile models.CompanyProfileInput
		company models.Company
	)
	err := s.mutator(actor, s.Latency).Run(ctx, Op{
		Module:       "companies",
		Action:       "update_profile",
		FailureTitle: "Update Failed",
		Validate: func() error {
			var err error
			profile, err = validators.CompanyProfile(in)
			return err
		},
		Commit: func(st *db.State) error {
			if actor.Role != domain.RoleCompany {
				return domain.ForbiddenError{Msg: "Only operators have a company profile"}
			}
			repo := repositories.CompanyRepo{S: st}
			current, err := repo.Get(actor.UserID)
			if err != nil {
				current = models.Company{ID: actor.UserID, Routes: []string{}}
			}
			current.Name = profile.Name
			current.Email = profile.Email
			current.Phone = profile.Phone
			current.BusinessLicense = profile.BusinessLicense
			current.Description = profile.Description
			current.Address = profile.Address
			current.OperatingRegions = profile.OperatingRegions
			current.InsurancePartners = profile.InsurancePartners
			current.DiscountPrograms = profile.DiscountPrograms
			repo.Upsert(current)
			company = current
			return nil
		},
		Success: func() notify.Toast {
			return notify.Success("Profile Updated", "Your company profile has been saved")
		},
	})
	return company, err
}

// Stats summarizes the operator's network for its dashboard. Revenue counts
// completed payments on the operator's routes; refunded ones are excluded.
func (s CompanyService) Stats(actor domain.RequestContext) (models.CompanyStats, error) {
	if actor.Role != domain.RoleCompany {
		return models.CompanyStats{}, domain.ForbiddenError{Msg: "Only operators have a dashboard"}
	}
	now := s.now()
	var out models.CompanyStats
	err := s.view(func(st *db.State) error {
		owned := map[domain.ID]bool{}
		for _, r := range (repositories.RouteRepo{S: st}).List(actor.UserID) {
			owned[r.ID] = true
			if r.Status == models.RouteActive {
				out.ActiveRoutes++
			}
		}

		buses := map[domain.ID]models.Bus{}
		for _, b := range (repositories.BusRepo{S: st}).List(actor.UserID) {
			buses[b.ID] = b
			out.TotalBuses++
			if b.Status == models.BusActive {
				out.ActiveBuses++
			}
		}

		customers := map[domain.ID]bool{}
		onRoutes := map[domain.ID]bool{}
		for _, b := range st.Bookings {
			if !owned[b.RouteID] {
				continue
			}
			onRoutes[b.ID] = true
			if b.Status != models.BookingCancelled {
				customers[b.UserID] = true
			}
		}
		out.Customers = len(customers)

		for _, p := range st.Payments {
			if onRoutes[p.BookingID] && p.Status == models.PaymentCompleted {
				out.Revenue += p.Amount
			}
		}

		out.UpcomingDepartures = upcoming(st, actor.UserID, buses, now)
		return nil
	})
	return out, err
}

// upcoming lists the next run of each active schedule within a week of now,
// soonest first.
func upcoming(st *db.State, companyID domain.ID, buses map[domain.ID]models.Bus, now time.Time) []models.UpcomingDeparture {
	bookings := repositories.BookingRepo{S: st}
	out := []models.UpcomingDeparture{}
	for _, sc := range (repositories.ScheduleRepo{S: st}).List(companyID) {
		if sc.Status != models.ScheduleActive {
			continue
		}
		for offset := 0; offset < 7; offset++ {
			day := now.AddDate(0, 0, offset)
			if !sc.Days.Has(day.Weekday()) {
				continue
			}
			date := day.Format(utils.LayoutDate)
			at, err := utils.CombineDateClock(date, sc.Departure, now.Location())
			if err != nil || !at.After(now) {
				continue
			}
			out = append(out, models.UpcomingDeparture{
				ScheduleID: sc.ID,
				Route:      sc.Route,
				Bus:        sc.Bus,
				Date:       date,
				Time:       sc.Departure,
				Booked:     len(bookings.TakenSeats(sc.ID, date, 0)),
				Capacity:   buses[sc.BusID].Capacity,
			})
			break
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// InsurancePlans lists the cover a passenger can add to a booking.
func InsurancePlans() []models.InsurancePlan {
	return append([]models.InsurancePlan(nil), models.InsurancePlans...)
}
